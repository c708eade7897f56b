package ui

import (
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestHeader_View(t *testing.T) {
	h := NewHeader()
	h.SetWidth(80)
	h.SetPageTitle("Settings")
	h.SetUserName("jane")

	view := h.View()
	plain := ansi.Strip(view)
	assert.Equal(t, 80, lipgloss.Width(view))
	assert.Contains(t, plain, "SaaS Dashboard")
	assert.Contains(t, plain, "Settings · jane")
	assert.NotContains(t, plain, "☰")
}

func TestHeader_MenuButton(t *testing.T) {
	h := NewHeader()
	h.SetWidth(60)
	assert.False(t, h.MenuButtonHit(1, 0))

	h.SetMenuButton(true)
	assert.Contains(t, ansi.Strip(h.View()), "☰")
	assert.True(t, h.MenuButtonHit(1, 0))
	assert.False(t, h.MenuButtonHit(1, 1))
	assert.False(t, h.MenuButtonHit(10, 0))
}

func TestHeader_NarrowWidthTruncates(t *testing.T) {
	h := NewHeader()
	h.SetWidth(10)
	h.SetPageTitle("Dashboard")
	assert.LessOrEqual(t, lipgloss.Width(h.View()), 10)
}

func TestParseHexColor(t *testing.T) {
	r, g, b := parseHexColor("#3B82F6")
	assert.Equal(t, []int{0x3B, 0x82, 0xF6}, []int{r, g, b})

	r, g, b = parseHexColor("bad")
	assert.Equal(t, []int{0, 0, 0}, []int{r, g, b})
}
