package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 2, Y: 1, W: 3, H: 2}
	assert.True(t, r.Contains(2, 1))
	assert.True(t, r.Contains(4, 2))
	assert.False(t, r.Contains(5, 1))
	assert.False(t, r.Contains(2, 3))
	assert.False(t, r.Contains(1, 1))
	assert.True(t, Rect{}.Empty())
}

func TestOverlay(t *testing.T) {
	bg := "aaaaa\nbbbbb\nccccc"
	got := Overlay(bg, "XY\nZW", 1, 1, 5, 3)

	assert.Equal(t, "aaaaa\nbXYbb\ncZWcc", ansi.Strip(got))
}

func TestOverlay_PadsAndClips(t *testing.T) {
	got := Overlay("ab", "XYZ", 3, 2, 5, 3)
	lines := strings.Split(ansi.Strip(got), "\n")

	assert.Len(t, lines, 3)
	assert.Equal(t, "ab   ", lines[0])
	assert.Equal(t, "   XY", lines[2])
}

func TestDim_KeepsText(t *testing.T) {
	styled := StatusErrorStyle.Render("alert")
	assert.Equal(t, "alert", ansi.Strip(Dim(styled)))
}
