package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// menuButton is drawn at the left edge of the header in the mobile layout.
const menuButton = " ☰ "

// Header represents the top header bar
type Header struct {
	width     int
	pageTitle string
	userName  string
	showMenu  bool
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetPageTitle sets the title shown on the right
func (h *Header) SetPageTitle(title string) {
	h.pageTitle = title
}

// SetUserName sets the signed-in user shown after the page title
func (h *Header) SetUserName(name string) {
	h.userName = name
}

// SetMenuButton shows or hides the ☰ button.
func (h *Header) SetMenuButton(show bool) {
	h.showMenu = show
}

// MenuButtonHit reports whether (x, y) lands on the ☰ button.
func (h *Header) MenuButtonHit(x, y int) bool {
	return h.showMenu && y == 0 && x >= 0 && x < runewidth.StringWidth(menuButton)
}

// View renders the header
func (h *Header) View() string {
	left := " SaaS Dashboard"
	if h.showMenu {
		left = menuButton + "SaaS Dashboard"
	}
	right := h.pageTitle
	if h.userName != "" {
		if right != "" {
			right += " · "
		}
		right += h.userName
	}
	if right != "" {
		right += " "
	}

	paddingLen := max(h.width-runewidth.StringWidth(left)-runewidth.StringWidth(right), 0)
	content := left + strings.Repeat(" ", paddingLen) + right
	if h.width > 0 {
		content = runewidth.Truncate(content, h.width, "")
	}
	return h.renderGradient(content, runewidth.StringWidth(left))
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders the content over a background fading from the
// primary color to the page background. The first boldCells cells are bold.
func (h *Header) renderGradient(content string, boldCells int) string {
	if len(content) == 0 {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)
	textColor := lipgloss.Color(theme.Text)
	if !theme.Dark {
		textColor = lipgloss.Color(theme.TextInverse)
	}

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(width)
		if !theme.Dark {
			// keep light backgrounds dark enough for inverse text
			t *= 0.5
		}
		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)
		bgColor := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))

		style := lipgloss.NewStyle().
			Background(bgColor).
			Foreground(textColor).
			Bold(i < boldCells)
		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
