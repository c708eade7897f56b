package ui

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/zhubert/saasboard/internal/router"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FooterContext is the state the footer picks its bindings from.
type FooterContext struct {
	Path           string
	Mobile         bool
	SidebarFocused bool
	SearchFocused  bool
	ModalOpen      bool
	Busy           bool
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width int
	ctx   FooterContext
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(ctx FooterContext) {
	f.ctx = ctx
}

// Bindings returns the shortcuts for the current context.
func (f *Footer) Bindings() []KeyBinding {
	c := f.ctx
	switch {
	case c.ModalOpen:
		return []KeyBinding{
			{Key: "tab/←/→", Desc: "move"},
			{Key: "enter", Desc: "select"},
			{Key: "esc", Desc: "cancel"},
		}
	case c.Busy:
		return []KeyBinding{{Key: "ctrl+c", Desc: "quit"}}
	case c.Path == router.PathLogin:
		return []KeyBinding{
			{Key: "tab", Desc: "next field"},
			{Key: "enter", Desc: "sign in"},
			{Key: "ctrl+t", Desc: "theme"},
			{Key: "ctrl+c", Desc: "quit"},
		}
	case c.SearchFocused:
		return []KeyBinding{
			{Key: "type", Desc: "filter"},
			{Key: "enter/esc", Desc: "done"},
		}
	}

	var b []KeyBinding
	if c.Mobile {
		b = append(b, KeyBinding{Key: "ctrl+b", Desc: "menu"})
	} else {
		b = append(b, KeyBinding{Key: "ctrl+b", Desc: "collapse"})
	}
	b = append(b, KeyBinding{Key: "tab", Desc: "focus"})
	if c.SidebarFocused {
		b = append(b, KeyBinding{Key: "↑/↓", Desc: "select"}, KeyBinding{Key: "enter", Desc: "open"})
	} else if c.Path == router.PathDashboard {
		b = append(b,
			KeyBinding{Key: "/", Desc: "search"},
			KeyBinding{Key: "1-4", Desc: "sort"},
			KeyBinding{Key: "y", Desc: "copy row"},
		)
	} else if c.Path == router.PathSettings {
		b = append(b, KeyBinding{Key: "ctrl+s", Desc: "save"})
	}
	b = append(b, KeyBinding{Key: "ctrl+t", Desc: "theme"}, KeyBinding{Key: "ctrl+c", Desc: "quit"})
	return b
}

// View renders the footer
func (f *Footer) View() string {
	var parts []string
	for _, b := range f.Bindings() {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}
	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")
	return FooterStyle.Width(f.width).MaxHeight(FooterHeight).Render(content)
}
