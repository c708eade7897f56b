package ui

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/saasboard/internal/keys"
)

// formUpdate forwards msg to form, except Enter and Escape which the pages
// handle themselves. It reports whether huh considers the form complete,
// which happens when Tab moves past the last field.
func formUpdate(form *huh.Form, msg tea.Msg) (*huh.Form, tea.Cmd, bool) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Enter, keys.Escape:
			return form, nil, false
		}
	}
	m, cmd := form.Update(msg)
	form = m.(*huh.Form)
	return form, cmd, form.State == huh.StateCompleted
}

// FormTheme returns a huh theme built from the active palette. Pages call it
// whenever they build a form so a theme switch is picked up on the next
// rebuild.
func FormTheme() huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		t.Focused.Base = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderStyle(lipgloss.ThickBorder()).
			BorderLeft(true).
			BorderForeground(ColorPrimary)
		t.Focused.Card = t.Focused.Base
		t.Focused.Title = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
		t.Focused.Description = lipgloss.NewStyle().Foreground(ColorTextMuted)
		t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(ColorError).SetString(" *")
		t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(ColorError)

		t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(ColorPrimary).SetString("> ")
		t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(ColorSuccess)
		t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(ColorSuccess).SetString("[✓] ")
		t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(ColorText)
		t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(ColorTextMuted).SetString("[ ] ")

		t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(ColorPrimary)
		t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(ColorTextMuted)
		t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(ColorPrimary)
		t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(ColorText)

		t.Blurred = t.Focused
		t.Blurred.Base = lipgloss.NewStyle().PaddingLeft(2)
		t.Blurred.Card = t.Blurred.Base
		t.Blurred.Title = lipgloss.NewStyle().Foreground(ColorTextMuted)
		t.Blurred.MultiSelectSelector = lipgloss.NewStyle().SetString("  ")

		t.Group.Title = lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true)
		t.Group.Description = lipgloss.NewStyle().Foreground(ColorTextMuted)
		t.FieldSeparator = lipgloss.NewStyle().SetString("\n")
		return t
	})
}
