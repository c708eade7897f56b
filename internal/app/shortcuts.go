package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/saasboard/internal/keys"
	"github.com/zhubert/saasboard/internal/logger"
	"github.com/zhubert/saasboard/internal/router"
	"github.com/zhubert/saasboard/internal/ui"
)

// Shortcut is a global keyboard shortcut, checked after the modal and
// before the focused component.
type Shortcut struct {
	Key          string
	Description  string
	RequiresAuth bool                   // only inside the authenticated layout
	Handler      func(m *Model) tea.Cmd // action to perform
	Condition    func(m *Model) bool    // optional extra condition
}

// ShortcutRegistry lists every global shortcut.
var ShortcutRegistry = []Shortcut{
	{
		Key:          keys.CtrlB,
		Description:  "Toggle sidebar",
		RequiresAuth: true,
		Handler:      shortcutToggleSidebar,
	},
	{
		Key:          "m",
		Description:  "Open menu",
		RequiresAuth: true,
		Handler:      shortcutToggleSidebar,
		Condition:    func(m *Model) bool { return m.sidebar.IsMobile() && !m.typing() },
	},
	{
		Key:         keys.CtrlT,
		Description: "Toggle dark mode",
		Handler:     shortcutToggleTheme,
	},
	{
		Key:          keys.CtrlL,
		Description:  "Sign out",
		RequiresAuth: true,
		Handler:      shortcutSignOut,
	},
}

// executeShortcut runs the shortcut bound to key, if any applies.
func (m *Model) executeShortcut(key string) (bool, tea.Cmd) {
	for _, s := range ShortcutRegistry {
		if s.Key != key {
			continue
		}
		if s.RequiresAuth && !m.inLayout() {
			continue
		}
		if s.Condition != nil && !s.Condition(m) {
			continue
		}
		logger.WithComponent("app").Debug("shortcut", "key", key)
		return true, s.Handler(m)
	}
	return false, nil
}

// inLayout reports whether the authenticated layout is showing.
func (m *Model) inLayout() bool {
	return m.auth.IsAuthenticated() && m.router.Current() != router.PathLogin
}

// typing reports whether printable keys belong to a text field.
func (m *Model) typing() bool {
	if m.focus.Is(ui.FocusSidebar) {
		return false
	}
	if m.router.Current() != router.PathDashboard {
		return true
	}
	return m.dashboard.Table().SearchFocused()
}

func shortcutToggleSidebar(m *Model) tea.Cmd {
	if m.sidebar.IsMobile() {
		m.sidebar.ToggleMobile()
		if m.sidebar.IsMobileOpen() {
			m.focusSidebar()
		} else {
			m.focusMain()
		}
		return nil
	}
	m.sidebar.ToggleExpanded()
	m.config.SetSidebarExpanded(m.sidebar.IsExpanded())
	m.persist()
	m.updateSizes()
	return nil
}

func shortcutToggleTheme(m *Model) tea.Cmd {
	m.theme.Toggle()
	return nil
}

func shortcutSignOut(m *Model) tea.Cmd {
	m.requestSignOut()
	return nil
}

// focusSidebar moves keyboard focus to the sidebar.
func (m *Model) focusSidebar() {
	m.focus.Focus(ui.FocusSidebar)
	m.sidebar.SetFocused(true)
	m.dashboard.Table().Blur()
}

// focusMain moves keyboard focus to the page content.
func (m *Model) focusMain() {
	m.sidebar.SetFocused(false)
	m.focus.Focus(m.mainFocus())
	if m.router.Current() == router.PathDashboard {
		m.dashboard.Table().Focus()
	} else {
		m.dashboard.Table().Blur()
	}
}

// cycleFocus switches between the sidebar and the page.
func (m *Model) cycleFocus() {
	if m.focus.Is(ui.FocusSidebar) {
		if m.sidebar.HasBackdrop() {
			m.sidebar.CloseMobile()
		}
		m.focusMain()
		return
	}
	if m.sidebar.IsMobile() && !m.sidebar.IsMobileOpen() {
		m.sidebar.ToggleMobile()
	}
	m.focusSidebar()
}
