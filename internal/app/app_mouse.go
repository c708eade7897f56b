package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/saasboard/internal/router"
	"github.com/zhubert/saasboard/internal/ui"
)

// handleMouse routes mouse events. An open modal captures everything; the
// toast, the header menu button, the sidebar and the page are tried in
// that order otherwise.
func (m *Model) handleMouse(msg tea.Msg) tea.Cmd {
	if m.modal.IsOpen() {
		return m.modal.HandleMouse(msg)
	}

	switch msg := msg.(type) {
	case tea.MouseClickMsg:
		if msg.Button != tea.MouseLeft {
			return nil
		}
		return m.handleClick(msg.X, msg.Y)

	case tea.MouseMotionMsg:
		if m.inLayout() && m.sidebar.Visible() {
			m.sidebar.SetHover(msg.X, msg.Y-ui.HeaderHeight)
		}

	case tea.MouseWheelMsg:
		if m.router.Current() == router.PathDashboard && !m.sidebar.HasBackdrop() {
			switch msg.Button {
			case tea.MouseWheelUp:
				m.dashboard.HandleWheel(true)
			case tea.MouseWheelDown:
				m.dashboard.HandleWheel(false)
			}
		}
	}
	return nil
}

func (m *Model) handleClick(x, y int) tea.Cmd {
	if m.toast.HandleClick(x, y) {
		return nil
	}
	if !m.inLayout() {
		return nil
	}

	if m.header.MenuButtonHit(x, y) {
		return shortcutToggleSidebar(m)
	}

	contentY := y - ui.HeaderHeight
	if m.sidebar.HasBackdrop() {
		if handled, cmd := m.sidebar.HandleClick(x, contentY); handled {
			if m.sidebar.HasBackdrop() {
				m.focusSidebar()
			} else {
				m.focusMain()
			}
			return cmd
		}
		// backdrop
		m.sidebar.CloseMobile()
		m.focusMain()
		return nil
	}

	if x < m.sidebar.LayoutWidth() {
		if handled, cmd := m.sidebar.HandleClick(x, contentY); handled {
			m.focusSidebar()
			return cmd
		}
	}

	if m.router.Current() != router.PathDashboard {
		m.focusMain()
		return nil
	}
	px := x - m.sidebar.LayoutWidth() - pagePadding
	handled, cmd := m.dashboard.HandleClick(px, contentY)
	if handled {
		m.sidebar.SetFocused(false)
		if m.dashboard.Table().SearchFocused() {
			m.focus.Focus(ui.FocusSearch)
		} else {
			m.focus.Focus(ui.FocusTable)
		}
	}
	return cmd
}
