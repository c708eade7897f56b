package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/saasboard/internal/errors"
	"github.com/zhubert/saasboard/internal/keys"
	"github.com/zhubert/saasboard/internal/logger"
	"github.com/zhubert/saasboard/internal/router"
	"github.com/zhubert/saasboard/internal/ui"
)

// Update handles messages. This is the core Bubble Tea update function that
// routes all messages to the appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.KeyPressMsg:
		return m, m.handleKeyPress(msg)

	case tea.MouseClickMsg, tea.MouseReleaseMsg, tea.MouseMotionMsg, tea.MouseWheelMsg:
		return m, m.handleMouse(msg)

	case ui.ToastExpiredMsg:
		return m, m.toast.Update(msg)

	case ui.NavigateMsg:
		return m, m.navigate(msg.Path)

	case ui.ToggleThemeMsg:
		m.theme.Toggle()
		return m, nil

	case ui.SignOutRequestMsg:
		m.requestSignOut()
		return m, nil

	case ui.LoginSucceededMsg:
		return m, tea.Batch(m.ShowToastSuccess("Welcome back!"), m.navigate(router.PathDashboard))

	case ui.SettingsSavedMsg:
		m.applyProfile(msg.Values)
		return m, m.ShowToastSuccess(ui.SettingsSavedText)

	case ui.RowCopiedMsg:
		if msg.Err != nil {
			logger.WithComponent("app").Warn("copy failed", "error", msg.Err)
			return m, m.ShowToastError("Could not copy to clipboard")
		}
		return m, m.ShowToastInfo(fmt.Sprintf("Copied %s", msg.Name))
	}

	return m, m.updatePage(msg)
}

// updatePage forwards a message to the active page. Pages ignore timers
// that are not theirs.
func (m *Model) updatePage(msg tea.Msg) tea.Cmd {
	switch m.router.Current() {
	case router.PathLogin:
		return m.login.Update(msg)
	case router.PathSettings:
		return m.settings.Update(msg)
	}
	return nil
}

// handleKeyPress routes a key: quit, focus listeners, the modal trap, global
// shortcuts, then the focused component.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	if key == keys.CtrlC {
		return tea.Quit
	}

	if handled, cmd := m.focus.Dispatch(msg); handled {
		return cmd
	}

	if m.modal.IsOpen() {
		return m.modal.HandleKey(msg)
	}

	if handled, cmd := m.executeShortcut(key); handled {
		return cmd
	}

	if m.inLayout() {
		switch {
		case key == keys.Tab && (m.focus.Is(ui.FocusSidebar) || m.router.Current() == router.PathDashboard) && !m.typing():
			m.cycleFocus()
			return nil
		case key == keys.Escape && m.sidebar.HasBackdrop():
			m.sidebar.CloseMobile()
			m.focusMain()
			return nil
		case key == keys.Escape && !m.focus.Is(ui.FocusSidebar) && m.router.Current() == router.PathSettings:
			if m.sidebar.Visible() {
				m.focusSidebar()
			}
			return nil
		}

		if m.focus.Is(ui.FocusSidebar) {
			return m.sidebar.HandleKey(msg)
		}
	}

	switch m.router.Current() {
	case router.PathLogin:
		return m.login.HandleKey(msg)
	case router.PathSettings:
		return m.settings.HandleKey(msg)
	default:
		cmd := m.dashboard.HandleKey(msg)
		if m.dashboard.Table().SearchFocused() {
			m.focus.Focus(ui.FocusSearch)
		} else {
			m.focus.Focus(ui.FocusTable)
		}
		return cmd
	}
}

// navigate asks the router for path. Unknown paths show an error toast and
// leave the current page in place.
func (m *Model) navigate(path string) tea.Cmd {
	if _, err := m.router.Navigate(path); err != nil {
		if errors.Is(err, errors.KindNotFound) {
			return m.ShowToastError("Page not found")
		}
		return m.ShowToastError(err.Error())
	}
	m.updateSizes()
	return nil
}

// requestSignOut opens the sign-out confirmation.
func (m *Model) requestSignOut() {
	if !m.auth.IsAuthenticated() {
		return
	}
	if m.sidebar.HasBackdrop() {
		m.sidebar.CloseMobile()
		m.focusMain()
	}
	m.modal.Open(m.signOut)
}

// signOut is the confirmed sign-out effect.
func (m *Model) signOut() tea.Cmd {
	m.auth.Logout()
	cmd := m.ShowToastInfo("You have been signed out")
	return tea.Batch(cmd, m.navigate(router.PathLogin))
}

// updateSizes recomputes the layout after a resize or sidebar change.
func (m *Model) updateSizes() {
	if m.width == 0 || m.height == 0 {
		return
	}
	m.sidebar.SetViewportWidth(m.width)

	sidebarWidth := 0
	if m.inLayout() {
		sidebarWidth = m.sidebar.LayoutWidth()
	}
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height, sidebarWidth)

	m.header.SetWidth(m.width)
	m.header.SetMenuButton(m.inLayout() && m.sidebar.IsMobile())
	m.footer.SetWidth(m.width)
	m.sidebar.SetHeight(ctx.ContentHeight)

	main := m.pageWidth()
	m.dashboard.SetSize(main, ctx.ContentHeight, m.sidebar.IsMobile())
	m.settings.SetWidth(main)
	m.login.SetWidth(m.width)
}

// pageWidth is the width of the page area inside its padding.
func (m *Model) pageWidth() int {
	return max(ui.GetViewContext().MainWidth-2*pagePadding, 10)
}
