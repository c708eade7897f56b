package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/saasboard/internal/router"
	"github.com/zhubert/saasboard/internal/ui"
)

// pagePadding is the horizontal gap between the sidebar and the page.
const pagePadding = 1

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion

	if m.width == 0 || m.height == 0 {
		v.SetContent("Loading...")
		return v
	}
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current screen as a string.
func (m *Model) RenderToString() string {
	m.updateFooterContext()
	ctx := ui.GetViewContext()

	screen := lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		m.renderContent(ctx.ContentHeight),
		m.footer.View(),
	)

	if m.inLayout() && m.sidebar.HasBackdrop() {
		screen = ui.Dim(screen)
		screen = ui.Overlay(screen, m.sidebar.View(), 0, ui.HeaderHeight, m.width, m.height)
	}

	if m.modal.IsOpen() {
		box, x, y := m.modal.View(m.width, m.height)
		screen = ui.Overlay(ui.Dim(screen), box, x, y, m.width, m.height)
	} else if label, row, ok := m.sidebar.Tooltip(); ok && m.inLayout() {
		tip := ui.TooltipStyle.Render(label)
		screen = ui.Overlay(screen, tip, m.sidebar.RenderWidth(), ui.HeaderHeight+row, m.width, m.height)
	}

	if box, x, y := m.toast.View(m.width); box != "" {
		screen = ui.Overlay(screen, box, x, y, m.width, m.height)
	}
	return screen
}

func (m *Model) renderContent(height int) string {
	if !m.inLayout() {
		return m.login.View(m.width, height)
	}

	page := m.renderPage()
	page = lipgloss.NewStyle().
		PaddingLeft(pagePadding).
		Width(ui.GetViewContext().MainWidth).
		Height(height).
		MaxHeight(height).
		Render(page)

	if w := m.sidebar.LayoutWidth(); w > 0 {
		return lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), page)
	}
	return page
}

func (m *Model) renderPage() string {
	switch m.router.Current() {
	case router.PathSettings:
		return m.settings.View(m.pageWidth())
	default:
		return m.dashboard.View()
	}
}

func (m *Model) updateFooterContext() {
	path := m.router.Current()
	m.footer.SetContext(ui.FooterContext{
		Path:           path,
		Mobile:         m.sidebar.IsMobile(),
		SidebarFocused: m.focus.Is(ui.FocusSidebar),
		SearchFocused:  path == router.PathDashboard && m.dashboard.Table().SearchFocused(),
		ModalOpen:      m.modal.IsOpen(),
		Busy:           m.login.Busy() || m.settings.Busy(),
	})
}
