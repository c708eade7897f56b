package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhubert/saasboard/internal/keys"
	"github.com/zhubert/saasboard/internal/router"
)

func newTestSidebar(width int) *Sidebar {
	s := NewSidebar(true, DefaultBreakpoint)
	s.SetViewportWidth(width)
	s.SetHeight(20)
	s.SetUser("jane", "jane@example.com")
	return s
}

func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

func TestSidebar_IsMobile(t *testing.T) {
	s := newTestSidebar(99)
	assert.True(t, s.IsMobile())
	s.SetViewportWidth(100)
	assert.False(t, s.IsMobile())
}

func TestSidebar_ResizePreservesBothAxes(t *testing.T) {
	s := newTestSidebar(120)
	s.ToggleExpanded()
	require.False(t, s.IsExpanded())

	s.SetViewportWidth(60)
	s.ToggleMobile()
	require.True(t, s.IsMobileOpen())

	s.SetViewportWidth(140)
	assert.False(t, s.IsExpanded(), "desktop axis untouched by resize")
	assert.True(t, s.IsMobileOpen(), "mobile axis untouched by resize")
	assert.False(t, s.HasBackdrop())
	assert.Equal(t, SidebarCollapsedWidth, s.RenderWidth())

	s.SetViewportWidth(60)
	assert.True(t, s.HasBackdrop())
}

func TestSidebar_Widths(t *testing.T) {
	s := newTestSidebar(120)
	assert.Equal(t, SidebarExpandedWidth, s.RenderWidth())
	assert.Equal(t, SidebarExpandedWidth, s.LayoutWidth())

	s.ToggleExpanded()
	assert.Equal(t, SidebarCollapsedWidth, s.RenderWidth())

	s.SetViewportWidth(80)
	assert.Equal(t, 0, s.RenderWidth())
	assert.False(t, s.Visible())

	s.ToggleMobile()
	assert.Equal(t, SidebarMobileWidth, s.RenderWidth())
	assert.Equal(t, 0, s.LayoutWidth())
	assert.True(t, s.ShowsLabels(), "mobile overlay always shows labels")
}

func TestSidebar_Items(t *testing.T) {
	s := newTestSidebar(120)
	s.SetCurrentPath(router.PathSettings)

	items := s.Items()
	require.Len(t, items, 2)
	assert.False(t, items[0].Current)
	assert.True(t, items[1].Current)
	assert.Equal(t, "Settings", items[1].Label)
}

func TestSidebar_KeyboardNavigation(t *testing.T) {
	s := newTestSidebar(120)
	s.SetFocused(true)

	s.HandleKey(keys.Press(keys.Down))
	assert.Equal(t, NavigateMsg{Path: router.PathSettings}, runCmd(t, s.HandleKey(keys.Press(keys.Enter))))

	s.HandleKey(keys.Press(keys.Down))
	assert.Equal(t, ToggleThemeMsg{}, runCmd(t, s.HandleKey(keys.Press(keys.Enter))))

	s.HandleKey(keys.Press(keys.Down))
	assert.Equal(t, SignOutRequestMsg{}, runCmd(t, s.HandleKey(keys.Press(keys.Space))))

	s.HandleKey(keys.Press(keys.Down))
	assert.Equal(t, 0, s.Selected(), "selection wraps")
	s.HandleKey(keys.Press(keys.Up))
	assert.Equal(t, 3, s.Selected())
}

func TestSidebar_EscapeClosesMobile(t *testing.T) {
	s := newTestSidebar(60)
	s.ToggleMobile()
	s.HandleKey(keys.Press(keys.Escape))
	assert.False(t, s.IsMobileOpen())
}

func TestSidebar_ViewHeightAndWidth(t *testing.T) {
	s := newTestSidebar(120)
	view := s.View()

	assert.Equal(t, 20, lipgloss.Height(view))
	assert.Equal(t, SidebarExpandedWidth, lipgloss.Width(view))
	plain := ansi.Strip(view)
	assert.Contains(t, plain, "Dashboard")
	assert.Contains(t, plain, "jane@example.com")
	assert.Contains(t, plain, "Sign out")

	s.ToggleExpanded()
	view = s.View()
	assert.Equal(t, SidebarCollapsedWidth, lipgloss.Width(view))
	assert.NotContains(t, ansi.Strip(view), "Dashboard")
}

func TestSidebar_ClickEntries(t *testing.T) {
	s := newTestSidebar(120)
	s.View()

	handled, cmd := s.HandleClick(2, s.entryRows[1])
	assert.True(t, handled)
	assert.Equal(t, NavigateMsg{Path: router.PathSettings}, runCmd(t, cmd))

	handled, cmd = s.HandleClick(2, s.entryRows[3])
	assert.True(t, handled)
	assert.Equal(t, SignOutRequestMsg{}, runCmd(t, cmd))

	handled, _ = s.HandleClick(SidebarExpandedWidth+5, 0)
	assert.False(t, handled)
}

func TestSidebar_MobileCloseButton(t *testing.T) {
	s := newTestSidebar(60)
	s.ToggleMobile()
	view := s.View()
	require.True(t, strings.Contains(ansi.Strip(view), "✕"))

	handled, cmd := s.HandleClick(s.closeBtn.X, 0)
	assert.True(t, handled)
	assert.Nil(t, cmd)
	assert.False(t, s.IsMobileOpen())
}

func TestSidebar_Tooltip(t *testing.T) {
	s := newTestSidebar(120)
	s.View()
	_, _, ok := s.Tooltip()
	assert.False(t, ok, "expanded sidebar has no tooltips")

	s.ToggleExpanded()
	s.View()
	_, _, ok = s.Tooltip()
	assert.False(t, ok, "nothing focused or hovered")

	s.SetFocused(true)
	label, row, ok := s.Tooltip()
	assert.True(t, ok)
	assert.Equal(t, "Dashboard", label)
	assert.Equal(t, s.entryRows[0], row)

	s.SetHover(1, s.entryRows[1])
	label, _, _ = s.Tooltip()
	assert.Equal(t, "Settings", label)

	s.SetHover(1, 0)
	label, _, _ = s.Tooltip()
	assert.Equal(t, "Dashboard", label, "falls back to the focused entry")
}

func TestAvatarInitial(t *testing.T) {
	assert.Equal(t, "J", AvatarInitial("jane"))
	assert.Equal(t, "É", AvatarInitial("émile"))
	assert.Equal(t, "?", AvatarInitial("  "))
	assert.Equal(t, "👍🏽", AvatarInitial("👍🏽 thumbs"))
}
