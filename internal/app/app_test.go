package app

import (
	"os"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhubert/saasboard/internal/config"
	"github.com/zhubert/saasboard/internal/keys"
	"github.com/zhubert/saasboard/internal/notification"
	"github.com/zhubert/saasboard/internal/router"
	"github.com/zhubert/saasboard/internal/ui"
)

func TestNew_StartsSignedOutOnLogin(t *testing.T) {
	m, _ := testModel(t, 120)

	assert.Equal(t, router.PathLogin, m.CurrentPath())
	assert.False(t, m.Auth().IsAuthenticated())
	assert.Contains(t, ansi.Strip(m.RenderToString()), "Sign in to your account")
}

func TestView_LoadingBeforeSize(t *testing.T) {
	m := New(Options{})
	t.Cleanup(m.Close)
	v := m.View()
	assert.True(t, v.AltScreen)
}

func TestGuard_ProtectedRouteRedirects(t *testing.T) {
	m, _ := testModel(t, 120)

	_, cmd := m.Update(ui.NavigateMsg{Path: router.PathSettings})
	run(m, cmd)
	assert.Equal(t, router.PathLogin, m.CurrentPath())
}

func TestLogin_ValidationError(t *testing.T) {
	m, clock := testModel(t, 120)
	m.Login().SetValues("not-an-email", "secret1")

	press(m, keys.Enter)
	assert.Equal(t, "Please enter a valid email address", m.Login().Error())
	assert.Equal(t, 0, clock.PendingCount())
	assert.Contains(t, ansi.Strip(m.RenderToString()), "Please enter a valid email address")
}

func TestLogin_SuccessShowsToastAndDashboard(t *testing.T) {
	m, clock := testModel(t, 120)
	signIn(t, m, clock)

	assert.Equal(t, "jane", m.Auth().User().Name)
	assert.Equal(t, ui.ToastState{Message: "Welcome back!", Kind: ui.ToastSuccess, Visible: true}, m.Toast().State())
	assert.True(t, m.Focus().Is(ui.FocusTable))

	screen := ansi.Strip(m.RenderToString())
	assert.Contains(t, screen, "Welcome back. Here's what's happening today.")
	assert.Contains(t, screen, "Projects Overview")

	advance(m, clock, ui.DefaultToastDuration)
	assert.False(t, m.Toast().IsVisible())
}

func TestLogin_PageRedirectsWhenSignedIn(t *testing.T) {
	m, clock := testModel(t, 120)
	signIn(t, m, clock)

	_, cmd := m.Update(ui.NavigateMsg{Path: router.PathLogin})
	run(m, cmd)
	assert.Equal(t, router.PathDashboard, m.CurrentPath())
}

func TestNavigate_UnknownRoute(t *testing.T) {
	m, clock := testModel(t, 120)
	signIn(t, m, clock)

	_, cmd := m.Update(ui.NavigateMsg{Path: "/billing"})
	run(m, cmd)
	assert.Equal(t, router.PathDashboard, m.CurrentPath())
	assert.Equal(t, "Page not found", m.Toast().State().Message)
	assert.Equal(t, ui.ToastError, m.Toast().State().Kind)
}

func TestSignOut_EscapeCancels(t *testing.T) {
	m, clock := testModel(t, 120)
	signIn(t, m, clock)
	before := m.Focus().Current()

	_, cmd := m.Update(ui.SignOutRequestMsg{})
	run(m, cmd)
	require.True(t, m.Modal().IsOpen())
	assert.True(t, m.Focus().Is(ui.FocusModal))
	assert.Equal(t, 1, m.Focus().ListenerCount())

	press(m, keys.Escape)
	assert.False(t, m.Modal().IsOpen())
	assert.Equal(t, 0, m.Focus().ListenerCount())
	assert.Equal(t, before, m.Focus().Current())
	assert.True(t, m.Auth().IsAuthenticated())
}

func TestSignOut_ConfirmWithKeyboard(t *testing.T) {
	m, clock := testModel(t, 120)
	signIn(t, m, clock)

	press(m, keys.CtrlL)
	require.True(t, m.Modal().IsOpen())

	press(m, keys.Tab)
	assert.True(t, m.Focus().Is(ui.FocusModalCancel))
	press(m, keys.Tab)
	assert.True(t, m.Focus().Is(ui.FocusModalConfirm))
	press(m, keys.Enter)

	assert.False(t, m.Modal().IsOpen())
	assert.False(t, m.Auth().IsAuthenticated())
	assert.Equal(t, router.PathLogin, m.CurrentPath())
	assert.Equal(t, "You have been signed out", m.Toast().State().Message)
	assert.Equal(t, 0, m.Focus().ListenerCount())
}

func TestSignOut_BackdropNeedsPressAndRelease(t *testing.T) {
	m, clock := testModel(t, 120)
	signIn(t, m, clock)

	m.Update(ui.SignOutRequestMsg{})
	m.RenderToString()
	box := m.Modal().Bounds()
	require.False(t, box.Empty())

	// press inside the dialog, release on the backdrop
	m.Update(tea.MouseClickMsg{X: box.X + 1, Y: box.Y + 1, Button: tea.MouseLeft})
	m.Update(tea.MouseReleaseMsg{X: 0, Y: 0, Button: tea.MouseLeft})
	assert.True(t, m.Modal().IsOpen())

	m.Update(tea.MouseClickMsg{X: 0, Y: 0, Button: tea.MouseLeft})
	m.Update(tea.MouseReleaseMsg{X: 0, Y: 0, Button: tea.MouseLeft})
	assert.False(t, m.Modal().IsOpen())
	assert.True(t, m.Auth().IsAuthenticated())
}

func TestSignOut_CancelsPendingSave(t *testing.T) {
	m, clock := testModel(t, 120)
	signIn(t, m, clock)

	_, cmd := m.Update(ui.NavigateMsg{Path: router.PathSettings})
	run(m, cmd)
	press(m, keys.CtrlS)
	require.True(t, m.Settings().Busy())

	m.Update(ui.SignOutRequestMsg{})
	run(m, m.Modal().Confirm())

	assert.False(t, m.Settings().Busy())
	advance(m, clock, ui.SettingsSaveDelay)
	assert.False(t, m.Settings().Saved())
	assert.Equal(t, "You have been signed out", m.Toast().State().Message)
}

func TestSettings_SaveFlow(t *testing.T) {
	m, clock := testModel(t, 120)
	signIn(t, m, clock)

	_, cmd := m.Update(ui.NavigateMsg{Path: router.PathSettings})
	run(m, cmd)
	require.Equal(t, router.PathSettings, m.CurrentPath())

	v := m.Settings().Values()
	assert.Equal(t, "jane", v.Name)
	assert.Equal(t, "jane@example.com", v.Email)

	v.Name = "Jane Smith"
	v.Company = "Acme"
	v.PushNotify = true
	m.Settings().SetValues(v)

	press(m, keys.CtrlS)
	advance(m, clock, ui.SettingsSaveDelay)

	assert.True(t, m.Settings().Saved())
	assert.Equal(t, ui.SettingsSavedText, m.Toast().State().Message)
	assert.Equal(t, "Jane Smith", m.Auth().User().Name)

	saved, err := config.LoadFrom(m.config.FilePath())
	require.NoError(t, err)
	assert.Equal(t, config.Profile{Name: "Jane Smith", Email: "jane@example.com", Company: "Acme"}, saved.GetProfile())
	assert.True(t, saved.GetNotifications().Push)
}

func TestSettings_InvalidShowsErrors(t *testing.T) {
	m, clock := testModel(t, 120)
	signIn(t, m, clock)
	_, cmd := m.Update(ui.NavigateMsg{Path: router.PathSettings})
	run(m, cmd)

	m.Settings().SetValues(ui.SettingsValues{Name: "J", Email: "jane@example.com"})
	press(m, keys.CtrlS)

	assert.False(t, m.Settings().Busy())
	assert.Contains(t, ansi.Strip(m.RenderToString()), "Name must be at least 2 characters")
}

func TestThemeToggle_PersistsPreference(t *testing.T) {
	m, _ := testModel(t, 120)
	require.True(t, m.Theme().IsDark())

	press(m, keys.CtrlT)
	assert.False(t, m.Theme().IsDark())
	assert.Equal(t, ui.ThemeLight, ui.CurrentThemeName())

	dark, ok := m.config.GetDark()
	assert.True(t, ok)
	assert.False(t, dark)
	_, err := os.Stat(m.config.FilePath())
	assert.NoError(t, err)

	_, cmd := m.Update(ui.ToggleThemeMsg{})
	run(m, cmd)
	assert.True(t, m.Theme().IsDark())
}

func TestDesktopSidebar_Collapse(t *testing.T) {
	m, clock := testModel(t, 120)
	signIn(t, m, clock)
	require.False(t, m.Sidebar().IsMobile())
	require.True(t, m.Sidebar().IsExpanded())

	press(m, keys.CtrlB)
	assert.False(t, m.Sidebar().IsExpanded())
	assert.False(t, m.config.GetSidebarExpanded())
	assert.Equal(t, 120-ui.SidebarCollapsedWidth, ui.GetViewContext().MainWidth)
}

func TestMobileSidebar_OpenCloseAndNavigate(t *testing.T) {
	m, clock := testModel(t, 80)
	signIn(t, m, clock)
	require.True(t, m.Sidebar().IsMobile())
	assert.Equal(t, 0, m.Sidebar().LayoutWidth())

	press(m, keys.CtrlB)
	assert.True(t, m.Sidebar().IsMobileOpen())
	assert.True(t, m.Focus().Is(ui.FocusSidebar))

	press(m, keys.Escape)
	assert.False(t, m.Sidebar().IsMobileOpen())
	assert.True(t, m.Focus().Is(ui.FocusTable))

	press(m, "m")
	require.True(t, m.Sidebar().IsMobileOpen())
	_, cmd := m.Update(ui.NavigateMsg{Path: router.PathSettings})
	run(m, cmd)
	assert.False(t, m.Sidebar().IsMobileOpen(), "navigation closes the overlay")
	assert.Equal(t, router.PathSettings, m.CurrentPath())
}

func TestMobileSidebar_BackdropClick(t *testing.T) {
	m, clock := testModel(t, 80)
	signIn(t, m, clock)

	press(m, keys.CtrlB)
	m.RenderToString()
	m.Update(tea.MouseClickMsg{X: 79, Y: 10, Button: tea.MouseLeft})
	assert.False(t, m.Sidebar().IsMobileOpen())
}

func TestMobileSidebar_CloseButtonReturnsFocus(t *testing.T) {
	m, clock := testModel(t, 80)
	signIn(t, m, clock)
	m.Toast().Hide()

	press(m, keys.CtrlB)
	require.True(t, m.Focus().Is(ui.FocusSidebar))

	lines := strings.Split(ansi.Strip(m.RenderToString()), "\n")
	idx := strings.Index(lines[ui.HeaderHeight], "✕")
	require.GreaterOrEqual(t, idx, 0)
	x := ansi.StringWidth(lines[ui.HeaderHeight][:idx])

	m.Update(tea.MouseClickMsg{X: x, Y: ui.HeaderHeight, Button: tea.MouseLeft})
	assert.False(t, m.Sidebar().IsMobileOpen())
	assert.True(t, m.Focus().Is(ui.FocusTable))
}

func TestMobileSidebar_MenuButton(t *testing.T) {
	m, clock := testModel(t, 80)
	signIn(t, m, clock)

	m.Update(tea.MouseClickMsg{X: 1, Y: 0, Button: tea.MouseLeft})
	assert.True(t, m.Sidebar().IsMobileOpen())
}

func TestTabCyclesFocus(t *testing.T) {
	m, clock := testModel(t, 120)
	signIn(t, m, clock)

	press(m, keys.Tab)
	assert.True(t, m.Focus().Is(ui.FocusSidebar))
	assert.True(t, m.Sidebar().IsFocused())

	press(m, keys.Down)
	press(m, keys.Enter)
	assert.Equal(t, router.PathSettings, m.CurrentPath())
	assert.True(t, m.Focus().Is(ui.FocusForm))
}

func TestCopyRow(t *testing.T) {
	m, clock := testModel(t, 120)
	signIn(t, m, clock)

	press(m, "y")
	assert.Equal(t, "Copied Project Alpha", m.Toast().State().Message)
}

func TestSearchFocusTracksTable(t *testing.T) {
	m, clock := testModel(t, 120)
	signIn(t, m, clock)

	press(m, "/")
	assert.True(t, m.Focus().Is(ui.FocusSearch))
	press(m, keys.Escape)
	assert.True(t, m.Focus().Is(ui.FocusTable))
}

func TestToastMirror_RespectsPushPreference(t *testing.T) {
	var sent []string
	notification.SetNotifier(func(title, message string, _ any) error {
		sent = append(sent, title+": "+message)
		return nil
	})
	t.Cleanup(notification.ResetNotifier)

	m, _ := testModel(t, 120)
	run(m, m.ShowToastInfo("quiet"))
	assert.Empty(t, sent)

	n := m.config.GetNotifications()
	n.Push = true
	m.config.SetNotifications(n)
	run(m, m.ShowToastSuccess("loud"))
	assert.Equal(t, []string{"SaaS Dashboard · success: loud"}, sent)
}

func TestCtrlCQuits(t *testing.T) {
	m, _ := testModel(t, 120)
	_, cmd := m.Update(keys.Press(keys.CtrlC))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
