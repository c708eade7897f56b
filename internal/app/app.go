package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/saasboard/internal/auth"
	"github.com/zhubert/saasboard/internal/config"
	"github.com/zhubert/saasboard/internal/fixtures"
	"github.com/zhubert/saasboard/internal/logger"
	"github.com/zhubert/saasboard/internal/projects"
	"github.com/zhubert/saasboard/internal/router"
	"github.com/zhubert/saasboard/internal/schedule"
	"github.com/zhubert/saasboard/internal/ui"
)

const (
	signOutTitle = "Sign out"
	signOutBody  = "Are you sure you want to sign out? You'll need to log in again to access your dashboard."
)

// Model is the main Bubble Tea model. It owns every holder and component and
// is the only place they are wired to each other.
type Model struct {
	config  *config.Config
	version string
	data    *fixtures.Dashboard
	sched   schedule.Scheduler

	auth   *auth.Holder
	router *router.Router
	theme  *ui.ThemeHolder
	focus  *ui.FocusManager

	header  *ui.Header
	footer  *ui.Footer
	sidebar *ui.Sidebar
	modal   *ui.ConfirmModal
	toast   *ui.Toast

	login     *ui.LoginPage
	dashboard *ui.DashboardPage
	settings  *ui.SettingsPage

	width  int
	height int

	unsubscribe []func()
}

// New creates the app model. The router starts on the login page.
func New(opts Options) *Model {
	opts = opts.withDefaults()
	cfg := opts.Config

	m := &Model{
		config:  cfg,
		version: opts.Version,
		data:    opts.Data,
		sched:   opts.Scheduler,
		auth:    auth.NewHolder(),
		theme:   ui.NewThemeHolder(ui.ThemeName(opts.themeName()), opts.dark()),
		focus:   ui.NewFocusManager(ui.FocusForm),
		header:  ui.NewHeader(),
		footer:  ui.NewFooter(),
		sidebar: ui.NewSidebar(cfg.GetSidebarExpanded(), opts.breakpoint()),
		toast:   ui.NewToast(opts.Scheduler, opts.toastDuration()),
	}
	m.router = router.New(m.auth)

	m.modal = ui.NewConfirmModal(m.focus, signOutTitle, signOutBody)
	m.modal.ConfirmLabel = "Sign out"
	m.modal.CancelLabel = "Cancel"
	m.modal.Variant = ui.ModalDanger

	engine := projects.NewEngine(opts.Data.Projects, opts.locale())
	table := ui.NewProjectsTable(engine, opts.CopyText)
	m.dashboard = ui.NewDashboardPage(opts.Data, table)
	m.login = ui.NewLoginPage(opts.Scheduler, m.auth.Login)
	m.settings = ui.NewSettingsPage(opts.Scheduler, m.settingsValues())

	m.toast.SetMirror(m.mirrorToast)
	m.sidebar.SetDark(m.theme.IsDark())
	m.subscribe()
	m.onNavigate(router.Navigation{From: "", To: m.router.Current(), Requested: m.router.Current()})

	logger.WithComponent("app").Info("model created", "theme", m.theme.Active(), "breakpoint", m.sidebar.Breakpoint())
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Close removes every subscription the model registered.
func (m *Model) Close() {
	for _, fn := range m.unsubscribe {
		fn()
	}
	m.unsubscribe = nil
}

// CurrentPath returns the active route.
func (m *Model) CurrentPath() string {
	return m.router.Current()
}

// Auth returns the auth holder.
func (m *Model) Auth() *auth.Holder {
	return m.auth
}

// Theme returns the theme holder.
func (m *Model) Theme() *ui.ThemeHolder {
	return m.theme
}

// Toast returns the toast component.
func (m *Model) Toast() *ui.Toast {
	return m.toast
}

// Modal returns the sign-out confirmation.
func (m *Model) Modal() *ui.ConfirmModal {
	return m.modal
}

// Sidebar returns the sidebar component.
func (m *Model) Sidebar() *ui.Sidebar {
	return m.sidebar
}

// Focus returns the focus manager.
func (m *Model) Focus() *ui.FocusManager {
	return m.focus
}

// Dashboard returns the dashboard page.
func (m *Model) Dashboard() *ui.DashboardPage {
	return m.dashboard
}

// Login returns the login page.
func (m *Model) Login() *ui.LoginPage {
	return m.login
}

// Settings returns the settings page.
func (m *Model) Settings() *ui.SettingsPage {
	return m.settings
}

// settingsValues merges the stored profile with the signed-in user.
func (m *Model) settingsValues() ui.SettingsValues {
	p := m.config.GetProfile()
	n := m.config.GetNotifications()
	v := ui.SettingsValues{
		Name:         p.Name,
		Email:        p.Email,
		Company:      p.Company,
		EmailNotify:  n.Email,
		PushNotify:   n.Push,
		WeeklyDigest: n.Weekly,
	}
	if u := m.auth.User(); u.Email != "" {
		if v.Name == "" {
			v.Name = u.Name
		}
		if v.Email == "" {
			v.Email = u.Email
		}
	}
	return v
}

// mainFocus is the focus target for the active page's content.
func (m *Model) mainFocus() ui.FocusID {
	if m.router.Current() == router.PathDashboard {
		return ui.FocusTable
	}
	return ui.FocusForm
}
