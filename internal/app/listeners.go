package app

import (
	"github.com/zhubert/saasboard/internal/auth"
	"github.com/zhubert/saasboard/internal/logger"
	"github.com/zhubert/saasboard/internal/router"
	"github.com/zhubert/saasboard/internal/ui"
)

// subscribe connects the holders to the components that render them.
func (m *Model) subscribe() {
	m.unsubscribe = append(m.unsubscribe,
		m.router.Subscribe(m.onNavigate),
		m.auth.Subscribe(m.onAuthChanged),
		m.theme.Subscribe(m.onThemeChanged),
	)
}

func (m *Model) onNavigate(nav router.Navigation) {
	m.sidebar.CloseMobile()
	m.sidebar.SetCurrentPath(nav.To)
	m.sidebar.SetFocused(false)
	m.header.SetPageTitle(m.router.CurrentRoute().Title)

	if nav.From != nav.To {
		switch nav.From {
		case router.PathLogin:
			m.login.Reset()
		case router.PathSettings:
			m.settings.Cancel()
		}
		if nav.To == router.PathSettings {
			m.settings.SetValues(m.settingsValues())
		}
	}

	if !m.modal.IsOpen() {
		m.focusMain()
	}
}

func (m *Model) onAuthChanged(signedIn bool) {
	u := m.auth.User()
	m.sidebar.SetUser(u.Name, u.Email)
	m.header.SetUserName(u.Name)
	if !signedIn {
		m.cancelPending()
	}
}

func (m *Model) onThemeChanged(dark bool) {
	m.sidebar.SetDark(dark)
	m.refreshStyles()

	m.config.SetDark(dark)
	m.persist()
}

// refreshStyles rebuilds components that cache styles from the palette.
func (m *Model) refreshStyles() {
	m.dashboard.Table().RefreshStyles()
	m.login.RefreshStyles()
	m.settings.RefreshStyles()
}

// cancelPending drops every simulated request in flight.
func (m *Model) cancelPending() {
	m.login.Reset()
	m.settings.Cancel()
}

// persist writes preferences when a config file is in use.
func (m *Model) persist() {
	if m.config.FilePath() == "" {
		return
	}
	if err := m.config.Save(); err != nil {
		logger.WithComponent("app").Warn("failed to save preferences", "error", err)
	}
}

// applyProfile stores saved settings and updates the signed-in user.
func (m *Model) applyProfile(v ui.SettingsValues) {
	p := m.config.GetProfile()
	p.Name, p.Email, p.Company = v.Name, v.Email, v.Company
	m.config.SetProfile(p)

	n := m.config.GetNotifications()
	n.Email, n.Push, n.Weekly = v.EmailNotify, v.PushNotify, v.WeeklyDigest
	m.config.SetNotifications(n)
	m.persist()

	m.auth.UpdateProfile(auth.User{Name: v.Name, Email: v.Email})
}
