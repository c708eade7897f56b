package ui

import (
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/saasboard/internal/keys"
	"github.com/zhubert/saasboard/internal/logger"
	"github.com/zhubert/saasboard/internal/schedule"
	"github.com/zhubert/saasboard/internal/validate"
)

const (
	loginTitle       = "Sign in to your account"
	loginSubtitle    = "Enter any email and a password of at least 6 characters."
	signingInText    = "Signing in..."
	InvalidCredsText = "Invalid credentials"
)

// LoginSucceededMsg is emitted once the credentials were accepted.
type LoginSucceededMsg struct {
	Email string
}

// Authenticator checks a set of credentials.
type Authenticator func(email, password string) bool

// LoginPage is the sign-in form. Submitting valid input starts a short
// simulated request, then hands the credentials to the authenticator.
type LoginPage struct {
	auth Authenticator

	form     *huh.Form
	email    string
	password string

	err     string
	busy    bool
	req     delay
	spinner spinner.Model

	width int
}

// NewLoginPage builds the sign-in page.
func NewLoginPage(sched schedule.Scheduler, auth Authenticator) *LoginPage {
	p := &LoginPage{
		auth:    auth,
		req:     newDelay("login", sched),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		width:   FormWidth,
	}
	p.buildForm()
	return p
}

func (p *LoginPage) buildForm() {
	p.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Email address").
			Placeholder("you@example.com").
			CharLimit(254).
			Value(&p.email),
		huh.NewInput().
			Title("Password").
			Placeholder("••••••").
			EchoMode(huh.EchoModePassword).
			CharLimit(128).
			Value(&p.password),
	)).
		WithTheme(FormTheme()).
		WithShowHelp(false).
		WithWidth(p.formWidth()).
		WithLayout(huh.LayoutStack)
	p.form.Init()
}

func (p *LoginPage) formWidth() int {
	return max(min(FormWidth, p.width-4), 20)
}

// SetWidth sets the available width.
func (p *LoginPage) SetWidth(w int) {
	p.width = w
	p.form = p.form.WithWidth(p.formWidth())
}

// Reset clears the form and cancels a pending request.
func (p *LoginPage) Reset() {
	p.req.cancel()
	p.email, p.password, p.err = "", "", ""
	p.busy = false
	p.buildForm()
}

// RefreshStyles rebuilds the form with the current palette.
func (p *LoginPage) RefreshStyles() {
	p.buildForm()
}

// Error returns the inline error, if any.
func (p *LoginPage) Error() string {
	return p.err
}

// Busy reports whether a sign-in is in flight.
func (p *LoginPage) Busy() bool {
	return p.busy
}

// Values returns the current field contents.
func (p *LoginPage) Values() (email, password string) {
	return p.email, p.password
}

// SetValues fills both fields.
func (p *LoginPage) SetValues(email, password string) {
	p.email, p.password = email, password
	p.buildForm()
}

// Submit validates the form and starts the simulated request.
func (p *LoginPage) Submit() tea.Cmd {
	if p.busy {
		return nil
	}
	if err := validate.Login(p.email, p.password); err != nil {
		p.err = err.Error()
		return nil
	}
	p.err = ""
	p.busy = true
	logger.WithComponent("login").Debug("sign-in started")
	return tea.Batch(p.req.start(LoginDelay), p.spinner.Tick)
}

// HandleKey handles a key press while the page is active.
func (p *LoginPage) HandleKey(msg tea.KeyPressMsg) tea.Cmd {
	if p.busy {
		return nil
	}
	if msg.String() == keys.Enter {
		return p.Submit()
	}
	return p.updateForm(msg)
}

func (p *LoginPage) updateForm(msg tea.Msg) tea.Cmd {
	before := p.email + "\x00" + p.password
	form, cmd, completed := formUpdate(p.form, msg)
	p.form = form
	if before != p.email+"\x00"+p.password {
		p.err = ""
	}
	if completed {
		p.buildForm()
		return tea.Batch(cmd, p.Submit())
	}
	return cmd
}

// Update handles non-key messages: the spinner, the request timer and
// whatever the form itself scheduled.
func (p *LoginPage) Update(msg tea.Msg) tea.Cmd {
	if p.req.done(msg) {
		p.busy = false
		email := strings.TrimSpace(p.email)
		if p.auth == nil || !p.auth(email, p.password) {
			p.err = InvalidCredsText
			logger.WithComponent("login").Debug("sign-in rejected")
			return nil
		}
		p.Reset()
		return func() tea.Msg { return LoginSucceededMsg{Email: email} }
	}
	if _, ok := msg.(spinner.TickMsg); ok {
		if !p.busy {
			return nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return cmd
	}
	if _, ok := msg.(delayDoneMsg); ok {
		return nil
	}
	if p.busy {
		return nil
	}
	return p.updateForm(msg)
}

// View renders the page centered in width x height.
func (p *LoginPage) View(width, height int) string {
	var status string
	switch {
	case p.busy:
		status = StatusLoadingStyle.Render(p.spinner.View() + " " + signingInText)
	case p.err != "":
		status = StatusErrorStyle.Render("✕ " + p.err)
	}

	button := ButtonFocusedStyle.Render("Sign in")
	if p.busy {
		button = ButtonStyle.Render(signingInText)
	}

	parts := []string{
		PageTitleStyle.Render(loginTitle),
		PageSubtitleStyle.Render(loginSubtitle),
		"",
		p.form.View(),
	}
	if status != "" {
		parts = append(parts, "", status)
	}
	parts = append(parts, "", button)

	box := PanelStyle.Width(p.formWidth() + 4).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
