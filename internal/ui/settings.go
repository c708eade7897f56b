package ui

import (
	"slices"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/saasboard/internal/keys"
	"github.com/zhubert/saasboard/internal/logger"
	"github.com/zhubert/saasboard/internal/schedule"
	"github.com/zhubert/saasboard/internal/validate"
)

// SettingsSavedText is shown inline and as a toast after a save.
const SettingsSavedText = "Settings saved successfully!"

const (
	optEmailNotify = "email"
	optPushNotify  = "push"
	optWeekly      = "weekly"
)

// SettingsValues is everything the settings form edits.
type SettingsValues struct {
	Name         string
	Email        string
	Company      string
	EmailNotify  bool
	PushNotify   bool
	WeeklyDigest bool
}

// SettingsSavedMsg is emitted when a save completes.
type SettingsSavedMsg struct {
	Values SettingsValues
}

// FieldError is a validation failure for one form field.
type FieldError struct {
	Field   string
	Message string
}

// SettingsPage is the profile and preferences form.
type SettingsPage struct {
	form    *huh.Form
	name    string
	email   string
	company string
	options []string

	errors []FieldError
	saved  bool
	busy   bool
	req    delay

	spinner spinner.Model
	width   int
}

// NewSettingsPage builds the form filled with v.
func NewSettingsPage(sched schedule.Scheduler, v SettingsValues) *SettingsPage {
	p := &SettingsPage{
		req:     newDelay("settings", sched),
		spinner: spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		width:   FormWidth,
	}
	p.SetValues(v)
	return p
}

// SetValues replaces the form contents and clears any status.
func (p *SettingsPage) SetValues(v SettingsValues) {
	p.name, p.email, p.company = v.Name, v.Email, v.Company
	p.options = p.options[:0]
	if v.EmailNotify {
		p.options = append(p.options, optEmailNotify)
	}
	if v.PushNotify {
		p.options = append(p.options, optPushNotify)
	}
	if v.WeeklyDigest {
		p.options = append(p.options, optWeekly)
	}
	p.errors = nil
	p.saved = false
	p.buildForm()
}

// Values returns the current form contents.
func (p *SettingsPage) Values() SettingsValues {
	return SettingsValues{
		Name:         p.name,
		Email:        p.email,
		Company:      p.company,
		EmailNotify:  slices.Contains(p.options, optEmailNotify),
		PushNotify:   slices.Contains(p.options, optPushNotify),
		WeeklyDigest: slices.Contains(p.options, optWeekly),
	}
}

func (p *SettingsPage) buildForm() {
	opts := []huh.Option[string]{
		huh.NewOption("Email notifications", optEmailNotify).Selected(slices.Contains(p.options, optEmailNotify)),
		huh.NewOption("Push notifications", optPushNotify).Selected(slices.Contains(p.options, optPushNotify)),
		huh.NewOption("Weekly digest", optWeekly).Selected(slices.Contains(p.options, optWeekly)),
	}

	profile := huh.NewGroup(
		huh.NewInput().
			Title("Full Name").
			Placeholder("Jane Doe").
			CharLimit(80).
			Value(&p.name),
		huh.NewInput().
			Title("Email Address").
			Placeholder("you@example.com").
			CharLimit(254).
			Value(&p.email),
		huh.NewInput().
			Title("Company").
			Description("Optional").
			Placeholder("Acme Inc.").
			CharLimit(validate.MaxCompanyLength+20).
			Value(&p.company),
	).Title("Profile")

	prefs := huh.NewGroup(
		huh.NewMultiSelect[string]().
			Title("Notifications").
			Description("space toggles").
			Options(opts...).
			Height(len(opts)).
			Value(&p.options),
	).Title("Preferences")

	p.form = huh.NewForm(profile, prefs).
		WithTheme(FormTheme()).
		WithShowHelp(false).
		WithWidth(p.formWidth()).
		WithLayout(huh.LayoutStack)
	p.form.Init()
}

func (p *SettingsPage) formWidth() int {
	return max(min(FormWidth, p.width-4), 20)
}

// SetWidth sets the available width.
func (p *SettingsPage) SetWidth(w int) {
	p.width = w
	p.form = p.form.WithWidth(p.formWidth())
}

// RefreshStyles rebuilds the form with the current palette.
func (p *SettingsPage) RefreshStyles() {
	p.buildForm()
}

// Errors returns the validation failures of the last submit, in field order.
func (p *SettingsPage) Errors() []FieldError {
	return slices.Clone(p.errors)
}

// Saved reports whether the success status is showing.
func (p *SettingsPage) Saved() bool {
	return p.saved
}

// Busy reports whether a save is in flight.
func (p *SettingsPage) Busy() bool {
	return p.busy
}

// Cancel abandons an in-flight save.
func (p *SettingsPage) Cancel() {
	p.req.cancel()
	p.busy = false
}

func (p *SettingsPage) validate() []FieldError {
	var errs []FieldError
	if err := validate.Name(p.name); err != nil {
		errs = append(errs, FieldError{Field: "name", Message: err.Error()})
	}
	if err := validate.Email(p.email); err != nil {
		errs = append(errs, FieldError{Field: "email", Message: err.Error()})
	}
	if err := validate.Company(p.company); err != nil {
		errs = append(errs, FieldError{Field: "company", Message: err.Error()})
	}
	return errs
}

// Submit validates every field and starts the simulated save.
func (p *SettingsPage) Submit() tea.Cmd {
	if p.busy {
		return nil
	}
	p.saved = false
	p.errors = p.validate()
	if len(p.errors) > 0 {
		return nil
	}
	p.busy = true
	logger.WithComponent("settings").Debug("save started")
	return tea.Batch(p.req.start(SettingsSaveDelay), p.spinner.Tick)
}

// HandleKey handles a key press while the page is active.
func (p *SettingsPage) HandleKey(msg tea.KeyPressMsg) tea.Cmd {
	if p.busy {
		return nil
	}
	switch msg.String() {
	case keys.Enter, keys.CtrlS:
		return p.Submit()
	}
	return p.updateForm(msg)
}

func (p *SettingsPage) updateForm(msg tea.Msg) tea.Cmd {
	before := p.Values()
	form, cmd, completed := formUpdate(p.form, msg)
	p.form = form
	if p.Values() != before {
		p.saved = false
		p.errors = nil
	}
	if completed {
		p.buildForm()
		return tea.Batch(cmd, p.Submit())
	}
	return cmd
}

// Update handles non-key messages.
func (p *SettingsPage) Update(msg tea.Msg) tea.Cmd {
	if p.req.done(msg) {
		p.busy = false
		p.saved = true
		v := p.Values()
		logger.WithComponent("settings").Debug("save finished")
		return func() tea.Msg { return SettingsSavedMsg{Values: v} }
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

// View renders the page.
func (p *SettingsPage) View(width int) string {
	parts := []string{
		PageTitleStyle.Render("Settings"),
		PageSubtitleStyle.Render("Manage your account settings and preferences."),
		"",
		p.form.View(),
		"",
	}
	for _, e := range p.errors {
		parts = append(parts, StatusErrorStyle.Render("✕ "+e.Message))
	}
	switch {
	case p.busy:
		parts = append(parts, StatusLoadingStyle.Render(p.spinner.View()+" Saving..."))
	case p.saved:
		parts = append(parts, StatusSuccessStyle.Render("✓ "+SettingsSavedText))
	}
	parts = append(parts, "", ButtonFocusedStyle.Render("Save changes")+"  "+FooterKeyStyle.Render("enter / ctrl+s"))

	return lipgloss.NewStyle().Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
