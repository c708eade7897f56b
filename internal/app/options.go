package app

import (
	"time"

	"github.com/zhubert/saasboard/internal/config"
	"github.com/zhubert/saasboard/internal/fixtures"
	"github.com/zhubert/saasboard/internal/schedule"
)

// Options configures a Model. Zero-valued override fields fall back to the
// preferences file, then to built-in defaults. Overrides apply to this run
// only and are never written back.
type Options struct {
	Config  *config.Config
	Data    *fixtures.Dashboard
	Version string

	// Scheduler drives toasts and simulated requests. Tests pass a
	// schedule.Manual.
	Scheduler schedule.Scheduler

	// CopyText writes to the system clipboard.
	CopyText func(string) error

	Theme         string
	Light         bool
	ToastDuration *time.Duration
	Breakpoint    int
	Locale        string
}

func (o Options) withDefaults() Options {
	if o.Config == nil {
		o.Config = config.New("")
	}
	if o.Data == nil {
		o.Data = fixtures.MustDefault()
	}
	if o.Scheduler == nil {
		o.Scheduler = schedule.NewReal()
	}
	return o
}

func (o Options) themeName() string {
	if o.Theme != "" {
		return o.Theme
	}
	return o.Config.GetTheme()
}

func (o Options) dark() bool {
	if o.Light {
		return false
	}
	if dark, ok := o.Config.GetDark(); ok {
		return dark
	}
	return true
}

func (o Options) toastDuration() time.Duration {
	if o.ToastDuration != nil {
		return *o.ToastDuration
	}
	return o.Config.GetToastDuration()
}

func (o Options) breakpoint() int {
	if o.Breakpoint > 0 {
		return o.Breakpoint
	}
	return o.Config.GetBreakpoint()
}

func (o Options) locale() string {
	if o.Locale != "" {
		return o.Locale
	}
	return o.Config.GetLocale()
}
