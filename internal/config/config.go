// Package config persists user preferences between runs.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/text/language"

	"github.com/zhubert/saasboard/internal/errors"
)

const (
	DefaultToastDuration = 3 * time.Second
	DefaultBreakpoint    = 100
	DefaultLocale        = "en"
	DefaultTheme         = "dark"

	// MinBreakpoint keeps the desktop layout usable when configured by hand.
	MinBreakpoint = 40
)

// Profile is the editable account information shown on the settings page.
type Profile struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Company string `json:"company,omitempty"`
}

// Notifications are the settings page toggles. Push also mirrors toasts as
// desktop notifications.
type Notifications struct {
	Email  bool `json:"email"`
	Push   bool `json:"push"`
	Weekly bool `json:"weekly"`
}

// Config holds the application configuration
type Config struct {
	Theme           string        `json:"theme,omitempty"` // Named theme, e.g. "nord"
	Dark            *bool         `json:"dark,omitempty"`  // nil means follow the theme default
	ToastDurationMs int           `json:"toast_duration_ms,omitempty"`
	SidebarExpanded *bool         `json:"sidebar_expanded,omitempty"`
	Breakpoint      int           `json:"breakpoint,omitempty"` // Columns below which the mobile layout is used
	Locale          string        `json:"locale,omitempty"`     // BCP 47 tag for sorting
	Profile         Profile       `json:"profile"`
	Notifications   Notifications `json:"notifications"`

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".saasboard"), nil
}

// DefaultPath returns ~/.saasboard/config.json.
func DefaultPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// New returns a config with defaults that saves to path.
func New(path string) *Config {
	return &Config{
		Notifications: Notifications{Email: true, Push: false, Weekly: true},
		filePath:      path,
	}
}

// Load reads the config from the default location.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, errors.ConfigLoadFailed("~/.saasboard/config.json", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path, or returns defaults if it doesn't exist.
func LoadFrom(path string) (*Config, error) {
	cfg := New(path)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SetFilePath changes where Save writes.
func (c *Config) SetFilePath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filePath = path
}

// FilePath returns where Save writes.
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// Validate checks that the config is internally consistent.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.ToastDurationMs < 0 {
		return errors.ConfigInvalid(fmt.Sprintf("toast_duration_ms must not be negative, got %d", c.ToastDurationMs))
	}
	if c.Breakpoint != 0 && c.Breakpoint < MinBreakpoint {
		return errors.ConfigInvalid(fmt.Sprintf("breakpoint must be at least %d columns, got %d", MinBreakpoint, c.Breakpoint))
	}
	if c.Locale != "" {
		if _, err := language.Parse(c.Locale); err != nil {
			return errors.ConfigInvalid(fmt.Sprintf("locale %q: %v", c.Locale, err))
		}
	}
	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.filePath == "" {
		return errors.ConfigSaveFailed("", fmt.Errorf("no config path set"))
	}
	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// GetTheme returns the named theme, or DefaultTheme.
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.Theme == "" {
		return DefaultTheme
	}
	return c.Theme
}

// SetTheme sets the current theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetDark returns the stored dark mode preference and whether one was set.
func (c *Config) GetDark() (dark, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.Dark == nil {
		return false, false
	}
	return *c.Dark, true
}

// SetDark records the dark mode preference.
func (c *Config) SetDark(dark bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Dark = &dark
}

// GetToastDuration returns how long toasts stay visible. Zero disables
// auto-dismiss only when set explicitly through SetToastDuration.
func (c *Config) GetToastDuration() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.ToastDurationMs == 0 {
		return DefaultToastDuration
	}
	return time.Duration(c.ToastDurationMs) * time.Millisecond
}

// SetToastDuration stores d rounded to milliseconds.
func (c *Config) SetToastDuration(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ToastDurationMs = int(d / time.Millisecond)
}

// GetSidebarExpanded defaults to true.
func (c *Config) GetSidebarExpanded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.SidebarExpanded == nil {
		return true
	}
	return *c.SidebarExpanded
}

// SetSidebarExpanded records the desktop sidebar mode.
func (c *Config) SetSidebarExpanded(expanded bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.SidebarExpanded = &expanded
}

// GetBreakpoint returns the mobile breakpoint in columns.
func (c *Config) GetBreakpoint() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.Breakpoint == 0 {
		return DefaultBreakpoint
	}
	return c.Breakpoint
}

// SetBreakpoint sets the mobile breakpoint in columns.
func (c *Config) SetBreakpoint(cols int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Breakpoint = cols
}

// GetLocale returns the collation locale.
func (c *Config) GetLocale() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.Locale == "" {
		return DefaultLocale
	}
	return c.Locale
}

// SetLocale sets the collation locale.
func (c *Config) SetLocale(tag string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Locale = tag
}

// GetProfile returns a copy of the stored profile.
func (c *Config) GetProfile() Profile {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Profile
}

// SetProfile replaces the stored profile.
func (c *Config) SetProfile(p Profile) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Profile = p
}

// GetNotifications returns the notification toggles.
func (c *Config) GetNotifications() Notifications {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Notifications
}

// SetNotifications replaces the notification toggles.
func (c *Config) SetNotifications(n Notifications) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Notifications = n
}

// GetNotificationsEnabled reports whether toasts are mirrored to the desktop.
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Notifications.Push
}
