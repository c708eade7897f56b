// Package ui provides theme management for the application.
// Themes define the color palette used throughout the UI. Dark mode picks
// the configured dark theme; light mode always uses ThemeLight.
package ui

import (
	"charm.land/lipgloss/v2"

	"github.com/zhubert/saasboard/internal/logger"
	"github.com/zhubert/saasboard/internal/observer"
)

// Theme defines a complete color palette for the application.
type Theme struct {
	// Name is the display name of the theme
	Name string
	// Dark reports whether the palette is meant for dark mode
	Dark bool

	Primary   string
	Secondary string

	Bg         string // Main background
	BgSurface  string // Cards, modal, sidebar
	BgSelected string // Selected item background (defaults to Primary if empty)

	Text        string
	TextMuted   string
	TextInverse string // Text on colored backgrounds

	Success string
	Warning string
	Error   string
	Info    string

	Border      string
	BorderFocus string // defaults to Primary if empty
}

// GetBgSelected returns the selected background color, defaulting to Primary
func (t Theme) GetBgSelected() string {
	if t.BgSelected != "" {
		return t.BgSelected
	}
	return t.Primary
}

// GetBorderFocus returns the focused border color, defaulting to Primary
func (t Theme) GetBorderFocus() string {
	if t.BorderFocus != "" {
		return t.BorderFocus
	}
	return t.Primary
}

// ThemeName is a type for theme identifiers
type ThemeName string

// Available theme names
const (
	ThemeDark       ThemeName = "dark"
	ThemeLight      ThemeName = "light"
	ThemeNord       ThemeName = "nord"
	ThemeDracula    ThemeName = "dracula"
	ThemeGruvbox    ThemeName = "gruvbox"
	ThemeTokyoNight ThemeName = "tokyo-night"
)

// DefaultTheme is the default theme name
const DefaultTheme = ThemeDark

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeDark: {
		Name:        "Dark",
		Dark:        true,
		Primary:     "#3B82F6",
		Secondary:   "#06B6D4",
		Bg:          "#111827",
		BgSurface:   "#1F2937",
		BgSelected:  "#1E3A8A",
		Text:        "#F9FAFB",
		TextMuted:   "#9CA3AF",
		TextInverse: "#111827",
		Success:     "#10B981",
		Warning:     "#F59E0B",
		Error:       "#EF4444",
		Info:        "#3B82F6",
		Border:      "#374151",
	},
	ThemeLight: {
		Name:        "Light",
		Primary:     "#2563EB",
		Secondary:   "#0891B2",
		Bg:          "#F9FAFB",
		BgSurface:   "#FFFFFF",
		BgSelected:  "#DBEAFE",
		Text:        "#111827",
		TextMuted:   "#6B7280",
		TextInverse: "#FFFFFF",
		Success:     "#059669",
		Warning:     "#D97706",
		Error:       "#DC2626",
		Info:        "#2563EB",
		Border:      "#E5E7EB",
	},
	ThemeNord: {
		Name:        "Nord",
		Dark:        true,
		Primary:     "#88C0D0",
		Secondary:   "#81A1C1",
		Bg:          "#2E3440",
		BgSurface:   "#3B4252",
		Text:        "#ECEFF4",
		TextMuted:   "#D8DEE9",
		TextInverse: "#2E3440",
		Success:     "#A3BE8C",
		Warning:     "#EBCB8B",
		Error:       "#BF616A",
		Info:        "#81A1C1",
		Border:      "#4C566A",
	},
	ThemeDracula: {
		Name:        "Dracula",
		Dark:        true,
		Primary:     "#BD93F9",
		Secondary:   "#8BE9FD",
		Bg:          "#282A36",
		BgSurface:   "#343746",
		Text:        "#F8F8F2",
		TextMuted:   "#6272A4",
		TextInverse: "#282A36",
		Success:     "#50FA7B",
		Warning:     "#FFB86C",
		Error:       "#FF5555",
		Info:        "#8BE9FD",
		Border:      "#44475A",
	},
	ThemeGruvbox: {
		Name:        "Gruvbox Dark",
		Dark:        true,
		Primary:     "#FE8019",
		Secondary:   "#83A598",
		Bg:          "#282828",
		BgSurface:   "#3C3836",
		Text:        "#EBDBB2",
		TextMuted:   "#A89984",
		TextInverse: "#282828",
		Success:     "#B8BB26",
		Warning:     "#FABD2F",
		Error:       "#FB4934",
		Info:        "#83A598",
		Border:      "#504945",
	},
	ThemeTokyoNight: {
		Name:        "Tokyo Night",
		Dark:        true,
		Primary:     "#7AA2F7",
		Secondary:   "#BB9AF7",
		Bg:          "#1A1B26",
		BgSurface:   "#24283B",
		Text:        "#C0CAF5",
		TextMuted:   "#565F89",
		TextInverse: "#1A1B26",
		Success:     "#9ECE6A",
		Warning:     "#E0AF68",
		Error:       "#F7768E",
		Info:        "#7DCFFF",
		Border:      "#3B4261",
	},
}

// ThemeNames returns the built-in theme names in a stable order.
func ThemeNames() []ThemeName {
	return []ThemeName{ThemeDark, ThemeLight, ThemeNord, ThemeDracula, ThemeGruvbox, ThemeTokyoNight}
}

// GetTheme returns the theme by name, or the default theme if not found
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

var (
	currentTheme     = BuiltinThemes[DefaultTheme]
	currentThemeName = DefaultTheme
)

func init() {
	regenerateStyles()
}

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return currentTheme
}

// CurrentThemeName returns the name of the current theme
func CurrentThemeName() ThemeName {
	return currentThemeName
}

// SetTheme sets the active theme and regenerates all styles
func SetTheme(name ThemeName) {
	if _, ok := BuiltinThemes[name]; !ok {
		name = DefaultTheme
	}
	currentThemeName = name
	currentTheme = BuiltinThemes[name]
	regenerateStyles()
}

// ThemeHolder owns the dark/light preference. Light mode always uses
// ThemeLight; dark mode uses the configured dark palette.
type ThemeHolder struct {
	dark      bool
	darkTheme ThemeName
	changed   observer.Subject[bool]
}

// NewThemeHolder applies the initial mode. A light palette passed as name
// selects light mode and leaves ThemeDark as the dark palette.
func NewThemeHolder(name ThemeName, dark bool) *ThemeHolder {
	t, ok := BuiltinThemes[name]
	if !ok {
		name, t = DefaultTheme, BuiltinThemes[DefaultTheme]
	}
	h := &ThemeHolder{dark: dark, darkTheme: name}
	if !t.Dark {
		h.dark = false
		h.darkTheme = ThemeDark
	}
	h.apply()
	return h
}

// IsDark reports whether dark mode is active.
func (h *ThemeHolder) IsDark() bool {
	return h.dark
}

// Active returns the name of the theme currently applied.
func (h *ThemeHolder) Active() ThemeName {
	if h.dark {
		return h.darkTheme
	}
	return ThemeLight
}

// Toggle flips between dark and light mode.
func (h *ThemeHolder) Toggle() {
	h.SetDark(!h.dark)
}

// SetDark switches mode. Subscribers are only notified on change.
func (h *ThemeHolder) SetDark(dark bool) {
	if h.dark == dark {
		return
	}
	h.dark = dark
	h.apply()
	h.changed.Notify(dark)
}

// Subscribe registers fn to be called with the new mode after each change.
func (h *ThemeHolder) Subscribe(fn func(dark bool)) (unsubscribe func()) {
	return h.changed.Subscribe(fn)
}

func (h *ThemeHolder) apply() {
	SetTheme(h.Active())
	logger.WithComponent("theme").Debug("theme applied", "theme", h.Active(), "dark", h.dark)
}

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorBg = lipgloss.Color(t.Bg)
	ColorSurface = lipgloss.Color(t.BgSurface)
	ColorSelected = lipgloss.Color(t.GetBgSelected())
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorSuccess = lipgloss.Color(t.Success)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorError = lipgloss.Color(t.Error)
	ColorInfo = lipgloss.Color(t.Info)

	HeaderTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	MenuButtonStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	PanelFocusedStyle = PanelStyle.
		BorderForeground(ColorBorderFocus)

	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	SidebarStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(ColorBorder)

	SidebarBrandStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)

	SidebarItemStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	SidebarSelectedStyle = lipgloss.NewStyle().
		Background(ColorSelected).
		Foreground(ColorText).
		Bold(true)

	SidebarCurrentStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	SidebarMutedStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	AvatarStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorTextInverse).
		Background(ColorPrimary)

	TooltipStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorText).
		Padding(0, 1)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)

	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	ModalTextStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	ButtonStyle = lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(ColorText).
		Background(ColorSurface)

	ButtonFocusedStyle = ButtonStyle.
		Foreground(ColorTextInverse).
		Background(ColorPrimary).
		Bold(true)

	ButtonDangerStyle = ButtonStyle.
		Foreground(ColorTextInverse).
		Background(ColorError).
		Bold(true)

	BackdropStyle = lipgloss.NewStyle().
		Foreground(ColorBorder).
		Faint(true)

	ToastStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Foreground(ColorText)

	PageTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	PageSubtitleStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		MarginBottom(1)

	StatLabelStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	StatValueStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	TrendUpStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess)

	TrendDownStyle = lipgloss.NewStyle().
		Foreground(ColorError)

	StatusLoadingStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Italic(true)

	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	StatusSuccessStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess).
		Bold(true)

	BadgeActiveStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	BadgePendingStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	BadgeCompletedStyle = lipgloss.NewStyle().Foreground(ColorInfo)

	ProgressFillStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	ProgressEmptyStyle = lipgloss.NewStyle().Foreground(ColorBorder)

	TableHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorTextMuted).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(ColorBorder)

	TableSelectedStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Background(ColorSelected).
		Bold(true)

	TableCellStyle = lipgloss.NewStyle().
		Foreground(ColorText)
}
