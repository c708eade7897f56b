package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette, set from the active theme by regenerateStyles.
var (
	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorBorder      color.Color
	ColorBorderFocus color.Color
	ColorBg          color.Color
	ColorSurface     color.Color
	ColorSelected    color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorSuccess     color.Color
	ColorWarning     color.Color
	ColorError       color.Color
	ColorInfo        color.Color
)

// Header styles
var (
	HeaderTitleStyle lipgloss.Style
	MenuButtonStyle  lipgloss.Style
)

// Footer styles
var (
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style
)

// Panel styles
var (
	PanelStyle        lipgloss.Style
	PanelFocusedStyle lipgloss.Style
	PanelTitleStyle   lipgloss.Style
)

// Sidebar styles
var (
	SidebarStyle         lipgloss.Style
	SidebarBrandStyle    lipgloss.Style
	SidebarItemStyle     lipgloss.Style
	SidebarSelectedStyle lipgloss.Style
	SidebarCurrentStyle  lipgloss.Style
	SidebarMutedStyle    lipgloss.Style
	AvatarStyle          lipgloss.Style
	TooltipStyle         lipgloss.Style
)

// Modal styles
var (
	ModalStyle         lipgloss.Style
	ModalTitleStyle    lipgloss.Style
	ModalTextStyle     lipgloss.Style
	ButtonStyle        lipgloss.Style
	ButtonFocusedStyle lipgloss.Style
	ButtonDangerStyle  lipgloss.Style
	BackdropStyle      lipgloss.Style
)

// ToastStyle is the toast frame; the border color is set per kind.
var ToastStyle lipgloss.Style

// Page styles
var (
	PageTitleStyle    lipgloss.Style
	PageSubtitleStyle lipgloss.Style
	StatLabelStyle    lipgloss.Style
	StatValueStyle    lipgloss.Style
	TrendUpStyle      lipgloss.Style
	TrendDownStyle    lipgloss.Style
)

// Status styles
var (
	StatusLoadingStyle lipgloss.Style
	StatusErrorStyle   lipgloss.Style
	StatusSuccessStyle lipgloss.Style
)

// Table styles
var (
	BadgeActiveStyle    lipgloss.Style
	BadgePendingStyle   lipgloss.Style
	BadgeCompletedStyle lipgloss.Style
	ProgressFillStyle   lipgloss.Style
	ProgressEmptyStyle  lipgloss.Style
	TableHeaderStyle    lipgloss.Style
	TableSelectedStyle  lipgloss.Style
	TableCellStyle      lipgloss.Style
)
