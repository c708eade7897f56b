// Package ui provides constants for layout calculations and configuration.
package ui

import "time"

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// DefaultBreakpoint is the terminal width, in columns, below which the
	// mobile layout is used.
	DefaultBreakpoint = 100

	SidebarExpandedWidth  = 26
	SidebarCollapsedWidth = 6
	SidebarMobileWidth    = 30

	// StatsColumnsDesktop and StatsColumnsMobile set the stats grid layout.
	StatsColumnsDesktop = 4
	StatsColumnsMobile  = 1

	MinTerminalWidth  = 20
	MinTerminalHeight = 10
)

// Modal and toast dimensions
const (
	// ModalWidth is the width of the modal text block, excluding the frame
	ModalWidth = 50

	// ToastWidth is the width of the toast message, excluding the frame
	ToastWidth = 40

	// FormWidth is the width of the login and settings forms
	FormWidth = 50
)

// Timing
const (
	DefaultToastDuration = 3 * time.Second
	LoginDelay           = 500 * time.Millisecond
	SettingsSaveDelay    = 800 * time.Millisecond
)
