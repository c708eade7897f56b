// Package ui provides the user interface components for the saasboard TUI.
//
// # Overview
//
// The ui package implements the visual components of saasboard using the Bubble Tea
// framework and Lipgloss styling library. Components do not own the program loop;
// internal/app routes messages to them and composes their views.
//
// # Layout System
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├───────────┬─────────────────────────────────────────┤
//	│           │                                         │
//	│  Sidebar  │   Page (dashboard or settings)          │
//	│ (26 or 6) │                                         │
//	│           │                                         │
//	├───────────┴─────────────────────────────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// Below the breakpoint (DefaultBreakpoint columns) the sidebar leaves the
// layout and opens as an overlay drawer over a dimmed backdrop.
//
// # Components
//
// ViewContext: Singleton that owns terminal size, breakpoint and sidebar width.
// All size calculations should go through ViewContext.
//
// Sidebar: Navigation state machine. Tracks expanded/collapsed on desktop and
// open/closed on mobile, plus the hovered item.
//
// ConfirmModal: Confirmation dialog that captures the previous focus owner on
// open and restores it on close.
//
// Toast: Single transient notification with an auto-dismiss timer driven by
// a schedule.Scheduler.
//
// ProjectsTable: Search box and sortable table over a projects.Engine.
//
// LoginPage, SettingsPage, DashboardPage: The three routed pages.
//
// # Focus System
//
// FocusManager keeps a stack of focus owners. Tab cycles between the sidebar
// and the page; a modal pushes itself and receives all keys until it pops.
//
// # Styles
//
// All styles are defined in styles.go and regenerated from the active Theme
// by SetTheme. The built-in themes live in theme.go.
package ui
