package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/zhubert/saasboard/internal/keys"
	"github.com/zhubert/saasboard/internal/logger"
	"github.com/zhubert/saasboard/internal/router"
)

// NavItem is one navigation link. Current marks the active page.
type NavItem struct {
	Label   string
	Icon    string
	Path    string
	Current bool
}

var navItems = []NavItem{
	{Label: "Dashboard", Icon: "📊", Path: router.PathDashboard},
	{Label: "Settings", Icon: "⚙", Path: router.PathSettings},
}

// NavigateMsg asks the app to navigate to Path.
type NavigateMsg struct {
	Path string
}

// ToggleThemeMsg asks the app to flip dark/light mode.
type ToggleThemeMsg struct{}

// SignOutRequestMsg asks the app to confirm signing out.
type SignOutRequestMsg struct{}

// sidebar rows after the nav items
const (
	entryTheme = iota
	entrySignOut
	extraEntries
)

// Sidebar is the navigation panel. It keeps two independent layout axes:
// expanded/collapsed for wide terminals and open/closed for narrow ones.
// Resizing only changes which axis applies and never rewrites either one.
type Sidebar struct {
	expanded   bool
	mobileOpen bool

	viewportWidth int
	height        int
	breakpoint    int

	currentPath string
	selected    int
	hovered     int
	focused     bool
	dark        bool

	userName  string
	userEmail string

	// rows from the last View, relative to the sidebar's top left
	entryRows []int
	closeBtn  Rect
}

// NewSidebar returns a sidebar for a desktop terminal.
func NewSidebar(expanded bool, breakpoint int) *Sidebar {
	if breakpoint <= 0 {
		breakpoint = DefaultBreakpoint
	}
	return &Sidebar{
		expanded:    expanded,
		breakpoint:  breakpoint,
		hovered:     -1,
		currentPath: router.PathDashboard,
		dark:        true,
	}
}

// SetViewportWidth records the terminal width. It does not touch the
// expanded or mobile-open state.
func (s *Sidebar) SetViewportWidth(width int) {
	s.viewportWidth = width
}

// SetHeight sets the number of rows available.
func (s *Sidebar) SetHeight(height int) {
	s.height = height
}

// SetBreakpoint changes the mobile breakpoint.
func (s *Sidebar) SetBreakpoint(cols int) {
	if cols > 0 {
		s.breakpoint = cols
	}
}

// Breakpoint returns the mobile breakpoint in columns.
func (s *Sidebar) Breakpoint() int {
	return s.breakpoint
}

// IsMobile reports whether the narrow layout applies.
func (s *Sidebar) IsMobile() bool {
	return s.viewportWidth < s.breakpoint
}

// IsExpanded returns the desktop axis.
func (s *Sidebar) IsExpanded() bool {
	return s.expanded
}

// IsMobileOpen returns the mobile axis.
func (s *Sidebar) IsMobileOpen() bool {
	return s.mobileOpen
}

// ToggleExpanded flips between full and icon-only mode.
func (s *Sidebar) ToggleExpanded() {
	s.expanded = !s.expanded
	logger.WithComponent("sidebar").Debug("toggled expanded", "expanded", s.expanded)
}

// ToggleMobile opens or closes the mobile overlay.
func (s *Sidebar) ToggleMobile() {
	s.mobileOpen = !s.mobileOpen
	logger.WithComponent("sidebar").Debug("toggled mobile", "open", s.mobileOpen)
}

// CloseMobile closes the mobile overlay.
func (s *Sidebar) CloseMobile() {
	s.mobileOpen = false
}

// HasBackdrop reports whether the mobile overlay is showing.
func (s *Sidebar) HasBackdrop() bool {
	return s.IsMobile() && s.mobileOpen
}

// Visible reports whether the sidebar is drawn at all.
func (s *Sidebar) Visible() bool {
	return !s.IsMobile() || s.mobileOpen
}

// ShowsLabels reports whether items render with their labels.
func (s *Sidebar) ShowsLabels() bool {
	if s.IsMobile() {
		return s.mobileOpen
	}
	return s.expanded
}

// RenderWidth is the width of the sidebar as drawn, border included.
func (s *Sidebar) RenderWidth() int {
	switch {
	case s.IsMobile() && !s.mobileOpen:
		return 0
	case s.IsMobile():
		return min(SidebarMobileWidth, s.viewportWidth)
	case s.expanded:
		return SidebarExpandedWidth
	default:
		return SidebarCollapsedWidth
	}
}

// LayoutWidth is the width the sidebar takes from the page. The mobile
// overlay floats above the page and takes none.
func (s *Sidebar) LayoutWidth() int {
	if s.IsMobile() {
		return 0
	}
	return s.RenderWidth()
}

// SetCurrentPath marks the active page.
func (s *Sidebar) SetCurrentPath(path string) {
	s.currentPath = path
}

// Items returns the navigation items with Current set for the active page.
func (s *Sidebar) Items() []NavItem {
	items := make([]NavItem, len(navItems))
	for i, it := range navItems {
		it.Current = it.Path == s.currentPath
		items[i] = it
	}
	return items
}

// SetUser sets the user card.
func (s *Sidebar) SetUser(name, email string) {
	s.userName = name
	s.userEmail = email
}

// SetDark sets the theme toggle label.
func (s *Sidebar) SetDark(dark bool) {
	s.dark = dark
}

// SetFocused sets keyboard focus.
func (s *Sidebar) SetFocused(focused bool) {
	s.focused = focused
	if !focused {
		s.hovered = -1
	}
}

// IsFocused reports keyboard focus.
func (s *Sidebar) IsFocused() bool {
	return s.focused
}

func (s *Sidebar) entryCount() int {
	return len(navItems) + extraEntries
}

// Selected returns the index of the selected entry: nav items first, then
// the theme toggle and sign out.
func (s *Sidebar) Selected() int {
	return s.selected
}

// SelectNext moves the selection down, wrapping.
func (s *Sidebar) SelectNext() {
	s.selected = (s.selected + 1) % s.entryCount()
}

// SelectPrev moves the selection up, wrapping.
func (s *Sidebar) SelectPrev() {
	s.selected = (s.selected - 1 + s.entryCount()) % s.entryCount()
}

// HandleKey handles a key while the sidebar is focused.
func (s *Sidebar) HandleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case keys.Up, "k":
		s.SelectPrev()
	case keys.Down, "j":
		s.SelectNext()
	case keys.Enter, keys.Space:
		return s.activate(s.selected)
	case keys.Escape:
		if s.HasBackdrop() {
			s.CloseMobile()
		}
	}
	return nil
}

func (s *Sidebar) activate(entry int) tea.Cmd {
	var msg tea.Msg
	switch {
	case entry < len(navItems):
		msg = NavigateMsg{Path: navItems[entry].Path}
	case entry == len(navItems)+entryTheme:
		msg = ToggleThemeMsg{}
	case entry == len(navItems)+entrySignOut:
		msg = SignOutRequestMsg{}
	default:
		return nil
	}
	return func() tea.Msg { return msg }
}

func (s *Sidebar) entryAt(x, y int) int {
	if x < 0 || x >= s.RenderWidth() {
		return -1
	}
	for i, row := range s.entryRows {
		if row == y {
			return i
		}
	}
	return -1
}

// HandleClick handles a click at sidebar-local coordinates and reports
// whether it landed on the sidebar.
func (s *Sidebar) HandleClick(x, y int) (handled bool, cmd tea.Cmd) {
	if !s.Visible() || x < 0 || x >= s.RenderWidth() {
		return false, nil
	}
	if s.closeBtn.Contains(x, y) {
		s.CloseMobile()
		return true, nil
	}
	if i := s.entryAt(x, y); i >= 0 {
		s.selected = i
		return true, s.activate(i)
	}
	return true, nil
}

// SetHover records the entry under the mouse, for tooltips.
func (s *Sidebar) SetHover(x, y int) {
	s.hovered = s.entryAt(x, y)
}

func (s *Sidebar) entryLabel(entry int) string {
	switch {
	case entry < len(navItems):
		return navItems[entry].Label
	case entry == len(navItems)+entryTheme:
		return s.themeLabel()
	case entry == len(navItems)+entrySignOut:
		return "Sign out"
	}
	return ""
}

// Tooltip returns the label to float beside the collapsed sidebar, and the
// row it belongs to. The hovered entry wins over the focused one.
func (s *Sidebar) Tooltip() (label string, row int, ok bool) {
	if s.IsMobile() || s.expanded {
		return "", 0, false
	}
	entry := -1
	switch {
	case s.hovered >= 0:
		entry = s.hovered
	case s.focused:
		entry = s.selected
	}
	if entry < 0 || entry >= len(s.entryRows) {
		return "", 0, false
	}
	return s.entryLabel(entry), s.entryRows[entry], true
}

func (s *Sidebar) themeLabel() string {
	if s.dark {
		return "Light mode"
	}
	return "Dark mode"
}

func (s *Sidebar) themeIcon() string {
	if s.dark {
		return "☀"
	}
	return "☾"
}

// AvatarInitial returns the first grapheme of name, upper-cased.
func AvatarInitial(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "?"
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(name, -1)
	return strings.ToUpper(cluster)
}

// View renders the sidebar and records row positions for hit testing.
func (s *Sidebar) View() string {
	s.entryRows = s.entryRows[:0]
	s.closeBtn = Rect{}
	if !s.Visible() {
		return ""
	}

	inner := s.RenderWidth() - 1
	labels := s.ShowsLabels()
	var lines []string
	row := func(text string, st func(...string) string) {
		lines = append(lines, st(fit(text, inner)))
	}
	plain := SidebarItemStyle.Render

	brand := "◆"
	if labels {
		brand = "◆ SaaS Dashboard"
	}
	if s.HasBackdrop() {
		brandWidth := max(inner-2, 0)
		lines = append(lines, SidebarBrandStyle.Render(fit(brand, brandWidth))+SidebarMutedStyle.Render("✕ "))
		s.closeBtn = Rect{X: brandWidth, Y: 0, W: 2, H: 1}
	} else {
		row(brand, SidebarBrandStyle.Render)
	}
	row("", plain)

	for i, it := range s.Items() {
		marker := " "
		if it.Current {
			marker = "▎"
		}
		text := marker + it.Icon
		if labels {
			text += " " + it.Label
		}
		st := plain
		switch {
		case s.focused && s.selected == i:
			st = SidebarSelectedStyle.Render
		case it.Current:
			st = SidebarCurrentStyle.Render
		}
		s.entryRows = append(s.entryRows, len(lines))
		row(text, st)
	}

	const bottomRows = 5
	for len(lines) < s.height-bottomRows {
		row("", plain)
	}

	row(strings.Repeat("─", inner), SidebarMutedStyle.Render)
	avatar := AvatarStyle.Render(" " + AvatarInitial(s.userName) + " ")
	if labels {
		lines = append(lines, " "+avatar+" "+fit(s.userName, max(inner-5, 0)))
		row(" "+s.userEmail, SidebarMutedStyle.Render)
	} else {
		lines = append(lines, " "+avatar+strings.Repeat(" ", max(inner-4, 0)))
		row("", plain)
	}

	for e, icon := range []string{s.themeIcon(), "⎋"} {
		entry := len(navItems) + e
		text := " " + icon
		if labels {
			text += " " + s.entryLabel(entry)
		}
		st := plain
		if s.focused && s.selected == entry {
			st = SidebarSelectedStyle.Render
		}
		s.entryRows = append(s.entryRows, len(lines))
		row(text, st)
	}

	return SidebarStyle.Render(strings.Join(lines, "\n"))
}

// fit truncates or pads s to exactly width cells.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = runewidth.Truncate(s, width, "…")
	return runewidth.FillRight(s, width)
}
