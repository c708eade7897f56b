package ui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/zhubert/saasboard/internal/fixtures"
	"github.com/zhubert/saasboard/internal/keys"
	"github.com/zhubert/saasboard/internal/projects"
)

const (
	dashboardTitle    = "Dashboard"
	dashboardSubtitle = "Welcome back. Here's what's happening today."
	projectsTitle     = "Projects Overview"
	tableHeight       = 11
)

// DashboardPage shows the stats grid, the activity feed, system alerts and
// the projects table. Content taller than the screen scrolls.
type DashboardPage struct {
	data  *fixtures.Dashboard
	table *ProjectsTable

	width  int
	height int
	mobile bool
	scroll int

	// position of the table's top-left cell in unscrolled content
	tableX, tableY int
	lines          int
}

// NewDashboardPage builds the page over data; the table must wrap data's
// projects.
func NewDashboardPage(data *fixtures.Dashboard, table *ProjectsTable) *DashboardPage {
	return &DashboardPage{data: data, table: table, width: 80, height: 24}
}

// Table returns the projects table.
func (p *DashboardPage) Table() *ProjectsTable {
	return p.table
}

// SetSize sets the content area and whether the mobile layout applies.
func (p *DashboardPage) SetSize(width, height int, mobile bool) {
	p.width, p.height, p.mobile = width, height, mobile
	p.table.SetSize(max(width-PanelStyle.GetHorizontalFrameSize(), 20), tableHeight)
	p.clampScroll()
}

// StatColumns returns how many stat cards share a row.
func (p *DashboardPage) StatColumns() int {
	if p.mobile {
		return StatsColumnsMobile
	}
	return StatsColumnsDesktop
}

// Scroll returns the current vertical offset.
func (p *DashboardPage) Scroll() int {
	return p.scroll
}

// ScrollBy moves the view by n lines.
func (p *DashboardPage) ScrollBy(n int) {
	p.scroll += n
	p.clampScroll()
}

func (p *DashboardPage) clampScroll() {
	p.scroll = max(min(p.scroll, p.lines-p.height), 0)
}

// HandleKey scrolls on paging keys and otherwise drives the table.
func (p *DashboardPage) HandleKey(msg tea.KeyPressMsg) tea.Cmd {
	if !p.table.SearchFocused() {
		switch msg.String() {
		case keys.PgDown:
			p.ScrollBy(max(p.height-2, 1))
			return nil
		case keys.PgUp:
			p.ScrollBy(-max(p.height-2, 1))
			return nil
		case keys.Home:
			p.scroll = 0
			return nil
		case keys.End:
			p.scroll = p.lines
			p.clampScroll()
			return nil
		}
	}
	return p.table.HandleKey(msg)
}

// HandleClick routes a click at page-local coordinates to the table.
func (p *DashboardPage) HandleClick(x, y int) (bool, tea.Cmd) {
	tx, ty := x-p.tableX, y+p.scroll-p.tableY
	if tx < 0 || ty < 0 || ty >= tableHeight+tableHeaderRow+1 {
		return false, nil
	}
	return true, p.table.HandleClick(tx, ty)
}

// HandleWheel scrolls by three lines per notch.
func (p *DashboardPage) HandleWheel(up bool) {
	if up {
		p.ScrollBy(-3)
	} else {
		p.ScrollBy(3)
	}
}

// Content renders the full, unscrolled page.
func (p *DashboardPage) Content() string {
	var b strings.Builder
	b.WriteString(PageTitleStyle.Render(dashboardTitle) + "\n")
	b.WriteString(PageSubtitleStyle.Render(dashboardSubtitle) + "\n")

	b.WriteString(p.renderStats() + "\n")
	b.WriteString(p.renderFeeds() + "\n")

	top := lipgloss.Height(b.String()) - 1
	frameLeft := PanelStyle.GetBorderLeftSize() + PanelStyle.GetPaddingLeft()
	frameTop := PanelStyle.GetBorderTopSize() + PanelStyle.GetPaddingTop()
	p.tableX = frameLeft
	p.tableY = top + frameTop + 2 // panel title and a blank line

	body := lipgloss.JoinVertical(lipgloss.Left,
		PanelTitleStyle.Render(projectsTitle),
		"",
		p.table.View(),
		p.selectedDetail(),
	)
	b.WriteString(p.panel(p.width).Render(body))

	out := b.String()
	p.lines = lipgloss.Height(out)
	return out
}

// View renders the visible window of the page.
func (p *DashboardPage) View() string {
	lines := strings.Split(p.Content(), "\n")
	p.clampScroll()
	end := min(p.scroll+p.height, len(lines))
	return strings.Join(lines[p.scroll:end], "\n")
}

func (p *DashboardPage) panel(width int) lipgloss.Style {
	style := PanelStyle
	if p.table.SearchFocused() || p.table.table.Focused() {
		style = PanelFocusedStyle
	}
	return style.Width(width - style.GetHorizontalBorderSize())
}

func (p *DashboardPage) renderStats() string {
	cols := p.StatColumns()
	gap := 1
	cardWidth := max((p.width-(cols-1)*gap)/cols, 14)

	var rows []string
	var row []string
	for i, s := range p.data.Stats {
		row = append(row, renderStat(s, cardWidth))
		if len(row) == cols || i == len(p.data.Stats)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, joinWithGap(row, gap)...))
			row = nil
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func joinWithGap(cells []string, gap int) []string {
	out := make([]string, 0, len(cells)*2)
	for i, c := range cells {
		if i > 0 {
			out = append(out, strings.Repeat(" ", gap))
		}
		out = append(out, c)
	}
	return out
}

// TrendLabel renders a stat change with its arrow, e.g. "↑ +12%".
func TrendLabel(s fixtures.Stat) string {
	if s.Trend == fixtures.TrendDown {
		return TrendDownStyle.Render("↓ " + s.Change)
	}
	return TrendUpStyle.Render("↑ " + s.Change)
}

func renderStat(s fixtures.Stat, width int) string {
	inner := width - PanelStyle.GetHorizontalFrameSize()
	body := lipgloss.JoinVertical(lipgloss.Left,
		StatLabelStyle.Render(runewidth.Truncate(s.Label, inner, "…")),
		StatValueStyle.Render(s.Value)+"  "+TrendLabel(s),
	)
	return PanelStyle.Width(width - PanelStyle.GetHorizontalBorderSize()).Render(body)
}

func (p *DashboardPage) renderFeeds() string {
	if p.mobile {
		return lipgloss.JoinVertical(lipgloss.Left,
			p.renderActivity(p.width),
			p.renderAlerts(p.width),
		)
	}
	left := (p.width - 1) / 2
	right := p.width - 1 - left
	return lipgloss.JoinHorizontal(lipgloss.Top,
		p.renderActivity(left), " ", p.renderAlerts(right))
}

func (p *DashboardPage) renderActivity(width int) string {
	inner := width - PanelStyle.GetHorizontalFrameSize()
	lines := []string{PanelTitleStyle.Render("Recent Activity"), ""}
	for _, a := range p.data.Activities {
		initial := AvatarStyle.Render(" " + AvatarInitial(a.User) + " ")
		text := runewidth.Truncate(a.User+" "+a.Action, max(inner-4, 4), "…")
		lines = append(lines,
			initial+" "+lipgloss.NewStyle().Foreground(ColorText).Render(text),
			"    "+StatLabelStyle.Render(a.Time))
	}
	return PanelStyle.Width(width - PanelStyle.GetHorizontalBorderSize()).Render(strings.Join(lines, "\n"))
}

// AlertIcon returns the glyph and style for an alert type.
func AlertIcon(t fixtures.AlertType) (string, lipgloss.Style) {
	switch t {
	case fixtures.AlertWarning:
		return "⚠", lipgloss.NewStyle().Foreground(ColorWarning)
	case fixtures.AlertError:
		return "✕", lipgloss.NewStyle().Foreground(ColorError)
	default:
		return "ℹ", lipgloss.NewStyle().Foreground(ColorInfo)
	}
}

func (p *DashboardPage) renderAlerts(width int) string {
	inner := width - PanelStyle.GetHorizontalFrameSize()
	lines := []string{PanelTitleStyle.Render("System Alerts"), ""}
	for _, a := range p.data.Alerts {
		icon, style := AlertIcon(a.Type)
		msg := runewidth.Truncate(a.Message, max(inner-2, 4), "…")
		lines = append(lines,
			style.Bold(true).Render(icon)+" "+lipgloss.NewStyle().Foreground(ColorText).Render(msg),
			"  "+StatLabelStyle.Render(a.Time))
	}
	return PanelStyle.Width(width - PanelStyle.GetHorizontalBorderSize()).Render(strings.Join(lines, "\n"))
}

func statusBadge(s projects.Status) string {
	switch s {
	case projects.StatusActive:
		return BadgeActiveStyle.Render(statusCell(s))
	case projects.StatusPending:
		return BadgePendingStyle.Render(statusCell(s))
	default:
		return BadgeCompletedStyle.Render(statusCell(s))
	}
}

func progressBar(pct, width int) string {
	filled := pct * width / 100
	return ProgressFillStyle.Render(strings.Repeat("█", filled)) +
		ProgressEmptyStyle.Render(strings.Repeat("░", width-filled))
}

// selectedDetail renders the highlighted row with colored badges, which the
// plain table cells cannot carry.
func (p *DashboardPage) selectedDetail() string {
	row, ok := p.table.Selected()
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s  %s  %s %d%%  %s",
		StatValueStyle.Render(row.Name),
		statusBadge(row.Status),
		progressBar(row.Progress, 10), row.Progress,
		StatLabelStyle.Render(row.Owner))
}
