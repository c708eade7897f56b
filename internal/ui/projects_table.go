package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/table"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/saasboard/internal/keys"
	"github.com/zhubert/saasboard/internal/projects"
)

// EmptyProjectsText is shown when the search matches nothing.
const EmptyProjectsText = "No projects found matching your search."

// RowCopiedMsg reports the outcome of copying a project row.
type RowCopiedMsg struct {
	Name string
	Err  error
}

// table layout rows, relative to the component's top left
const (
	searchRow      = 0
	tableHeaderRow = 2
	firstDataRow   = 4 // header text plus its bottom border
	cellPadding    = 2 // Padding(0, 1) on header and cell styles
)

// ProjectsTable is the searchable, sortable projects overview. All query
// state lives in the engine; this type only renders it and maps input to it.
type ProjectsTable struct {
	engine *projects.Engine
	table  table.Model
	search textinput.Model
	copy   func(string) error

	width  int
	height int
	widths []int
}

// NewProjectsTable builds the view over engine. copyFn writes to the
// clipboard.
func NewProjectsTable(engine *projects.Engine, copyFn func(string) error) *ProjectsTable {
	si := textinput.New()
	si.Placeholder = "Search projects..."
	si.Prompt = "🔍 "
	si.CharLimit = 100

	t := table.New(table.WithFocused(true), table.WithHeight(5))

	p := &ProjectsTable{engine: engine, table: t, search: si, copy: copyFn}
	p.applyStyles()
	p.SetSize(80, 12)
	return p
}

func (p *ProjectsTable) applyStyles() {
	s := table.DefaultStyles()
	s.Header = TableHeaderStyle.Padding(0, 1)
	s.Cell = TableCellStyle.Padding(0, 1)
	s.Selected = TableSelectedStyle
	p.table.SetStyles(s)
}

// RefreshStyles picks up the current theme.
func (p *ProjectsTable) RefreshStyles() {
	p.applyStyles()
}

// SetSize sets the space available to the component.
func (p *ProjectsTable) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.search.SetWidth(max(min(width-4, 40), 10))
	p.table.SetWidth(width)
	p.table.SetHeight(max(height-tableHeaderRow, 3))
	p.refresh()
}

// columnWidths splits the width between the four columns, leaving room for
// the cell padding.
func columnWidths(total int) []int {
	avail := max(total-4*cellPadding, 20)
	status, progress := 11, 16
	if avail < 60 {
		status, progress = 10, 9
	}
	rest := avail - status - progress
	name := rest * 55 / 100
	return []int{name, status, progress, rest - name}
}

func (p *ProjectsTable) refresh() {
	p.widths = columnWidths(p.width)
	spec := p.engine.Sort()

	cols := make([]table.Column, 0, len(projects.Fields()))
	for i, f := range projects.Fields() {
		title := f.Title()
		if spec.Field == f {
			title += " " + spec.Direction.Arrow()
		}
		cols = append(cols, table.Column{Title: title, Width: p.widths[i]})
	}
	p.table.SetColumns(cols)

	rows := p.engine.Rows()
	out := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, table.Row{
			r.Name,
			statusCell(r.Status),
			progressCell(r.Progress, p.widths[2]),
			r.Owner,
		})
	}
	p.table.SetRows(out)
	if c := p.table.Cursor(); c >= len(out) {
		p.table.SetCursor(max(len(out)-1, 0))
	}
}

func statusCell(s projects.Status) string {
	return "● " + string(s)
}

// progressCell draws a bar with the percentage, e.g. "██████░░  75%".
func progressCell(pct, width int) string {
	label := fmt.Sprintf("%3d%%", pct)
	barWidth := width - len(label) - 1
	if barWidth < 3 {
		return label
	}
	filled := pct * barWidth / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled) + " " + label
}

// Engine returns the query engine.
func (p *ProjectsTable) Engine() *projects.Engine {
	return p.engine
}

// Focus gives the table keyboard focus.
func (p *ProjectsTable) Focus() {
	p.search.Blur()
	p.table.Focus()
}

// Blur removes keyboard focus from the table and the search box.
func (p *ProjectsTable) Blur() {
	p.search.Blur()
	p.table.Blur()
}

// FocusSearch moves keyboard focus into the search box.
func (p *ProjectsTable) FocusSearch() tea.Cmd {
	p.table.Blur()
	return p.search.Focus()
}

// SearchFocused reports whether the search box has focus.
func (p *ProjectsTable) SearchFocused() bool {
	return p.search.Focused()
}

// SetQuery sets the search text and filters.
func (p *ProjectsTable) SetQuery(q string) {
	p.search.SetValue(q)
	p.engine.SetQuery(q)
	p.refresh()
}

// ToggleSort applies a header activation for f.
func (p *ProjectsTable) ToggleSort(f projects.Field) {
	p.engine.ToggleSort(f)
	p.refresh()
}

// Selected returns the highlighted project.
func (p *ProjectsTable) Selected() (projects.Project, bool) {
	rows := p.engine.Rows()
	c := p.table.Cursor()
	if c < 0 || c >= len(rows) {
		return projects.Project{}, false
	}
	return rows[c], true
}

// HandleKey handles a key while the table or its search box is focused.
func (p *ProjectsTable) HandleKey(msg tea.KeyPressMsg) tea.Cmd {
	if p.search.Focused() {
		switch msg.String() {
		case keys.Enter, keys.Escape:
			p.Focus()
			return nil
		}
		var cmd tea.Cmd
		p.search, cmd = p.search.Update(msg)
		if p.search.Value() != p.engine.Query() {
			p.engine.SetQuery(p.search.Value())
			p.refresh()
		}
		return cmd
	}

	switch key := msg.String(); key {
	case "/":
		return p.FocusSearch()
	case "1", "2", "3", "4":
		p.ToggleSort(projects.Fields()[key[0]-'1'])
		return nil
	case "y":
		return p.copySelected()
	case keys.Escape:
		if p.engine.Query() != "" {
			p.SetQuery("")
		}
		return nil
	}

	var cmd tea.Cmd
	p.table, cmd = p.table.Update(msg)
	return cmd
}

func (p *ProjectsTable) copySelected() tea.Cmd {
	row, ok := p.Selected()
	if !ok || p.copy == nil {
		return nil
	}
	text := strings.Join([]string{row.Name, string(row.Status), fmt.Sprintf("%d%%", row.Progress), row.Owner}, "\t")
	copyFn := p.copy
	return func() tea.Msg {
		return RowCopiedMsg{Name: row.Name, Err: copyFn(text)}
	}
}

// columnAt maps an x offset to a column.
func (p *ProjectsTable) columnAt(x int) (projects.Field, bool) {
	left := 0
	for i, w := range p.widths {
		right := left + w + cellPadding
		if x >= left && x < right {
			return projects.Fields()[i], true
		}
		left = right
	}
	return 0, false
}

// HandleClick handles a click at component-local coordinates: the search box
// takes focus, a column header sorts, a data row is selected.
func (p *ProjectsTable) HandleClick(x, y int) tea.Cmd {
	switch {
	case y == searchRow:
		return p.FocusSearch()
	case y == tableHeaderRow:
		if f, ok := p.columnAt(x); ok {
			p.ToggleSort(f)
		}
		p.Focus()
	case y >= firstDataRow:
		p.Focus()
		idx := y - firstDataRow
		if idx < p.engine.Len() {
			p.table.SetCursor(idx)
		}
	}
	return nil
}

// View renders the search box and the table.
func (p *ProjectsTable) View() string {
	search := p.search.View()
	body := p.table.View()
	if p.engine.Empty() {
		header := strings.SplitN(body, "\n", 3)
		keep := header[:min(len(header), 2)]
		body = strings.Join(keep, "\n") + "\n" +
			lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true).Padding(1, 1).Render(EmptyProjectsText)
	}
	return lipgloss.JoinVertical(lipgloss.Left, search, "", body)
}
