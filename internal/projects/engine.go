package projects

import (
	"slices"

	"golang.org/x/text/collate"
)

// Engine derives the visible view of the projects table from the canonical
// rows, the search query and the active sort.
//
// Every change marks the view dirty; the next Rows call re-derives it in full
// from the canonical rows.
type Engine struct {
	rows     []Project
	query    string
	sort     SortSpec
	collator *collate.Collator

	view    []Project
	dirty   bool
	derives int
}

// NewEngine creates an engine over rows using the collation rules of locale
// (a BCP 47 tag such as "en" or "de"). The rows are copied.
func NewEngine(rows []Project, locale string) *Engine {
	return &Engine{
		rows:     slices.Clone(rows),
		sort:     DefaultSort,
		collator: NewCollator(locale),
		dirty:    true,
	}
}

// SetRows replaces the canonical rows.
func (e *Engine) SetRows(rows []Project) {
	e.rows = slices.Clone(rows)
	e.dirty = true
}

// AllRows returns a copy of the canonical rows in source order.
func (e *Engine) AllRows() []Project {
	return slices.Clone(e.rows)
}

// SetQuery sets the free-text filter.
func (e *Engine) SetQuery(q string) {
	if q == e.query {
		return
	}
	e.query = q
	e.dirty = true
}

// Query returns the current filter text.
func (e *Engine) Query() string {
	return e.query
}

// Sort returns the active sort.
func (e *Engine) Sort() SortSpec {
	return e.sort
}

// SetSort replaces the active sort.
func (e *Engine) SetSort(s SortSpec) {
	if s == e.sort {
		return
	}
	e.sort = s
	e.dirty = true
}

// ToggleSort applies a column header activation and returns the new sort.
func (e *Engine) ToggleSort(f Field) SortSpec {
	e.SetSort(e.sort.Toggle(f))
	return e.sort
}

// Rows returns the filtered and sorted view. Callers must not modify it.
func (e *Engine) Rows() []Project {
	if e.dirty {
		e.view = Sort(Filter(e.rows, e.query), e.sort, e.collator)
		e.dirty = false
		e.derives++
	}
	return e.view
}

// Len returns the number of rows in the view.
func (e *Engine) Len() int {
	return len(e.Rows())
}

// Empty reports whether nothing passes the filter. The table must then show
// an explicit "no results" line rather than an empty body.
func (e *Engine) Empty() bool {
	return e.Len() == 0
}
