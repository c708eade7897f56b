package projects

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Field identifies a sortable column.
type Field int

const (
	FieldName Field = iota
	FieldStatus
	FieldProgress
	FieldOwner
)

// Fields returns the columns in display order.
func Fields() []Field {
	return []Field{FieldName, FieldStatus, FieldProgress, FieldOwner}
}

func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldStatus:
		return "status"
	case FieldProgress:
		return "progress"
	case FieldOwner:
		return "owner"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// Title is the column heading.
func (f Field) Title() string {
	switch f {
	case FieldName:
		return "Project"
	case FieldStatus:
		return "Status"
	case FieldProgress:
		return "Progress"
	case FieldOwner:
		return "Owner"
	default:
		return ""
	}
}

// ParseField accepts a field name ("name", "status", "progress", "owner") or
// its column heading, ignoring case.
func ParseField(s string) (Field, error) {
	for _, f := range Fields() {
		if strings.EqualFold(s, f.String()) || strings.EqualFold(s, f.Title()) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown sort field %q", s)
}

// Direction is the sort order of the active field.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Arrow is the header indicator for the direction.
func (d Direction) Arrow() string {
	if d == Descending {
		return "↓"
	}
	return "↑"
}

// SortSpec is the single active (field, direction) pair.
type SortSpec struct {
	Field     Field
	Direction Direction
}

// DefaultSort orders projects by name, ascending.
var DefaultSort = SortSpec{Field: FieldName, Direction: Ascending}

// Toggle applies a header activation: the active field flips direction, any
// other field becomes active in ascending order.
func (s SortSpec) Toggle(f Field) SortSpec {
	if s.Field == f {
		return SortSpec{Field: f, Direction: s.Direction.Flip()}
	}
	return SortSpec{Field: f, Direction: Ascending}
}

// AriaSort reports how column f is sorted: "ascending", "descending" or "none".
func (s SortSpec) AriaSort(f Field) string {
	if s.Field != f {
		return "none"
	}
	if s.Direction == Descending {
		return "descending"
	}
	return "ascending"
}

func (s SortSpec) String() string {
	return s.Field.String() + " " + s.Direction.String()
}

// NewCollator returns a collator for the BCP 47 tag, falling back to English
// when the tag does not parse.
func NewCollator(tag string) *collate.Collator {
	t, err := language.Parse(tag)
	if err != nil {
		t = language.English
	}
	return collate.New(t)
}

// Comparator returns the ascending comparator for field f. String columns
// use the collator; progress compares numerically.
func Comparator(f Field, c *collate.Collator) func(a, b Project) int {
	switch f {
	case FieldStatus:
		return func(a, b Project) int { return c.CompareString(string(a.Status), string(b.Status)) }
	case FieldProgress:
		return func(a, b Project) int { return cmp.Compare(a.Progress, b.Progress) }
	case FieldOwner:
		return func(a, b Project) int { return c.CompareString(a.Owner, b.Owner) }
	default:
		return func(a, b Project) int { return c.CompareString(a.Name, b.Name) }
	}
}

// Sort returns rows ordered by spec in a new slice. Equal keys keep their
// relative order in both directions.
func Sort(rows []Project, spec SortSpec, c *collate.Collator) []Project {
	out := slices.Clone(rows)
	less := Comparator(spec.Field, c)
	if spec.Direction == Descending {
		asc := less
		less = func(a, b Project) int { return -asc(a, b) }
	}
	slices.SortStableFunc(out, less)
	return out
}
