// Package projects holds the project listing shown on the dashboard and the
// query engine that filters and sorts it.
package projects

import (
	"fmt"
	"strings"
)

// Status is the lifecycle state of a project.
type Status string

const (
	StatusActive    Status = "Active"
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
)

// Statuses returns every known status in display order.
func Statuses() []Status {
	return []Status{StatusActive, StatusPending, StatusCompleted}
}

// ParseStatus matches s against the known statuses, ignoring case.
func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses() {
		if strings.EqualFold(s, string(st)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// Project is one row of the projects table. Rows are treated as immutable:
// the engine derives new slices and never writes through them.
type Project struct {
	ID       int    `yaml:"id"`
	Name     string `yaml:"name"`
	Status   Status `yaml:"status"`
	Progress int    `yaml:"progress"`
	Owner    string `yaml:"owner"`
}

// Validate checks a single row.
func (p Project) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("project %d has an empty name", p.ID)
	}
	if _, err := ParseStatus(string(p.Status)); err != nil {
		return fmt.Errorf("project %d: %w", p.ID, err)
	}
	if p.Progress < 0 || p.Progress > 100 {
		return fmt.Errorf("project %d progress %d is outside 0-100", p.ID, p.Progress)
	}
	return nil
}

// ValidateAll checks every row and that IDs are unique.
func ValidateAll(rows []Project) error {
	seen := make(map[int]bool, len(rows))
	for _, p := range rows {
		if seen[p.ID] {
			return fmt.Errorf("duplicate project id %d", p.ID)
		}
		seen[p.ID] = true
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}
