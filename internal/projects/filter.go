package projects

import "strings"

// Matches reports whether p passes the free-text query: a case-insensitive
// substring of the name, owner or status. The empty query matches everything.
func Matches(p Project, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Owner), q) ||
		strings.Contains(strings.ToLower(string(p.Status)), q)
}

// Filter returns the rows matching query in their original order.
func Filter(rows []Project, query string) []Project {
	out := make([]Project, 0, len(rows))
	for _, p := range rows {
		if Matches(p, query) {
			out = append(out, p)
		}
	}
	return out
}
