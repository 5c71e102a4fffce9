package models

import "strings"

// SearchFilters holds the three independent client-side listing filters.
// Empty fields are inactive; an inactive filter matches every notice.
type SearchFilters struct {
	Term         string
	Section      Section
	Organization string
}

// IsZero reports whether no filter is active.
func (f SearchFilters) IsZero() bool {
	return f.Term == "" && f.Section == "" && f.Organization == ""
}

// Matches reports whether the notice passes ALL active filters:
//   - free text: case-insensitive substring of title, body, organization or any tag;
//   - section: exact enum match;
//   - organization: case-insensitive substring of the organization name.
func (f SearchFilters) Matches(n Notice) bool {
	if f.Term != "" && !matchesTerm(n, f.Term) {
		return false
	}
	if f.Section != "" && n.Section != f.Section {
		return false
	}
	if f.Organization != "" &&
		!strings.Contains(strings.ToLower(n.Organization), strings.ToLower(f.Organization)) {
		return false
	}
	return true
}

func matchesTerm(n Notice, term string) bool {
	t := strings.ToLower(term)
	if strings.Contains(strings.ToLower(n.Title), t) ||
		strings.Contains(strings.ToLower(n.Body), t) ||
		strings.Contains(strings.ToLower(n.Organization), t) {
		return true
	}
	for _, tag := range n.Tags {
		if strings.Contains(strings.ToLower(tag), t) {
			return true
		}
	}
	return false
}
