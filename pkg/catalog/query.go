package catalog

import (
	"fmt"
	"strings"
)

// Search returns the components whose name contains query, ignoring case,
// in catalog order.
//
// The query is trimmed first, and a query that is empty after trimming
// matches no components rather than all of them. The result is never nil.
func (c *Catalog) Search(query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	matches := make([]string, 0)
	if q == "" {
		return matches
	}
	for _, name := range c.Components {
		if strings.Contains(strings.ToLower(name), q) {
			matches = append(matches, name)
		}
	}
	return matches
}

// NoMatchesMessage is the search result when nothing matched query.
func NoMatchesMessage(query string) string {
	return fmt.Sprintf("No components found matching %q.", query)
}

// FormatSearch renders search matches for query.
func FormatSearch(query string, matches []string) string {
	if len(matches) == 0 {
		return NoMatchesMessage(query)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d component(s) matching %q:\n\n", len(matches), query)
	writeBullets(&sb, matches)
	return strings.TrimRight(sb.String(), "\n")
}
