// Package naming classifies candidate component names against the
// configured naming conventions.
package naming

import (
	"fmt"
	"regexp"
	"strings"
)

// Convention is a naming rule tag as written in configuration.
type Convention string

const (
	// Pascal accepts names whose first character is an uppercase ASCII letter.
	Pascal Convention = "pascal"
	// Kebab accepts lowercase ASCII segments joined by single hyphens.
	Kebab Convention = "kebab"
)

var kebabPattern = regexp.MustCompile(`^[a-z]+(-[a-z]+)*$`)

// Set is an ordered list of enabled conventions, combined with OR.
type Set []Convention

// DefaultSet returns the convention set used when nothing is configured.
func DefaultSet() Set {
	return Set{Pascal}
}

// Parse converts configuration tags into a Set. Tags are case-insensitive.
// An empty input yields an empty Set, which matches no names.
func Parse(tags []string) (Set, error) {
	set := make(Set, 0, len(tags))
	for _, tag := range tags {
		c := Convention(strings.ToLower(strings.TrimSpace(tag)))
		switch c {
		case Pascal, Kebab:
			set = append(set, c)
		default:
			return nil, fmt.Errorf("unknown naming convention %q (want %q or %q)", tag, Pascal, Kebab)
		}
	}
	return set, nil
}

// Matches reports whether name satisfies at least one enabled convention.
func (s Set) Matches(name string) bool {
	for _, c := range s {
		if c.Matches(name) {
			return true
		}
	}
	return false
}

// Matches reports whether name satisfies this single convention.
// Unknown conventions match nothing.
func (c Convention) Matches(name string) bool {
	switch c {
	case Pascal:
		return name != "" && name[0] >= 'A' && name[0] <= 'Z'
	case Kebab:
		return kebabPattern.MatchString(name)
	default:
		return false
	}
}

// Strings returns the tags of the set in order.
func (s Set) Strings() []string {
	out := make([]string, len(s))
	for i, c := range s {
		out[i] = string(c)
	}
	return out
}
