package generator

import (
	"fmt"
	"strings"

	"github.com/gnana997/compdoc/pkg/extractor"
)

const emptySection = "(none)"

// Suggestion collects the context offered to a writer drafting a component
// description.
type Suggestion struct {
	Name  string
	Path  string
	Props []extractor.PropDescriptor
	// CodeSnippet and RelatedComponents are not populated yet; they are
	// rendered as empty sections.
	CodeSnippet       string
	RelatedComponents []string
}

// FormatSuggestion renders a suggestion report. Every section is always
// present, empty ones are rendered as "(none)".
func FormatSuggestion(s Suggestion) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Component: %s\n", s.Name)
	fmt.Fprintf(&sb, "Location: %s\n\n", s.Path)

	fmt.Fprintf(&sb, "Props (%d):\n", len(s.Props))
	writePropList(&sb, s.Props, false)

	sb.WriteString("\nCode snippet:\n")
	if snippet := strings.TrimSpace(s.CodeSnippet); snippet != "" {
		sb.WriteString(snippet)
	} else {
		sb.WriteString(emptySection)
	}

	sb.WriteString("\n\nRelated components in same directory:\n")
	if len(s.RelatedComponents) > 0 {
		sb.WriteString(strings.Join(s.RelatedComponents, ", "))
	} else {
		sb.WriteString(emptySection)
	}
	return sb.String()
}
