// Package generator turns extracted component metadata into text and file
// artifacts: usage examples, story scaffolds, documentation reports and
// description suggestions.
package generator

import "strings"

// SampleKind classifies the literal chosen for a property.
type SampleKind int

const (
	SampleString SampleKind = iota
	SampleNumber
	SampleBoolean
	SampleCallback
	SamplePlaceholder
)

const (
	// SampleText is the string sample for string-like types.
	SampleText = "sample"
	// ChildrenText is the story sample for a children prop.
	ChildrenText = "Example content"
	// PlaceholderValue marks a value that needs manual completion.
	PlaceholderValue = "undefined /* TODO: provide a value */"
)

// Sample is a sample value for one property type.
type Sample struct {
	Kind SampleKind
	// Literal is the JavaScript expression for non-string kinds and the
	// unquoted text for SampleString.
	Literal string
}

// SampleFor chooses a sample value from raw type text. Rules are tested in
// order with a case-insensitive substring match and the first hit wins.
func SampleFor(typeText string) Sample {
	t := strings.ToLower(typeText)
	switch {
	case strings.Contains(t, "string") || strings.ContainsAny(t, "'\"`"):
		return Sample{Kind: SampleString, Literal: SampleText}
	case strings.Contains(t, "number"):
		return Sample{Kind: SampleNumber, Literal: "42"}
	case strings.Contains(t, "boolean"):
		return Sample{Kind: SampleBoolean, Literal: "true"}
	case strings.Contains(t, "=>") || strings.Contains(t, "function"):
		return Sample{Kind: SampleCallback, Literal: "() => {}"}
	default:
		return Sample{Kind: SamplePlaceholder, Literal: PlaceholderValue}
	}
}

// JSXAttribute renders the sample as a JSX attribute value, including the
// leading "=": `="sample"` or `={42}`.
func (s Sample) JSXAttribute() string {
	if s.Kind == SampleString {
		return `="` + s.Literal + `"`
	}
	return "={" + s.Literal + "}"
}

// Expression renders the sample as a JavaScript expression.
func (s Sample) Expression() string {
	if s.Kind == SampleString {
		return "'" + s.Literal + "'"
	}
	return s.Literal
}
