package extractor

// DescriptionPlaceholder is returned as the description text when a source
// file carries no qualifying doc block.
const DescriptionPlaceholder = "No description found."

// SpreadPropName names the single sentinel descriptor emitted for a props
// type that delegates to another named type.
const SpreadPropName = "..."

// PropDescriptor describes one declared component property.
type PropDescriptor struct {
	Name string `json:"name"`
	// Type is the declared type as raw source text; it is never resolved.
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Description string `json:"description,omitempty"`
}

// IsSpread reports whether d is the delegation sentinel.
func (d PropDescriptor) IsSpread() bool {
	return d.Name == SpreadPropName
}

// Description is the text mined from a component's leading doc block.
// When Present is false, Text holds DescriptionPlaceholder.
type Description struct {
	Text    string `json:"text"`
	Present bool   `json:"present"`
}

// Metadata bundles everything extracted from one source file.
type Metadata struct {
	Description Description      `json:"description"`
	Props       []PropDescriptor `json:"props"`
}
