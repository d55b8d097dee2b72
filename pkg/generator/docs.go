package generator

import (
	"fmt"
	"strings"

	"github.com/gnana997/compdoc/pkg/extractor"
)

// Report is the input of the documentation formatter.
type Report struct {
	Name        string
	Path        string
	Description extractor.Description
	Props       []extractor.PropDescriptor
	Usage       string
}

// NewReport builds a report for a resolved component from its metadata.
func NewReport(name, path string, meta extractor.Metadata) Report {
	return Report{
		Name:        name,
		Path:        path,
		Description: meta.Description,
		Props:       meta.Props,
		Usage:       UsageExample(name, path, meta.Props),
	}
}

// FormatDocumentation renders a report as plain text.
func FormatDocumentation(r Report) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Component: %s\n", r.Name)
	fmt.Fprintf(&sb, "Location: %s\n\n", r.Path)

	if r.Description.Present {
		fmt.Fprintf(&sb, "Description:\n%s\n\n", r.Description.Text)
	} else {
		fmt.Fprintf(&sb, "Description (missing):\n%s\n", extractor.DescriptionPlaceholder)
		sb.WriteString("Add a /** ... */ comment directly above the component declaration.\n\n")
	}

	fmt.Fprintf(&sb, "Props (%d):\n", len(r.Props))
	writePropList(&sb, r.Props, true)

	sb.WriteString("\nUsage example:\n")
	sb.WriteString(strings.TrimRight(r.Usage, "\n"))
	return sb.String()
}

// writePropList writes one "- name: type" line per property. With detail set
// the requiredness and any description are appended.
func writePropList(sb *strings.Builder, props []extractor.PropDescriptor, detail bool) {
	if len(props) == 0 {
		sb.WriteString("(none)\n")
		return
	}
	for _, p := range props {
		fmt.Fprintf(sb, "- %s: %s", p.Name, p.Type)
		if detail {
			if p.Required {
				sb.WriteString(" (required)")
			} else {
				sb.WriteString(" (optional)")
			}
			if p.Description != "" {
				fmt.Fprintf(sb, " - %s", strings.ReplaceAll(p.Description, "\n", " "))
			}
		}
		sb.WriteString("\n")
	}
}
