package generator

import (
	"fmt"
	"strings"

	"github.com/gnana997/compdoc/pkg/extractor"
)

// UsageExample returns a minimal usage snippet for the component name
// resolved to resolvedPath: an import from "./<file stem>" and a tag carrying
// one attribute per required property. Optional properties are omitted.
func UsageExample(name, resolvedPath string, props []extractor.PropDescriptor) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "import { %s } from './%s';\n\n", name, fileStem(resolvedPath))

	var attrs []string
	for _, p := range props {
		if !p.Required || p.IsSpread() {
			continue
		}
		attrs = append(attrs, p.Name+SampleFor(p.Type).JSXAttribute())
	}

	if len(attrs) == 0 {
		fmt.Fprintf(&sb, "<%s></%s>\n", name, name)
		return sb.String()
	}

	fmt.Fprintf(&sb, "<%s\n", name)
	for _, attr := range attrs {
		fmt.Fprintf(&sb, "  %s\n", attr)
	}
	fmt.Fprintf(&sb, "></%s>\n", name)
	return sb.String()
}
