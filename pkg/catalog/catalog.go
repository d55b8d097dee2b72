// Package catalog holds the sorted list of component names found under a
// project root and the text renderings of listing and search results.
package catalog

import (
	"fmt"
	"strings"

	"github.com/gnana997/compdoc/pkg/naming"
	"github.com/gnana997/compdoc/pkg/scanner"
)

// Catalog is a snapshot of the components under Root. It is built for one
// operation and discarded afterwards.
type Catalog struct {
	Root        string
	Conventions naming.Set
	// Components is sorted ascending and free of duplicates.
	Components []string
}

// Build walks root and returns its catalog. It never fails: an unreadable
// root yields an empty catalog.
func Build(root string, conventions naming.Set, cfg scanner.ScanConfig) *Catalog {
	return &Catalog{
		Root:        root,
		Conventions: conventions,
		Components:  scanner.EnumerateCatalog(root, conventions, cfg),
	}
}

// Len returns the number of components.
func (c *Catalog) Len() int {
	return len(c.Components)
}

// Format renders the listing.
func (c *Catalog) Format() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Components (%d):\n", len(c.Components))
	if len(c.Conventions) == 0 {
		sb.WriteString("\nNo naming conventions are enabled; set naming_convention to \"pascal\" and/or \"kebab\".\n")
	}
	if len(c.Components) > 0 {
		sb.WriteString("\n")
		writeBullets(&sb, c.Components)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func writeBullets(sb *strings.Builder, names []string) {
	for _, name := range names {
		fmt.Fprintf(sb, "- %s\n", name)
	}
}
