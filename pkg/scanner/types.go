// Package scanner walks a component project tree: it discovers component
// source files, resolves a component name to its file, and enumerates the
// component catalog.
package scanner

const (
	// PrimaryExt is the preferred component file extension.
	PrimaryExt = ".tsx"
	// SecondaryExt is tried after PrimaryExt.
	SecondaryExt = ".jsx"
	// IndexStem is the file stem that takes its component name from the
	// containing directory.
	IndexStem = "index"
)

// ComponentExtensions lists the extensions of files that can define a component.
var ComponentExtensions = []string{PrimaryExt, SecondaryExt}

// ScanConfig configures file discovery.
type ScanConfig struct {
	// Include glob patterns for file matching. Empty means every file.
	Include []string
	// Exclude glob patterns. A matching directory is not descended into.
	Exclude []string
}

// DefaultIgnore is the exclude set used when none is configured: dependency
// and build-output directories, plus story and test files so that generated
// scaffolds never show up as components.
var DefaultIgnore = []string{
	"**/node_modules/**",
	"**/dist/**",
	"**/build/**",
	"**/.git/**",
	"**/.next/**",
	"**/coverage/**",
	"**/*.stories.*",
	"**/*.story.*",
	"**/*.test.*",
	"**/*.spec.*",
}

// DefaultScanConfig returns the component-file scan configuration.
func DefaultScanConfig() ScanConfig {
	return NewScanConfig(DefaultIgnore)
}

// NewScanConfig returns a component-file scan configuration excluding ignore.
func NewScanConfig(ignore []string) ScanConfig {
	include := make([]string, 0, len(ComponentExtensions))
	for _, ext := range ComponentExtensions {
		include = append(include, "**/*"+ext)
	}
	exclude := make([]string, len(ignore))
	copy(exclude, ignore)
	return ScanConfig{Include: include, Exclude: exclude}
}
