package scanner

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrComponentNotFound is returned when no file matches a component name.
var ErrComponentNotFound = errors.New("component not found")

// invalidNameChars cannot appear in a component file name pattern.
const invalidNameChars = `/\*?[]{}!`

// ResolutionPatterns returns the patterns tried for name, highest priority first.
func ResolutionPatterns(name string) []string {
	return []string{
		"**/" + name + PrimaryExt,
		"**/" + name + SecondaryExt,
		"**/" + name + "/" + IndexStem + PrimaryExt,
		"**/" + name + "/" + IndexStem + SecondaryExt,
	}
}

// ResolveComponentFile maps a component name to a single source file under root.
//
// Patterns from ResolutionPatterns are tried in order and the first pattern
// with at least one hit wins. Among several hits for the same pattern the
// lexicographically smallest absolute path is chosen. The traversal is
// read-only and honors cfg.Exclude.
func ResolveComponentFile(name, root string, cfg ScanConfig) (string, error) {
	if name == "" || strings.ContainsAny(name, invalidNameChars) {
		return "", fmt.Errorf("%w: %q", ErrComponentNotFound, name)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve root path: %w", err)
	}

	files, err := DiscoverFiles(absRoot, cfg)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", name, err)
	}

	rels := make([]string, len(files))
	for i, f := range files {
		rel, err := filepath.Rel(absRoot, f)
		if err != nil {
			rel = f
		}
		rels[i] = filepath.ToSlash(rel)
	}

	// files is sorted, so the first hit is the lexicographic tie-break.
	for _, pattern := range ResolutionPatterns(name) {
		for i, rel := range rels {
			if m, _ := doublestar.Match(pattern, rel); m {
				return files[i], nil
			}
		}
	}

	return "", fmt.Errorf("%w: %q", ErrComponentNotFound, name)
}
