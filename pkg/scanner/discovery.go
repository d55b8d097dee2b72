package scanner

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// DiscoverFiles walks rootDir applying include/exclude globs from cfg.
// Returns a sorted slice of absolute file paths for deterministic output.
func DiscoverFiles(rootDir string, cfg ScanConfig) ([]string, error) {
	for _, pattern := range cfg.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid exclude pattern: %s", pattern)
		}
	}
	for _, pattern := range cfg.Include {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid include pattern: %s", pattern)
		}
	}

	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root path: %w", err)
	}

	var files []string

	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == absRoot {
				return err
			}
			return nil // Continue walking on errors below the root.
		}
		if path == absRoot {
			return nil
		}

		relPath, err := filepath.Rel(absRoot, path)
		if err != nil {
			relPath = path
		}
		relPath = filepath.ToSlash(relPath)

		if cfg.Excludes(relPath, d.IsDir()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		if !cfg.Includes(relPath) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// isExcluded reports whether relPath matches an exclude pattern. Directories
// are also tested with a trailing slash so "**/dist/**" prunes "dist" itself.
func isExcluded(patterns []string, relPath string, isDir bool) bool {
	if matchesAny(patterns, relPath) {
		return true
	}
	return isDir && matchesAny(patterns, relPath+"/")
}

func matchesAny(patterns []string, relPath string) bool {
	for _, pattern := range patterns {
		if m, _ := doublestar.Match(pattern, relPath); m {
			return true
		}
	}
	return false
}

// Excludes reports whether the slash-separated relPath is excluded by c.
func (c ScanConfig) Excludes(relPath string, isDir bool) bool {
	return isExcluded(c.Exclude, relPath, isDir)
}

// Includes reports whether the slash-separated file path relPath matches an
// include pattern of c. An empty include list matches every file.
func (c ScanConfig) Includes(relPath string) bool {
	return len(c.Include) == 0 || matchesAny(c.Include, relPath)
}
