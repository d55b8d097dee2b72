package scanner

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/gnana997/compdoc/pkg/naming"
)

// EnumerateCatalog lists the component names under root that satisfy
// conventions. The result is deduplicated and sorted ascending by byte order.
//
// It never fails: an unreadable root or an invalid pattern yields an empty
// catalog. An empty convention set also yields an empty catalog.
func EnumerateCatalog(root string, conventions naming.Set, cfg ScanConfig) []string {
	names := make([]string, 0)
	if len(conventions) == 0 {
		return names
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return names
	}
	files, err := DiscoverFiles(absRoot, cfg)
	if err != nil {
		return names
	}

	seen := make(map[string]bool, len(files))
	for _, f := range files {
		name, ok := ComponentName(absRoot, f)
		if !ok || !conventions.Matches(name) || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// ComponentName derives the component name for a file under absRoot: the
// containing directory's name for index files, the file stem otherwise.
// Index files directly under absRoot have no component name.
func ComponentName(absRoot, path string) (string, bool) {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem != IndexStem {
		return stem, stem != ""
	}
	dir := filepath.Dir(path)
	if filepath.Clean(dir) == filepath.Clean(absRoot) {
		return "", false
	}
	return filepath.Base(dir), true
}
