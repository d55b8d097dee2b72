package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverFiles_BasicDirectory(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, tmp, "components/Button.tsx", "export function Button() {}")
	writeFile(t, tmp, "components/Card.jsx", "export function Card() {}")
	writeFile(t, tmp, "components/utils.ts", "export {}")

	files, err := DiscoverFiles(tmp, DefaultScanConfig())
	require.NoError(t, err)

	for _, f := range files {
		assert.True(t, filepath.IsAbs(f), "expected absolute path, got %s", f)
	}

	names := fileNames(files)
	assert.Contains(t, names, "Button.tsx")
	assert.Contains(t, names, "Card.jsx")
	assert.NotContains(t, names, "utils.ts", "only component extensions are included")
}

func TestDiscoverFiles_ExcludesIgnoredPaths(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, tmp, "Button.tsx", "export function Button() {}")
	writeFile(t, tmp, "Button.test.tsx", "test('button', () => {})")
	writeFile(t, tmp, "Button.spec.tsx", "describe('button', () => {})")
	writeFile(t, tmp, "Button.stories.tsx", "export default { title: 'Button' }")
	writeFile(t, tmp, "node_modules/lib/Dep.tsx", "export function Dep() {}")
	writeFile(t, tmp, "packages/ui/node_modules/Nested.tsx", "export function Nested() {}")
	writeFile(t, tmp, "dist/Built.jsx", "export function Built() {}")

	files, err := DiscoverFiles(tmp, DefaultScanConfig())
	require.NoError(t, err)

	names := fileNames(files)
	assert.Equal(t, []string{"Button.tsx"}, names)
}

func TestDiscoverFiles_SortedOutput(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, tmp, "z/Zed.tsx", "")
	writeFile(t, tmp, "a/Alpha.tsx", "")
	writeFile(t, tmp, "m/Mid.jsx", "")

	files, err := DiscoverFiles(tmp, DefaultScanConfig())
	require.NoError(t, err)
	require.Len(t, files, 3)

	for i := 1; i < len(files); i++ {
		assert.LessOrEqual(t, files[i-1], files[i], "files should be sorted")
	}
}

func TestDiscoverFiles_EmptyDirectory(t *testing.T) {
	tmp := t.TempDir()
	files, err := DiscoverFiles(tmp, DefaultScanConfig())
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestDiscoverFiles_InvalidGlob(t *testing.T) {
	cfg := DefaultScanConfig()
	cfg.Exclude = append(cfg.Exclude, "[invalid")
	_, err := DiscoverFiles(t.TempDir(), cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid exclude pattern")
}

func TestDiscoverFiles_MissingRoot(t *testing.T) {
	_, err := DiscoverFiles(filepath.Join(t.TempDir(), "missing"), DefaultScanConfig())
	assert.Error(t, err)
}

// --- helpers ---

func fileNames(paths []string) []string {
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = filepath.Base(p)
	}
	return names
}

// writeFile writes content to dir/rel, creating parent directories.
func writeFile(t *testing.T, dir, rel, content string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
