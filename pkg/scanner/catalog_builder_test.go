package scanner

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnana997/compdoc/pkg/naming"
)

func catalogFixture(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	writeFile(t, tmp, "components/Button.tsx", "")
	writeFile(t, tmp, "components/ButtonGroup.jsx", "")
	writeFile(t, tmp, "components/Card/index.tsx", "")
	writeFile(t, tmp, "legacy/Card.jsx", "") // duplicate name
	writeFile(t, tmp, "components/date-picker.tsx", "")
	writeFile(t, tmp, "components/useToggle.tsx", "")
	writeFile(t, tmp, "components/tooltip/index.jsx", "")
	writeFile(t, tmp, "components/Button.stories.tsx", "")
	writeFile(t, tmp, "node_modules/pkg/Hidden.tsx", "")
	writeFile(t, tmp, "index.tsx", "")
	writeFile(t, tmp, "components/helpers.ts", "")
	return tmp
}

func TestEnumerateCatalog_Pascal(t *testing.T) {
	root := catalogFixture(t)

	names := EnumerateCatalog(root, naming.Set{naming.Pascal}, DefaultScanConfig())
	assert.Equal(t, []string{"Button", "ButtonGroup", "Card"}, names)
}

func TestEnumerateCatalog_Kebab(t *testing.T) {
	root := catalogFixture(t)

	names := EnumerateCatalog(root, naming.Set{naming.Kebab}, DefaultScanConfig())
	assert.Equal(t, []string{"date-picker", "tooltip"}, names)
}

func TestEnumerateCatalog_Both(t *testing.T) {
	root := catalogFixture(t)

	names := EnumerateCatalog(root, naming.Set{naming.Kebab, naming.Pascal}, DefaultScanConfig())
	assert.Equal(t, []string{"Button", "ButtonGroup", "Card", "date-picker", "tooltip"}, names)
}

func TestEnumerateCatalog_EmptyConventions(t *testing.T) {
	root := catalogFixture(t)

	names := EnumerateCatalog(root, naming.Set{}, DefaultScanConfig())
	assert.NotNil(t, names)
	assert.Empty(t, names)
}

func TestEnumerateCatalog_Invariants(t *testing.T) {
	root := catalogFixture(t)

	sets := []naming.Set{
		{naming.Pascal},
		{naming.Kebab},
		{naming.Pascal, naming.Kebab},
	}
	for _, set := range sets {
		first := EnumerateCatalog(root, set, DefaultScanConfig())
		second := EnumerateCatalog(root, set, DefaultScanConfig())
		assert.Equal(t, first, second, "repeated calls must be identical")

		assert.IsIncreasing(t, first, "catalog must be sorted and unique")
		for _, name := range first {
			assert.True(t, set.Matches(name), "%q fails every enabled convention", name)
		}
	}
}

func TestEnumerateCatalog_MissingRoot(t *testing.T) {
	names := EnumerateCatalog(filepath.Join(t.TempDir(), "nope"), naming.DefaultSet(), DefaultScanConfig())
	assert.Empty(t, names)
}

func TestComponentName(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "project")

	tests := []struct {
		path   string
		expect string
		ok     bool
	}{
		{filepath.Join(root, "src", "Button.tsx"), "Button", true},
		{filepath.Join(root, "src", "Card", "index.jsx"), "Card", true},
		{filepath.Join(root, "index.tsx"), "", false},
		{filepath.Join(root, "src", "date-picker.tsx"), "date-picker", true},
	}
	for _, tc := range tests {
		name, ok := ComponentName(root, tc.path)
		require.Equal(t, tc.ok, ok, tc.path)
		assert.Equal(t, tc.expect, name)
	}
}
