package docs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnana997/compdoc/pkg/config"
	"github.com/gnana997/compdoc/pkg/naming"
	"github.com/gnana997/compdoc/pkg/scanner"
)

const buttonSource = `import React from 'react';

interface ButtonProps {
  label: string;
  /** the button size */
  size?: 'sm'|'lg';
}

/**
 * A clickable button.
 */
export function Button({ label, size = 'sm' }: ButtonProps) {
  return <button data-size={size}>{label}</button>;
}
`

func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestService(t *testing.T, conventions ...naming.Convention) (*Service, string) {
	t.Helper()
	root := t.TempDir()
	writeFile(t, root, "components/Button.tsx", buttonSource)
	writeFile(t, root, "components/ButtonGroup/index.tsx", "export const ButtonGroup = () => null;\n")
	writeFile(t, root, "components/Card.jsx", "type CardProps = BaseProps;\nexport const Card = () => null;\n")
	writeFile(t, root, "components/date-picker.tsx", "export const DatePicker = () => null;\n")
	writeFile(t, root, "node_modules/lib/Modal.tsx", "export const Modal = () => null;\n")

	cfg := config.Default(root)
	if len(conventions) > 0 {
		cfg.Conventions = conventions
	}
	return NewService(cfg, nil), root
}

func TestAnalyzeComponent_EndToEndButton(t *testing.T) {
	s, root := newTestService(t)

	c, err := s.Component("Button")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "components", "Button.tsx"), c.Path)
	assert.Equal(t, "A clickable button.", c.Description.Text)
	require.Len(t, c.Props, 2)
	assert.Equal(t, "label", c.Props[0].Name)
	assert.True(t, c.Props[0].Required)
	assert.Empty(t, c.Props[0].Description)
	assert.Equal(t, "size", c.Props[1].Name)
	assert.False(t, c.Props[1].Required)
	assert.Equal(t, "the button size", c.Props[1].Description)

	report, err := s.AnalyzeComponent("Button")
	require.NoError(t, err)
	assert.Contains(t, report, "Component: Button")
	assert.Contains(t, report, "A clickable button.")
	assert.Contains(t, report, `label="sample"`)

	usage, err := s.UsageExample("Button")
	require.NoError(t, err)
	assert.Contains(t, usage, `label="sample"`)
	assert.NotContains(t, usage, "size")
}

func TestComponent_NotFound(t *testing.T) {
	s, _ := newTestService(t)

	ops := map[string]func(string) (string, error){
		"analyze": s.AnalyzeComponent,
		"usage":   s.UsageExample,
		"story":   s.CreateStory,
		"suggest": s.SuggestDescription,
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			_, err := op("Nope")
			require.Error(t, err)
			assert.True(t, errors.Is(err, scanner.ErrComponentNotFound))
			assert.Contains(t, err.Error(), `"Nope"`)
		})
	}
}

func TestComponent_IgnoredDirectoryIsNotResolved(t *testing.T) {
	s, _ := newTestService(t)
	_, err := s.Component("Modal")
	assert.ErrorIs(t, err, scanner.ErrComponentNotFound)
}

func TestListComponents(t *testing.T) {
	s, _ := newTestService(t)

	got, err := s.ListComponents()
	require.NoError(t, err)
	assert.Equal(t, "Components (3):\n\n- Button\n- ButtonGroup\n- Card", got)
}

func TestListComponents_BothConventions(t *testing.T) {
	s, _ := newTestService(t, naming.Pascal, naming.Kebab)

	got, err := s.ListComponents()
	require.NoError(t, err)
	assert.Contains(t, got, "Components (4):")
	assert.Contains(t, got, "- date-picker")
}

func TestSearchComponents(t *testing.T) {
	s, _ := newTestService(t)

	got, err := s.SearchComponents("butt")
	require.NoError(t, err)
	assert.Equal(t, "Found 2 component(s) matching \"butt\":\n\n- Button\n- ButtonGroup", got)

	got, err = s.SearchComponents("zzz")
	require.NoError(t, err)
	assert.Equal(t, `No components found matching "zzz".`, got)
}

func TestCreateStory(t *testing.T) {
	s, root := newTestService(t)

	got, err := s.CreateStory("Button")
	require.NoError(t, err)

	storyPath := filepath.Join(root, "components", "Button.stories.tsx")
	assert.Equal(t, "Storybook file created: "+storyPath, got)

	data, err := os.ReadFile(storyPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "title: 'Components/Button'")
	assert.Contains(t, string(data), "label: 'sample',")
	assert.NotContains(t, string(data), "size:")

	// The scaffold is not itself a component.
	listing, err := s.ListComponents()
	require.NoError(t, err)
	assert.NotContains(t, listing, "stories")
}

func TestCreateStory_IndexComponent(t *testing.T) {
	s, root := newTestService(t)

	_, err := s.CreateStory("ButtonGroup")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(root, "components", "ButtonGroup", "index.stories.tsx"))
}

func TestSuggestDescription(t *testing.T) {
	s, root := newTestService(t)

	got, err := s.SuggestDescription("Card")
	require.NoError(t, err)
	assert.Contains(t, got, "Location: "+filepath.Join(root, "components", "Card.jsx"))
	assert.Contains(t, got, "- ...: BaseProps")
	assert.Contains(t, got, "Code snippet:\n(none)")
	assert.Contains(t, got, "Related components in same directory:\n(none)")
}

func TestService_SeesChangesBetweenCalls(t *testing.T) {
	s, root := newTestService(t)

	before, err := s.ListComponents()
	require.NoError(t, err)
	assert.NotContains(t, before, "Tooltip")

	writeFile(t, root, "components/Tooltip.tsx", "export const Tooltip = () => null;\n")

	after, err := s.ListComponents()
	require.NoError(t, err)
	assert.Contains(t, after, "- Tooltip")
}
