package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gnana997/compdoc/pkg/extractor"
)

// StorySuffix is appended to a component file stem to name its story file.
const StorySuffix = ".stories.tsx"

const childrenProp = "children"

// StoryPath returns the story file path for a resolved component file: same
// directory, same stem, StorySuffix.
func StoryPath(resolvedPath string) string {
	return filepath.Join(filepath.Dir(resolvedPath), fileStem(resolvedPath)+StorySuffix)
}

// RenderStory renders a Storybook CSF3 file for a component. A children prop
// is always given a sample value and placed first; other props are only
// included when required.
func RenderStory(name, resolvedPath string, props []extractor.PropDescriptor) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "import type { Meta, StoryObj } from '@storybook/react';\n")
	fmt.Fprintf(&sb, "import { %s } from './%s';\n\n", name, fileStem(resolvedPath))
	fmt.Fprintf(&sb, "const meta: Meta<typeof %s> = {\n", name)
	fmt.Fprintf(&sb, "  title: 'Components/%s',\n", name)
	fmt.Fprintf(&sb, "  component: %s,\n", name)
	sb.WriteString("};\n\n")
	sb.WriteString("export default meta;\n")
	fmt.Fprintf(&sb, "type Story = StoryObj<typeof %s>;\n\n", name)
	sb.WriteString("export const Default: Story = {\n")
	fmt.Fprintf(&sb, "  args: %s,\n", storyArgs(props))
	sb.WriteString("};\n")
	return sb.String()
}

func storyArgs(props []extractor.PropDescriptor) string {
	var args []string
	for _, p := range props {
		if p.Name == childrenProp {
			args = append(args, fmt.Sprintf("%s: '%s'", childrenProp, ChildrenText))
			break
		}
	}
	for _, p := range props {
		if !p.Required || p.Name == childrenProp || p.IsSpread() {
			continue
		}
		args = append(args, p.Name+": "+SampleFor(p.Type).Expression())
	}

	if len(args) == 0 {
		return "{}"
	}
	return "{\n    " + strings.Join(args, ",\n    ") + ",\n  }"
}

// GenerateStoryScaffold renders the story for a component and writes it next
// to the component file, replacing any existing file. It returns the path
// written.
func GenerateStoryScaffold(name, resolvedPath string, props []extractor.PropDescriptor) (string, error) {
	path := StoryPath(resolvedPath)
	if err := writeFileAtomic(path, []byte(RenderStory(name, resolvedPath, props))); err != nil {
		return "", fmt.Errorf("failed to write story file %s: %w", path, err)
	}
	return path, nil
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it over path, so readers see either the old or the new content.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
