package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gnana997/compdoc/pkg/extractor"
)

func TestFormatDocumentation(t *testing.T) {
	meta := extractor.Metadata{
		Description: extractor.Description{Text: "A clickable button.", Present: true},
		Props: []extractor.PropDescriptor{
			{Name: "label", Type: "string", Required: true},
			{Name: "size", Type: "'sm'|'lg'", Description: "the button size"},
		},
	}

	got := FormatDocumentation(NewReport("Button", "/p/Button.tsx", meta))

	want := "Component: Button\n" +
		"Location: /p/Button.tsx\n\n" +
		"Description:\nA clickable button.\n\n" +
		"Props (2):\n" +
		"- label: string (required)\n" +
		"- size: 'sm'|'lg' (optional) - the button size\n\n" +
		"Usage example:\n" +
		"import { Button } from './Button';\n\n" +
		"<Button\n  label=\"sample\"\n></Button>"
	assert.Equal(t, want, got)
}

func TestFormatDocumentation_MissingDescription(t *testing.T) {
	meta := extractor.Metadata{
		Description: extractor.Description{Text: extractor.DescriptionPlaceholder},
		Props:       []extractor.PropDescriptor{},
	}

	got := FormatDocumentation(NewReport("Card", "/p/Card.tsx", meta))

	assert.Contains(t, got, "Description (missing):\n"+extractor.DescriptionPlaceholder)
	assert.Contains(t, got, "Props (0):\n(none)\n")
	assert.Contains(t, got, "<Card></Card>")
}
