package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSampleFor(t *testing.T) {
	tests := []struct {
		typeText string
		kind     SampleKind
		attr     string
	}{
		{"string", SampleString, `="sample"`},
		{"String", SampleString, `="sample"`},
		{"'sm' | 'lg'", SampleString, `="sample"`},
		{`"primary" | "secondary"`, SampleString, `="sample"`},
		{"`px-${number}`", SampleString, `="sample"`},
		{"number", SampleNumber, "={42}"},
		{"boolean", SampleBoolean, "={true}"},
		{"() => void", SampleCallback, "={() => {}}"},
		{"Function", SampleCallback, "={() => {}}"},
		{"(value: number) => void", SampleNumber, "={42}"},
		{"React.ReactNode", SamplePlaceholder, "={" + PlaceholderValue + "}"},
		{"", SamplePlaceholder, "={" + PlaceholderValue + "}"},
	}
	for _, tc := range tests {
		t.Run(tc.typeText, func(t *testing.T) {
			s := SampleFor(tc.typeText)
			assert.Equal(t, tc.kind, s.Kind)
			assert.Equal(t, tc.attr, s.JSXAttribute())
		})
	}
}

func TestSample_Expression(t *testing.T) {
	assert.Equal(t, "'sample'", SampleFor("string").Expression())
	assert.Equal(t, "42", SampleFor("number").Expression())
	assert.Equal(t, "() => {}", SampleFor("() => void").Expression())
}
