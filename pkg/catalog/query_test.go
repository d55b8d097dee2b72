package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearch(t *testing.T) {
	cat := &Catalog{Components: []string{"Button", "ButtonGroup", "Card"}}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"prefix", "butt", []string{"Button", "ButtonGroup"}},
		{"case insensitive", "BUTTON", []string{"Button", "ButtonGroup"}},
		{"substring", "group", []string{"ButtonGroup"}},
		{"surrounding whitespace", "  card ", []string{"Card"}},
		{"no match", "zzz", []string{}},
		{"empty query matches nothing", "", []string{}},
		{"whitespace query matches nothing", "   ", []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, cat.Search(tc.query))
		})
	}
}

func TestFormatSearch(t *testing.T) {
	assert.Equal(t,
		"Found 2 component(s) matching \"butt\":\n\n- Button\n- ButtonGroup",
		FormatSearch("butt", []string{"Button", "ButtonGroup"}))
}

func TestFormatSearch_NoMatches(t *testing.T) {
	got := FormatSearch("zzz", nil)
	assert.Equal(t, `No components found matching "zzz".`, got)
	assert.Equal(t, NoMatchesMessage("zzz"), got)
}
