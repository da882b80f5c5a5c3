package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnums_String(t *testing.T) {
	tests := []struct {
		name  string
		value interface{ String() string }
		want  string
	}{
		{"loading", StateLoading, "Loading"},
		{"browsing", StateBrowsing, "Browsing"},
		{"error", StateError, "Error"},
		{"unknown state", AppState(42), "Unknown(42)"},
		{"table focus", FocusTable, "Table"},
		{"search focus", FocusSearch, "Search"},
		{"categories focus", FocusCategories, "Categories"},
		{"unknown focus", Focus(9), "Unknown(9)"},
		{"no tone", ToneNone, "None"},
		{"female tone", ToneFemale, "Female"},
		{"male tone", ToneMale, "Male"},
		{"unknown tone", Tone(7), "Unknown(7)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.String())
		})
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     string
		maxWidth int
	}{
		{"fits", "Milk", "Milk", 10},
		{"exact", "Milk", "Milk", 4},
		{"ellipsis", "Orange juice", "Orange...", 9},
		{"tiny width", "Orange juice", "Ora", 3},
		{"zero width", "Orange juice", "", 0},
		{"wide runes", "🍏 - Fruits - Fresh", "🍏 - Fr...", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateString(tt.input, tt.maxWidth))
		})
	}
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab  ", PadRight("ab", 4))
	assert.Equal(t, "abcdef", PadRight("abcdef", 4))
}

func TestSanitizeForDisplay(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Coca-Cola", "Coca-Cola"},
		{"control characters", "Milk\x00\x1b[31m", "Milk [31m"},
		{"newlines", "Orange\njuice", "Orange juice"},
		{"repeated spaces", "  T-shirt   large ", "T-shirt large"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeForDisplay(tt.input))
		})
	}
}
