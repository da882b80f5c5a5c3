package viewmodel

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// String returns a string representation of the app state.
func (s AppState) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StateBrowsing:
		return "Browsing"
	case StateError:
		return "Error"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// String returns a string representation of the focus.
func (f Focus) String() string {
	switch f {
	case FocusTable:
		return "Table"
	case FocusSearch:
		return "Search"
	case FocusCategories:
		return "Categories"
	default:
		return fmt.Sprintf("Unknown(%d)", f)
	}
}

// String returns a string representation of the tone.
func (t Tone) String() string {
	switch t {
	case ToneNone:
		return "None"
	case ToneFemale:
		return "Female"
	case ToneMale:
		return "Male"
	default:
		return fmt.Sprintf("Unknown(%d)", t)
	}
}

// TruncateString truncates s to maxWidth terminal cells, ending with an
// ellipsis when there is room for one. Wide runes such as emoji count as two
// cells.
func TruncateString(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// PadRight pads s with spaces to width terminal cells.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// SanitizeForDisplay removes potentially problematic characters for terminal display.
func SanitizeForDisplay(s string) string {
	// Remove control characters and normalize whitespace
	s = strings.Map(func(r rune) rune {
		if r < 32 && r != '\t' {
			return ' '
		}
		return r
	}, s)

	// Collapse multiple spaces
	return strings.Join(strings.Fields(s), " ")
}
