package catalog

import "slices"

// State is everything the viewer controls. It is a value: transitions return
// a new State and never alias the previous one's category slice.
type State struct {
	// Categories holds the selected category titles in fixture order.
	Categories []string
	Query      string
	SortKey    SortKey
	Direction  Direction
	// OwnerID selects a single owner; 0 means all owners.
	OwnerID int
}

// Indicator is the per-column sort marker.
type Indicator int

// Indicators.
const (
	IndicatorNeutral Indicator = iota
	IndicatorAscending
	IndicatorDescending
)

// Symbol returns the glyph shown next to a column header.
func (i Indicator) Symbol() string {
	switch i {
	case IndicatorAscending:
		return "▲"
	case IndicatorDescending:
		return "▼"
	default:
		return "↕"
	}
}

// ToggleSort advances the three-click cycle for the clicked column: a new
// column starts ascending, ascending turns descending, descending clears the
// sort. Non-column keys leave the state unchanged.
func (s State) ToggleSort(clicked SortKey) State {
	if !clicked.Sortable() {
		return s
	}

	next := s.clone()
	switch {
	case clicked != s.SortKey:
		next.SortKey = clicked
		next.Direction = Ascending
	case s.Direction == Descending:
		next.SortKey = SortNone
		next.Direction = Ascending
	default:
		next.Direction = Descending
	}
	return next
}

// Indicator reports the marker for column key.
func (s State) Indicator(key SortKey) Indicator {
	if s.SortKey != key || !key.Sortable() {
		return IndicatorNeutral
	}
	if s.Direction == Descending {
		return IndicatorDescending
	}
	return IndicatorAscending
}

// Selected reports whether title is in the category selection.
func (s State) Selected(title string) bool {
	return slices.Contains(s.Categories, title)
}

// AllSelected reports whether every title in all is selected.
func (s State) AllSelected(all []string) bool {
	for _, title := range all {
		if !s.Selected(title) {
			return false
		}
	}
	return true
}

// Equal reports whether two states select the same products in the same order.
func (s State) Equal(other State) bool {
	return s.OwnerID == other.OwnerID &&
		s.Query == other.Query &&
		s.SortKey == other.SortKey &&
		s.Direction == other.Direction &&
		slices.Equal(s.Categories, other.Categories)
}

func (s State) clone() State {
	s.Categories = slices.Clone(s.Categories)
	return s
}
