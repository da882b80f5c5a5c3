package catalog

import "slices"

// Action is a user intent applied by Reduce.
type Action interface {
	action()
}

// SetOwner selects a single owner, or all owners with ID 0.
type SetOwner struct{ ID int }

// SetQuery replaces the search text.
type SetQuery struct{ Text string }

// ClearQuery empties the search text.
type ClearQuery struct{}

// ToggleCategory adds or removes one category title from the selection.
type ToggleCategory struct{ Title string }

// SelectAllCategories selects every known category.
type SelectAllCategories struct{}

// ClearCategories deselects every category.
type ClearCategories struct{}

// ToggleSort advances the sort cycle for a column.
type ToggleSort struct{ Key SortKey }

// SetSort sets the sort key and direction directly.
type SetSort struct {
	Key       SortKey
	Direction Direction
}

// Reset clears the query and owner, selects every category and removes the sort.
type Reset struct{}

func (SetOwner) action()            {}
func (SetQuery) action()            {}
func (ClearQuery) action()          {}
func (ToggleCategory) action()      {}
func (SelectAllCategories) action() {}
func (ClearCategories) action()     {}
func (ToggleSort) action()          {}
func (SetSort) action()             {}
func (Reset) action()               {}

// Reduce applies a to s. titles is the ordered list of every known category
// title; selections are kept in that order and unknown titles are ignored.
func Reduce(s State, a Action, titles []string) State {
	next := s.clone()

	switch a := a.(type) {
	case SetOwner:
		next.OwnerID = a.ID
	case SetQuery:
		next.Query = a.Text
	case ClearQuery:
		next.Query = ""
	case ToggleCategory:
		next.Categories = toggleTitle(next.Categories, a.Title, titles)
	case SelectAllCategories:
		next.Categories = slices.Clone(titles)
	case ClearCategories:
		next.Categories = []string{}
	case ToggleSort:
		return next.ToggleSort(a.Key)
	case SetSort:
		if a.Key == SortNone || a.Key.Sortable() {
			next.SortKey = a.Key
			next.Direction = a.Direction
			if a.Key == SortNone {
				next.Direction = Ascending
			}
		}
	case Reset:
		next.Query = ""
		next.OwnerID = 0
		next.Categories = slices.Clone(titles)
		next.SortKey = SortNone
		next.Direction = Ascending
	}

	return next
}

func toggleTitle(selected []string, title string, titles []string) []string {
	if !slices.Contains(titles, title) {
		return selected
	}

	on := !slices.Contains(selected, title)
	out := make([]string, 0, len(titles))
	for _, t := range titles {
		if t == title {
			if on {
				out = append(out, t)
			}
			continue
		}
		if slices.Contains(selected, t) {
			out = append(out, t)
		}
	}
	return out
}
