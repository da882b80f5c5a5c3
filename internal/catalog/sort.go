package catalog

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/Veraticus/catalog/internal/common"
	"github.com/Veraticus/catalog/internal/model"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey names the column driving the order.
type SortKey string

// Sort keys.
const (
	SortNone     SortKey = "none"
	SortID       SortKey = "id"
	SortName     SortKey = "name"
	SortCategory SortKey = "category"
	SortOwner    SortKey = "owner"
)

// Columns lists the sortable keys in table order.
var Columns = []SortKey{SortID, SortName, SortCategory, SortOwner}

// ParseSortKey converts user input into a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	switch key := SortKey(strings.ToLower(strings.TrimSpace(s))); key {
	case SortNone, SortID, SortName, SortCategory, SortOwner:
		return key, nil
	case "":
		return SortNone, nil
	case "product":
		return SortName, nil
	case "user":
		return SortOwner, nil
	default:
		return SortNone, fmt.Errorf("%w: %q", common.ErrUnknownSortKey, s)
	}
}

// Sortable reports whether the key is a column key.
func (k SortKey) Sortable() bool {
	return slices.Contains(Columns, k)
}

// Direction is the sort direction.
type Direction int

const (
	// Ascending sorts smallest first.
	Ascending Direction = iota
	// Descending sorts largest first.
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "descending"
	}
	return "ascending"
}

// Sorter orders items with locale-aware string comparison.
// A Sorter is not safe for concurrent use.
type Sorter struct {
	collator *collate.Collator
}

// NewSorter creates a sorter that compares strings by the rules of tag.
func NewSorter(tag language.Tag) *Sorter {
	return &Sorter{collator: collate.New(tag)}
}

// Sort returns a new slice ordered by key and dir. SortNone, or any
// non-column key, returns the items in their input order. The input is never
// modified. Ties have no defined order.
func (s *Sorter) Sort(items []model.Item, key SortKey, dir Direction) []model.Item {
	sorted := slices.Clone(items)

	compare := s.comparator(key)
	if compare == nil {
		return sorted
	}

	if dir == Descending {
		ascending := compare
		compare = func(a, b model.Item) int { return ascending(b, a) }
	}

	slices.SortFunc(sorted, compare)
	return sorted
}

func (s *Sorter) comparator(key SortKey) func(a, b model.Item) int {
	switch key {
	case SortID:
		return func(a, b model.Item) int {
			return cmp.Compare(a.ID, b.ID)
		}
	case SortName:
		return func(a, b model.Item) int {
			return s.collator.CompareString(a.Name, b.Name)
		}
	case SortCategory:
		return func(a, b model.Item) int {
			return s.collator.CompareString(categorySegment(a), categorySegment(b))
		}
	case SortOwner:
		return func(a, b model.Item) int {
			return s.collator.CompareString(a.OwnerName(), b.OwnerName())
		}
	default:
		return nil
	}
}

func categorySegment(item model.Item) string {
	if item.Category == nil {
		return ""
	}
	return item.Category.LeadingSegment()
}
