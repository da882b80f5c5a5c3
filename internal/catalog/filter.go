package catalog

import (
	"strings"

	"github.com/Veraticus/catalog/internal/model"
	"golang.org/x/text/cases"
)

// Filter returns the items that pass every active filter, in input order.
//
// A product is kept only if its category title is among categories (so an
// empty selection, or a missing category, keeps nothing). ownerID 0 disables
// the owner filter. query matches product names as a case-folded substring
// after trimming; a blank query disables the search filter.
func Filter(items []model.Item, ownerID int, query string, categories []string) []model.Item {
	selected := make(map[string]struct{}, len(categories))
	for _, title := range categories {
		selected[title] = struct{}{}
	}

	visible := make([]model.Item, 0, len(items))
	for _, item := range items {
		if item.Category == nil {
			continue
		}
		if _, ok := selected[item.Category.Title]; ok {
			visible = append(visible, item)
		}
	}

	if ownerID != 0 {
		visible = keep(visible, func(item model.Item) bool {
			return item.User != nil && item.User.ID == ownerID
		})
	}

	if needle := NormalizeQuery(query); needle != "" {
		folder := cases.Fold()
		visible = keep(visible, func(item model.Item) bool {
			return strings.Contains(folder.String(item.Name), needle)
		})
	}

	return visible
}

// NormalizeQuery trims and case-folds a search query.
func NormalizeQuery(query string) string {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return ""
	}
	return cases.Fold().String(trimmed)
}

func keep(items []model.Item, pred func(model.Item) bool) []model.Item {
	out := items[:0]
	for _, item := range items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}
