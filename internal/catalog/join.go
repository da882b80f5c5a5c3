package catalog

import "github.com/Veraticus/catalog/internal/model"

// Join resolves each product's category and that category's owner, keeping
// product order. Unresolvable references are left nil. With duplicate IDs the
// first entity wins.
func Join(fx model.Fixtures) []model.Item {
	categories := make(map[int]*model.Category, len(fx.Categories))
	for i := range fx.Categories {
		c := &fx.Categories[i]
		if _, seen := categories[c.ID]; !seen {
			categories[c.ID] = c
		}
	}

	users := make(map[int]*model.User, len(fx.Users))
	for i := range fx.Users {
		u := &fx.Users[i]
		if _, seen := users[u.ID]; !seen {
			users[u.ID] = u
		}
	}

	items := make([]model.Item, 0, len(fx.Products))
	for _, p := range fx.Products {
		item := model.Item{Product: p}
		if c, ok := categories[p.CategoryID]; ok {
			item.Category = c
			if u, ok := users[c.OwnerID]; ok {
				item.User = u
			}
		}
		items = append(items, item)
	}

	return items
}
