package viewmodel

import (
	"fmt"

	"github.com/Veraticus/catalog/internal/catalog"
	"github.com/Veraticus/catalog/internal/model"
)

// EmptyMessage is shown in place of the table when no product is visible.
const EmptyMessage = catalog.EmptyMessage

// Tone selects how an owner's name is colored.
type Tone int

const (
	// ToneNone leaves the owner cell unstyled.
	ToneNone Tone = iota
	// ToneFemale marks a female owner.
	ToneFemale
	// ToneMale marks a male owner.
	ToneMale
)

// CatalogView is everything the browser screen renders for one state.
type CatalogView struct {
	Query         string
	Permalink     string
	Columns       []ColumnHeader
	Rows          []RowView
	Owners        []OwnerTab
	Categories    []CategoryChip
	Total         int
	AllCategories bool
}

// ColumnHeader is a sortable table column.
type ColumnHeader struct {
	Title     string
	Key       catalog.SortKey
	Indicator catalog.Indicator
}

// RowView is one visible product.
type RowView struct {
	Name     string
	Category string
	Owner    string
	ID       int
	Tone     Tone
}

// OwnerTab is an entry of the owner selector. ID 0 is the "All" tab.
type OwnerTab struct {
	Label  string
	ID     int
	Active bool
}

// CategoryChip is an entry of the category multi-select.
type CategoryChip struct {
	Title    string
	Icon     string
	Selected bool
}

var columnTitles = map[catalog.SortKey]string{
	catalog.SortID:       "ID",
	catalog.SortName:     "Product",
	catalog.SortCategory: "Category",
	catalog.SortOwner:    "User",
}

// BuildCatalogView derives the screen contents from the catalog, the state
// and the already filtered and sorted items.
func BuildCatalogView(c *catalog.Catalog, s catalog.State, visible []model.Item) CatalogView {
	titles := c.Titles()

	view := CatalogView{
		Query:         s.Query,
		Permalink:     c.Permalink(s),
		Total:         len(c.Items()),
		AllCategories: s.AllSelected(titles),
		Columns:       make([]ColumnHeader, 0, len(catalog.Columns)),
		Rows:          make([]RowView, 0, len(visible)),
	}

	for _, key := range catalog.Columns {
		view.Columns = append(view.Columns, ColumnHeader{
			Title:     columnTitles[key],
			Key:       key,
			Indicator: s.Indicator(key),
		})
	}

	for _, item := range visible {
		view.Rows = append(view.Rows, NewRowView(item))
	}

	view.Owners = append(view.Owners, OwnerTab{Label: "All", ID: 0, Active: s.OwnerID == 0})
	for _, u := range c.Users() {
		view.Owners = append(view.Owners, OwnerTab{Label: u.Name, ID: u.ID, Active: s.OwnerID == u.ID})
	}

	icons := make(map[string]string, len(titles))
	for _, category := range c.Categories() {
		if _, ok := icons[category.Title]; !ok {
			icons[category.Title] = category.Icon
		}
	}
	for _, title := range titles {
		view.Categories = append(view.Categories, CategoryChip{
			Title:    title,
			Icon:     icons[title],
			Selected: s.Selected(title),
		})
	}

	return view
}

// NewRowView renders the cells of a single item. Missing references render
// as empty cells.
func NewRowView(item model.Item) RowView {
	row := RowView{
		ID:   item.ID,
		Name: SanitizeForDisplay(item.Name),
	}
	if item.Category != nil {
		row.Category = item.Category.Label()
	}
	if item.User != nil {
		row.Owner = item.User.Name
		switch {
		case item.User.IsFemale():
			row.Tone = ToneFemale
		case item.User.IsMale():
			row.Tone = ToneMale
		}
	}
	return row
}

// IsEmpty returns true if no product is visible.
func (v CatalogView) IsEmpty() bool {
	return len(v.Rows) == 0
}

// ShowClearHint reports whether the search clear hint should be visible.
func (v CatalogView) ShowClearHint() bool {
	return v.Query != ""
}

// CountLabel summarizes how many products are visible.
func (v CatalogView) CountLabel() string {
	return fmt.Sprintf("%d of %d products", len(v.Rows), v.Total)
}

// Label renders the header text with its sort indicator.
func (h ColumnHeader) Label() string {
	return h.Title + " " + h.Indicator.Symbol()
}

// ActiveOwner returns the index of the active owner tab.
func (v CatalogView) ActiveOwner() int {
	for i, tab := range v.Owners {
		if tab.Active {
			return i
		}
	}
	return 0
}
