// Package catalog joins fixture data once and derives the visible product
// list from the viewer's state.
package catalog

import (
	"slices"

	"github.com/Veraticus/catalog/internal/model"
	"golang.org/x/text/language"
)

// EmptyMessage is what every surface shows when no product is visible.
const EmptyMessage = "No products matching selected criteria"

// Catalog holds the joined, immutable product set for a session.
type Catalog struct {
	sorter     *Sorter
	users      []model.User
	categories []model.Category
	items      []model.Item
	titles     []string
}

// Option configures a Catalog.
type Option func(*options)

type options struct {
	locale language.Tag
}

// WithLocale sets the collation language used for string sorts.
func WithLocale(tag language.Tag) Option {
	return func(o *options) {
		o.locale = tag
	}
}

// New copies fx, joins it and returns the catalog.
func New(fx model.Fixtures, opts ...Option) *Catalog {
	o := options{locale: language.English}
	for _, opt := range opts {
		opt(&o)
	}

	owned := model.Fixtures{
		Users:      slices.Clone(fx.Users),
		Categories: slices.Clone(fx.Categories),
		Products:   slices.Clone(fx.Products),
	}

	titles := make([]string, 0, len(owned.Categories))
	for _, c := range owned.Categories {
		if !slices.Contains(titles, c.Title) {
			titles = append(titles, c.Title)
		}
	}

	return &Catalog{
		sorter:     NewSorter(o.locale),
		users:      owned.Users,
		categories: owned.Categories,
		items:      Join(owned),
		titles:     titles,
	}
}

// Items returns the joined set in fixture order.
func (c *Catalog) Items() []model.Item {
	return slices.Clone(c.items)
}

// Users returns the fixture users in fixture order.
func (c *Catalog) Users() []model.User {
	return slices.Clone(c.users)
}

// Categories returns the fixture categories in fixture order.
func (c *Catalog) Categories() []model.Category {
	return slices.Clone(c.categories)
}

// Titles returns every distinct category title in fixture order.
func (c *Catalog) Titles() []string {
	return slices.Clone(c.titles)
}

// User looks up a user by ID.
func (c *Catalog) User(id int) (model.User, bool) {
	for _, u := range c.users {
		if u.ID == id {
			return u, true
		}
	}
	return model.User{}, false
}

// InitialState is the state a new session starts in: every category, all
// owners, no query, sorted by ID ascending.
func (c *Catalog) InitialState() State {
	return State{
		Categories: c.Titles(),
		SortKey:    SortID,
		Direction:  Ascending,
	}
}

// Reduce applies a to s against this catalog's category titles.
func (c *Catalog) Reduce(s State, a Action) State {
	return Reduce(s, a, c.titles)
}

// Visible runs the filter pipeline and the sort for s.
func (c *Catalog) Visible(s State) []model.Item {
	filtered := Filter(c.items, s.OwnerID, s.Query, s.Categories)
	return c.sorter.Sort(filtered, s.SortKey, s.Direction)
}
