package testutil

import (
	"github.com/Veraticus/catalog/internal/model"
)

// Builder assembles a fixture dataset. IDs are assigned in insertion order
// starting at 1 unless given explicitly; category and product references are
// resolved by title and name at Build time.
type Builder struct {
	users      []model.User
	categories []pendingCategory
	products   []pendingProduct
}

type pendingCategory struct {
	category model.Category
	owner    string
}

type pendingProduct struct {
	product  model.Product
	category string
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithUser adds a user.
func (b *Builder) WithUser(name string, sex model.Sex) *Builder {
	b.users = append(b.users, model.User{ID: len(b.users) + 1, Name: name, Sex: sex})
	return b
}

// WithDefaultUsers adds Roma (m) and Anna (f).
func (b *Builder) WithDefaultUsers() *Builder {
	return b.WithUser("Roma", model.SexMale).WithUser("Anna", model.SexFemale)
}

// WithCategory adds a category owned by the named user. An unknown owner
// name leaves a dangling OwnerID of 0.
func (b *Builder) WithCategory(title, icon, owner string) *Builder {
	b.categories = append(b.categories, pendingCategory{
		category: model.Category{ID: len(b.categories) + 1, Title: title, Icon: icon},
		owner:    owner,
	})
	return b
}

// WithProduct adds a product in the titled category. An unknown title
// leaves a dangling CategoryID of 0.
func (b *Builder) WithProduct(name, category string) *Builder {
	b.products = append(b.products, pendingProduct{
		product:  model.Product{ID: len(b.products) + 1, Name: name},
		category: category,
	})
	return b
}

// Build resolves references and returns the dataset.
func (b *Builder) Build() model.Fixtures {
	userIDs := make(map[string]int, len(b.users))
	for _, u := range b.users {
		if _, ok := userIDs[u.Name]; !ok {
			userIDs[u.Name] = u.ID
		}
	}

	fx := model.Fixtures{
		Users:      append([]model.User(nil), b.users...),
		Categories: make([]model.Category, 0, len(b.categories)),
		Products:   make([]model.Product, 0, len(b.products)),
	}

	categoryIDs := make(map[string]int, len(b.categories))
	for _, entry := range b.categories {
		c := entry.category
		c.OwnerID = userIDs[entry.owner]
		if _, ok := categoryIDs[c.Title]; !ok {
			categoryIDs[c.Title] = c.ID
		}
		fx.Categories = append(fx.Categories, c)
	}

	for _, entry := range b.products {
		p := entry.product
		p.CategoryID = categoryIDs[entry.category]
		fx.Products = append(fx.Products, p)
	}

	return fx
}
