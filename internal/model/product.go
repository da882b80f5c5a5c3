package model

// Product is a catalog entry referencing its category by ID.
type Product struct {
	Name       string `json:"name" yaml:"name" db:"name"`
	ID         int    `json:"id" yaml:"id" db:"id"`
	CategoryID int    `json:"categoryId" yaml:"categoryId" db:"category_id"`
}

// Item is a product with its category and that category's owner resolved.
// Category and User are nil only when the fixtures are referentially inconsistent.
type Item struct {
	Category *Category `json:"category,omitempty"`
	User     *User     `json:"user,omitempty"`
	Product
}

// CategoryTitle returns the category title, or "" when the category is absent.
func (i Item) CategoryTitle() string {
	if i.Category == nil {
		return ""
	}
	return i.Category.Title
}

// OwnerName returns the owner's name, or "" when the owner is absent.
func (i Item) OwnerName() string {
	if i.User == nil {
		return ""
	}
	return i.User.Name
}

// OwnerID returns the owner's ID, or 0 when the owner is absent.
func (i Item) OwnerID() int {
	if i.User == nil {
		return 0
	}
	return i.User.ID
}
