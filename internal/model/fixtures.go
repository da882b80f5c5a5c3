package model

// Fixtures is the fixed dataset the catalog is built from.
type Fixtures struct {
	Users      []User     `json:"users" yaml:"users"`
	Categories []Category `json:"categories" yaml:"categories"`
	Products   []Product  `json:"products" yaml:"products"`
}

// Counts returns the number of users, categories and products.
func (f Fixtures) Counts() (users, categories, products int) {
	return len(f.Users), len(f.Categories), len(f.Products)
}
