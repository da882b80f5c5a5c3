package components

import (
	"testing"

	"github.com/Veraticus/catalog/internal/catalog"
	"github.com/Veraticus/catalog/internal/testutil"
	"github.com/Veraticus/catalog/internal/tui/viewmodel"
)

func testView(t *testing.T, actions ...catalog.Action) viewmodel.CatalogView {
	t.Helper()

	c := catalog.New(testutil.NewBuilder().
		WithDefaultUsers().
		WithCategory("Drinks", "🍺", "Roma").
		WithCategory("Grocery", "🍞", "Anna").
		WithProduct("Milk", "Drinks").
		WithProduct("Bread", "Grocery").
		WithProduct("Eggs", "Grocery").
		WithProduct("Coca-Cola", "Drinks").
		WithProduct("Sugar", "Grocery").
		Build())

	s := c.InitialState()
	for _, a := range actions {
		s = c.Reduce(s, a)
	}
	return viewmodel.BuildCatalogView(c, s, c.Visible(s))
}
