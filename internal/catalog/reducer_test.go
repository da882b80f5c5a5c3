package catalog_test

import (
	"testing"

	"github.com/Veraticus/catalog/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduce_ToggleCategoryKeepsFixtureOrder(t *testing.T) {
	s := catalog.State{Categories: allTitles}

	s = catalog.Reduce(s, catalog.ToggleCategory{Title: "Grocery"}, allTitles)
	assert.Equal(t, []string{"Drinks", "Fruits - Fresh", "Electronics - Devices", "Clothes"}, s.Categories)

	s = catalog.Reduce(s, catalog.ToggleCategory{Title: "Grocery"}, allTitles)
	assert.Equal(t, allTitles, s.Categories)

	s = catalog.Reduce(s, catalog.ToggleCategory{Title: "Furniture"}, allTitles)
	assert.Equal(t, allTitles, s.Categories)
}

func TestReduce_DoesNotAliasPreviousState(t *testing.T) {
	before := catalog.State{Categories: []string{"Drinks", "Clothes"}}

	after := catalog.Reduce(before, catalog.SelectAllCategories{}, allTitles)
	after.Categories[0] = "mutated"

	assert.Equal(t, []string{"Drinks", "Clothes"}, before.Categories)
}

func TestReduce_Queries(t *testing.T) {
	s := catalog.Reduce(catalog.State{}, catalog.SetQuery{Text: "mil"}, allTitles)
	assert.Equal(t, "mil", s.Query)

	s = catalog.Reduce(s, catalog.ClearQuery{}, allTitles)
	assert.Empty(t, s.Query)
}

func TestReduce_SetSort(t *testing.T) {
	s := catalog.Reduce(catalog.State{}, catalog.SetSort{Key: catalog.SortOwner, Direction: catalog.Descending}, allTitles)
	assert.Equal(t, catalog.SortOwner, s.SortKey)
	assert.Equal(t, catalog.Descending, s.Direction)

	s = catalog.Reduce(s, catalog.SetSort{Key: catalog.SortNone, Direction: catalog.Descending}, allTitles)
	assert.Equal(t, catalog.SortNone, s.SortKey)
	assert.Equal(t, catalog.Ascending, s.Direction)

	s = catalog.Reduce(s, catalog.SetSort{Key: catalog.SortKey("price")}, allTitles)
	assert.Equal(t, catalog.SortNone, s.SortKey)
}

func TestReduce_Reset(t *testing.T) {
	c := embeddedCatalog(t)

	s := c.InitialState()
	s = c.Reduce(s, catalog.SetOwner{ID: 2})
	s = c.Reduce(s, catalog.SetQuery{Text: "a"})
	s = c.Reduce(s, catalog.ClearCategories{})
	s = c.Reduce(s, catalog.ToggleSort{Key: catalog.SortName})
	s = c.Reduce(s, catalog.ToggleSort{Key: catalog.SortName})
	require.Equal(t, catalog.Descending, s.Direction)

	s = c.Reduce(s, catalog.Reset{})

	assert.Equal(t, 0, s.OwnerID)
	assert.Empty(t, s.Query)
	assert.Equal(t, c.Titles(), s.Categories)
	assert.Equal(t, catalog.SortNone, s.SortKey)
	assert.Equal(t, ids(c.Items()), ids(c.Visible(s)))
}

func TestReduce_UncheckAllThenSelectAll(t *testing.T) {
	c := embeddedCatalog(t)
	s := c.InitialState()

	for _, title := range c.Titles() {
		s = c.Reduce(s, catalog.ToggleCategory{Title: title})
	}
	assert.Empty(t, s.Categories)
	assert.Empty(t, c.Visible(s))

	s = c.Reduce(s, catalog.SelectAllCategories{})
	assert.Len(t, c.Visible(s), len(c.Items()))
}
