package viewmodel

import (
	"testing"

	"github.com/Veraticus/catalog/internal/catalog"
	"github.com/Veraticus/catalog/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *catalog.Catalog {
	return catalog.New(model.Fixtures{
		Users: []model.User{
			{ID: 1, Name: "Roma", Sex: model.SexMale},
			{ID: 2, Name: "Anna", Sex: model.SexFemale},
		},
		Categories: []model.Category{
			{ID: 1, Title: "Drinks", Icon: "🍺", OwnerID: 1},
			{ID: 2, Title: "Fruits - Fresh", Icon: "🍏", OwnerID: 2},
		},
		Products: []model.Product{
			{ID: 1, Name: "Milk", CategoryID: 1},
			{ID: 2, Name: "Apples", CategoryID: 2},
			{ID: 3, Name: "Lost", CategoryID: 9},
		},
	})
}

func TestBuildCatalogView(t *testing.T) {
	c := testCatalog()
	s := c.InitialState()

	view := BuildCatalogView(c, s, c.Visible(s))

	require.Len(t, view.Columns, 4)
	assert.Equal(t, "ID ▲", view.Columns[0].Label())
	assert.Equal(t, "Product ↕", view.Columns[1].Label())
	assert.Equal(t, "Category ↕", view.Columns[2].Label())
	assert.Equal(t, "User ↕", view.Columns[3].Label())

	require.Len(t, view.Rows, 2)
	assert.Equal(t, RowView{ID: 1, Name: "Milk", Category: "🍺 - Drinks", Owner: "Roma", Tone: ToneMale}, view.Rows[0])
	assert.Equal(t, ToneFemale, view.Rows[1].Tone)

	require.Len(t, view.Owners, 3)
	assert.Equal(t, OwnerTab{Label: "All", ID: 0, Active: true}, view.Owners[0])
	assert.Equal(t, 0, view.ActiveOwner())

	assert.Equal(t, []CategoryChip{
		{Title: "Drinks", Icon: "🍺", Selected: true},
		{Title: "Fruits - Fresh", Icon: "🍏", Selected: true},
	}, view.Categories)
	assert.True(t, view.AllCategories)
	assert.Equal(t, "2 of 3 products", view.CountLabel())
	assert.Equal(t, "sort=id", view.Permalink)
	assert.False(t, view.ShowClearHint())
}

func TestBuildCatalogView_FilteredState(t *testing.T) {
	c := testCatalog()
	s := c.InitialState()
	s = c.Reduce(s, catalog.SetOwner{ID: 2})
	s = c.Reduce(s, catalog.ToggleCategory{Title: "Drinks"})
	s = c.Reduce(s, catalog.SetQuery{Text: "zzz"})
	s = c.Reduce(s, catalog.ToggleSort{Key: catalog.SortID})

	view := BuildCatalogView(c, s, c.Visible(s))

	assert.True(t, view.IsEmpty())
	assert.True(t, view.ShowClearHint())
	assert.False(t, view.AllCategories)
	assert.Equal(t, 2, view.ActiveOwner())
	assert.Equal(t, catalog.IndicatorDescending, view.Columns[0].Indicator)
	assert.False(t, view.Categories[0].Selected)
	assert.True(t, view.Categories[1].Selected)
}

func TestNewRowView_MissingReferences(t *testing.T) {
	row := NewRowView(model.Item{Product: model.Product{ID: 3, Name: "Lost"}})

	assert.Equal(t, RowView{ID: 3, Name: "Lost"}, row)
	assert.Equal(t, ToneNone, row.Tone)

	row = NewRowView(model.Item{
		Product:  model.Product{ID: 4, Name: "Odd"},
		Category: &model.Category{Title: "Drinks", Icon: "🍺"},
		User:     &model.User{ID: 5, Name: "Sam", Sex: model.Sex("x")},
	})
	assert.Equal(t, "Sam", row.Owner)
	assert.Equal(t, ToneNone, row.Tone)
}
