package catalog_test

import (
	"context"
	"testing"

	"github.com/Veraticus/catalog/internal/catalog"
	"github.com/Veraticus/catalog/internal/fixtures"
	"github.com/Veraticus/catalog/internal/model"
	"github.com/stretchr/testify/require"
)

func embedded(t *testing.T) model.Fixtures {
	t.Helper()
	fx, err := fixtures.Embedded().Load(context.Background())
	require.NoError(t, err)
	return fx
}

func embeddedCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	return catalog.New(embedded(t))
}

// fruitFixtures is the two-product dataset used by the scenario tests.
func fruitFixtures() model.Fixtures {
	return model.Fixtures{
		Users: []model.User{
			{ID: 1, Name: "Max", Sex: model.SexMale},
		},
		Categories: []model.Category{
			{ID: 1, Title: "Fruits - Category", Icon: "🍏", OwnerID: 1},
		},
		Products: []model.Product{
			{ID: 1, Name: "Apple", CategoryID: 1},
			{ID: 2, Name: "Banana", CategoryID: 1},
		},
	}
}

func ids(items []model.Item) []int {
	out := make([]int, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}
