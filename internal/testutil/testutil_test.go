package testutil_test

import (
	"context"
	"testing"

	"github.com/Veraticus/catalog/internal/model"
	"github.com/Veraticus/catalog/internal/storage"
	"github.com/Veraticus/catalog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_ResolvesReferences(t *testing.T) {
	fx := testutil.NewBuilder().
		WithDefaultUsers().
		WithCategory("Drinks", "🍺", "Roma").
		WithCategory("Grocery", "🍞", "Anna").
		WithProduct("Milk", "Drinks").
		WithProduct("Bread", "Grocery").
		Build()

	assert.Equal(t, []model.User{
		{ID: 1, Name: "Roma", Sex: model.SexMale},
		{ID: 2, Name: "Anna", Sex: model.SexFemale},
	}, fx.Users)
	assert.Equal(t, 1, fx.Categories[0].OwnerID)
	assert.Equal(t, 2, fx.Categories[1].OwnerID)
	assert.Equal(t, model.Product{ID: 1, Name: "Milk", CategoryID: 1}, fx.Products[0])
	assert.Equal(t, model.Product{ID: 2, Name: "Bread", CategoryID: 2}, fx.Products[1])
}

func TestBuilder_DanglingReferences(t *testing.T) {
	fx := testutil.NewBuilder().
		WithCategory("Orphans", "?", "Nobody").
		WithProduct("Ghost", "Missing").
		Build()

	assert.Zero(t, fx.Categories[0].OwnerID)
	assert.Zero(t, fx.Products[0].CategoryID)
}

func TestSetupTestDB(t *testing.T) {
	fx := testutil.NewBuilder().
		WithDefaultUsers().
		WithCategory("Drinks", "🍺", "Roma").
		WithProduct("Milk", "Drinks").
		Build()

	db := testutil.SetupTestDB(t, fx)

	loaded, err := db.Store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fx, loaded)

	ro, err := storage.OpenReadOnly(db.Path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ro.Close() })

	loaded, err = ro.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fx, loaded)
}
