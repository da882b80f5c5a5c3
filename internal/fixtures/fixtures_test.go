package fixtures

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Veraticus/catalog/internal/common"
	"github.com/Veraticus/catalog/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedded_Load(t *testing.T) {
	fx, err := Embedded().Load(context.Background())
	require.NoError(t, err)

	users, categories, products := fx.Counts()
	assert.Equal(t, 4, users)
	assert.Equal(t, 5, categories)
	assert.Equal(t, 12, products)
	assert.Empty(t, Validate(fx), "built-in dataset must be consistent")

	assert.Equal(t, model.User{ID: 2, Name: "Anna", Sex: model.SexFemale}, fx.Users[1])
	assert.Equal(t, "Fruits - Fresh", fx.Categories[2].Title)
	assert.Equal(t, "🍏", fx.Categories[2].Icon)
}

func TestEmbedded_LoadCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Embedded().Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileLoader_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
users:
  - {id: 1, name: Max, sex: m}
categories:
  - {id: 1, title: "Fruits - Category", icon: "🍏", ownerId: 1}
products:
  - {id: 1, name: Apple, categoryId: 1}
  - {id: 2, name: Banana, categoryId: 1}
`), 0600))

	fx, err := NewFileLoader(path).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []model.Product{
		{ID: 1, Name: "Apple", CategoryID: 1},
		{ID: 2, Name: "Banana", CategoryID: 1},
	}, fx.Products)
	assert.Equal(t, 1, fx.Categories[0].OwnerID)
}

func TestFileLoader_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := NewFileLoader(filepath.Join(dir, "nope.yaml")).Load(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unknown field", func(t *testing.T) {
		path := filepath.Join(dir, "typo.yaml")
		require.NoError(t, os.WriteFile(path, []byte("products:\n  - {id: 1, nmae: Apple, categoryId: 1}\n"), 0600))

		_, err := NewFileLoader(path).Load(context.Background())
		assert.ErrorIs(t, err, common.ErrFixturesFormat)
	})

	t.Run("no products", func(t *testing.T) {
		path := filepath.Join(dir, "empty.yaml")
		require.NoError(t, os.WriteFile(path, []byte("users: []\n"), 0600))

		_, err := NewFileLoader(path).Load(context.Background())
		assert.ErrorIs(t, err, common.ErrEmptyFixtures)
	})
}

func TestEncodeDecode_PreservesDataset(t *testing.T) {
	fx, err := Embedded().Load(context.Background())
	require.NoError(t, err)

	data, err := Encode(fx)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, fx, decoded)
}

func TestValidate(t *testing.T) {
	fx := model.Fixtures{
		Users: []model.User{
			{ID: 1, Name: "Max", Sex: model.SexMale},
			{ID: 1, Name: "Copy", Sex: model.SexMale},
			{ID: 0, Name: "Zero", Sex: "x"},
		},
		Categories: []model.Category{
			{ID: 1, Title: "Fruits", OwnerID: 1},
			{ID: 2, Title: "Ghost owned", OwnerID: 42},
		},
		Products: []model.Product{
			{ID: 1, Name: "Apple", CategoryID: 1},
			{ID: 1, Name: "Apple again", CategoryID: 1},
			{ID: 2, Name: "Orphan", CategoryID: 9},
		},
	}

	problems := Validate(fx)

	assert.ElementsMatch(t, []Problem{
		{Kind: ProblemDuplicateID, Entity: "user", ID: 1},
		{Kind: ProblemInvalidUserID, Entity: "user", ID: 0},
		{Kind: ProblemInvalidSex, Entity: "user", ID: 0},
		{Kind: ProblemDanglingOwner, Entity: "category", ID: 2, Ref: 42},
		{Kind: ProblemDuplicateID, Entity: "product", ID: 1},
		{Kind: ProblemDanglingCategory, Entity: "product", ID: 2, Ref: 9},
	}, problems)

	assert.Equal(t, "dangling_category: product 2 -> 9", problems[len(problems)-1].String())
	assert.Equal(t, len(problems), Report("test", problems))
}
