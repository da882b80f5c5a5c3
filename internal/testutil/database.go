// Package testutil provides shared test helpers: a fluent builder for
// fixture datasets and seeded SQLite databases built from them.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Veraticus/catalog/internal/model"
	"github.com/Veraticus/catalog/internal/storage"
)

// TestDB is a seeded fixture database on disk.
type TestDB struct {
	Store    *storage.SQLiteStorage
	Path     string
	Fixtures model.Fixtures
}

// SetupTestDB writes fx into a fresh database under t.TempDir(). The
// returned store stays open for writes and is closed on cleanup.
//
// Example:
//
//	db := testutil.SetupTestDB(t, testutil.NewBuilder().WithDefaultUsers().Build())
//	store, err := storage.OpenReadOnly(db.Path)
func SetupTestDB(t *testing.T, fx model.Fixtures) *TestDB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.db")
	store, err := storage.NewSQLiteStorage(path)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	if err := store.SaveFixtures(ctx, fx); err != nil {
		t.Fatalf("failed to seed fixtures: %v", err)
	}

	return &TestDB{
		Store:    store,
		Path:     path,
		Fixtures: fx,
	}
}
