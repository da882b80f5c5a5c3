// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/Veraticus/catalog/internal/model"
)

// FixtureLoader supplies the read-only dataset the catalog is built from.
type FixtureLoader interface {
	// Load returns users, categories and products. Implementations must not
	// retain or mutate the returned slices afterwards.
	Load(ctx context.Context) (model.Fixtures, error)
}

// FixtureStore is a FixtureLoader that can also be written to and closed.
// Only the seed command writes; browsing opens stores read-only.
type FixtureStore interface {
	FixtureLoader

	Migrate(ctx context.Context) error
	SaveFixtures(ctx context.Context, fx model.Fixtures) error
	Close() error
}
