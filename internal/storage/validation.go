package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/catalog/internal/model"
)

// Validation errors.
var (
	ErrNilContext    = errors.New("context cannot be nil")
	ErrEmptyString   = errors.New("string parameter cannot be empty")
	ErrEmptySlice    = errors.New("slice cannot be empty")
	ErrReadOnly      = errors.New("database is opened read-only")
	ErrSchemaVersion = errors.New("unexpected schema version")
)

// validateContext ensures the context is usable.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return ctx.Err()
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateFixtures checks the parts of a dataset the schema cannot express.
// Referential problems are allowed through; the catalog tolerates them.
func validateFixtures(fx model.Fixtures) error {
	if len(fx.Products) == 0 {
		return fmt.Errorf("%w: products", ErrEmptySlice)
	}
	for i, c := range fx.Categories {
		if err := validateString(c.Title, fmt.Sprintf("categories[%d].title", i)); err != nil {
			return err
		}
	}
	for i, u := range fx.Users {
		if err := validateString(u.Name, fmt.Sprintf("users[%d].name", i)); err != nil {
			return err
		}
	}
	return nil
}
