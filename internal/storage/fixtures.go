package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/Veraticus/catalog/internal/model"
)

// Load reads the whole dataset in the order it was saved.
func (s *SQLiteStorage) Load(ctx context.Context) (model.Fixtures, error) {
	if err := validateContext(ctx); err != nil {
		return model.Fixtures{}, err
	}

	version, err := s.SchemaVersion(ctx)
	if err != nil {
		return model.Fixtures{}, err
	}
	if version != ExpectedSchemaVersion {
		return model.Fixtures{}, fmt.Errorf("%w: expected %d, got %d (run 'catalog seed' to create the database)",
			ErrSchemaVersion, ExpectedSchemaVersion, version)
	}

	var fx model.Fixtures
	if fx.Users, err = s.getUsers(ctx); err != nil {
		return model.Fixtures{}, err
	}
	if fx.Categories, err = s.getCategories(ctx); err != nil {
		return model.Fixtures{}, err
	}
	if fx.Products, err = s.getProducts(ctx); err != nil {
		return model.Fixtures{}, err
	}

	slog.Debug("loaded fixtures from sqlite",
		"path", s.dbPath,
		"users", len(fx.Users),
		"categories", len(fx.Categories),
		"products", len(fx.Products))

	return fx, nil
}

func (s *SQLiteStorage) getUsers(ctx context.Context) ([]model.User, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, sex FROM users ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Sex); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}
	return users, nil
}

func (s *SQLiteStorage) getCategories(ctx context.Context) ([]model.Category, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, title, icon, owner_id FROM categories ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Title, &c.Icon, &c.OwnerID); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}
	return categories, nil
}

func (s *SQLiteStorage) getProducts(ctx context.Context) ([]model.Product, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, category_id FROM products ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.CategoryID); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}
	return products, nil
}

// SaveFixtures replaces the stored dataset with fx in a single transaction.
func (s *SQLiteStorage) SaveFixtures(ctx context.Context, fx model.Fixtures) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if s.readOnly {
		return ErrReadOnly
	}
	if err := validateFixtures(fx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // no-op after commit
	}()

	for _, table := range []string{"products", "categories", "users"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	if err := insertUsers(ctx, tx, fx.Users); err != nil {
		return err
	}
	if err := insertCategories(ctx, tx, fx.Categories); err != nil {
		return err
	}
	if err := insertProducts(ctx, tx, fx.Products); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit fixtures: %w", err)
	}

	slog.Info("saved fixtures",
		"path", s.dbPath,
		"users", len(fx.Users),
		"categories", len(fx.Categories),
		"products", len(fx.Products))

	return nil
}

func insertUsers(ctx context.Context, tx *sql.Tx, users []model.User) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO users (position, id, name, sex) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare user insert: %w", err)
	}
	defer stmt.Close()

	for i, u := range users {
		if _, err := stmt.ExecContext(ctx, i, u.ID, u.Name, string(u.Sex)); err != nil {
			return fmt.Errorf("failed to insert user %d: %w", u.ID, err)
		}
	}
	return nil
}

func insertCategories(ctx context.Context, tx *sql.Tx, categories []model.Category) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO categories (position, id, title, icon, owner_id) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare category insert: %w", err)
	}
	defer stmt.Close()

	for i, c := range categories {
		if _, err := stmt.ExecContext(ctx, i, c.ID, c.Title, c.Icon, c.OwnerID); err != nil {
			return fmt.Errorf("failed to insert category %d: %w", c.ID, err)
		}
	}
	return nil
}

func insertProducts(ctx context.Context, tx *sql.Tx, products []model.Product) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO products (position, id, name, category_id) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare product insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range products {
		if _, err := stmt.ExecContext(ctx, i, p.ID, p.Name, p.CategoryID); err != nil {
			return fmt.Errorf("failed to insert product %d: %w", p.ID, err)
		}
	}
	return nil
}
