// Package storage provides a SQLite-backed fixture source.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Veraticus/catalog/internal/service"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Ensure we implement the interface.
var _ service.FixtureStore = (*SQLiteStorage)(nil)

// SQLiteStorage stores catalog fixtures in a SQLite database.
type SQLiteStorage struct {
	db       *sql.DB
	dbPath   string
	readOnly bool
}

// NewSQLiteStorage opens (creating if needed) a writable database at dbPath.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	return open(dbPath, dbPath+"?_busy_timeout=5000", false)
}

// OpenReadOnly opens an existing database without write access. Browsing
// never needs more than this.
func OpenReadOnly(dbPath string) (*SQLiteStorage, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return open(dbPath, fmt.Sprintf("file:%s?mode=ro&_busy_timeout=5000", dbPath), true)
}

func open(dbPath, dsn string, readOnly bool) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't benefit from multiple connections
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteStorage{
		db:       db,
		dbPath:   dbPath,
		readOnly: readOnly,
	}, nil
}

// Path returns the database file path.
func (s *SQLiteStorage) Path() string {
	return s.dbPath
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
