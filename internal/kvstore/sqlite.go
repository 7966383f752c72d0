package kvstore

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"atelier/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// SQLiteStore persists key-value pairs in a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and ensures
// the schema exists. Parent directories are created automatically.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Get returns the value stored under key, or ErrKeyNotFound.
func (s *SQLiteStore) Get(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: get %q: %v", domain.ErrStorage, key, err)
	}
	return value, nil
}

// Set writes value under key, replacing any previous value.
func (s *SQLiteStore) Set(key, value string) error {
	_, err := s.db.Exec(
		"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	if err != nil {
		return fmt.Errorf("%w: set %q: %v", domain.ErrStorage, key, err)
	}
	return nil
}

// SetMany writes all pairs in a single transaction so a crash mid-write
// cannot leave the collections mutually inconsistent.
func (s *SQLiteStore) SetMany(pairs map[string]string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: begin batch write: %v", domain.ErrStorage, err)
	}
	defer tx.Rollback()

	for key, value := range pairs {
		if _, err := tx.Exec(
			"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
			key, value,
		); err != nil {
			return fmt.Errorf("%w: set %q: %v", domain.ErrStorage, key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit batch write: %v", domain.ErrStorage, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
