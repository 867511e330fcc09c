// Package sqlite implements the durable local off-chain backend on an
// embedded SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mygive/platform-core/pkg/offchain"
)

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	collection TEXT NOT NULL,
	key        TEXT NOT NULL,
	value      BLOB NOT NULL,
	updated_at INTEGER NOT NULL,
	PRIMARY KEY (collection, key)
);`

// Backend implements offchain.Backend on one SQLite database file.
type Backend struct {
	db *sql.DB
}

// Make sure we conform to the interface
var _ offchain.Backend = (*Backend)(nil)

// Open opens or creates the database at path and ensures the schema
// exists. Use ":memory:" for an ephemeral database.
func Open(path string) (*Backend, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// A single writer avoids SQLITE_BUSY under concurrent puts.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create documents table: %w", err)
	}

	return &Backend{db: db}, nil
}

// Close releases the underlying database handle.
func (b *Backend) Close() error {
	return b.db.Close()
}

// Get retrieves the document stored under (collection, key).
func (b *Backend) Get(ctx context.Context, collection, key string) ([]byte, error) {
	var value []byte
	err := b.db.QueryRowContext(ctx,
		"SELECT value FROM documents WHERE collection = ? AND key = ?",
		collection, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, offchain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return value, nil
}

// Put stores the document under (collection, key), overwriting any
// previous value.
func (b *Backend) Put(ctx context.Context, collection, key string, value []byte) error {
	_, err := b.db.ExecContext(ctx,
		`INSERT INTO documents (collection, key, value, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(collection, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		collection, key, value, time.Now().UTC().Unix())
	if err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

// List retrieves the documents for the given keys. Missing keys are
// absent from the result.
func (b *Backend) List(ctx context.Context, collection string, keys []string) (map[string][]byte, error) {
	result := make(map[string][]byte, len(keys))
	if len(keys) == 0 {
		return result, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(keys)), ",")
	args := make([]interface{}, 0, len(keys)+1)
	args = append(args, collection)
	for _, key := range keys {
		args = append(args, key)
	}

	rows, err := b.db.QueryContext(ctx,
		"SELECT key, value FROM documents WHERE collection = ? AND key IN ("+placeholders+")",
		args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan document row: %w", err)
		}
		result[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate document rows: %w", err)
	}

	return result, nil
}
