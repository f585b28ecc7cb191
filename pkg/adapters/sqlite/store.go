// Package sqlite implements core.Store on a SQLite database using the pure
// Go modernc.org/sqlite driver. Entities are stored one row per key with
// their fields encoded in the JSON wire form, which keeps the table
// schemaless while round-tripping explicit nulls and no-index flags.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/silt/pkg/core"

	_ "modernc.org/sqlite"
)

const entitiesSchema = `
CREATE TABLE IF NOT EXISTS entities (
    kind TEXT NOT NULL,
    id   TEXT NOT NULL,
    data TEXT NOT NULL,
    PRIMARY KEY (kind, id)
);
`

// Config holds the configuration for the SQLite store.
type Config struct {
	DSN    string // path to the database file, or ":memory:"
	Logger *slog.Logger
}

// Store implements core.Store backed by a SQLite database.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewStore opens (or creates) the database at config.DSN.
func NewStore(config Config) (*Store, error) {
	if config.DSN == "" {
		return nil, fmt.Errorf("sqlite: DSN cannot be empty")
	}
	db, err := sql.Open("sqlite", config.DSN)
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to open %s: %w", config.DSN, err)
	}
	return &Store{db: db, logger: config.Logger}, nil
}

// Initialize ensures the entities table exists.
func (s *Store) Initialize(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, entitiesSchema); err != nil {
		return fmt.Errorf("sqlite: failed to create schema: %w", err)
	}
	return nil
}

// Put implements core.Store.
func (s *Store) Put(ctx context.Context, e core.Entity) error {
	data, err := core.EncodeEntity(e)
	if err != nil {
		return fmt.Errorf("sqlite: failed to encode %s: %w", e.Key(), err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO entities(kind, id, data) VALUES(?, ?, ?)`,
		e.Key().Kind, e.Key().ID, string(data))
	if err != nil {
		return fmt.Errorf("sqlite: failed to put %s: %w", e.Key(), err)
	}
	if s.logger != nil {
		s.logger.Debug("entity stored", "key", e.Key().String())
	}
	return nil
}

// Get implements core.Store.
func (s *Store) Get(ctx context.Context, key core.Key) (core.Entity, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM entities WHERE kind = ? AND id = ?`,
		key.Kind, key.ID).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Entity{}, fmt.Errorf("%w: %s", core.ErrNotFound, key)
	}
	if err != nil {
		return core.Entity{}, fmt.Errorf("sqlite: failed to get %s: %w", key, err)
	}
	return core.DecodeEntity([]byte(data))
}

// Delete implements core.Store.
func (s *Store) Delete(ctx context.Context, key core.Key) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM entities WHERE kind = ? AND id = ?`, key.Kind, key.ID)
	if err != nil {
		return fmt.Errorf("sqlite: failed to delete %s: %w", key, err)
	}
	return nil
}

// List implements core.Store.
func (s *Store) List(ctx context.Context, kind string) ([]core.Entity, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT data FROM entities WHERE kind = ? ORDER BY id`, kind)
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to list %s: %w", kind, err)
	}
	defer rows.Close()

	var out []core.Entity
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		e, err := core.DecodeEntity([]byte(data))
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Close implements core.Store.
func (s *Store) Close() error {
	return s.db.Close()
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "sqlite-store"
}
