package core

import "context"

// Store defines the contract for persisting sealed entities.
// Adhering to this interface keeps the core independent of the underlying
// storage mechanism (memory, SQLite, MongoDB, ...). The core hands stores
// finished entities only; construction and validation happen upstream in
// the schema builder.
type Store interface {
	// Initialize ensures the underlying storage is ready (e.g. create
	// tables, ping the server).
	Initialize(ctx context.Context) error

	// Put persists an entity. It creates if not exists, or replaces if it does.
	Put(ctx context.Context, e Entity) error

	// Get retrieves an entity by key. Returns ErrNotFound when absent.
	Get(ctx context.Context, key Key) (Entity, error)

	// Delete removes an entity by key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key Key) error

	// List returns all entities of one kind.
	List(ctx context.Context, kind string) ([]Entity, error)

	// Close releases any resources held by the store.
	Close() error
}
