// Package memory implements core.Store with an in-process map.
// It is the default adapter for tests and tooling that needs no
// durability.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/silt/pkg/core"
)

// Store keeps entities in a mutex-guarded map keyed by entity key.
type Store struct {
	mu       sync.RWMutex
	entities map[core.Key]core.Entity
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{entities: make(map[core.Key]core.Entity)}
}

// Initialize implements core.Store. It is a no-op.
func (s *Store) Initialize(ctx context.Context) error {
	return nil
}

// Put implements core.Store.
func (s *Store) Put(ctx context.Context, e core.Entity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entities[e.Key()] = e
	return nil
}

// Get implements core.Store.
func (s *Store) Get(ctx context.Context, key core.Key) (core.Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entities[key]
	if !ok {
		return core.Entity{}, fmt.Errorf("%w: %s", core.ErrNotFound, key)
	}
	return e, nil
}

// Delete implements core.Store.
func (s *Store) Delete(ctx context.Context, key core.Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entities, key)
	return nil
}

// List implements core.Store. Results are ordered by ID for stable output.
func (s *Store) List(ctx context.Context, kind string) ([]core.Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []core.Entity
	for key, e := range s.entities {
		if key.Kind == kind {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key().ID < out[j].Key().ID })
	return out, nil
}

// Close implements core.Store. It is a no-op.
func (s *Store) Close() error {
	return nil
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "memory-store"
}
