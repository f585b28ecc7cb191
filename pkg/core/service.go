package core

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// Service handles the business logic for entities on top of a Store.
type Service struct {
	mu     sync.RWMutex
	store  Store
	logger *slog.Logger
}

// NewService creates a new Service. The logger may be nil.
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// PutEntity persists a sealed entity with basic validation.
func (s *Service) PutEntity(ctx context.Context, e Entity) error {
	if e.Key().IsZero() {
		return errors.New("entity key cannot be empty")
	}
	if s.logger != nil {
		s.logger.Debug("putting entity", "key", e.Key().String(), "fields", e.Len())
	}
	return s.store.Put(ctx, e)
}

// GetEntity retrieves an entity by key.
func (s *Service) GetEntity(ctx context.Context, key Key) (Entity, error) {
	if key.IsZero() {
		return Entity{}, errors.New("entity key cannot be empty")
	}
	return s.store.Get(ctx, key)
}

// DeleteEntity removes an entity by key.
func (s *Service) DeleteEntity(ctx context.Context, key Key) error {
	if key.IsZero() {
		return errors.New("entity key cannot be empty")
	}
	if s.logger != nil {
		s.logger.Debug("deleting entity", "key", key.String())
	}
	return s.store.Delete(ctx, key)
}

// ListEntities retrieves all entities of one kind.
func (s *Service) ListEntities(ctx context.Context, kind string) ([]Entity, error) {
	if kind == "" {
		return nil, errors.New("kind cannot be empty")
	}
	return s.store.List(ctx, kind)
}

// Close releases the underlying store.
func (s *Service) Close() error {
	return s.store.Close()
}
