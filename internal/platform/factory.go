package platform

import (
	"context"
	"fmt"

	"github.com/aretw0/silt/pkg/adapters/memory"
	"github.com/aretw0/silt/pkg/adapters/mongo"
	"github.com/aretw0/silt/pkg/adapters/sqlite"
	"github.com/aretw0/silt/pkg/core"
	"github.com/aretw0/silt/pkg/schema"
)

// Init builds and initializes the configured store adapter.
func Init(opts ...Option) (core.Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	store, err := buildStore(o)
	if err != nil {
		return nil, err
	}
	if err := store.Initialize(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

// New creates a new Silt Service wired to the configured store.
func New(opts ...Option) (*core.Service, error) {
	store, err := Init(opts...)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return core.NewService(store, o.logger), nil
}

// LoadSchemas builds a registry from the configured schema directory.
func LoadSchemas(opts ...Option) (*schema.Registry, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.schemaDir == "" {
		return schema.NewRegistry(), nil
	}
	return schema.LoadGlob(o.schemaDir, o.schemaGlob)
}

func buildStore(o *options) (core.Store, error) {
	if o.store != nil {
		return o.store, nil
	}

	switch o.adapter {
	case "memory", "":
		return memory.NewStore(), nil
	case "sqlite":
		return sqlite.NewStore(sqlite.Config{DSN: o.dsn, Logger: o.logger})
	case "mongo":
		return mongo.NewStore(mongo.Config{
			URI:        o.dsn,
			Database:   o.database,
			Collection: o.collection,
			Logger:     o.logger,
		})
	default:
		return nil, fmt.Errorf("unknown adapter %q", o.adapter)
	}
}
