package platform

import (
	"log/slog"

	"github.com/aretw0/silt/pkg/core"
)

// options holds the internal configuration for the Silt service.
type options struct {
	store      core.Store
	logger     *slog.Logger
	adapter    string
	dsn        string
	database   string
	collection string
	schemaDir  string
	schemaGlob string
}

// Option defines a functional option for configuring Silt.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		adapter:    "memory",
		schemaGlob: "**/*.yaml",
	}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStore allows injecting a custom storage adapter.
// If provided, the named adapter is skipped.
func WithStore(store core.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithAdapter selects the storage adapter by name ("memory", "sqlite",
// "mongo"). Defaults to "memory".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithDSN sets the adapter-specific connection string: a file path for
// "sqlite", a connection URI for "mongo".
func WithDSN(dsn string) Option {
	return func(o *options) {
		o.dsn = dsn
	}
}

// WithMongoNamespace sets the database and collection used by the "mongo"
// adapter. The collection defaults to "entities" when empty.
func WithMongoNamespace(database, collection string) Option {
	return func(o *options) {
		o.database = database
		o.collection = collection
	}
}

// WithSchemaDir sets the directory schema files are loaded from.
func WithSchemaDir(dir string) Option {
	return func(o *options) {
		o.schemaDir = dir
	}
}

// WithSchemaGlob sets the doublestar pattern used to discover schema files
// under the schema directory. Defaults to "**/*.yaml".
func WithSchemaGlob(pattern string) Option {
	return func(o *options) {
		o.schemaGlob = pattern
	}
}
