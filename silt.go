package silt

import (
	"io"
	"log/slog"

	"github.com/aretw0/silt/internal/platform"
	"github.com/aretw0/silt/pkg/core"
	"github.com/aretw0/silt/pkg/schema"
)

// --- Types ---

// Key identifies one entity in the store.
type Key = core.Key

// Entity is one immutable record instance.
type Entity = core.Entity

// LatLng is the store's native geographic point representation.
type LatLng = core.LatLng

// Micros is the store's native timestamp representation.
type Micros = core.Micros

// Kind is the closed set of primitive property kinds.
type Kind = schema.Kind

// Property is an immutable descriptor of one named, typed table field.
type Property = schema.Property

// Table is a named, immutable set of property descriptors.
type Table = schema.Table

// Builder accumulates typed assignments and validates completeness at build time.
type Builder = schema.Builder

// Registry holds declared tables by name.
type Registry = schema.Registry

// Store is the persistence contract entities are handed to.
type Store = core.Store

// Service handles the business logic for entities on top of a Store.
type Service = core.Service

// --- Configuration ---

// Option defines a functional option for configuring Silt.
type Option = platform.Option

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStore allows injecting a custom storage adapter.
func WithStore(store core.Store) Option {
	return platform.WithStore(store)
}

// WithAdapter selects the storage adapter by name ("memory", "sqlite", "mongo").
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithDSN sets the adapter-specific connection string.
func WithDSN(dsn string) Option {
	return platform.WithDSN(dsn)
}

// WithMongoNamespace sets the database and collection for the mongo adapter.
func WithMongoNamespace(database, collection string) Option {
	return platform.WithMongoNamespace(database, collection)
}

// WithSchemaDir sets the directory schema files are loaded from.
func WithSchemaDir(dir string) Option {
	return platform.WithSchemaDir(dir)
}

// WithSchemaGlob sets the doublestar pattern used to discover schema files.
func WithSchemaGlob(pattern string) Option {
	return platform.WithSchemaGlob(pattern)
}

// --- Factory ---

// New creates a new Silt Service.
func New(opts ...Option) (*core.Service, error) {
	return platform.New(opts...)
}

// Init builds and initializes a store adapter explicitly.
func Init(opts ...Option) (core.Store, error) {
	return platform.Init(opts...)
}

// LoadSchemas builds a registry from the configured schema directory.
func LoadSchemas(opts ...Option) (*schema.Registry, error) {
	return platform.LoadSchemas(opts...)
}

// --- Schema declarations ---

// Define starts a programmatic table definition.
func Define(name string) *schema.Definition {
	return schema.Define(name)
}

// ParseKind maps a schema-file kind name to its Kind.
func ParseKind(s string) (Kind, error) {
	return schema.ParseKind(s)
}

// Load parses one YAML table definition from a stream.
func Load(r io.Reader) (*Table, error) {
	return schema.Load(r)
}

// LoadFile parses one YAML table definition from a file.
func LoadFile(path string) (*Table, error) {
	return schema.LoadFile(path)
}

// LoadGlob loads every schema file under dir matching pattern into a Registry.
func LoadGlob(dir, pattern string) (*Registry, error) {
	return schema.LoadGlob(dir, pattern)
}

// --- Keys ---

// NewKey builds a key from an explicit kind and ID.
func NewKey(kind, id string) Key {
	return core.NewKey(kind, id)
}

// AllocateKey mints a fresh key for the given kind.
func AllocateKey(kind string) Key {
	return core.AllocateKey(kind)
}

// --- Kinds ---

const (
	KindKey        = schema.KindKey
	KindLong       = schema.KindLong
	KindDouble     = schema.KindDouble
	KindBool       = schema.KindBool
	KindString     = schema.KindString
	KindLongString = schema.KindLongString
	KindEnum       = schema.KindEnum
	KindBlob       = schema.KindBlob
	KindDateTime   = schema.KindDateTime
	KindLatLng     = schema.KindLatLng
)
