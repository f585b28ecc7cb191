package mongo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aretw0/silt/pkg/core"
)

// Config holds the configuration for the MongoDB store.
type Config struct {
	URI        string
	Database   string
	Collection string // defaults to "entities"
	Logger     *slog.Logger
}

// Store implements core.Store backed by a MongoDB collection. Entities of
// every kind share one collection, discriminated by the _kind field.
type Store struct {
	config Config
	client *mongo.Client
	coll   *mongo.Collection
}

// NewStore prepares a store; the connection is established by Initialize.
func NewStore(config Config) (*Store, error) {
	if config.URI == "" {
		return nil, fmt.Errorf("mongo: URI cannot be empty")
	}
	if config.Database == "" {
		return nil, fmt.Errorf("mongo: database cannot be empty")
	}
	if config.Collection == "" {
		config.Collection = "entities"
	}
	return &Store{config: config}, nil
}

// Initialize connects to the server and verifies reachability.
func (s *Store) Initialize(ctx context.Context) error {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(s.config.URI))
	if err != nil {
		return fmt.Errorf("mongo: failed to connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return fmt.Errorf("mongo: ping failed: %w", err)
	}
	s.client = client
	s.coll = client.Database(s.config.Database).Collection(s.config.Collection)
	if s.config.Logger != nil {
		s.config.Logger.Debug("connected to mongodb", "database", s.config.Database, "collection", s.config.Collection)
	}
	return nil
}

// Put implements core.Store.
func (s *Store) Put(ctx context.Context, e core.Entity) error {
	doc, err := toDocument(e)
	if err != nil {
		return fmt.Errorf("mongo: failed to encode %s: %w", e.Key(), err)
	}
	filter := bson.M{fieldID: e.Key().ID, fieldKind: e.Key().Kind}
	_, err = s.coll.ReplaceOne(ctx, filter, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongo: failed to put %s: %w", e.Key(), err)
	}
	return nil
}

// Get implements core.Store.
func (s *Store) Get(ctx context.Context, key core.Key) (core.Entity, error) {
	filter := bson.M{fieldID: key.ID, fieldKind: key.Kind}
	var m bson.M
	err := s.coll.FindOne(ctx, filter).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return core.Entity{}, fmt.Errorf("%w: %s", core.ErrNotFound, key)
	}
	if err != nil {
		return core.Entity{}, fmt.Errorf("mongo: failed to get %s: %w", key, err)
	}
	return fromDocument(m)
}

// Delete implements core.Store.
func (s *Store) Delete(ctx context.Context, key core.Key) error {
	filter := bson.M{fieldID: key.ID, fieldKind: key.Kind}
	if _, err := s.coll.DeleteOne(ctx, filter); err != nil {
		return fmt.Errorf("mongo: failed to delete %s: %w", key, err)
	}
	return nil
}

// List implements core.Store.
func (s *Store) List(ctx context.Context, kind string) ([]core.Entity, error) {
	cursor, err := s.coll.Find(ctx, bson.M{fieldKind: kind})
	if err != nil {
		return nil, fmt.Errorf("mongo: failed to list %s: %w", kind, err)
	}
	defer cursor.Close(ctx)

	var out []core.Entity
	for cursor.Next(ctx) {
		var m bson.M
		if err := cursor.Decode(&m); err != nil {
			return nil, err
		}
		e, err := fromDocument(m)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, cursor.Err()
}

// Close disconnects from the server.
func (s *Store) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(context.Background())
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "mongo-store"
}
