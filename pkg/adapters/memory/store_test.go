package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/silt/pkg/adapters/memory"
	"github.com/aretw0/silt/pkg/core"
)

func entityWith(t *testing.T, key core.Key, name string) core.Entity {
	t.Helper()
	doc := core.NewDocument(key)
	doc.SetValue("name", name)
	return doc.Seal()
}

func TestStoreCRUD(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	if err := store.Initialize(ctx); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	key := core.NewKey("User", "u1")
	if err := store.Put(ctx, entityWith(t, key, "Ann")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := store.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if v, _ := got.Value("name"); v != "Ann" {
		t.Errorf("expected Ann, got %v", v)
	}

	// Replace on same key.
	if err := store.Put(ctx, entityWith(t, key, "Anna")); err != nil {
		t.Fatalf("Put replace failed: %v", err)
	}
	got, _ = store.Get(ctx, key)
	if v, _ := got.Value("name"); v != "Anna" {
		t.Errorf("expected Anna after replace, got %v", v)
	}

	if err := store.Delete(ctx, key); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Get(ctx, key); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	// Deleting an absent key is not an error.
	if err := store.Delete(ctx, key); err != nil {
		t.Errorf("second Delete failed: %v", err)
	}
}

func TestStoreListFiltersByKind(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	_ = store.Put(ctx, entityWith(t, core.NewKey("User", "b"), "Bob"))
	_ = store.Put(ctx, entityWith(t, core.NewKey("User", "a"), "Ann"))
	_ = store.Put(ctx, entityWith(t, core.NewKey("Order", "o1"), "order"))

	users, err := store.List(ctx, "User")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].Key().ID != "a" || users[1].Key().ID != "b" {
		t.Errorf("expected ID-ordered results, got %s, %s", users[0].Key(), users[1].Key())
	}
}
