package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/silt/pkg/adapters/sqlite"
	"github.com/aretw0/silt/pkg/core"
)

func setupStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.NewStore(sqlite.Config{DSN: filepath.Join(t.TempDir(), "silt.db")})
	require.NoError(t, err)
	require.NoError(t, store.Initialize(context.Background()))
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStoreRoundTrip(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	key := core.NewKey("User", "u1")
	doc := core.NewDocument(key)
	doc.SetValue("name", "Ann")
	doc.SetUnindexed("bio", "long text")
	doc.SetValue("age", int64(30))
	doc.SetNull("nickname")
	require.NoError(t, store.Put(ctx, doc.Seal()))

	got, err := store.Get(ctx, key)
	require.NoError(t, err)

	name, _ := got.Value("name")
	assert.Equal(t, "Ann", name)
	age, _ := got.Value("age")
	assert.Equal(t, int64(30), age)
	assert.True(t, got.NoIndex("bio"))
	assert.True(t, got.IsNull("nickname"))
}

func TestStoreGetMissing(t *testing.T) {
	store := setupStore(t)

	_, err := store.Get(context.Background(), core.NewKey("User", "ghost"))
	assert.True(t, errors.Is(err, core.ErrNotFound))
}

func TestStoreReplaceAndDelete(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	key := core.NewKey("User", "u1")
	doc := core.NewDocument(key)
	doc.SetValue("name", "Ann")
	require.NoError(t, store.Put(ctx, doc.Seal()))

	doc = core.NewDocument(key)
	doc.SetValue("name", "Anna")
	require.NoError(t, store.Put(ctx, doc.Seal()))

	got, err := store.Get(ctx, key)
	require.NoError(t, err)
	name, _ := got.Value("name")
	assert.Equal(t, "Anna", name)

	require.NoError(t, store.Delete(ctx, key))
	_, err = store.Get(ctx, key)
	assert.True(t, errors.Is(err, core.ErrNotFound))
}

func TestStoreList(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	for _, id := range []string{"b", "a", "c"} {
		doc := core.NewDocument(core.NewKey("User", id))
		doc.SetValue("name", id)
		require.NoError(t, store.Put(ctx, doc.Seal()))
	}
	other := core.NewDocument(core.NewKey("Order", "o1"))
	other.SetValue("total", 9.5)
	require.NoError(t, store.Put(ctx, other.Seal()))

	users, err := store.List(ctx, "User")
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "a", users[0].Key().ID)
	assert.Equal(t, "c", users[2].Key().ID)
}
