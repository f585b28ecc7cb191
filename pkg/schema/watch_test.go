package schema_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aretw0/silt/pkg/schema"
)

func TestWatcherReloadsSchemas(t *testing.T) {
	dir := t.TempDir()
	reg := schema.NewRegistry()

	w := schema.NewWatcher(reg, schema.WatchConfig{Dir: dir, Pattern: "**/*.yaml"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop(context.Background())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "user.yaml"), []byte(userSchema), 0644))

	select {
	case ev := <-w.Events():
		require.Equal(t, schema.EventLoad, ev.Type)
		require.Equal(t, "User", ev.Table)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload event")
	}

	table, ok := reg.Table("User")
	require.True(t, ok)
	require.Equal(t, 4, table.Len())
}

func TestWatcherClosesEventsOnStop(t *testing.T) {
	dir := t.TempDir()
	w := schema.NewWatcher(schema.NewRegistry(), schema.WatchConfig{Dir: dir})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	require.NoError(t, w.Stop(context.Background()))

	select {
	case _, ok := <-w.Events():
		require.False(t, ok, "events channel should be closed after Stop")
	case <-time.After(5 * time.Second):
		t.Fatal("events channel still open after Stop")
	}
}

func TestWatcherIgnoresNonMatching(t *testing.T) {
	dir := t.TempDir()
	reg := schema.NewRegistry()

	w := schema.NewWatcher(reg, schema.WatchConfig{Dir: dir, Pattern: "**/*.yaml"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop(context.Background())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a schema"), 0644))

	select {
	case ev := <-w.Events():
		t.Fatalf("unexpected event for non-matching file: %+v", ev)
	case <-time.After(300 * time.Millisecond):
	}
	require.Empty(t, reg.Names())
}
