package lifecycle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aretw0/silt/pkg/schema"
)

func TestSourceForwardsSchemaEvents(t *testing.T) {
	in := make(chan schema.Event, 1)
	src := NewSource(in)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, src.Start(ctx))

	in <- schema.Event{Type: schema.EventLoad, Table: "User", Path: "user.yaml"}

	select {
	case ev := <-src.Events():
		require.Equal(t, "LOAD User", ev.String())
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for bridged event")
	}
}

func TestTableSourceFiltersByTable(t *testing.T) {
	in := make(chan schema.Event, 2)
	src := NewTableSource(in, "Order")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, src.Start(ctx))

	in <- schema.Event{Type: schema.EventLoad, Table: "User"}
	in <- schema.Event{Type: schema.EventLoad, Table: "Order"}

	select {
	case ev := <-src.Events():
		require.Equal(t, "LOAD Order", ev.String(), "User reload should have been filtered out")
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for bridged event")
	}
}

func TestSourceClosesWhenInputCloses(t *testing.T) {
	in := make(chan schema.Event)
	src := NewSource(in)
	require.NoError(t, src.Start(context.Background()))

	close(in)

	select {
	case _, ok := <-src.Events():
		require.False(t, ok, "output channel should be closed")
	case <-time.After(5 * time.Second):
		t.Fatal("output channel never closed")
	}
}
