// Package lifecycle bridges schema reload events into the generic
// lifecycle event graph.
package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/silt/pkg/schema"
)

// Source adapts a schema watcher's event channel into a lifecycle.Source,
// so registry reloads can drive reactive pipelines alongside other
// application events. An optional table filter narrows the stream to the
// tables a consumer cares about.
type Source struct {
	events <-chan schema.Event
	tables map[string]struct{}
	out    chan lifecycle.Event
}

// NewSource creates a source forwarding every schema reload event.
func NewSource(events <-chan schema.Event) *Source {
	return &Source{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

// NewTableSource creates a source forwarding only reloads of the named
// tables.
func NewTableSource(events <-chan schema.Event, tables ...string) *Source {
	s := NewSource(events)
	s.tables = make(map[string]struct{}, len(tables))
	for _, t := range tables {
		s.tables[t] = struct{}{}
	}
	return s
}

// Events implements lifecycle.Source.
func (s *Source) Events() <-chan lifecycle.Event {
	return s.out
}

// Start runs the bridge until ctx is cancelled or the schema channel
// closes. The output channel is closed on exit.
func (s *Source) Start(ctx context.Context) error {
	// Uses lifecycle.Go so the bridge itself is tracked and safe.
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				if !s.wants(e) {
					continue
				}
				// schema.Event implements lifecycle.Event (has String())
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}

func (s *Source) wants(e schema.Event) bool {
	if s.tables == nil {
		return true
	}
	_, ok := s.tables[e.Table]
	return ok
}
