package schema

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// EventType represents the type of schema change.
type EventType string

const (
	// EventLoad marks a table definition loaded or reloaded into the registry.
	EventLoad EventType = "LOAD"
)

// Event represents one registry change produced by the watcher.
type Event struct {
	Type      EventType
	Table     string
	Path      string
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	return string(e.Type) + " " + e.Table
}

// WatchConfig holds the configuration for a schema watcher.
type WatchConfig struct {
	Dir          string
	Pattern      string // doublestar pattern relative to Dir, e.g. "**/*.yaml"
	Logger       *slog.Logger
	ErrorHandler func(error) // optional; receives runtime watch/load failures
	Buffer       int         // event channel buffer, 0 means default (16)
}

// Watcher reloads schema files into a Registry as they change on disk.
// It runs as a lifecycle worker; Start spawns the event loop and Stop
// tears it down.
type Watcher struct {
	*worker.BaseWorker
	registry *Registry
	config   WatchConfig
	events   chan Event
	watcher  *fsnotify.Watcher
	cancel   context.CancelFunc
}

// NewWatcher creates a watcher feeding the given registry.
func NewWatcher(registry *Registry, config WatchConfig) *Watcher {
	if config.Pattern == "" {
		config.Pattern = "**/*.yaml"
	}
	buffer := config.Buffer
	if buffer <= 0 {
		buffer = 16
	}
	return &Watcher{
		BaseWorker: worker.NewBaseWorker("schema-watcher"),
		registry:   registry,
		config:     config,
		events:     make(chan Event, buffer),
	}
}

// Events returns the channel reload events are delivered on. The channel
// is closed when the run loop exits, so consumers may range over it.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Start begins watching the schema directory.
func (w *Watcher) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	status := w.State().Status
	if status != worker.StatusCreated && status != worker.StatusPending {
		return fmt.Errorf("watcher already started (status: %s)", status)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(w.config.Dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", w.config.Dir, err)
	}
	w.watcher = watcher

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.SetStatus(worker.StatusRunning)
	return w.StartFunc(runCtx, w.run)
}

// Stop tears down the watcher.
func (w *Watcher) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.StopRequested = true
		w.cancel()
	}
	return w.BaseWorker.Stop(ctx)
}

// State implements the lifecycle worker contract.
func (w *Watcher) State() worker.State {
	return w.ExportState(func(s *worker.State) {
		s.Metadata = map[string]string{
			worker.MetadataType: string(worker.TypeGoroutine),
		}
	})
}

func (w *Watcher) run(ctx context.Context) error {
	// run is the sole sender on w.events.
	defer close(w.events)
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			w.handleEvent(ctx, event)

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.reportError(wErr)
		}
	}
}

func (w *Watcher) handleEvent(ctx context.Context, event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}

	rel, err := filepath.Rel(w.config.Dir, event.Name)
	if err != nil {
		return
	}
	matched, err := doublestar.Match(w.config.Pattern, filepath.ToSlash(rel))
	if err != nil || !matched {
		return
	}

	table, err := LoadFile(event.Name)
	if err != nil {
		// Partial writes show up as parse failures; a subsequent Write
		// event delivers the complete file.
		w.reportError(fmt.Errorf("failed to reload schema: %w", err))
		return
	}
	w.registry.Add(table)

	if w.config.Logger != nil {
		w.config.Logger.Debug("schema reloaded", "table", table.Name(), "path", event.Name)
	}

	select {
	case w.events <- Event{Type: EventLoad, Table: table.Name(), Path: event.Name, Timestamp: time.Now().Unix()}:
	case <-ctx.Done():
	}
}

func (w *Watcher) reportError(err error) {
	if w.config.Logger != nil {
		w.config.Logger.Error("schema watcher error", "error", err)
	}
	if w.config.ErrorHandler != nil {
		w.config.ErrorHandler(err)
	}
}
