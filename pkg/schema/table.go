package schema

import (
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/introspection"
	"github.com/aretw0/silt/pkg/core"
)

// Table is a named, immutable set of property descriptors that entities of
// one kind are expected to satisfy. Tables are safe for concurrent reads.
type Table struct {
	name  string
	props map[string]Property
}

// Name returns the table name, which doubles as the entity kind in keys.
func (t *Table) Name() string { return t.name }

// Len returns the number of registered properties.
func (t *Table) Len() int { return len(t.props) }

// Property looks up a registered property by name.
func (t *Table) Property(name string) (Property, bool) {
	p, ok := t.props[name]
	return p, ok
}

// MustProperty looks up a registered property and panics when absent.
// Intended for package-level wiring against a known schema.
func (t *Table) MustProperty(name string) Property {
	p, ok := t.props[name]
	if !ok {
		panic(fmt.Sprintf("schema: table %q has no property %q", t.name, name))
	}
	return p
}

// Properties returns the registered descriptors sorted by name. The set is
// order-irrelevant; sorting just keeps output stable.
func (t *Table) Properties() []Property {
	out := make([]Property, 0, len(t.props))
	for _, p := range t.props {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// Create starts a fresh-mode builder for a new entity tagged with key.
// Every registered property must be assigned (values or explicit nulls)
// before Build succeeds.
func (t *Table) Create(key core.Key) *Builder {
	unused := make(map[Property]struct{}, len(t.props))
	for _, p := range t.props {
		unused[p] = struct{}{}
	}
	return &Builder{
		table:  t,
		doc:    core.NewDocument(key),
		unused: unused,
	}
}

// Edit starts an edit-mode builder over an existing entity. All prior field
// values are carried over and no completeness obligation applies; callers
// overwrite only the fields they intend to change.
func (t *Table) Edit(e core.Entity) *Builder {
	return &Builder{
		table:  t,
		doc:    core.EditDocument(e),
		unused: make(map[Property]struct{}),
	}
}

// Registry holds declared tables by name. It is the read-only schema
// provider consumed at builder construction time; the watcher reloads
// tables at runtime, so access is guarded.
type Registry struct {
	mu     sync.RWMutex
	tables map[string]*Table
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tables: make(map[string]*Table)}
}

// Add registers a table, replacing any prior table of the same name.
func (r *Registry) Add(t *Table) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tables[t.name] = t
}

// Table looks up a registered table by name.
func (r *Registry) Table(name string) (*Table, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tables[name]
	return t, ok
}

// Names returns the registered table names sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tables))
	for name := range r.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegistryState exposes internal state for observability.
type RegistryState struct {
	Tables []string `json:"tables"`
}

// State implements introspection.Introspectable.
func (r *Registry) State() any {
	return RegistryState{Tables: r.Names()}
}

// ComponentType implements introspection.Component.
func (r *Registry) ComponentType() string {
	return "schema-registry"
}

var _ introspection.Introspectable = (*Registry)(nil)
var _ introspection.Component = (*Registry)(nil)
