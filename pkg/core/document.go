// Document is the central entity of the domain.
package core

import (
	"sort"

	"github.com/google/uuid"
)

// Key identifies one entity in the store: a table kind plus a unique ID.
type Key struct {
	Kind string
	ID   string
}

// NewKey builds a key from an explicit kind and ID.
func NewKey(kind, id string) Key {
	return Key{Kind: kind, ID: id}
}

// AllocateKey mints a fresh key for the given kind using a random UUID.
// Fresh-mode builders require a newly allocated key at construction time.
func AllocateKey(kind string) Key {
	return Key{Kind: kind, ID: uuid.NewString()}
}

// IsZero reports whether the key is unset.
func (k Key) IsZero() bool {
	return k.Kind == "" && k.ID == ""
}

func (k Key) String() string {
	return k.Kind + "/" + k.ID
}

// field is one stored value slot. A field is either an explicit null or a
// value; NoIndex marks large text excluded from any index the store keeps.
type field struct {
	value   any
	null    bool
	noIndex bool
}

// Document is the mutable accumulator underlying an entity under
// construction. It is the narrow setter surface the schema builder writes
// through; callers outside the schema boundary consume sealed Entities.
//
// A Document owns private mutable state and must not be shared across
// goroutines without external locking.
type Document struct {
	key    Key
	fields map[string]field
}

// NewDocument creates a new, empty mutable document tagged with key.
func NewDocument(key Key) *Document {
	return &Document{
		key:    key,
		fields: make(map[string]field),
	}
}

// EditDocument creates a mutable copy of an existing entity, carrying over
// all prior field values.
func EditDocument(e Entity) *Document {
	fields := make(map[string]field, len(e.fields))
	for name, f := range e.fields {
		fields[name] = f
	}
	return &Document{key: e.key, fields: fields}
}

// Key returns the key the document was tagged with.
func (d *Document) Key() Key {
	return d.key
}

// SetValue stores a value under name, replacing any prior slot.
func (d *Document) SetValue(name string, v any) {
	d.fields[name] = field{value: v}
}

// SetUnindexed stores a value under name, flagged so the store excludes the
// field from any index it maintains.
func (d *Document) SetUnindexed(name string, v any) {
	d.fields[name] = field{value: v, noIndex: true}
}

// SetNull records an explicit null under name. An explicit null is
// distinguishable from an absent field.
func (d *Document) SetNull(name string) {
	d.fields[name] = field{null: true}
}

// Seal finalizes the document into an immutable Entity. The document must
// not be mutated afterwards; the entity takes ownership of the field map.
func (d *Document) Seal() Entity {
	return Entity{key: d.key, fields: d.fields}
}

// Entity is one immutable record instance: a key plus named typed fields.
// Entities are safe for concurrent reads.
type Entity struct {
	key    Key
	fields map[string]field
}

// Key returns the entity's identity key.
func (e Entity) Key() Key {
	return e.key
}

// Len returns the number of fields, explicit nulls included.
func (e Entity) Len() int {
	return len(e.fields)
}

// Names returns the field names in sorted order.
func (e Entity) Names() []string {
	names := make([]string, 0, len(e.fields))
	for name := range e.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Value returns the stored value for name. The boolean reports whether the
// field exists at all; an explicit null yields (nil, true).
func (e Entity) Value(name string) (any, bool) {
	f, ok := e.fields[name]
	if !ok || f.null {
		return nil, ok
	}
	return f.value, true
}

// IsNull reports whether name holds an explicit null.
func (e Entity) IsNull(name string) bool {
	return e.fields[name].null
}

// NoIndex reports whether name is flagged excluded-from-index.
func (e Entity) NoIndex(name string) bool {
	return e.fields[name].noIndex
}
