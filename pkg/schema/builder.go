package schema

import (
	"fmt"
	"sort"
	"time"

	"github.com/aretw0/silt/pkg/core"
)

// Builder accumulates typed field assignments into an entity under
// construction and tracks which declared properties remain unassigned.
//
// A builder starts in one of two modes (see Table.Create and Table.Edit):
// fresh mode seeds the unused set with every registered property and Build
// fails until all of them have been explicitly addressed; edit mode starts
// with an empty unused set and never fails for missing fields.
//
// Assigning a property (any value, or an explicit null) removes it from
// the unused set; re-assignment is always allowed and never reintroduces
// it. Setters return the builder for chaining. Misuse (a property of
// another table, a kind mismatch through Set) is recorded as a sticky error
// surfaced by Build.
//
// Build consumes the builder regardless of outcome; a second Build returns
// ErrBuilderConsumed and setters on a consumed builder panic. Retrying a
// failed build requires a fresh builder.
//
// A Builder owns private mutable state with no internal synchronization and
// must not be shared across goroutines without external locking.
type Builder struct {
	table    *Table
	doc      *core.Document
	unused   map[Property]struct{}
	err      error
	consumed bool
}

// Key returns the key the entity under construction is tagged with.
func (b *Builder) Key() core.Key {
	return b.doc.Key()
}

// mark records that p has been explicitly addressed. It reports whether the
// assignment should proceed to the accumulator.
func (b *Builder) mark(p Property, want Kind) bool {
	if b.consumed {
		panic(fmt.Sprintf("schema: builder for table %q used after Build", b.table.name))
	}
	if b.err != nil {
		return false
	}
	if p.table != b.table.name {
		b.err = fmt.Errorf("%w: %s used with table %q", core.ErrForeignProperty, p, b.table.name)
		return false
	}
	if p.kind != want {
		b.err = fmt.Errorf("%w: %s assigned as %s", core.ErrKindMismatch, p, want)
		return false
	}
	delete(b.unused, p)
	return true
}

// SetNull records an explicit null for p. The property counts as addressed
// for completeness purposes; no coercion takes place. The stored null is
// distinguishable from an absent field.
func (b *Builder) SetNull(p Property) *Builder {
	if b.mark(p, p.kind) {
		b.doc.SetNull(p.name)
	}
	return b
}

// SetKey assigns a KEY property.
func (b *Builder) SetKey(p Property, v core.Key) *Builder {
	if b.mark(p, KindKey) {
		b.doc.SetValue(p.name, v)
	}
	return b
}

// SetLong assigns a LONG property.
func (b *Builder) SetLong(p Property, v int64) *Builder {
	if b.mark(p, KindLong) {
		b.doc.SetValue(p.name, v)
	}
	return b
}

// SetDouble assigns a DOUBLE property.
func (b *Builder) SetDouble(p Property, v float64) *Builder {
	if b.mark(p, KindDouble) {
		b.doc.SetValue(p.name, v)
	}
	return b
}

// SetBool assigns a BOOL property.
func (b *Builder) SetBool(p Property, v bool) *Builder {
	if b.mark(p, KindBool) {
		b.doc.SetValue(p.name, v)
	}
	return b
}

// SetString assigns a STRING property. The field participates in any index
// the store maintains.
func (b *Builder) SetString(p Property, v string) *Builder {
	if b.mark(p, KindString) {
		b.doc.SetValue(p.name, v)
	}
	return b
}

// SetLongString assigns a LONG_STRING property. The value is stored as a
// string flagged so the store excludes it from its indexes; use it for
// large text that must not be indexed.
func (b *Builder) SetLongString(p Property, v string) *Builder {
	if b.mark(p, KindLongString) {
		b.doc.SetUnindexed(p.name, v)
	}
	return b
}

// SetEnum assigns an ENUM property. The enumerator's symbolic name is
// stored, never an ordinal, so reordering enumerators in application code
// does not change previously persisted meaning.
func (b *Builder) SetEnum(p Property, v fmt.Stringer) *Builder {
	if b.mark(p, KindEnum) {
		b.doc.SetValue(p.name, v.String())
	}
	return b
}

// SetBlob assigns a BLOB property.
func (b *Builder) SetBlob(p Property, v []byte) *Builder {
	if b.mark(p, KindBlob) {
		b.doc.SetValue(p.name, v)
	}
	return b
}

// SetDateTime assigns a DATE_TIME property. The wall-clock reading of v is
// taken as a timezone-naive value and converted to the store's native
// timestamp; the location attached to v is ignored.
func (b *Builder) SetDateTime(p Property, v time.Time) *Builder {
	if b.mark(p, KindDateTime) {
		b.doc.SetValue(p.name, core.ToMicros(v))
	}
	return b
}

// SetLatLng assigns a LAT_LNG property using the store's native geographic
// point representation.
func (b *Builder) SetLatLng(p Property, v core.LatLng) *Builder {
	if b.mark(p, KindLatLng) {
		b.doc.SetValue(p.name, v)
	}
	return b
}

// Set assigns a property from a runtime value, dispatching on the declared
// kind. A nil value records an explicit null. Intended for callers that
// only know values dynamically (schema-file tooling, the CLI); statically
// typed code should prefer the per-kind setters. A value whose type does
// not match the declared kind records a sticky ErrKindMismatch.
func (b *Builder) Set(p Property, v any) *Builder {
	if v == nil {
		return b.SetNull(p)
	}
	switch p.kind {
	case KindKey:
		if k, ok := v.(core.Key); ok {
			return b.SetKey(p, k)
		}
	case KindLong:
		switch n := v.(type) {
		case int64:
			return b.SetLong(p, n)
		case int:
			return b.SetLong(p, int64(n))
		}
	case KindDouble:
		if f, ok := v.(float64); ok {
			return b.SetDouble(p, f)
		}
	case KindBool:
		if t, ok := v.(bool); ok {
			return b.SetBool(p, t)
		}
	case KindString:
		if s, ok := v.(string); ok {
			return b.SetString(p, s)
		}
	case KindLongString:
		if s, ok := v.(string); ok {
			return b.SetLongString(p, s)
		}
	case KindEnum:
		switch e := v.(type) {
		case fmt.Stringer:
			return b.SetEnum(p, e)
		case string:
			if b.mark(p, KindEnum) {
				b.doc.SetValue(p.name, e)
			}
			return b
		}
	case KindBlob:
		if raw, ok := v.([]byte); ok {
			return b.SetBlob(p, raw)
		}
	case KindDateTime:
		if t, ok := v.(time.Time); ok {
			return b.SetDateTime(p, t)
		}
	case KindLatLng:
		if pt, ok := v.(core.LatLng); ok {
			return b.SetLatLng(p, pt)
		}
	default:
		panic(fmt.Sprintf("schema: unreachable property kind %d for %s", int(p.kind), p))
	}
	if b.consumed {
		panic(fmt.Sprintf("schema: builder for table %q used after Build", b.table.name))
	}
	if b.err == nil {
		b.err = fmt.Errorf("%w: %T value for %s", core.ErrKindMismatch, v, p)
	}
	return b
}

// Build finalizes the entity. On a fresh-mode builder it fails with a
// core.IncompleteError naming every property that was never explicitly
// assigned; a sticky setter error takes precedence. Build consumes the
// builder: any outcome, success or failure, makes further use an error.
func (b *Builder) Build() (core.Entity, error) {
	if b.consumed {
		return core.Entity{}, fmt.Errorf("%w: table %q", core.ErrBuilderConsumed, b.table.name)
	}
	b.consumed = true

	if b.err != nil {
		return core.Entity{}, b.err
	}
	if len(b.unused) > 0 {
		missing := make([]string, 0, len(b.unused))
		for p := range b.unused {
			missing = append(missing, p.name)
		}
		sort.Strings(missing)
		return core.Entity{}, &core.IncompleteError{Table: b.table.name, Missing: missing}
	}
	return b.doc.Seal(), nil
}
