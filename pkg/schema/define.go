package schema

import (
	"fmt"
	"strings"
)

// Definition accumulates property declarations for a table. Obtain one via
// Define, add one property per field, then call Build or MustBuild.
type Definition struct {
	name  string
	props []Property
}

// Define starts a table definition with the given name.
func Define(name string) *Definition {
	return &Definition{name: name}
}

// Property declares a field with an explicit kind.
func (d *Definition) Property(name string, kind Kind) *Definition {
	d.props = append(d.props, Property{table: d.name, name: name, kind: kind})
	return d
}

// Key declares a KEY property.
func (d *Definition) Key(name string) *Definition { return d.Property(name, KindKey) }

// Long declares a LONG property.
func (d *Definition) Long(name string) *Definition { return d.Property(name, KindLong) }

// Double declares a DOUBLE property.
func (d *Definition) Double(name string) *Definition { return d.Property(name, KindDouble) }

// Bool declares a BOOL property.
func (d *Definition) Bool(name string) *Definition { return d.Property(name, KindBool) }

// String declares a STRING property.
func (d *Definition) String(name string) *Definition { return d.Property(name, KindString) }

// LongString declares a LONG_STRING property, stored excluded-from-index.
func (d *Definition) LongString(name string) *Definition { return d.Property(name, KindLongString) }

// Enum declares an ENUM property, stored by symbolic name.
func (d *Definition) Enum(name string) *Definition { return d.Property(name, KindEnum) }

// Blob declares a BLOB property.
func (d *Definition) Blob(name string) *Definition { return d.Property(name, KindBlob) }

// DateTime declares a DATE_TIME property.
func (d *Definition) DateTime(name string) *Definition { return d.Property(name, KindDateTime) }

// LatLng declares a LAT_LNG property.
func (d *Definition) LatLng(name string) *Definition { return d.Property(name, KindLatLng) }

// Build finalizes the definition into an immutable Table.
func (d *Definition) Build() (*Table, error) {
	if d.name == "" {
		return nil, fmt.Errorf("schema: table name cannot be empty")
	}
	props := make(map[string]Property, len(d.props))
	for _, p := range d.props {
		if !p.kind.Valid() {
			return nil, fmt.Errorf("schema: table %q property %q has invalid kind", d.name, p.name)
		}
		if p.name == "" {
			return nil, fmt.Errorf("schema: table %q has a property with an empty name", d.name)
		}
		// Underscore-prefixed names are reserved for store-level metadata
		// fields (document identity, no-index bookkeeping).
		if strings.HasPrefix(p.name, "_") {
			return nil, fmt.Errorf("schema: table %q property %q: underscore-prefixed names are reserved", d.name, p.name)
		}
		if _, dup := props[p.name]; dup {
			return nil, fmt.Errorf("schema: table %q declares property %q twice", d.name, p.name)
		}
		props[p.name] = p
	}
	return &Table{name: d.name, props: props}, nil
}

// MustBuild is Build for package-level declarations; it panics on error.
func (d *Definition) MustBuild() *Table {
	t, err := d.Build()
	if err != nil {
		panic(err)
	}
	return t
}
