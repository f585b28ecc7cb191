package schema

// Property is an immutable descriptor identifying one named, typed field of
// a table. Descriptors are created once when a table is declared and reused
// for the life of the process; they are value-comparable and usable as map
// or set keys. A descriptor's kind never changes after registration.
type Property struct {
	table string
	name  string
	kind  Kind
}

// Table returns the name of the owning table.
func (p Property) Table() string { return p.table }

// Name returns the property name, unique within its table.
func (p Property) Name() string { return p.name }

// Kind returns the declared primitive kind.
func (p Property) Kind() Kind { return p.kind }

func (p Property) String() string {
	return p.table + "." + p.name + ":" + p.kind.String()
}
