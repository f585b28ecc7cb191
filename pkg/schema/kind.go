// Package schema declares typed tables and builds validated entities
// against them. Tables and property descriptors are immutable after
// declaration; the Builder enforces, at build time, that every declared
// property of a fresh entity was explicitly assigned.
package schema

import (
	"fmt"
	"strings"
)

// Kind is the closed set of primitive property kinds a table may declare.
type Kind int

const (
	KindKey Kind = iota
	KindLong
	KindDouble
	KindBool
	KindString
	KindLongString
	KindEnum
	KindBlob
	KindDateTime
	KindLatLng
)

var kindNames = [...]string{
	KindKey:        "key",
	KindLong:       "long",
	KindDouble:     "double",
	KindBool:       "bool",
	KindString:     "string",
	KindLongString: "long_string",
	KindEnum:       "enum",
	KindBlob:       "blob",
	KindDateTime:   "date_time",
	KindLatLng:     "lat_lng",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= KindKey && k <= KindLatLng
}

// ParseKind maps a schema-file kind name to its Kind. Matching is
// case-insensitive.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown property kind %q", s)
}
