package core

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors.
var (
	// ErrIncomplete marks a schema completeness violation: a fresh-mode
	// build finalized before every declared property was assigned.
	ErrIncomplete = errors.New("schema completeness violation")

	// ErrBuilderConsumed is returned when Build is called on a builder that
	// already finalized (successfully or not). Retry requires a fresh builder.
	ErrBuilderConsumed = errors.New("builder already consumed")

	// ErrKindMismatch is recorded when a value's type does not match the
	// property's declared kind.
	ErrKindMismatch = errors.New("value does not match property kind")

	// ErrForeignProperty is recorded when a property of another table is
	// used with a builder.
	ErrForeignProperty = errors.New("property belongs to another table")

	// ErrNotFound is returned by stores when no entity exists for a key.
	ErrNotFound = errors.New("entity not found")
)

// IncompleteError reports which declared properties were never explicitly
// assigned before finalize. It matches errors.Is(err, ErrIncomplete).
type IncompleteError struct {
	Table   string
	Missing []string // sorted property names
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("%s: table %q missing %s", ErrIncomplete, e.Table, strings.Join(e.Missing, ", "))
}

func (e *IncompleteError) Unwrap() error {
	return ErrIncomplete
}
