// Package silt is the Composition Root for the Silt library.
//
// It connects the core document model (Domain Layer) with the schema
// declaration and validation layer and the storage adapters (Persistence
// Layer) using the Hexagonal Architecture pattern.
//
// Philosophy:
//
// Silt is a thin, statically-typed mapping layer between application-declared
// record schemas and a schemaless key-value document store. Callers declare
// a set of typed properties for a logical table, then build and validate
// entity instances conforming to that schema before persisting them. A
// fresh-mode build fails unless every declared property was explicitly
// assigned (values or explicit nulls, in any order), while an edit-mode
// build carries an existing entity's fields forward with no completeness
// obligation.
//
// Features:
//
//   - **Closed kind set**: ten primitive property kinds with exhaustive,
//     compile-time-visible dispatch in the builder.
//   - **Build-time completeness**: fresh entities must address every
//     declared property before they seal.
//   - **Schema files**: tables declared in YAML, discovered by glob, and
//     hot-reloaded by a filesystem watcher.
//   - **Pluggable stores**: in-memory, SQLite and MongoDB adapters behind
//     one narrow core.Store interface.
//
// Usage:
//
//	// Declare a table once, at package level
//	var users = silt.Define("User").
//		Key("id").String("name").LongString("bio").Long("age").
//		MustBuild()
//
//	// Build a fresh entity; Build fails if any property is missed
//	e, err := users.Create(silt.AllocateKey("User")).
//		SetKey(users.MustProperty("id"), silt.AllocateKey("User")).
//		SetString(users.MustProperty("name"), "Ann").
//		SetLongString(users.MustProperty("bio"), "...").
//		SetLong(users.MustProperty("age"), 30).
//		Build()
package silt
