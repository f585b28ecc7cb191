package silt_test

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/aretw0/silt"
	"github.com/aretw0/silt/pkg/core"
)

// Example_basic demonstrates declaring a table, building a complete entity
// against it, and persisting it through the default in-memory adapter.
func Example_basic() {
	users := silt.Define("User").
		Key("id").
		String("name").
		LongString("bio").
		Long("age").
		MustBuild()

	key := silt.NewKey("User", "ann")
	entity, err := users.Create(key).
		SetKey(users.MustProperty("id"), key).
		SetString(users.MustProperty("name"), "Ann").
		SetLongString(users.MustProperty("bio"), "Keeps notes in a schemaless store.").
		SetLong(users.MustProperty("age"), 30).
		Build()
	if err != nil {
		log.Fatal(err)
	}

	svc, err := silt.New()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	if err := svc.PutEntity(ctx, entity); err != nil {
		log.Fatal(err)
	}

	stored, err := svc.GetEntity(ctx, key)
	if err != nil {
		log.Fatal(err)
	}

	name, _ := stored.Value("name")
	fmt.Printf("Found entity: %s (%v)\n", stored.Key(), name)
	// Output:
	// Found entity: User/ann (Ann)
}

// Example_completeness shows the build-time completeness check: a fresh
// entity must address every declared property before it seals.
func Example_completeness() {
	users := silt.Define("User").
		Key("id").
		String("name").
		Long("age").
		MustBuild()

	key := silt.NewKey("User", "ann")
	_, err := users.Create(key).
		SetKey(users.MustProperty("id"), key).
		SetString(users.MustProperty("name"), "Ann").
		Build()

	var incomplete *core.IncompleteError
	if errors.As(err, &incomplete) {
		fmt.Printf("missing: %v\n", incomplete.Missing)
	}
	// Output:
	// missing: [age]
}
