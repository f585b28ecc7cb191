package core_test

import (
	"testing"
	"time"

	"github.com/aretw0/silt/pkg/core"
)

func TestDocumentSeal(t *testing.T) {
	key := core.NewKey("User", "u1")
	doc := core.NewDocument(key)
	doc.SetValue("name", "Ann")
	doc.SetUnindexed("bio", "long text")
	doc.SetNull("age")

	e := doc.Seal()
	if e.Key() != key {
		t.Errorf("expected key %s, got %s", key, e.Key())
	}
	if e.Len() != 3 {
		t.Errorf("expected 3 fields, got %d", e.Len())
	}
	if v, _ := e.Value("name"); v != "Ann" {
		t.Errorf("expected Ann, got %v", v)
	}
	if !e.NoIndex("bio") {
		t.Error("bio should be unindexed")
	}
	if !e.IsNull("age") {
		t.Error("age should be an explicit null")
	}

	names := e.Names()
	want := []string{"age", "bio", "name"}
	for i, n := range names {
		if n != want[i] {
			t.Fatalf("expected sorted names %v, got %v", want, names)
		}
	}
}

func TestEditDocumentIsolation(t *testing.T) {
	doc := core.NewDocument(core.NewKey("User", "u1"))
	doc.SetValue("age", int64(30))
	original := doc.Seal()

	edit := core.EditDocument(original)
	edit.SetValue("age", int64(31))

	if v, _ := original.Value("age"); v != int64(30) {
		t.Errorf("edit copy mutated the source entity: %v", v)
	}
	if v, _ := edit.Seal().Value("age"); v != int64(31) {
		t.Errorf("expected edited value 31, got %v", v)
	}
}

func TestAllocateKey(t *testing.T) {
	a := core.AllocateKey("User")
	b := core.AllocateKey("User")

	if a.Kind != "User" || b.Kind != "User" {
		t.Errorf("expected kind User, got %q and %q", a.Kind, b.Kind)
	}
	if a.ID == "" || a.ID == b.ID {
		t.Error("allocated keys must be unique and non-empty")
	}
	if a.IsZero() {
		t.Error("allocated key should not be zero")
	}
	if (core.Key{}).IsZero() != true {
		t.Error("zero key should report IsZero")
	}
}

func TestToMicrosIsZoneNaive(t *testing.T) {
	zone := time.FixedZone("UTC-5", -5*3600)
	local := time.Date(2026, 8, 30, 12, 0, 0, 0, zone)
	utc := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	if core.ToMicros(local) != core.ToMicros(utc) {
		t.Error("conversion must use the wall-clock reading, not the instant")
	}

	m := core.ToMicros(utc)
	if !m.Time().Equal(utc) {
		t.Errorf("round trip mismatch: %v != %v", m.Time(), utc)
	}
}

func TestLatLngValid(t *testing.T) {
	if !(core.LatLng{Lat: 59.91, Lng: 10.75}).Valid() {
		t.Error("Oslo should be a valid point")
	}
	if (core.LatLng{Lat: 91, Lng: 0}).Valid() {
		t.Error("latitude beyond 90 should be invalid")
	}
	if (core.LatLng{Lat: 0, Lng: -181}).Valid() {
		t.Error("longitude beyond -180 should be invalid")
	}
}
