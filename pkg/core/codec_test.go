package core_test

import (
	"bytes"
	"testing"

	"github.com/aretw0/silt/pkg/core"
)

func TestEntityWireRoundTrip(t *testing.T) {
	ref := core.NewKey("Country", "no")
	doc := core.NewDocument(core.NewKey("Place", "oslo"))
	doc.SetValue("ref", ref)
	doc.SetValue("population", int64(5500000))
	doc.SetValue("area", 385207.0)
	doc.SetValue("capital", true)
	doc.SetValue("name", "Oslo")
	doc.SetUnindexed("description", "A very long description...")
	doc.SetValue("flag", []byte{0xDE, 0xAD, 0xBE, 0xEF})
	doc.SetValue("founded", core.Micros(1234567890000000))
	doc.SetValue("location", core.LatLng{Lat: 59.91, Lng: 10.75})
	doc.SetNull("motto")
	original := doc.Seal()

	data, err := core.EncodeEntity(original)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	decoded, err := core.DecodeEntity(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if decoded.Key() != original.Key() {
		t.Errorf("key mismatch: %s != %s", decoded.Key(), original.Key())
	}
	if decoded.Len() != original.Len() {
		t.Fatalf("field count mismatch: %d != %d", decoded.Len(), original.Len())
	}

	// Longs stay int64 and timestamps stay Micros after the trip; a
	// type-tagged wire form is the whole point of this codec.
	if v, _ := decoded.Value("population"); v != int64(5500000) {
		t.Errorf("population decoded as %T %v", v, v)
	}
	if v, _ := decoded.Value("founded"); v != core.Micros(1234567890000000) {
		t.Errorf("founded decoded as %T %v", v, v)
	}
	if v, _ := decoded.Value("ref"); v != ref {
		t.Errorf("ref decoded as %v", v)
	}
	if v, _ := decoded.Value("location"); v != (core.LatLng{Lat: 59.91, Lng: 10.75}) {
		t.Errorf("location decoded as %v", v)
	}
	if v, _ := decoded.Value("flag"); !bytes.Equal(v.([]byte), []byte{0xDE, 0xAD, 0xBE, 0xEF}) {
		t.Errorf("flag decoded as %v", v)
	}
	if !decoded.IsNull("motto") {
		t.Error("explicit null should survive the trip")
	}
	if !decoded.NoIndex("description") {
		t.Error("no-index flag should survive the trip")
	}
	if decoded.NoIndex("name") {
		t.Error("name should not gain a no-index flag")
	}
}

func TestDecodeEntityRejectsGarbage(t *testing.T) {
	if _, err := core.DecodeEntity([]byte("{not json")); err == nil {
		t.Error("expected decode error for malformed input")
	}
	if _, err := core.DecodeEntity([]byte(`{"key":{"kind":"T","id":"1"},"fields":{"x":{"type":"mystery","value":1}}}`)); err == nil {
		t.Error("expected decode error for unknown wire type")
	}
}
