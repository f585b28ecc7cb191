package core

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Wire representation used by JSON-backed stores and tooling output.
// Values carry a type tag so that longs, timestamps and geo points survive
// a round trip without collapsing into float64.

type wireKey struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

type wireField struct {
	Type    string          `json:"type,omitempty"`
	Value   json.RawMessage `json:"value,omitempty"`
	Null    bool            `json:"null,omitempty"`
	NoIndex bool            `json:"noindex,omitempty"`
}

type wireEntity struct {
	Key    wireKey              `json:"key"`
	Fields map[string]wireField `json:"fields"`
}

type wireLatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// EncodeEntity serializes a sealed entity to its JSON wire form.
func EncodeEntity(e Entity) ([]byte, error) {
	w := wireEntity{
		Key:    wireKey{Kind: e.key.Kind, ID: e.key.ID},
		Fields: make(map[string]wireField, len(e.fields)),
	}
	for name, f := range e.fields {
		if f.null {
			w.Fields[name] = wireField{Null: true, NoIndex: f.noIndex}
			continue
		}
		typ, val, err := encodeValue(f.value)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		w.Fields[name] = wireField{Type: typ, Value: val, NoIndex: f.noIndex}
	}
	return json.Marshal(w)
}

// DecodeEntity reverses EncodeEntity.
func DecodeEntity(data []byte) (Entity, error) {
	var w wireEntity
	if err := json.Unmarshal(data, &w); err != nil {
		return Entity{}, fmt.Errorf("decode entity: %w", err)
	}
	fields := make(map[string]field, len(w.Fields))
	for name, wf := range w.Fields {
		if wf.Null {
			fields[name] = field{null: true, noIndex: wf.NoIndex}
			continue
		}
		v, err := decodeValue(wf.Type, wf.Value)
		if err != nil {
			return Entity{}, fmt.Errorf("field %q: %w", name, err)
		}
		fields[name] = field{value: v, noIndex: wf.NoIndex}
	}
	return Entity{key: Key{Kind: w.Key.Kind, ID: w.Key.ID}, fields: fields}, nil
}

func encodeValue(v any) (string, json.RawMessage, error) {
	var (
		typ string
		out any
	)
	switch val := v.(type) {
	case int64:
		typ, out = "long", val
	case float64:
		typ, out = "double", val
	case bool:
		typ, out = "bool", val
	case string:
		typ, out = "string", val
	case []byte:
		typ, out = "blob", val
	case Key:
		typ, out = "key", wireKey{Kind: val.Kind, ID: val.ID}
	case LatLng:
		typ, out = "latlng", wireLatLng{Lat: val.Lat, Lng: val.Lng}
	case Micros:
		typ, out = "time", int64(val)
	default:
		return "", nil, fmt.Errorf("unsupported value type %T", v)
	}
	raw, err := json.Marshal(out)
	if err != nil {
		return "", nil, err
	}
	return typ, raw, nil
}

func decodeValue(typ string, raw json.RawMessage) (any, error) {
	switch typ {
	case "long":
		return decodeInto[int64](raw)
	case "double":
		return decodeInto[float64](raw)
	case "bool":
		return decodeInto[bool](raw)
	case "string":
		return decodeInto[string](raw)
	case "blob":
		return decodeInto[[]byte](raw)
	case "key":
		var v wireKey
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return Key{Kind: v.Kind, ID: v.ID}, nil
	case "latlng":
		var v wireLatLng
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return LatLng{Lat: v.Lat, Lng: v.Lng}, nil
	case "time":
		var v int64
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return Micros(v), nil
	default:
		return nil, fmt.Errorf("unknown wire type %q", typ)
	}
}

func decodeInto[T any](raw json.RawMessage) (any, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}
