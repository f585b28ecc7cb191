// Package mongo implements core.Store on a MongoDB collection. Entities map
// to BSON documents: explicit nulls become BSON nulls, no-index field names
// are recorded in a reserved _noindex array, and DATE_TIME values use the
// native BSON datetime (millisecond precision; sub-millisecond digits are
// truncated on write).
package mongo

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/aretw0/silt/pkg/core"
)

// Reserved document fields. The schema layer rejects underscore-prefixed
// property names, and toDocument refuses them for entities built without
// it, so these cannot collide.
const (
	fieldID      = "_id"
	fieldKind    = "_kind"
	fieldNoIndex = "_noindex"
)

// toDocument converts a sealed entity into its BSON document form.
func toDocument(e core.Entity) (bson.M, error) {
	doc := bson.M{
		fieldID:   e.Key().ID,
		fieldKind: e.Key().Kind,
	}
	noIndex := bson.A{}
	for _, name := range e.Names() {
		if strings.HasPrefix(name, "_") {
			return nil, fmt.Errorf("field %q: underscore-prefixed names are reserved", name)
		}
		if e.NoIndex(name) {
			noIndex = append(noIndex, name)
		}
		if e.IsNull(name) {
			doc[name] = primitive.Null{}
			continue
		}
		v, _ := e.Value(name)
		bv, err := toBSONValue(v)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		doc[name] = bv
	}
	doc[fieldNoIndex] = noIndex
	return doc, nil
}

// fromDocument reverses toDocument.
func fromDocument(m bson.M) (core.Entity, error) {
	id, _ := m[fieldID].(string)
	kind, _ := m[fieldKind].(string)
	if id == "" || kind == "" {
		return core.Entity{}, fmt.Errorf("document missing %s/%s", fieldID, fieldKind)
	}

	noIndex := make(map[string]bool)
	if arr, ok := m[fieldNoIndex].(bson.A); ok {
		for _, item := range arr {
			if name, ok := item.(string); ok {
				noIndex[name] = true
			}
		}
	}

	doc := core.NewDocument(core.NewKey(kind, id))
	for name, raw := range m {
		if name == fieldID || name == fieldKind || name == fieldNoIndex {
			continue
		}
		if _, isNull := raw.(primitive.Null); isNull || raw == nil {
			doc.SetNull(name)
			continue
		}
		v, err := fromBSONValue(raw)
		if err != nil {
			return core.Entity{}, fmt.Errorf("field %q: %w", name, err)
		}
		if noIndex[name] {
			doc.SetUnindexed(name, v)
		} else {
			doc.SetValue(name, v)
		}
	}
	return doc.Seal(), nil
}

func toBSONValue(v any) (any, error) {
	switch val := v.(type) {
	case int64, float64, bool, string:
		return val, nil
	case []byte:
		return primitive.Binary{Subtype: 0x00, Data: val}, nil
	case core.Micros:
		return primitive.DateTime(int64(val) / 1000), nil
	case core.Key:
		return bson.M{"kind": val.Kind, "id": val.ID}, nil
	case core.LatLng:
		// GeoJSON point, coordinates are [longitude, latitude]
		return bson.M{"type": "Point", "coordinates": bson.A{val.Lng, val.Lat}}, nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
}

func fromBSONValue(raw any) (any, error) {
	switch val := raw.(type) {
	case int64:
		return val, nil
	case int32:
		return int64(val), nil
	case float64, bool, string:
		return val, nil
	case primitive.Binary:
		return val.Data, nil
	case primitive.DateTime:
		return core.Micros(int64(val) * 1000), nil
	case bson.M:
		return fromBSONDocValue(val)
	case bson.D:
		return fromBSONDocValue(val.Map())
	default:
		return nil, fmt.Errorf("unsupported BSON type %T", raw)
	}
}

func fromBSONDocValue(m bson.M) (any, error) {
	if t, ok := m["type"].(string); ok && t == "Point" {
		coords, ok := m["coordinates"].(bson.A)
		if !ok || len(coords) != 2 {
			return nil, fmt.Errorf("malformed GeoJSON point")
		}
		lng, okLng := coords[0].(float64)
		lat, okLat := coords[1].(float64)
		if !okLng || !okLat {
			return nil, fmt.Errorf("malformed GeoJSON coordinates")
		}
		return core.LatLng{Lat: lat, Lng: lng}, nil
	}
	kind, okKind := m["kind"].(string)
	id, okID := m["id"].(string)
	if okKind && okID {
		return core.NewKey(kind, id), nil
	}
	return nil, fmt.Errorf("unrecognized sub-document %v", m)
}
