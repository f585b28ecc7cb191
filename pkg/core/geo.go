package core

import "fmt"

// LatLng is the store's native geographic point representation.
type LatLng struct {
	Lat float64
	Lng float64
}

// Valid reports whether the point lies within WGS84 bounds.
func (p LatLng) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

func (p LatLng) String() string {
	return fmt.Sprintf("%g,%g", p.Lat, p.Lng)
}
