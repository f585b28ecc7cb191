package core

import "time"

// Micros is the store's native timestamp representation: microseconds since
// the Unix epoch.
type Micros int64

// ToMicros converts a timezone-naive local date-time into the store's native
// timestamp. The wall-clock fields are taken as-is, without any zone offset;
// two values with the same clock reading convert identically regardless of
// the location attached to the time.Time.
func ToMicros(t time.Time) Micros {
	u := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
	return Micros(u.UnixMicro())
}

// Time converts the timestamp back to a wall-clock reading in UTC.
func (m Micros) Time() time.Time {
	return time.UnixMicro(int64(m)).UTC()
}
