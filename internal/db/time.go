package db

import "time"

// NaiveAsUTC reinterprets the wall-clock reading of t as a UTC instant.
// Timestamp columns carry no zone, so whatever zone the driver attaches
// on scan must be stripped before the value reenters the domain.
func NaiveAsUTC(t time.Time) time.Time {
	return time.Date(
		t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(),
		time.UTC,
	)
}
