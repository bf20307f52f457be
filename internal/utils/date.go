package utils

import (
	"fmt"
	"time"
)

// DayKeyFormat is the canonical YYYY-MM-DD layout used everywhere a calendar
// day is stored or compared.
const DayKeyFormat = "2006-01-02"

// ParseError reports a malformed day key. Callers must never fall back to
// "today" or the zero time when they see one.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid day key %q: %s", e.Input, e.Reason)
}

// ToDayKey formats t's local calendar date as YYYY-MM-DD. It reads the local
// year/month/day components directly rather than converting through UTC, so
// the day never shifts regardless of time-of-day or zone offset.
func ToDayKey(t time.Time) string {
	y, m, d := t.Date()
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
}

// FromDayKey parses a YYYY-MM-DD key into local midnight of that day. It is
// the exact inverse of ToDayKey for every valid key.
func FromDayKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(DayKeyFormat, key, time.Local)
	if err != nil {
		return time.Time{}, &ParseError{Input: key, Reason: "expected YYYY-MM-DD"}
	}
	// time.Parse normalizes out-of-range components (2025-02-30 becomes
	// March 2), which would silently move the day. Reject those.
	if ToDayKey(t) != key {
		return time.Time{}, &ParseError{Input: key, Reason: "no such calendar day"}
	}
	return t, nil
}

// StartOfLocalDay truncates t to local midnight.
func StartOfLocalDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// AddDays returns the day key n days after (or before, for negative n) the
// given key. It panics on an invalid key; use FromDayKey first for untrusted
// input.
func AddDays(key string, n int) string {
	t, err := FromDayKey(key)
	if err != nil {
		panic(err)
	}
	return ToDayKey(t.AddDate(0, 0, n))
}
