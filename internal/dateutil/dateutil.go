// Package dateutil provides the date helpers the derivation layer is
// built on. Business dates are ISO "YYYY-MM-DD" strings; helpers parse
// leniently and report validity instead of returning errors, so callers
// can exclude malformed records without branching on error values.
package dateutil

import (
	"strings"
	"time"
)

// ISODate is the layout of every business date field.
const ISODate = "2006-01-02"

// Clock supplies the current time. Services take a Clock so "today"
// is deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall-clock implementation used in production.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }

// Parse parses an ISO date or timestamp string. Strings carrying a time
// component ("2025-01-02T10:00" or "2025-01-02 10:00") parse by their
// date part. The second return value reports whether the string held a
// usable date.
func Parse(s string) (time.Time, bool) {
	d := DateOnly(s)
	if len(d) != len(ISODate) {
		return time.Time{}, false
	}
	t, err := time.Parse(ISODate, d)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// IsValid reports whether s holds a parseable date.
func IsValid(s string) bool {
	_, ok := Parse(s)
	return ok
}

// DateOnly truncates a date or timestamp string to its "YYYY-MM-DD"
// prefix. It does not validate; pair with IsValid where needed.
func DateOnly(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, "T "); i >= 0 {
		s = s[:i]
	}
	if len(s) > len(ISODate) {
		s = s[:len(ISODate)]
	}
	return s
}

// MonthBucket returns the "YYYY-MM" prefix used for month grouping.
// Strings shorter than 7 characters return as-is.
func MonthBucket(s string) string {
	s = DateOnly(s)
	if len(s) > 7 {
		return s[:7]
	}
	return s
}

// AddDays shifts an ISO date by n calendar days. Malformed input
// returns ("", false).
func AddDays(s string, n int) (string, bool) {
	t, ok := Parse(s)
	if !ok {
		return "", false
	}
	return t.AddDate(0, 0, n).Format(ISODate), true
}

// Midnight truncates t to the start of its day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Today formats the clock's current date as an ISO string.
func Today(clock Clock) string {
	return clock.Now().Format(ISODate)
}
