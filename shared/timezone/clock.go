package timezone

import "time"

// Clock supplies "now" to code that must be deterministic under test.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in the application timezone.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return Now()
}

// FixedClock always returns At.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time {
	return c.At
}

// StartOfDay truncates t to midnight in t's own location.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a falls on the calendar day of ref, read in ref's location.
func SameDay(a, ref time.Time) bool {
	ay, am, ad := a.In(ref.Location()).Date()
	by, bm, bd := ref.Date()

	return ay == by && am == bm && ad == bd
}
