// Package timezone pins every timestamp the service produces to the configured
// APP_TIMEZONE (an IANA name such as "Europe/London"; UTC when unset).
//
// The location is loaded on import. Code that needs a controllable "now"
// takes a Clock: SystemClock in production, FixedClock in tests.
//
//	now := timezone.Now()
//	day, err := timezone.Parse(time.DateOnly, "2024-01-01")
//	slots := timeslot.GenerateTimeSlots(day, timezone.SystemClock{})
package timezone
