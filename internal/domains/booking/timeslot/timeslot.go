// Package timeslot computes the hourly start slots offered by the booking form
// and validates a submitted form before it reaches the booking engine.
package timeslot

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"airwave/config"
	"airwave/shared/constant"
	"airwave/shared/failure"
	"airwave/shared/timezone"
)

const hoursPerDay = 24

var ErrInvalidLabel = errors.New("time slot label must be HH:00")

const (
	FieldTitle    = "title"
	FieldDate     = "date"
	FieldStart    = "start_time"
	FieldDuration = "duration_hours"
)

// Form is the booking form as the user submitted it.
type Form struct {
	Title         string
	Date          *time.Time
	StartLabel    string
	DurationHours int
}

type Limits struct {
	MinDurationHours int
	MaxDurationHours int
}

func LimitsFromConfig(cfg *config.Config) Limits {
	return Limits{
		MinDurationHours: cfg.Booking.MinDurationHours,
		MaxDurationHours: cfg.Booking.MaxDurationHours,
	}
}

// Labels returns every hourly label of a day, "00:00" to "23:00".
func Labels() []string {
	labels := make([]string, 0, hoursPerDay)
	for hour := range hoursPerDay {
		labels = append(labels, label(hour))
	}

	return labels
}

// GenerateTimeSlots lists the selectable start labels for date. On the current
// day, hours before the current hour are dropped; the current hour stays.
func GenerateTimeSlots(date time.Time, clock timezone.Clock) []string {
	now := clock.Now()

	first := 0
	if timezone.SameDay(date, now) {
		first = now.Hour()
	}

	slots := make([]string, 0, hoursPerDay-first)
	for hour := first; hour < hoursPerDay; hour++ {
		slots = append(slots, label(hour))
	}

	return slots
}

// ParseLabel returns the hour encoded in an "HH:00" label.
func ParseLabel(value string) (int, error) {
	hh, mm, ok := strings.Cut(value, ":")
	if !ok || len(hh) != 2 || mm != "00" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLabel, value)
	}

	t, err := time.Parse(constant.TimeSlotLabel, value)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLabel, value)
	}

	return t.Hour(), nil
}

// MustParseLabel is ParseLabel for labels that were already validated. It panics otherwise.
func MustParseLabel(value string) int {
	hour, err := ParseLabel(value)
	if err != nil {
		panic(err)
	}

	return hour
}

// StartTime places label on the calendar day of date, in date's location.
func StartTime(date time.Time, startLabel string) time.Time {
	return timezone.StartOfDay(date).Add(time.Duration(MustParseLabel(startLabel)) * time.Hour)
}

// CalculateEndTime returns the start instant of startLabel on date plus
// durationHours. It returns nil when no date was picked.
func CalculateEndTime(date *time.Time, startLabel string, durationHours int) *time.Time {
	if date == nil {
		return nil
	}

	end := StartTime(*date, startLabel).Add(time.Duration(durationHours) * time.Hour)

	return &end
}

// ValidateForm checks the form against clock and limits and reports every
// offending field at once.
func ValidateForm(form Form, clock timezone.Clock, limits Limits) error {
	now := clock.Now()
	fields := map[string]string{}

	checkTitle(fields, form.Title)

	switch {
	case form.Date == nil:
		fields[FieldDate] = "date is required"
	case timezone.StartOfDay(form.Date.In(now.Location())).Before(timezone.StartOfDay(now)):
		fields[FieldDate] = "date cannot be in the past"
	}

	switch {
	case form.StartLabel == "":
		fields[FieldStart] = "start time is required"
	default:
		if _, err := ParseLabel(form.StartLabel); err != nil {
			fields[FieldStart] = "start time must be a full hour in HH:00 format"
		} else if form.Date != nil && StartTime(*form.Date, form.StartLabel).Before(now) {
			fields[FieldStart] = "start time cannot be in the past"
		}
	}

	switch {
	case form.DurationHours <= 0:
		fields[FieldDuration] = "duration is required"
	case limits.MinDurationHours > 0 && form.DurationHours < limits.MinDurationHours:
		fields[FieldDuration] = fmt.Sprintf("duration must be at least %d hours", limits.MinDurationHours)
	case limits.MaxDurationHours > 0 && form.DurationHours > limits.MaxDurationHours:
		fields[FieldDuration] = fmt.Sprintf("duration must be at most %d hours", limits.MaxDurationHours)
	}

	return failure.InvalidFields(fields)
}

// ValidateTitle checks only the title, for edits that keep the slot.
func ValidateTitle(title string) error {
	fields := map[string]string{}
	checkTitle(fields, title)

	return failure.InvalidFields(fields)
}

func checkTitle(fields map[string]string, title string) {
	if strings.TrimSpace(title) == "" {
		fields[FieldTitle] = "title is required"
	}
}

func label(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}
