package timeslot_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"airwave/internal/domains/booking/timeslot"
	"airwave/shared/failure"
	"airwave/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	now    = time.Date(2024, 1, 1, 14, 30, 0, 0, time.UTC)
	clock  = timezone.FixedClock{At: now}
	today  = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	limits = timeslot.Limits{MinDurationHours: 1, MaxDurationHours: 4}
)

func datePtr(t time.Time) *time.Time {
	return &t
}

func TestLabels(t *testing.T) {
	labels := timeslot.Labels()

	require.Len(t, labels, 24)
	assert.Equal(t, "00:00", labels[0])
	assert.Equal(t, "09:00", labels[9])
	assert.Equal(t, "23:00", labels[23])
}

func TestGenerateTimeSlots(t *testing.T) {
	t.Run("today drops past hours and keeps the current one", func(t *testing.T) {
		slots := timeslot.GenerateTimeSlots(today, clock)

		require.Len(t, slots, 10)
		assert.Equal(t, "14:00", slots[0])
		assert.Equal(t, "23:00", slots[len(slots)-1])
		assert.NotContains(t, slots, "13:00")
		assert.NotContains(t, slots, "00:00")
	})

	t.Run("later date lists the whole day", func(t *testing.T) {
		slots := timeslot.GenerateTimeSlots(today.AddDate(0, 0, 1), clock)

		assert.Equal(t, timeslot.Labels(), slots)
	})

	t.Run("time of day on the selected date does not matter", func(t *testing.T) {
		slots := timeslot.GenerateTimeSlots(today.Add(20*time.Hour), clock)

		assert.Len(t, slots, 10)
	})

	t.Run("repeated calls return the same slots", func(t *testing.T) {
		first := timeslot.GenerateTimeSlots(today, clock)
		second := timeslot.GenerateTimeSlots(today, clock)

		assert.Equal(t, first, second)
	})
}

func TestParseLabel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
		wantErr  bool
	}{
		{name: "midnight", input: "00:00", expected: 0},
		{name: "morning", input: "09:00", expected: 9},
		{name: "last hour", input: "23:00", expected: 23},
		{name: "half hour", input: "09:30", wantErr: true},
		{name: "out of range", input: "24:00", wantErr: true},
		{name: "single digit", input: "9:00", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hour, err := timeslot.ParseLabel(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, timeslot.ErrInvalidLabel)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, hour)
		})
	}
}

func TestMustParseLabel_Panics(t *testing.T) {
	assert.Panics(t, func() { timeslot.MustParseLabel("9am") })
	assert.NotPanics(t, func() { timeslot.MustParseLabel("21:00") })
}

func TestCalculateEndTime(t *testing.T) {
	date := time.Date(2024, 3, 5, 17, 45, 12, 0, time.UTC)

	end := timeslot.CalculateEndTime(&date, "09:00", 3)

	require.NotNil(t, end)
	start := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, 3*time.Hour, end.Sub(start))
	assert.Equal(t, time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC), *end)

	assert.Nil(t, timeslot.CalculateEndTime(nil, "09:00", 3))
}

func TestCalculateEndTime_CrossesMidnight(t *testing.T) {
	end := timeslot.CalculateEndTime(datePtr(today), "22:00", 4)

	require.NotNil(t, end)
	assert.Equal(t, time.Date(2024, 1, 2, 2, 0, 0, 0, time.UTC), *end)
}

func TestValidateForm(t *testing.T) {
	tests := []struct {
		name   string
		form   timeslot.Form
		fields []string
	}{
		{
			name: "valid future booking",
			form: timeslot.Form{Title: "Night Drive", Date: datePtr(today.AddDate(0, 0, 1)), StartLabel: "09:00", DurationHours: 2},
		},
		{
			name: "valid later today",
			form: timeslot.Form{Title: "Night Drive", Date: datePtr(today), StartLabel: "15:00", DurationHours: 1},
		},
		{
			name:   "everything missing",
			form:   timeslot.Form{},
			fields: []string{timeslot.FieldTitle, timeslot.FieldDate, timeslot.FieldStart, timeslot.FieldDuration},
		},
		{
			name:   "blank title",
			form:   timeslot.Form{Title: "   ", Date: datePtr(today.AddDate(0, 0, 1)), StartLabel: "09:00", DurationHours: 2},
			fields: []string{timeslot.FieldTitle},
		},
		{
			name:   "yesterday",
			form:   timeslot.Form{Title: "Night Drive", Date: datePtr(today.AddDate(0, 0, -1)), StartLabel: "20:00", DurationHours: 2},
			fields: []string{timeslot.FieldDate, timeslot.FieldStart},
		},
		{
			// The current hour is offered as a slot but its start instant has already passed.
			name:   "current hour today",
			form:   timeslot.Form{Title: "Night Drive", Date: datePtr(today), StartLabel: "14:00", DurationHours: 1},
			fields: []string{timeslot.FieldStart},
		},
		{
			name:   "malformed start",
			form:   timeslot.Form{Title: "Night Drive", Date: datePtr(today.AddDate(0, 0, 1)), StartLabel: "09:15", DurationHours: 1},
			fields: []string{timeslot.FieldStart},
		},
		{
			name:   "too long",
			form:   timeslot.Form{Title: "Night Drive", Date: datePtr(today.AddDate(0, 0, 1)), StartLabel: "09:00", DurationHours: 5},
			fields: []string{timeslot.FieldDuration},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := timeslot.ValidateForm(tt.form, clock, limits)
			if len(tt.fields) == 0 {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

			var fail *failure.Failure
			require.True(t, errors.As(err, &fail))
			assert.Len(t, fail.Fields, len(tt.fields))

			for _, field := range tt.fields {
				assert.Contains(t, fail.Fields, field)
			}
		})
	}
}

func TestValidateTitle(t *testing.T) {
	require.NoError(t, timeslot.ValidateTitle("Night Drive"))

	for _, title := range []string{"", "   ", "\t\n"} {
		err := timeslot.ValidateTitle(title)

		require.Error(t, err)
		assert.Equal(t, map[string]string{timeslot.FieldTitle: "title is required"}, failure.FieldsOf(err))
	}
}

func TestValidateForm_DurationBelowMinimum(t *testing.T) {
	form := timeslot.Form{Title: "Night Drive", Date: datePtr(today.AddDate(0, 0, 1)), StartLabel: "09:00", DurationHours: 1}

	err := timeslot.ValidateForm(form, clock, timeslot.Limits{MinDurationHours: 2, MaxDurationHours: 4})

	var fail *failure.Failure
	require.True(t, errors.As(err, &fail))
	assert.Equal(t, "duration must be at least 2 hours", fail.Fields[timeslot.FieldDuration])
}
