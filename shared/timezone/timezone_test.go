package timezone_test

import (
	"testing"
	"time"

	"airwave/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNowAndLocation(t *testing.T) {
	assert.False(t, timezone.Now().IsZero())
	require.NotNil(t, timezone.GetLocation())
	assert.Equal(t, timezone.GetLocation(), timezone.Now().Location())
}

func TestParseAndFormat(t *testing.T) {
	parsed, err := timezone.Parse(time.DateOnly, "2024-01-01")
	require.NoError(t, err)

	assert.Equal(t, timezone.GetLocation(), parsed.Location())
	assert.Equal(t, "2024-01-01", timezone.Format(parsed, time.DateOnly))

	_, err = timezone.Parse(time.DateOnly, "01/01/2024")
	assert.Error(t, err)
}

func TestClocks(t *testing.T) {
	at := time.Date(2024, 1, 1, 14, 30, 0, 0, timezone.GetLocation())

	assert.Equal(t, at, timezone.FixedClock{At: at}.Now())
	assert.WithinDuration(t, time.Now(), timezone.SystemClock{}.Now(), time.Second)
}

func TestStartOfDayAndSameDay(t *testing.T) {
	loc := timezone.GetLocation()
	at := time.Date(2024, 3, 9, 23, 59, 0, 0, loc)

	assert.Equal(t, time.Date(2024, 3, 9, 0, 0, 0, 0, loc), timezone.StartOfDay(at))
	assert.True(t, timezone.SameDay(at, time.Date(2024, 3, 9, 0, 0, 0, 0, loc)))
	assert.False(t, timezone.SameDay(at, time.Date(2024, 3, 10, 0, 0, 0, 0, loc)))

	// 22:30 UTC on the 9th is already the 10th at UTC+2.
	plusTwo := time.FixedZone("UTC+2", 2*60*60)
	assert.True(t, timezone.SameDay(time.Date(2024, 3, 9, 22, 30, 0, 0, time.UTC), time.Date(2024, 3, 10, 8, 0, 0, 0, plusTwo)))
}
