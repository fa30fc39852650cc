package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("").String())
	assert.Equal(t, DefaultTimezone, Location("Mars/Olympus").String())
	assert.Equal(t, "UTC", Location("UTC").String())
}

func TestParseDate(t *testing.T) {
	loc := Location(DefaultTimezone)

	d, err := ParseDate("2025-01-10", loc)
	require.NoError(t, err)
	assert.Equal(t, 10, d.Day())
	assert.Equal(t, 0, d.Hour())
	assert.Equal(t, loc, d.Location())

	d, err = ParseDate("2025-01-10T12:00:00Z", loc)
	require.NoError(t, err)
	assert.Equal(t, 12, d.UTC().Hour())

	_, err = ParseDate("10/01/2025", loc)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDayBounds(t *testing.T) {
	loc := Location(DefaultTimezone)

	// 01:00 UTC on the 11th is still the 10th in São Paulo
	start, end := DayBounds(time.Date(2025, 1, 11, 1, 0, 0, 0, time.UTC), loc)
	assert.Equal(t, 10, start.Day())
	assert.Equal(t, 24*time.Hour, end.Sub(start))
}
