package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "0:00", FormatClock(0))
	assert.Equal(t, "0:00", FormatClock(-5))
	assert.Equal(t, "1:30", FormatClock(90))
	assert.Equal(t, "59:59", FormatClock(3599))
	assert.Equal(t, "1:00:05", FormatClock(3605))
}

func TestParseDay(t *testing.T) {
	day, err := ParseDay("2025-02-07")
	require.NoError(t, err)
	assert.Equal(t, "2025-02-07", day)

	day, err = ParseDay("07/02/25")
	require.NoError(t, err)
	assert.Equal(t, "2025-02-07", day)

	_, err = ParseDay("Feb 7")
	assert.Error(t, err)
}

func TestWeekStreak(t *testing.T) {
	now := time.Date(2025, 3, 12, 12, 0, 0, 0, time.UTC) // Wednesday
	sessions := []time.Time{
		now.AddDate(0, 0, -1),
		now.AddDate(0, 0, -7),
		now.AddDate(0, 0, -14),
		now.AddDate(0, 0, -28),
	}
	assert.Equal(t, 3, WeekStreak(sessions, now))
	assert.Equal(t, 0, WeekStreak(sessions[1:], now))
	assert.Equal(t, 0, WeekStreak(nil, now))
}
