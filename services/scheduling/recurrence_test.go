package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nextaccounting/models"
)

func TestGenerateOccurrencesWeeklyCount(t *testing.T) {
	// 2025-06-02 is a Monday.
	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	pattern := models.RecurrencePattern{
		Frequency: models.FrequencyWeekly,
		Bound:     models.BoundedCount(3),
	}

	out, err := GenerateOccurrences(start, pattern)
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.True(t, out[0].Equal(start))
	for i := 1; i < len(out); i++ {
		assert.Equal(t, 7*24*time.Hour, out[i].Sub(out[i-1]))
		assert.Equal(t, time.Monday, out[i].Weekday())
	}
}

func TestGenerateOccurrencesDailyWithInterval(t *testing.T) {
	start := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)
	out, err := GenerateOccurrences(start, models.RecurrencePattern{
		Frequency: models.FrequencyDaily,
		Interval:  3,
		Bound:     models.BoundedCount(4),
	})
	require.NoError(t, err)
	require.Len(t, out, 4)
	assert.True(t, out[3].Equal(start.AddDate(0, 0, 9)))
}

func TestGenerateOccurrencesMonthlyClampsShortMonths(t *testing.T) {
	start := time.Date(2025, 1, 31, 14, 0, 0, 0, time.UTC)
	out, err := GenerateOccurrences(start, models.RecurrencePattern{
		Frequency: models.FrequencyMonthly,
		Bound:     models.BoundedCount(4),
	})
	require.NoError(t, err)
	require.Len(t, out, 4)

	assert.Equal(t, 31, out[0].Day())
	assert.Equal(t, time.February, out[1].Month())
	assert.Equal(t, 28, out[1].Day()) // clamped, 2025 is not a leap year
	assert.Equal(t, 31, out[2].Day()) // March recovers the original day
	assert.Equal(t, 30, out[3].Day()) // April clamps again

	for _, occ := range out {
		assert.Equal(t, 14, occ.Hour())
	}
}

func TestGenerateOccurrencesUntilBound(t *testing.T) {
	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	until := time.Date(2025, 6, 6, 10, 0, 0, 0, time.UTC)

	out, err := GenerateOccurrences(start, models.RecurrencePattern{
		Frequency: models.FrequencyDaily,
		Bound:     models.BoundedUntil(until),
	})
	require.NoError(t, err)
	// The until instant itself is included.
	require.Len(t, out, 5)
	for _, occ := range out {
		assert.False(t, occ.After(until))
	}
}

func TestGenerateOccurrencesByWeekdayFanOut(t *testing.T) {
	// 2025-01-01 is a Wednesday. Mondays and Wednesdays; occurrences before
	// the series start are skipped.
	start := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	out, err := GenerateOccurrences(start, models.RecurrencePattern{
		Frequency: models.FrequencyWeekly,
		ByWeekday: []int{3, 1}, // order and duplicates are normalized
		Bound:     models.BoundedCount(3),
	})
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.True(t, out[0].Equal(start))
	assert.True(t, out[1].Equal(time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC))) // Mon
	assert.True(t, out[2].Equal(time.Date(2025, 1, 8, 9, 0, 0, 0, time.UTC))) // Wed
}

func TestGenerateOccurrencesKeepsLocalTimeAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// Weekly series straddling the 2025-03-09 spring-forward.
	start := time.Date(2025, 3, 4, 9, 0, 0, 0, loc)
	out, err := GenerateOccurrences(start, models.RecurrencePattern{
		Frequency: models.FrequencyWeekly,
		Bound:     models.BoundedCount(3),
	})
	require.NoError(t, err)
	require.Len(t, out, 3)

	for _, occ := range out {
		assert.Equal(t, 9, occ.In(loc).Hour(), "series must stay pinned to 09:00 local")
	}
	// Across the transition the UTC gap is 7 days minus the skipped hour.
	assert.Equal(t, 7*24*time.Hour-time.Hour, out[1].Sub(out[0]))
}

func TestGenerateOccurrencesUnboundedTruncates(t *testing.T) {
	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	out, err := GenerateOccurrences(start, models.RecurrencePattern{
		Frequency: models.FrequencyDaily,
		Bound:     models.Unbounded(),
	})
	require.NoError(t, err)
	assert.Len(t, out, MaxOccurrences)
}

func TestGenerateOccurrencesInvalidPatterns(t *testing.T) {
	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		pattern models.RecurrencePattern
	}{
		{"negative interval", models.RecurrencePattern{Frequency: models.FrequencyDaily, Interval: -1, Bound: models.BoundedCount(2)}},
		{"zero count", models.RecurrencePattern{Frequency: models.FrequencyDaily, Bound: models.BoundedCount(0)}},
		{"zero until", models.RecurrencePattern{Frequency: models.FrequencyDaily, Bound: models.RecurrenceBound{Kind: models.BoundUntil}}},
		{"unknown frequency", models.RecurrencePattern{Frequency: "HOURLY", Bound: models.BoundedCount(2)}},
		{"weekday out of range", models.RecurrencePattern{Frequency: models.FrequencyWeekly, ByWeekday: []int{7}, Bound: models.BoundedCount(2)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := GenerateOccurrences(start, tc.pattern)
			assert.ErrorIs(t, err, ErrInvalidPattern)
		})
	}
}
