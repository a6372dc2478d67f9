package scheduling

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nextaccounting/models"
)

func weekdayHours(startMin, endMin int, weekdays ...int) models.BusinessHours {
	hours := models.BusinessHours{}
	for _, wd := range weekdays {
		hours[wd] = models.DayWindow{StartMinutes: startMin, EndMinutes: endMin}
	}
	return hours
}

// Mon-Fri 09:00-17:00.
func officeHours() models.BusinessHours {
	return weekdayHours(9*60, 17*60, 1, 2, 3, 4, 5)
}

func TestGenerateAvailabilityFullOpenDay(t *testing.T) {
	// 2025-06-02 is a Monday.
	from := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

	slots, err := GenerateAvailability(from, to, 60, nil, AvailabilityConfig{
		BusinessHours: officeHours(),
		TimeZone:      "UTC",
		Now:           now,
	})
	require.NoError(t, err)
	require.Len(t, slots, 8)

	for i, slot := range slots {
		want := time.Date(2025, 6, 2, 9+i, 0, 0, 0, time.UTC)
		assert.True(t, slot.Start.Equal(want), "slot %d starts at %v, want %v", i, slot.Start, want)
		assert.Equal(t, time.Hour, slot.End.Sub(slot.Start))
	}
}

func TestGenerateAvailabilityExcludesBusyInterval(t *testing.T) {
	from := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)
	busy := []models.BusyInterval{{
		Start: time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC),
	}}

	slots, err := GenerateAvailability(from, to, 60, busy, AvailabilityConfig{
		BusinessHours: officeHours(),
		TimeZone:      "UTC",
		Now:           time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, slots, 7)

	for _, slot := range slots {
		assert.NotEqual(t, 10, slot.Start.Hour(), "busy hour must not be offered")
	}
}

func TestGenerateAvailabilityFiltersPastSlots(t *testing.T) {
	from := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)
	now := time.Date(2025, 6, 2, 12, 30, 0, 0, time.UTC)

	slots, err := GenerateAvailability(from, to, 60, nil, AvailabilityConfig{
		BusinessHours: officeHours(),
		TimeZone:      "UTC",
		Now:           now,
	})
	require.NoError(t, err)
	// 13:00 through 16:00 remain.
	require.Len(t, slots, 4)
	assert.Equal(t, 13, slots[0].Start.Hour())
	for _, slot := range slots {
		assert.True(t, slot.Start.After(now))
	}
}

func TestGenerateAvailabilitySkipsClosedDays(t *testing.T) {
	// Saturday 2025-06-07 through Sunday, office closed both days.
	from := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 2)

	slots, err := GenerateAvailability(from, to, 60, nil, AvailabilityConfig{
		BusinessHours: officeHours(),
		TimeZone:      "UTC",
		Now:           from,
	})
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateAvailabilityBufferWidensBusyIntervals(t *testing.T) {
	from := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)
	busy := []models.BusyInterval{{
		Start: time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC),
	}}

	slots, err := GenerateAvailability(from, to, 60, busy, AvailabilityConfig{
		BusinessHours: officeHours(),
		TimeZone:      "UTC",
		Now:           time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC),
		BufferMinutes: 30,
	})
	require.NoError(t, err)
	// The widened interval 09:30-11:30 knocks out the 09:00, 10:00 and 11:00
	// slots; 12:00 onward survives.
	require.Len(t, slots, 5)
	assert.Equal(t, 12, slots[0].Start.Hour())
}

func TestGenerateAvailabilityDailyCap(t *testing.T) {
	from := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 2)
	busy := []models.BusyInterval{
		{Start: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC), End: time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)},
		{Start: time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC), End: time.Date(2025, 6, 2, 15, 0, 0, 0, time.UTC)},
	}

	slots, err := GenerateAvailability(from, to, 60, busy, AvailabilityConfig{
		BusinessHours:    officeHours(),
		TimeZone:         "UTC",
		Now:              from,
		MaxDailyBookings: 2,
	})
	require.NoError(t, err)
	require.NotEmpty(t, slots)
	// Monday is fully booked out by the cap; every offered slot is on Tuesday.
	for _, slot := range slots {
		assert.Equal(t, 3, slot.Start.Day())
	}
}

func TestGenerateAvailabilityPinsSlotsAcrossSpringForward(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2025-03-08 (Sat, EST) and 2025-03-09 (Sun, the 23-hour spring-forward
	// day, EDT). Both days open 09:00-17:00 local.
	hours := weekdayHours(9*60, 17*60, 0, 6)
	from := time.Date(2025, 3, 8, 0, 0, 0, 0, loc)
	to := from.AddDate(0, 0, 2)

	slots, err := GenerateAvailability(from, to, 60, nil, AvailabilityConfig{
		BusinessHours: hours,
		TimeZone:      "America/New_York",
		Now:           from,
	})
	require.NoError(t, err)
	require.Len(t, slots, 16)

	// Slots stay pinned to 09:00 local on both sides of the transition even
	// though the UTC instant of "09:00" shifts by an hour.
	assert.Equal(t, 9, slots[0].Start.In(loc).Hour())
	assert.Equal(t, 9, slots[8].Start.In(loc).Hour())
	assert.Equal(t, 14, slots[0].Start.UTC().Hour()) // EST is UTC-5
	assert.Equal(t, 13, slots[8].Start.UTC().Hour()) // EDT is UTC-4
}

func TestGenerateAvailabilityFallBackDayKeepsSlotCount(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2025-11-02 is the 25-hour fall-back Sunday.
	hours := weekdayHours(9*60, 17*60, 0)
	from := time.Date(2025, 11, 2, 0, 0, 0, 0, loc)
	to := from.AddDate(0, 0, 1)

	slots, err := GenerateAvailability(from, to, 60, nil, AvailabilityConfig{
		BusinessHours: hours,
		TimeZone:      "America/New_York",
		Now:           from,
	})
	require.NoError(t, err)
	assert.Len(t, slots, 8)
}

func TestGenerateAvailabilityConfigErrors(t *testing.T) {
	from := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	cases := []struct {
		name        string
		slotMinutes int
		cfg         AvailabilityConfig
	}{
		{"zero slot length", 0, AvailabilityConfig{BusinessHours: officeHours(), TimeZone: "UTC"}},
		{"missing zone", 60, AvailabilityConfig{BusinessHours: officeHours()}},
		{"unknown zone", 60, AvailabilityConfig{BusinessHours: officeHours(), TimeZone: "Mars/Olympus"}},
		{"weekday out of range", 60, AvailabilityConfig{
			BusinessHours: models.BusinessHours{7: {StartMinutes: 0, EndMinutes: 60}},
			TimeZone:      "UTC",
		}},
		{"inverted window", 60, AvailabilityConfig{
			BusinessHours: models.BusinessHours{1: {StartMinutes: 600, EndMinutes: 540}},
			TimeZone:      "UTC",
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := GenerateAvailability(from, to, tc.slotMinutes, nil, tc.cfg)
			var cfgErr *ConfigurationError
			require.Error(t, err)
			assert.True(t, errors.As(err, &cfgErr), "expected ConfigurationError, got %T", err)
		})
	}
}
