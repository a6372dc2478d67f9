package scheduling

import (
	"fmt"
	"time"

	"nextaccounting/models"
)

// AvailabilityConfig carries the tenant/service context for slot generation.
// Now is injectable so "past" filtering is deterministic under test; the zero
// value means wall-clock time.
type AvailabilityConfig struct {
	BusinessHours    models.BusinessHours
	TimeZone         string // IANA zone name; business hours are interpreted in this zone
	Now              time.Time
	BufferMinutes    int // widens each busy interval on both sides
	MaxDailyBookings int // 0 = unlimited
}

// GenerateAvailability emits candidate slots of slotMinutes length for every
// calendar day in [from, to), aligned to the business-hours open time in the
// configured zone. A slot is dropped when it overlaps a (buffered) busy
// interval or does not start strictly after Now.
//
// Slot boundaries are derived from local wall-clock fields, not from epoch
// offsets, so days with a skipped or repeated hour keep their slots pinned to
// the business hours rather than drifting with the UTC offset.
func GenerateAvailability(from, to time.Time, slotMinutes int, busy []models.BusyInterval, cfg AvailabilityConfig) ([]models.Slot, error) {
	if slotMinutes <= 0 {
		return nil, &ConfigurationError{Field: "slotMinutes", Reason: "must be positive"}
	}
	if cfg.TimeZone == "" {
		return nil, &ConfigurationError{Field: "timeZone", Reason: "zone name is required"}
	}
	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, &ConfigurationError{Field: "timeZone", Reason: fmt.Sprintf("unknown zone %q", cfg.TimeZone)}
	}
	if err := validateBusinessHours(cfg.BusinessHours); err != nil {
		return nil, err
	}

	now := cfg.Now
	if now.IsZero() {
		now = time.Now()
	}

	var slots []models.Slot

	localFrom := from.In(loc)
	day := time.Date(localFrom.Year(), localFrom.Month(), localFrom.Day(), 0, 0, 0, 0, loc)
	for ; day.Before(to); day = nextDay(day) {
		window, open := cfg.BusinessHours[int(day.Weekday())]
		if !open {
			continue
		}

		dayEnd := nextDay(day)
		dayBusy := overlappingIntervals(busy, day, dayEnd)

		// A day that already holds the daily cap of bookings yields no slots.
		if cfg.MaxDailyBookings > 0 && len(dayBusy) >= cfg.MaxDailyBookings {
			continue
		}

		if cfg.BufferMinutes > 0 {
			dayBusy = widenIntervals(dayBusy, cfg.BufferMinutes)
		}

		y, m, d := day.Date()
		for offset := window.StartMinutes; offset+slotMinutes <= window.EndMinutes; offset += slotMinutes {
			slotStart := time.Date(y, m, d, 0, offset, 0, 0, loc)
			slotEnd := time.Date(y, m, d, 0, offset+slotMinutes, 0, 0, loc)

			if !slotStart.After(now) || !slotStart.Before(to) {
				continue
			}
			if overlapsAny(slotStart, slotEnd, dayBusy) {
				continue
			}
			slots = append(slots, models.Slot{Start: slotStart, End: slotEnd})
		}
	}

	return slots, nil
}

func validateBusinessHours(hours models.BusinessHours) error {
	for weekday, window := range hours {
		if weekday < 0 || weekday > 6 {
			return &ConfigurationError{Field: "businessHours", Reason: fmt.Sprintf("weekday %d out of range", weekday)}
		}
		if window.StartMinutes < 0 || window.StartMinutes >= window.EndMinutes || window.EndMinutes > 24*60 {
			return &ConfigurationError{
				Field:  "businessHours",
				Reason: fmt.Sprintf("weekday %d window [%d, %d) is not a valid minute range", weekday, window.StartMinutes, window.EndMinutes),
			}
		}
	}
	return nil
}

// nextDay advances to the following local midnight via wall-clock fields, so
// 23- and 25-hour DST days are stepped over correctly.
func nextDay(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, day.Location())
}

// rangesOverlap is the half-open interval test shared by the generator and
// the planner: [aStart, aEnd) and [bStart, bEnd) intersect.
func rangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

func overlappingIntervals(busy []models.BusyInterval, start, end time.Time) []models.BusyInterval {
	var out []models.BusyInterval
	for _, b := range busy {
		if rangesOverlap(b.Start, b.End, start, end) {
			out = append(out, b)
		}
	}
	return out
}

func widenIntervals(busy []models.BusyInterval, minutes int) []models.BusyInterval {
	buffer := time.Duration(minutes) * time.Minute
	out := make([]models.BusyInterval, len(busy))
	for i, b := range busy {
		out[i] = models.BusyInterval{Start: b.Start.Add(-buffer), End: b.End.Add(buffer)}
	}
	return out
}

func overlapsAny(start, end time.Time, busy []models.BusyInterval) bool {
	for _, b := range busy {
		if rangesOverlap(start, end, b.Start, b.End) {
			return true
		}
	}
	return false
}
