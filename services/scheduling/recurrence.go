package scheduling

import (
	"fmt"
	"sort"
	"time"

	"nextaccounting/models"
)

// MaxOccurrences is the hard cap on a single expansion. Patterns without a
// count or until bound are truncated here instead of trusting every caller to
// impose one.
const MaxOccurrences = 366

// GenerateOccurrences expands a recurrence pattern into concrete start
// instants, beginning at start and advancing by interval units of the
// pattern's frequency. Monthly steps preserve the start's day-of-month,
// clamping to the last day of shorter months. Weekly patterns with ByWeekday
// emit one occurrence per listed weekday (ascending) per interval-week.
//
// Candidates keep start's wall-clock time in start's location, so series
// crossing a DST transition stay pinned to the same local time.
func GenerateOccurrences(start time.Time, pattern models.RecurrencePattern) ([]time.Time, error) {
	interval := pattern.Interval
	if interval == 0 {
		interval = 1
	}
	if interval < 0 {
		return nil, fmt.Errorf("%w: interval must be positive", ErrInvalidPattern)
	}

	limit := MaxOccurrences
	switch pattern.Bound.Kind {
	case models.BoundCount:
		if pattern.Bound.Count <= 0 {
			return nil, fmt.Errorf("%w: count must be positive", ErrInvalidPattern)
		}
		if pattern.Bound.Count < limit {
			limit = pattern.Bound.Count
		}
	case models.BoundUntil:
		if pattern.Bound.Until.IsZero() {
			return nil, fmt.Errorf("%w: until must be set", ErrInvalidPattern)
		}
	case models.BoundNone:
		// expansion truncates at MaxOccurrences
	default:
		return nil, fmt.Errorf("%w: unknown bound kind %d", ErrInvalidPattern, pattern.Bound.Kind)
	}

	withinUntil := func(t time.Time) bool {
		return pattern.Bound.Kind != models.BoundUntil || !t.After(pattern.Bound.Until)
	}

	switch pattern.Frequency {
	case models.FrequencyDaily:
		return expandByDays(start, interval, limit, withinUntil), nil
	case models.FrequencyWeekly:
		if len(pattern.ByWeekday) > 0 {
			weekdays, err := normalizeWeekdays(pattern.ByWeekday)
			if err != nil {
				return nil, err
			}
			return expandByWeekdays(start, interval, limit, weekdays, withinUntil), nil
		}
		return expandByDays(start, interval*7, limit, withinUntil), nil
	case models.FrequencyMonthly:
		return expandByMonths(start, interval, limit, withinUntil), nil
	default:
		return nil, fmt.Errorf("%w: unknown frequency %q", ErrInvalidPattern, pattern.Frequency)
	}
}

func expandByDays(start time.Time, stepDays, limit int, withinUntil func(time.Time) bool) []time.Time {
	var out []time.Time
	for k := 0; len(out) < limit; k++ {
		candidate := addDays(start, k*stepDays)
		if !withinUntil(candidate) {
			break
		}
		out = append(out, candidate)
	}
	return out
}

func expandByWeekdays(start time.Time, intervalWeeks, limit int, weekdays []int, withinUntil func(time.Time) bool) []time.Time {
	// Anchor at the Sunday of start's week; ascending weekday order within a
	// week is then ascending date order. Candidates before start are skipped.
	weekAnchor := addDays(start, -int(start.Weekday()))

	var out []time.Time
	for week := 0; len(out) < limit; week++ {
		for _, wd := range weekdays {
			candidate := addDays(weekAnchor, week*intervalWeeks*7+wd)
			if candidate.Before(start) {
				continue
			}
			if !withinUntil(candidate) {
				return out
			}
			out = append(out, candidate)
			if len(out) >= limit {
				return out
			}
		}
	}
	return out
}

func expandByMonths(start time.Time, intervalMonths, limit int, withinUntil func(time.Time) bool) []time.Time {
	y, m, day := start.Date()
	hh, mm, ss := start.Clock()

	var out []time.Time
	for k := 0; len(out) < limit; k++ {
		months := int(m) - 1 + k*intervalMonths
		year := y + months/12
		month := time.Month(months%12 + 1)

		dom := day
		if last := daysInMonth(year, month); dom > last {
			dom = last
		}
		candidate := time.Date(year, month, dom, hh, mm, ss, start.Nanosecond(), start.Location())
		if !withinUntil(candidate) {
			break
		}
		out = append(out, candidate)
	}
	return out
}

func normalizeWeekdays(weekdays []int) ([]int, error) {
	seen := map[int]bool{}
	var out []int
	for _, wd := range weekdays {
		if wd < 0 || wd > 6 {
			return nil, fmt.Errorf("%w: weekday %d out of range", ErrInvalidPattern, wd)
		}
		if !seen[wd] {
			seen[wd] = true
			out = append(out, wd)
		}
	}
	sort.Ints(out)
	return out, nil
}

// addDays shifts by whole calendar days on wall-clock fields, preserving the
// local time-of-day across DST transitions.
func addDays(t time.Time, days int) time.Time {
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()
	return time.Date(y, m, d+days, hh, mm, ss, t.Nanosecond(), t.Location())
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
