package models

import "time"

// Frequency is the repeat unit of a recurrence pattern.
type Frequency string

const (
	FrequencyDaily   Frequency = "DAILY"
	FrequencyWeekly  Frequency = "WEEKLY"
	FrequencyMonthly Frequency = "MONTHLY"
)

// BoundKind tags how a recurrence series terminates.
type BoundKind int

const (
	// BoundNone means the caller supplied neither count nor until; expansion
	// is truncated at the planner's hard occurrence cap.
	BoundNone BoundKind = iota
	// BoundCount terminates after a fixed number of occurrences.
	BoundCount
	// BoundUntil terminates once the next candidate exceeds the until instant.
	BoundUntil
)

// RecurrenceBound is the tagged variant for a series terminator. Exactly one
// of Count/Until is meaningful depending on Kind.
type RecurrenceBound struct {
	Kind  BoundKind `json:"kind"`
	Count int       `json:"count,omitempty"`
	Until time.Time `json:"until,omitempty"`
}

// BoundedCount builds a count-terminated bound.
func BoundedCount(n int) RecurrenceBound {
	return RecurrenceBound{Kind: BoundCount, Count: n}
}

// BoundedUntil builds an until-terminated bound.
func BoundedUntil(t time.Time) RecurrenceBound {
	return RecurrenceBound{Kind: BoundUntil, Until: t}
}

// Unbounded builds a bound with no terminator; the planner caps expansion.
func Unbounded() RecurrenceBound {
	return RecurrenceBound{Kind: BoundNone}
}

// RecurrencePattern is a repeat rule. ByWeekday (0 = Sunday ... 6 = Saturday)
// is only meaningful for weekly frequency.
type RecurrencePattern struct {
	Frequency Frequency       `json:"frequency"`
	Interval  int             `json:"interval,omitempty"` // default 1
	Bound     RecurrenceBound `json:"bound"`
	ByWeekday []int           `json:"byWeekday,omitempty"`
}

// Occurrence is one concrete expansion result with its conflict advisory.
type Occurrence struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Conflict bool      `json:"conflict"`
}

// PlanSummary aggregates a recurring plan for client display.
type PlanSummary struct {
	Total   int `json:"total"`
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

// RecurringPlan is the full preview of a recurring booking request. Fallback
// is set when conflict checks were unavailable and every occurrence was
// reported conflict-free without consulting the datastore.
type RecurringPlan struct {
	Plan     []Occurrence `json:"plan"`
	Summary  PlanSummary  `json:"summary"`
	Fallback bool         `json:"fallback,omitempty"`
}
