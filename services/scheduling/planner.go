package scheduling

import (
	"context"
	"sync"
	"time"

	"nextaccounting/models"
)

// ConflictScope identifies whose calendar an occurrence is checked against.
// An empty TeamMemberID widens the check to the whole tenant.
type ConflictScope struct {
	TenantID     string
	TeamMemberID string
}

// OverlapCheck reports whether any committed booking in scope overlaps the
// half-open range [start, end). The check is a point-in-time advisory, not a
// reservation; commit-time uniqueness belongs to the persistence layer.
type OverlapCheck func(ctx context.Context, scope ConflictScope, start, end time.Time) (bool, error)

// PlanRequest describes a recurring booking to expand and conflict-check.
type PlanRequest struct {
	ServiceID       string
	ClientID        string
	TenantID        string
	TeamMemberID    string
	DurationMinutes int
	Start           time.Time
	Pattern         models.RecurrencePattern
}

// PlanRecurringBookings expands the pattern and flags each occurrence that
// overlaps an existing booking. Conflicting occurrences stay in the plan so
// the caller can present a full preview and let the user skip or override.
// Checks are independent reads and run concurrently; the returned plan
// preserves generation order. The first check error aborts the whole plan so
// the caller can fall back to a conflict-blind expansion.
func PlanRecurringBookings(ctx context.Context, req PlanRequest, hasOverlap OverlapCheck) (models.RecurringPlan, error) {
	if hasOverlap == nil {
		return models.RecurringPlan{}, &ConfigurationError{Field: "overlapCheck", Reason: "conflict check is required"}
	}

	starts, err := GenerateOccurrences(req.Start, req.Pattern)
	if err != nil {
		return models.RecurringPlan{}, err
	}

	duration := time.Duration(req.DurationMinutes) * time.Minute
	scope := ConflictScope{TenantID: req.TenantID, TeamMemberID: req.TeamMemberID}

	plan := make([]models.Occurrence, len(starts))
	errs := make([]error, len(starts))

	var wg sync.WaitGroup
	for i, s := range starts {
		wg.Add(1)
		go func(i int, start time.Time) {
			defer wg.Done()
			end := start.Add(duration)
			conflict, checkErr := hasOverlap(ctx, scope, start, end)
			if checkErr != nil {
				errs[i] = checkErr
				return
			}
			plan[i] = models.Occurrence{Start: start, End: end, Conflict: conflict}
		}(i, s)
	}
	wg.Wait()

	for _, e := range errs {
		if e != nil {
			return models.RecurringPlan{}, e
		}
	}

	return models.RecurringPlan{Plan: plan, Summary: summarize(plan)}, nil
}

// FallbackPlan expands the pattern without consulting the datastore, marking
// every occurrence conflict-free and the plan as degraded. It generates
// exactly the same instants as the conflict-aware path.
func FallbackPlan(req PlanRequest) (models.RecurringPlan, error) {
	starts, err := GenerateOccurrences(req.Start, req.Pattern)
	if err != nil {
		return models.RecurringPlan{}, err
	}

	duration := time.Duration(req.DurationMinutes) * time.Minute
	plan := make([]models.Occurrence, len(starts))
	for i, s := range starts {
		plan[i] = models.Occurrence{Start: s, End: s.Add(duration)}
	}
	return models.RecurringPlan{Plan: plan, Summary: summarize(plan), Fallback: true}, nil
}

func summarize(plan []models.Occurrence) models.PlanSummary {
	created := 0
	for _, occ := range plan {
		if !occ.Conflict {
			created++
		}
	}
	return models.PlanSummary{Total: len(plan), Created: created, Skipped: len(plan) - created}
}
