package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nextaccounting/models"
)

func weeklyPlanRequest(count int) PlanRequest {
	return PlanRequest{
		ServiceID:       "svc-tax-review",
		ClientID:        "client-1",
		TenantID:        "tenant-1",
		TeamMemberID:    "staff-1",
		DurationMinutes: 60,
		Start:           time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
		Pattern: models.RecurrencePattern{
			Frequency: models.FrequencyWeekly,
			Bound:     models.BoundedCount(count),
		},
	}
}

func TestPlanRecurringBookingsFlagsConflicts(t *testing.T) {
	req := weeklyPlanRequest(4)
	conflictAt := req.Start.AddDate(0, 0, 7)

	check := func(ctx context.Context, scope ConflictScope, start, end time.Time) (bool, error) {
		assert.Equal(t, "tenant-1", scope.TenantID)
		assert.Equal(t, "staff-1", scope.TeamMemberID)
		return start.Equal(conflictAt), nil
	}

	plan, err := PlanRecurringBookings(context.Background(), req, check)
	require.NoError(t, err)
	require.Len(t, plan.Plan, 4)

	// Generation order is preserved and the conflicting occurrence stays in
	// the plan.
	for i, occ := range plan.Plan {
		assert.True(t, occ.Start.Equal(req.Start.AddDate(0, 0, 7*i)))
		assert.Equal(t, time.Hour, occ.End.Sub(occ.Start))
		assert.Equal(t, i == 1, occ.Conflict)
	}

	assert.Equal(t, models.PlanSummary{Total: 4, Created: 3, Skipped: 1}, plan.Summary)
	assert.False(t, plan.Fallback)
}

func TestPlanRecurringBookingsCheckErrorAborts(t *testing.T) {
	boom := errors.New("calendar store unreachable")
	check := func(ctx context.Context, scope ConflictScope, start, end time.Time) (bool, error) {
		return false, boom
	}

	_, err := PlanRecurringBookings(context.Background(), weeklyPlanRequest(3), check)
	assert.ErrorIs(t, err, boom)
}

func TestPlanRecurringBookingsRequiresOverlapCheck(t *testing.T) {
	_, err := PlanRecurringBookings(context.Background(), weeklyPlanRequest(3), nil)
	var cfgErr *ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestPlanRecurringBookingsInvalidPattern(t *testing.T) {
	req := weeklyPlanRequest(3)
	req.Pattern.Interval = -2
	check := func(ctx context.Context, scope ConflictScope, start, end time.Time) (bool, error) {
		return false, nil
	}
	_, err := PlanRecurringBookings(context.Background(), req, check)
	assert.ErrorIs(t, err, ErrInvalidPattern)
}

func TestFallbackPlanMatchesConflictAwareInstants(t *testing.T) {
	req := weeklyPlanRequest(5)
	noConflicts := func(ctx context.Context, scope ConflictScope, start, end time.Time) (bool, error) {
		return false, nil
	}

	checked, err := PlanRecurringBookings(context.Background(), req, noConflicts)
	require.NoError(t, err)

	fallback, err := FallbackPlan(req)
	require.NoError(t, err)

	require.Len(t, fallback.Plan, len(checked.Plan))
	for i := range checked.Plan {
		assert.True(t, fallback.Plan[i].Start.Equal(checked.Plan[i].Start))
		assert.True(t, fallback.Plan[i].End.Equal(checked.Plan[i].End))
		assert.False(t, fallback.Plan[i].Conflict)
	}

	assert.True(t, fallback.Fallback)
	assert.Equal(t, models.PlanSummary{Total: 5, Created: 5, Skipped: 0}, fallback.Summary)
}
