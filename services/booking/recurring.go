package booking

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"nextaccounting/models"
	"nextaccounting/services/scheduling"
	"nextaccounting/utils"
)

// PreviewRecurring expands the pattern with live conflict checks. When the
// datastore is unreachable it degrades to a conflict-blind expansion flagged
// fallback, generating exactly the same instants.
func (s *DefaultBookingService) PreviewRecurring(ctx context.Context, req RecurringRequest) (models.RecurringPlan, error) {
	logger := utils.GetLogger()

	svc, err := s.Services.GetByID(ctx, req.ServiceID)
	if err == nil && svc == nil {
		return models.RecurringPlan{}, scheduling.ErrServiceNotFound
	}

	planReq := scheduling.PlanRequest{
		ServiceID:       req.ServiceID,
		ClientID:        req.ClientID,
		TenantID:        req.TenantID,
		TeamMemberID:    req.TeamMemberID,
		DurationMinutes: req.DurationMinutes,
		Start:           req.Start,
		Pattern:         req.Pattern,
	}
	if planReq.DurationMinutes <= 0 {
		if svc != nil {
			planReq.DurationMinutes = svc.DurationMinutes
		} else {
			planReq.DurationMinutes = 60
		}
	}

	if err == nil {
		plan, planErr := scheduling.PlanRecurringBookings(ctx, planReq, s.overlapCheck())
		if planErr == nil {
			return plan, nil
		}
		if errors.Is(planErr, scheduling.ErrInvalidPattern) {
			return models.RecurringPlan{}, planErr
		}
		err = planErr
	}

	logger.Warn("conflict-aware planning unavailable, using fallback expansion",
		zap.String("serviceID", req.ServiceID), zap.Error(err))
	return scheduling.FallbackPlan(planReq)
}

func (s *DefaultBookingService) overlapCheck() scheduling.OverlapCheck {
	return func(ctx context.Context, scope scheduling.ConflictScope, start, end time.Time) (bool, error) {
		return s.Bookings.HasOverlapping(ctx, scope.TenantID, scope.TeamMemberID, start, end)
	}
}
