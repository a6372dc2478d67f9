package booking

import (
	"context"

	"go.uber.org/zap"

	"nextaccounting/models"
	"nextaccounting/services/scheduling"
	"nextaccounting/utils"
)

// GetServiceAvailability fetches the service, tenant zone and busy intervals,
// then delegates slot generation to the scheduling core.
func (s *DefaultBookingService) GetServiceAvailability(ctx context.Context, req AvailabilityRequest) ([]models.Slot, error) {
	logger := utils.GetLogger()

	svc, err := s.Services.GetByID(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, scheduling.ErrServiceNotFound
	}

	settings, err := s.tenantSettings(ctx, req.TenantID)
	if err != nil {
		return nil, err
	}

	slotMinutes := req.SlotMinutes
	if slotMinutes <= 0 {
		slotMinutes = svc.DurationMinutes
	}

	busy, err := s.Bookings.FindBusyIntervals(ctx, req.TenantID, req.ServiceID, req.TeamMemberID, req.From, req.To)
	if err != nil {
		return nil, err
	}

	slots, err := scheduling.GenerateAvailability(req.From, req.To, slotMinutes, busy, scheduling.AvailabilityConfig{
		BusinessHours:    svc.BusinessHours,
		TimeZone:         settings.TimeZone,
		BufferMinutes:    svc.BufferTimeMinutes,
		MaxDailyBookings: svc.MaxDailyBookings,
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("computed availability",
		zap.String("serviceID", req.ServiceID),
		zap.String("timeZone", settings.TimeZone),
		zap.Int("busy", len(busy)),
		zap.Int("slots", len(slots)))
	return slots, nil
}
