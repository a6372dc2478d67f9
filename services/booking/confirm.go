package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"nextaccounting/models"
	"nextaccounting/services/scheduling"
	"nextaccounting/services/tasks"
	"nextaccounting/utils"
)

// reminderLead is how long before the appointment the reminder task fires.
const reminderLead = 24 * time.Hour

// ConfirmBooking prices and persists a single occurrence. The overlap check
// is re-run at commit time: between preview and confirmation another booking
// may have landed, and the advisory conflict flag from planning must not be
// trusted here.
func (s *DefaultBookingService) ConfirmBooking(ctx context.Context, req ConfirmRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	svc, err := s.Services.GetByID(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, scheduling.ErrServiceNotFound
	}

	duration := req.DurationMinutes
	if duration <= 0 {
		duration = svc.DurationMinutes
	}

	end := req.ScheduledAt.Add(time.Duration(duration) * time.Minute)
	taken, err := s.Bookings.HasOverlapping(ctx, req.TenantID, req.TeamMemberID, req.ScheduledAt, end)
	if err != nil {
		return nil, fmt.Errorf("commit-time overlap check failed: %w", err)
	}
	if taken {
		return nil, ErrSlotTaken
	}

	quote, err := s.QuoteServicePrice(ctx, QuoteRequest{
		TenantID:        req.TenantID,
		ServiceID:       req.ServiceID,
		ScheduledAt:     req.ScheduledAt,
		DurationMinutes: duration,
		Options:         req.Options,
	})
	if err != nil {
		return nil, err
	}

	record := &models.Booking{
		ID:              uuid.New().String(),
		TenantID:        req.TenantID,
		ServiceID:       req.ServiceID,
		ClientID:        req.ClientID,
		TeamMemberID:    req.TeamMemberID,
		ScheduledAt:     req.ScheduledAt,
		DurationMinutes: duration,
		Status:          "CONFIRMED",
		TotalCents:      quote.TotalCents,
		Currency:        quote.Currency,
		CreatedAt:       time.Now(),
	}
	if err := s.Bookings.Create(ctx, record); err != nil {
		return nil, err
	}

	s.scheduleReminder(record, svc.Name)

	logger.Info("booking confirmed",
		zap.String("bookingID", record.ID),
		zap.String("serviceID", record.ServiceID),
		zap.Int64("totalCents", record.TotalCents))
	return record, nil
}

// scheduleReminder enqueues the pre-appointment reminder. Failures are logged
// and swallowed; a missed reminder must not fail the booking.
func (s *DefaultBookingService) scheduleReminder(record *models.Booking, serviceName string) {
	if s.Reminders == nil {
		return
	}
	fireAt := record.ScheduledAt.Add(-reminderLead)
	if fireAt.Before(time.Now()) {
		return
	}

	payload := models.ReminderPayload{
		BookingID:   record.ID,
		TenantID:    record.TenantID,
		ClientID:    record.ClientID,
		Title:       "Upcoming appointment",
		Body:        fmt.Sprintf("Reminder: %s on %s", serviceName, record.ScheduledAt.Format(time.RFC1123)),
		ScheduledAt: record.ScheduledAt.Format(time.RFC3339),
	}
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		utils.GetLogger().Warn("failed to build reminder task", zap.String("bookingID", record.ID), zap.Error(err))
		return
	}
	if _, err := s.Reminders.Enqueue(task, opts...); err != nil {
		utils.GetLogger().Warn("failed to enqueue reminder", zap.String("bookingID", record.ID), zap.Error(err))
	}
}
