package booking

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"

	bookingRepo "nextaccounting/database/repository/booking"
	exchangeRepo "nextaccounting/database/repository/exchange"
	serviceRepo "nextaccounting/database/repository/service"
	tenantRepo "nextaccounting/database/repository/tenant"
	"nextaccounting/models"
	"nextaccounting/services/scheduling"
)

// AvailabilityRequest bounds a slot search for one service.
type AvailabilityRequest struct {
	TenantID     string
	ServiceID    string
	TeamMemberID string
	From         time.Time
	To           time.Time
	SlotMinutes  int // 0 = service duration
}

// QuoteRequest asks for a price breakdown of one scheduled occurrence.
type QuoteRequest struct {
	TenantID        string
	ServiceID       string
	ScheduledAt     time.Time
	DurationMinutes int
	Options         models.PricingOptions
}

// RecurringRequest asks for a conflict-checked expansion of a repeat rule.
type RecurringRequest struct {
	TenantID        string
	ServiceID       string
	ClientID        string
	TeamMemberID    string
	DurationMinutes int
	Start           time.Time
	Pattern         models.RecurrencePattern
}

// ConfirmRequest commits a single occurrence as a booking.
type ConfirmRequest struct {
	TenantID        string
	ServiceID       string
	ClientID        string
	TeamMemberID    string
	ScheduledAt     time.Time
	DurationMinutes int
	Options         models.PricingOptions
}

// BookingService is the API-facing surface over the scheduling core.
type BookingService interface {
	GetServiceAvailability(ctx context.Context, req AvailabilityRequest) ([]models.Slot, error)
	QuoteServicePrice(ctx context.Context, req QuoteRequest) (models.PriceResult, error)
	PreviewRecurring(ctx context.Context, req RecurringRequest) (models.RecurringPlan, error)
	ConfirmBooking(ctx context.Context, req ConfirmRequest) (*models.Booking, error)
}

// DefaultBookingService wires the repositories, cache and reminder queue
// around the pure scheduling functions. All datastore I/O happens here; the
// core only ever sees already-fetched values or injected accessors.
type DefaultBookingService struct {
	Services  serviceRepo.ServiceRepository
	Bookings  bookingRepo.BookingRepository
	Tenants   tenantRepo.TenantRepository
	Rates     exchangeRepo.ExchangeRateRepository
	Cache     *redis.Client
	Reminders *asynq.Client
	Promos    scheduling.PromoResolver // optional, injected per deployment
}
