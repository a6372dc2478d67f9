package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"nextaccounting/database"
	"nextaccounting/models"
)

// BookingRepository exposes the booking reads the scheduling core consumes
// and the commit-time write path.
type BookingRepository interface {
	// FindBusyIntervals returns the occupied ranges for a service (optionally
	// narrowed to one team member) that overlap [from, to).
	FindBusyIntervals(ctx context.Context, tenantID, serviceID, teamMemberID string, from, to time.Time) ([]models.BusyInterval, error)
	// HasOverlapping reports whether any committed booking in the tenant
	// scope overlaps [start, end).
	HasOverlapping(ctx context.Context, tenantID, teamMemberID string, start, end time.Time) (bool, error)
	Create(ctx context.Context, booking *models.Booking) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("nextaccounting")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}

// activeStatuses are the booking states that occupy calendar time.
var activeStatuses = bson.A{"PENDING", "CONFIRMED"}

func (r *mongoBookingRepo) FindBusyIntervals(ctx context.Context, tenantID, serviceID, teamMemberID string, from, to time.Time) ([]models.BusyInterval, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"tenantId":    tenantID,
		"serviceId":   serviceID,
		"status":      bson.M{"$in": activeStatuses},
		"scheduledAt": bson.M{"$lt": to},
		"endAt":       bson.M{"$gt": from},
	}
	if teamMemberID != "" {
		filter["teamMemberId"] = teamMemberID
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching busy intervals: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}

	busy := make([]models.BusyInterval, len(bookings))
	for i, b := range bookings {
		busy[i] = models.BusyInterval{Start: b.ScheduledAt, End: b.End()}
	}
	return busy, nil
}

func (r *mongoBookingRepo) HasOverlapping(ctx context.Context, tenantID, teamMemberID string, start, end time.Time) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Overlap on [scheduledAt, scheduledAt+duration) expressed through the
	// denormalized endAt field kept on every booking document.
	filter := bson.M{
		"tenantId":    tenantID,
		"status":      bson.M{"$in": activeStatuses},
		"scheduledAt": bson.M{"$lt": end},
		"endAt":       bson.M{"$gt": start},
	}
	if teamMemberID != "" {
		filter["teamMemberId"] = teamMemberID
	}

	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("error counting overlapping bookings: %w", err)
	}
	return count > 0, nil
}

func (r *mongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	doc := bson.M{
		"id":              booking.ID,
		"tenantId":        booking.TenantID,
		"serviceId":       booking.ServiceID,
		"clientId":        booking.ClientID,
		"teamMemberId":    booking.TeamMemberID,
		"scheduledAt":     booking.ScheduledAt,
		"endAt":           booking.End(),
		"durationMinutes": booking.DurationMinutes,
		"status":          booking.Status,
		"totalCents":      booking.TotalCents,
		"currency":        booking.Currency,
		"createdAt":       booking.CreatedAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("error creating booking: %w", err)
	}
	return nil
}
