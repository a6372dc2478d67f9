package models

import "time"

// Booking represents a committed appointment record.
type Booking struct {
	ID              string    `bson:"id" json:"id"`
	TenantID        string    `bson:"tenantId" json:"tenantId"`
	ServiceID       string    `bson:"serviceId" json:"serviceId"`
	ClientID        string    `bson:"clientId" json:"clientId"`
	TeamMemberID    string    `bson:"teamMemberId,omitempty" json:"teamMemberId,omitempty"`
	ScheduledAt     time.Time `bson:"scheduledAt" json:"scheduledAt"`
	DurationMinutes int       `bson:"durationMinutes" json:"durationMinutes"`
	Status          string    `bson:"status" json:"status"` // "PENDING", "CONFIRMED", "CANCELLED"
	TotalCents      int64     `bson:"totalCents" json:"totalCents"`
	Currency        string    `bson:"currency" json:"currency"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}

// End returns the exclusive end instant of the booking's occupied range.
func (b Booking) End() time.Time {
	return b.ScheduledAt.Add(time.Duration(b.DurationMinutes) * time.Minute)
}

// BusyInterval is an occupied time range that blocks overlapping slots.
type BusyInterval struct {
	Start time.Time `bson:"start" json:"start"`
	End   time.Time `bson:"end" json:"end"`
}
