package models

// Service is the bookable service descriptor as stored per tenant.
type Service struct {
	ID                string        `bson:"id" json:"id"`
	TenantID          string        `bson:"tenantId" json:"tenantId"`
	Name              string        `bson:"name" json:"name"`
	BasePrice         float64       `bson:"basePrice" json:"basePrice"`       // dollars; converted to cents once at the pricing boundary
	BaseCurrency      string        `bson:"baseCurrency" json:"baseCurrency"` // ISO 4217
	DurationMinutes   int           `bson:"durationMinutes" json:"durationMinutes"`
	BusinessHours     BusinessHours `bson:"businessHours,omitempty" json:"businessHours,omitempty"`
	BufferTimeMinutes int           `bson:"bufferTimeMinutes" json:"bufferTimeMinutes"`
	MaxDailyBookings  int           `bson:"maxDailyBookings" json:"maxDailyBookings"` // 0 = unlimited
	Active            bool          `bson:"active" json:"active"`
}
