package models

// ReminderPayload is the queued payload for a booking reminder task.
type ReminderPayload struct {
	BookingID   string `json:"bookingId"`
	TenantID    string `json:"tenantId"`
	ClientID    string `json:"clientId"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	ScheduledAt string `json:"scheduledAt"` // RFC 3339
}
