package models

import "time"

// Slot is a candidate bookable window. Start/End are absolute instants whose
// wall-clock fields are aligned to the tenant's business hours in its zone.
type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
