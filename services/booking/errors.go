package booking

import "errors"

// ErrSlotTaken is returned when the commit-time overlap re-check finds the
// requested range already occupied. The planner's conflict flag is only an
// advisory; this is where double-booking is actually refused.
var ErrSlotTaken = errors.New("requested time range is no longer available")
