package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"nextaccounting/models"
	"nextaccounting/services/booking"
)

// recurringPatternInput is the wire shape of a repeat rule. Count and until
// are mutually exclusive; neither means the planner's hard cap applies.
type recurringPatternInput struct {
	Frequency string     `json:"frequency" binding:"required"`
	Interval  int        `json:"interval"`
	Count     int        `json:"count"`
	Until     *time.Time `json:"until"`
	ByWeekday []int      `json:"byWeekday"`
}

func (in recurringPatternInput) toPattern() (models.RecurrencePattern, bool) {
	var freq models.Frequency
	switch in.Frequency {
	case "DAILY":
		freq = models.FrequencyDaily
	case "WEEKLY":
		freq = models.FrequencyWeekly
	case "MONTHLY":
		freq = models.FrequencyMonthly
	default:
		return models.RecurrencePattern{}, false
	}

	bound := models.Unbounded()
	switch {
	case in.Count > 0 && in.Until != nil:
		return models.RecurrencePattern{}, false
	case in.Count > 0:
		bound = models.BoundedCount(in.Count)
	case in.Until != nil:
		bound = models.BoundedUntil(*in.Until)
	}

	return models.RecurrencePattern{
		Frequency: freq,
		Interval:  in.Interval,
		Bound:     bound,
		ByWeekday: in.ByWeekday,
	}, true
}

// PreviewRecurring handles POST /api/bookings/recurring/preview.
func (h *BookingHandler) PreviewRecurring(c *gin.Context) {
	var input struct {
		ServiceID        string                `json:"serviceId" binding:"required"`
		ClientID         string                `json:"clientId"`
		TeamMemberID     string                `json:"teamMemberId"`
		Start            time.Time             `json:"start" binding:"required"`
		DurationMinutes  int                   `json:"duration"`
		RecurringPattern recurringPatternInput `json:"recurringPattern" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	pattern, ok := input.RecurringPattern.toPattern()
	if !ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "recurringPattern must name a valid frequency and at most one of count/until"})
		return
	}

	plan, err := h.Service.PreviewRecurring(c.Request.Context(), booking.RecurringRequest{
		TenantID:        c.GetString("tenantID"),
		ServiceID:       input.ServiceID,
		ClientID:        input.ClientID,
		TeamMemberID:    input.TeamMemberID,
		DurationMinutes: input.DurationMinutes,
		Start:           input.Start,
		Pattern:         pattern,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}
