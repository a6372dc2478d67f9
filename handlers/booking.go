package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nextaccounting/models"
	"nextaccounting/services/booking"
)

// BookingHandler exposes the scheduling core over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// GetAvailability handles GET /api/bookings/availability.
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	serviceID := c.Query("serviceId")
	if serviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "serviceId is required"})
		return
	}

	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'from' timestamp", "details": err.Error()})
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'to' timestamp", "details": err.Error()})
		return
	}

	var slotMinutes int
	if raw := c.Query("slotMinutes"); raw != "" {
		slotMinutes, err = strconv.Atoi(raw)
		if err != nil || slotMinutes <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid slotMinutes"})
			return
		}
	}

	slots, err := h.Service.GetServiceAvailability(c.Request.Context(), booking.AvailabilityRequest{
		TenantID:     c.GetString("tenantID"),
		ServiceID:    serviceID,
		TeamMemberID: c.Query("teamMemberId"),
		From:         from,
		To:           to,
		SlotMinutes:  slotMinutes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// QuotePrice handles POST /api/bookings/quote.
func (h *BookingHandler) QuotePrice(c *gin.Context) {
	var input struct {
		ServiceID       string                `json:"serviceId" binding:"required"`
		ScheduledAt     time.Time             `json:"scheduledAt" binding:"required"`
		DurationMinutes int                   `json:"durationMinutes"`
		Options         models.PricingOptions `json:"options"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	quote, err := h.Service.QuoteServicePrice(c.Request.Context(), booking.QuoteRequest{
		TenantID:        c.GetString("tenantID"),
		ServiceID:       input.ServiceID,
		ScheduledAt:     input.ScheduledAt,
		DurationMinutes: input.DurationMinutes,
		Options:         input.Options,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}

// Confirm handles POST /api/bookings/confirm.
func (h *BookingHandler) Confirm(c *gin.Context) {
	var input struct {
		ServiceID       string                `json:"serviceId" binding:"required"`
		ClientID        string                `json:"clientId" binding:"required"`
		TeamMemberID    string                `json:"teamMemberId"`
		ScheduledAt     time.Time             `json:"scheduledAt" binding:"required"`
		DurationMinutes int                   `json:"durationMinutes"`
		Options         models.PricingOptions `json:"options"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	record, err := h.Service.ConfirmBooking(c.Request.Context(), booking.ConfirmRequest{
		TenantID:        c.GetString("tenantID"),
		ServiceID:       input.ServiceID,
		ClientID:        input.ClientID,
		TeamMemberID:    input.TeamMemberID,
		ScheduledAt:     input.ScheduledAt,
		DurationMinutes: input.DurationMinutes,
		Options:         input.Options,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": record})
}
