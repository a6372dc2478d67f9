package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nextaccounting/services/booking"
	"nextaccounting/services/scheduling"
	"nextaccounting/utils"
)

// respondError translates core errors into structured HTTP responses. The
// scheduling core never produces status codes itself.
func respondError(c *gin.Context, err error) {
	var confErr *scheduling.ConfigurationError

	switch {
	case errors.Is(err, scheduling.ErrServiceNotFound):
		utils.JSONError(c, http.StatusNotFound, "Service not found or inactive", err.Error())
	case errors.Is(err, scheduling.ErrInvalidPattern):
		utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid recurrence pattern", err.Error())
	case errors.Is(err, scheduling.ErrPricingUnavailable):
		utils.JSONError(c, http.StatusBadGateway, "Pricing unavailable for requested currency", err.Error())
	case errors.Is(err, booking.ErrSlotTaken):
		utils.JSONError(c, http.StatusConflict, "Time range no longer available", err.Error())
	case errors.As(err, &confErr):
		utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid scheduling configuration", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", err.Error())
	}
}
