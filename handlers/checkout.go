package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"go.uber.org/zap"

	"nextaccounting/config"
	"nextaccounting/models"
	"nextaccounting/services/booking"
)

// emergencySurchargePercent applies when a checkout is flagged emergency.
const emergencySurchargePercent = 0.5

// CreateCheckoutSession handles POST /api/payments/checkout. It prices the
// requested occurrence and opens a Stripe Checkout session for the total.
func (h *BookingHandler) CreateCheckoutSession(c *gin.Context) {
	if config.AppConfig.StripeKey == "" {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "payments not configured"})
		return
	}

	var input struct {
		ServiceID       string    `json:"serviceId" binding:"required"`
		ServiceName     string    `json:"serviceName"`
		ScheduledAt     time.Time `json:"scheduledAt" binding:"required"`
		DurationMinutes int       `json:"durationMinutes"`
		Currency        string    `json:"currency"`
		PromoCode       string    `json:"promoCode"`
		Emergency       bool      `json:"emergency"`
		SuccessURL      string    `json:"successUrl" binding:"required"`
		CancelURL       string    `json:"cancelUrl" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	opts := models.PricingOptions{
		Currency:  input.Currency,
		PromoCode: input.PromoCode,
	}
	if input.Emergency {
		opts.EmergencySurchargePercent = emergencySurchargePercent
	}

	quote, err := h.Service.QuoteServicePrice(c.Request.Context(), booking.QuoteRequest{
		TenantID:        c.GetString("tenantID"),
		ServiceID:       input.ServiceID,
		ScheduledAt:     input.ScheduledAt,
		DurationMinutes: input.DurationMinutes,
		Options:         opts,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	if quote.TotalCents <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quote total must be positive for checkout"})
		return
	}

	name := input.ServiceName
	if name == "" {
		name = "Service booking"
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(input.SuccessURL),
		CancelURL:  stripe.String(input.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(strings.ToLower(quote.Currency)),
					UnitAmount: stripe.Int64(quote.TotalCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(fmt.Sprintf("%s (%s)", name, input.ScheduledAt.Format("2006-01-02 15:04"))),
						Description: stripe.String("Booking prepayment"),
					},
				},
			},
		},
		Metadata: map[string]string{
			"tenantId":    c.GetString("tenantID"),
			"serviceId":   input.ServiceID,
			"scheduledAt": input.ScheduledAt.Format(time.RFC3339),
		},
	}

	sess, err := session.New(params)
	if err != nil {
		h.Logger.Error("checkout session creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create checkout session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":         sess.URL,
		"sessionId":   sess.ID,
		"amountCents": quote.TotalCents,
		"currency":    quote.Currency,
	})
}
