package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"nextaccounting/handlers"
	"nextaccounting/middleware"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterBookingRoutes sets up the endpoints for the scheduling engine.
func RegisterBookingRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	api := r.Group("/api/bookings")
	api.Use(middleware.TenantMiddleware())
	{
		api.GET("/availability", bh.GetAvailability)
		api.POST("/quote", bh.QuotePrice)
		api.POST("/recurring/preview", bh.PreviewRecurring)

		// Confirming a booking mutates state and requires a staff token.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.POST("/confirm", bh.Confirm)
	}
}

// RegisterPaymentRoutes sets up the checkout endpoints.
func RegisterPaymentRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	api := r.Group("/api/payments")
	api.Use(middleware.TenantMiddleware())
	{
		api.POST("/checkout", bh.CreateCheckoutSession)
	}
}

// RegisterRoutes wires global middleware and all route groups.
func RegisterRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Tenant-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, bh)
	RegisterPaymentRoutes(r, bh)
}
