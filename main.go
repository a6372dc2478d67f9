package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"

	"nextaccounting/config"
	"nextaccounting/cron"
	"nextaccounting/database"
	bookingRepo "nextaccounting/database/repository/booking"
	exchangeRepo "nextaccounting/database/repository/exchange"
	serviceRepo "nextaccounting/database/repository/service"
	tenantRepo "nextaccounting/database/repository/tenant"
	"nextaccounting/handlers"
	"nextaccounting/middleware"
	"nextaccounting/routes"
	"nextaccounting/services/booking"
	"nextaccounting/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	stripe.Key = config.AppConfig.StripeKey

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	services := serviceRepo.NewMongoServiceRepo()
	bookings := bookingRepo.NewMongoBookingRepo()
	tenants := tenantRepo.NewMongoTenantRepo()
	rates := exchangeRepo.NewMongoExchangeRateRepo()

	reminderClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer reminderClient.Close()

	bookingService := &booking.DefaultBookingService{
		Services:  services,
		Bookings:  bookings,
		Tenants:   tenants,
		Rates:     rates,
		Cache:     utils.GetCacheClient(),
		Reminders: reminderClient,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)

	routes.RegisterRoutes(router, bookingHandler)

	// Background worker that drains the reminder queue.
	cron.InitReminderWorker(nil)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
