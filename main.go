// File: drivio/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"drivio/config"
	"drivio/gateway"
	"drivio/handlers"
	"drivio/middleware"
	"drivio/routes"
	"drivio/services/booking"
	"drivio/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitCache()
	utils.InitLockCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// The boundary to the remote rental service.
	bookingGateway := gateway.NewRESTGateway(
		config.AppConfig.RentalAPIBaseURL,
		config.AppConfig.RentalAPIKey,
	)

	bookingService := &booking.DefaultBookingService{
		Gateway:  bookingGateway,
		Store:    booking.NewRedisSessionStore(utils.GetCacheClient()),
		Guard:    booking.NewRedisMutationGuard(utils.GetLockClient()),
		Payments: booking.NewStripePayments(config.AppConfig.StripeKey, "vnd", logger),
		Logger:   logger,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService)
	routes.RegisterRoutes(router, bookingHandler)

	// Start the HTTP server.
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

	// Wait for an OS signal to gracefully shutdown.
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
