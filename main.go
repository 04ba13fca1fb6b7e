package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Yoavga19/barber/config"
	"github.com/Yoavga19/barber/handlers"
	"github.com/Yoavga19/barber/middleware"
	"github.com/Yoavga19/barber/routes"
	"github.com/Yoavga19/barber/services/booking"
	"github.com/Yoavga19/barber/services/catalog"
	ai "github.com/Yoavga19/barber/services/intelligence"
	"github.com/Yoavga19/barber/services/notification"
	"github.com/Yoavga19/barber/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.LoadHTMLFiles("web/templates/index.html")

	// Core state: the price catalog and the 7-day availability window, built
	// once per process. The window does not roll forward while running.
	serviceCatalog := catalog.Default()
	calendar := booking.NewDefaultCalendar()

	// Owner notifications are best-effort; without SES settings a logging
	// no-op is wired instead.
	var notifier notification.NotificationService
	emailNotifier, err := notification.NewEmailNotificationService(
		config.AppConfig.SESAccessKeyID,
		config.AppConfig.SESSecretAccessKey,
		config.AppConfig.SESRegion,
		config.AppConfig.SESSender,
		config.AppConfig.OwnerEmail,
	)
	if err != nil {
		logger.Sugar().Warnf("main: email notifier disabled: %v", err)
		notifier = notification.NoopNotificationService{}
	} else {
		notifier = emailNotifier
	}

	bookingService := &booking.DefaultBookingService{
		Calendar: calendar,
		Catalog:  serviceCatalog,
		Notifier: notifier,
	}

	var aiSvc ai.AIService
	if key := config.AppConfig.GeminiAPIKey; key != "" {
		geminiClient, err := ai.NewGeminiClient(key)
		if err != nil {
			logger.Sugar().Warnf("main: assistant disabled: %v", err)
		} else {
			aiSvc = geminiClient
		}
	} else {
		logger.Sugar().Warn("main: GEMINI_API_KEY not set, assistant disabled")
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	availabilityHandler := handlers.NewAvailabilityHandler(bookingService, serviceCatalog)
	aiHandler := handlers.NewAIHandler(aiSvc)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Index:           handlers.IndexHandler,
		GetAvailability: availabilityHandler.GetAvailability,
		GetServices:     availabilityHandler.GetServices,
		BookAppointment: bookingHandler.BookAppointment,
		AskAssistant:    aiHandler.HandleAsk,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "3000"
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
