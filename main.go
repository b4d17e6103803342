// File: evervow/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"evervow/config"
	"evervow/cron"
	"evervow/database"
	guestRepoPkg "evervow/database/repository/guest"
	weddingRepoPkg "evervow/database/repository/wedding"
	"evervow/handlers"
	"evervow/middleware"
	"evervow/routes"
	"evervow/services/guest"
	"evervow/services/notification"
	"evervow/services/rsvp"
	"evervow/services/tasks"
	"evervow/services/wedding"
	"evervow/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	guestRepo := guestRepoPkg.NewMongoGuestRepo()
	weddingRepo := weddingRepoPkg.NewMongoWeddingRepo()

	// services.
	weddingService := &wedding.DefaultWeddingService{
		Repo: weddingRepo,
	}
	guestService := &guest.DefaultGuestService{
		Repo: guestRepo,
	}
	sessionService := &rsvp.DefaultSessionService{
		Guests:   guestRepo,
		Resolver: guestService,
	}
	reminderScheduler := tasks.NewReminderScheduler(guestRepo)
	defer reminderScheduler.Close()

	// Background reminder delivery.
	cron.InitReminderWorker(notification.LogNotificationService{})

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		RSVP:    handlers.NewRSVPHandler(sessionService, weddingService),
		Guest:   handlers.NewGuestHandler(guestRepo),
		Wedding: handlers.NewWeddingHandler(weddingService, reminderScheduler),
		Site:    handlers.NewSiteHandler(weddingService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetSessionCacheClient()},
		database.MongoClient,
	)

	// The edge handler applies the tenant routing decision before the gin
	// engine dispatches a route.
	edge := middleware.NewEdgeHandler(router, weddingService.RouterLookups())

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: edge,
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
