package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"clientregistro/config"
	controller "clientregistro/controllers"
	"clientregistro/form"
	"clientregistro/middleware"
	"clientregistro/monitoring"
	"clientregistro/notifier"
	"clientregistro/remote"
	"clientregistro/routes"
	"clientregistro/store"
)

func main() {
	// Load configuration
	if err := config.LoadConfig(); err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	cfg := config.AppConfig

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}
	logger := logrus.WithField("component", "main")

	monitoring.Init()
	if err := monitoring.InitSentry(cfg.SentryDSN, cfg.Environment); err != nil {
		logger.WithError(err).Warn("error reporting disabled")
	}
	defer sentry.Flush(2 * time.Second)

	// Connect to the realtime channel with retries
	var ntf *notifier.Notifier
	var err error
	maxRetries := 5
	retryDelay := 3 * time.Second

	for i := 0; i < maxRetries; i++ {
		ntf, err = notifier.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err == nil {
			break
		}
		logger.Warnf("Attempt %d: failed to connect to notifier: %v", i+1, err)
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}
	if err != nil {
		logger.Fatalf("Failed to connect to notifier after %d attempts: %v", maxRetries, err)
	}

	// Session state: remote client, list store, form draft, browser hub
	api := remote.New(cfg.APIBaseURL, cfg.APIKey)
	st := store.New(api)
	fc := form.New(api, st)
	hub := controller.NewHub()
	cc := controller.NewClientController(st, fc, api, ntf, hub)

	// Initial full fetch; a failure leaves an empty list and the app serving
	refreshCtx, cancelRefresh := context.WithTimeout(context.Background(), 10*time.Second)
	if err := st.Refresh(refreshCtx); err != nil {
		logger.WithError(err).Warn("initial refresh failed")
		monitoring.CaptureError(err, map[string]interface{}{"action": "startup-refresh"})
	}
	cancelRefresh()

	// Every status-updated event triggers a full refresh, then the attached
	// tabs are told to re-render
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ntf.Start(ctx, func() {
		refreshCtx, cancelRefresh := context.WithTimeout(ctx, 10*time.Second)
		defer cancelRefresh()
		if err := st.Refresh(refreshCtx); err != nil {
			logger.WithError(err).Warn("refresh on notification failed")
			monitoring.CaptureError(err, map[string]interface{}{"action": "notify-refresh"})
		}
		hub.BroadcastRefresh()
	})

	app := fiber.New()
	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: []string{cfg.AllowedOrigin},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		MaxAge:         3600,
	}))
	app.Use(middleware.Metrics())

	routes.SetupRoutes(app, cc, hub)

	go func() {
		logger.Infof("Server starting on port %s", cfg.ServerPort)
		if err := app.Listen(":" + cfg.ServerPort); err != nil {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Session teardown: unsubscribe from the notifier, then stop serving
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")
	cancel()
	ntf.Stop()
	if err := app.Shutdown(); err != nil {
		logger.WithError(err).Error("server shutdown failed")
	}
}
