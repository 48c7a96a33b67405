package main

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/terraincognita07/myfit/internal/api"
	"github.com/terraincognita07/myfit/internal/db"
	"github.com/terraincognita07/myfit/internal/i18n"
	"github.com/terraincognita07/myfit/internal/metrics"
	"github.com/terraincognita07/myfit/internal/services"
)

const shutdownTimeout = 10 * time.Second

func runServer(ctx context.Context) error {
	config, err := loadServerConfig()
	if err != nil {
		return err
	}
	time.Local = config.location

	database, err := db.OpenSQLite(config.dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	if sqlDB, err := database.DB(); err == nil {
		defer sqlDB.Close()
	}

	i18nManager, err := i18n.NewManager(config.defaultLanguage, filepath.Join("internal", "i18n", "locales"))
	if err != nil {
		return fmt.Errorf("i18n init failed: %w", err)
	}

	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("myfit", "main", promRegistry)
	timers := services.NewTimerRegistry(services.SystemTickSource)
	defer timers.Close()

	handler, err := api.NewHandler(database, config.secretKey, filepath.Join("internal", "templates"), config.location, i18nManager, config.cookieSecure, metricsManager, timers)
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}

	app := newApp(handler, metricsManager, promRegistry, config.cookieSecure)

	sigCtx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()
	go timers.RunEviction(sigCtx, services.TimerSweepInterval, services.TimerIdleTimeout)

	go func() {
		<-sigCtx.Done()
		timers.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.WithError(err).Error("server shutdown failed")
		}
	}()

	log.WithFields(log.Fields{
		"port": config.port,
		"db":   config.dbPath,
		"tz":   config.location.String(),
	}).Info("myfit listening")
	if err := app.Listen(":" + config.port); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}

func newApp(handler *api.Handler, metricsManager *metrics.Manager, promRegistry *prometheus.Registry, cookieSecure bool) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "myfit",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(metricsManager.RequestMetrics)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{})))

	app.Use(handler.LanguageMiddleware)
	app.Use(csrf.New(csrfMiddlewareConfig(cookieSecure)))

	app.Static("/static", filepath.Join("web", "static"))
	api.RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app
}

func csrfMiddlewareConfig(cookieSecure bool) csrf.Config {
	return csrf.Config{
		KeyLookup:      "form:csrf_token",
		CookieName:     "myfit_csrf",
		CookieSameSite: "Lax",
		CookieHTTPOnly: true,
		CookieSecure:   cookieSecure,
		ContextKey:     "csrf",
		Expiration:     12 * time.Hour,
	}
}
