package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/advisor"
	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/cache"
	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/config"
	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/database"
	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/logging"
	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/routes"
	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/services"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	// Structured logging (JSON to stdout)
	stdout := logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Database
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.MigrateShared(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// PostgreSQL log handler (ERROR+ async batch)
	pgLogHandler := logging.NewPGHandler(database.DB)
	slog.SetDefault(slog.New(logging.NewMultiHandler(stdout, pgLogHandler)))

	cleanup, err := logging.StartCleanup(database.DB, cfg.LogCleanupCron, cfg.LogRetentionDays)
	if err != nil {
		slog.Error("log cleanup scheduling failed", "error", err)
		os.Exit(1)
	}

	// Shared limiter counters when Redis is configured, process memory otherwise.
	var limiterStorage fiber.Storage
	var redisStore *cache.Store
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisStore, err = cache.New(ctx, cfg.RedisURL)
		cancel()
		if err != nil {
			slog.Error("redis connection failed", "error", err)
			os.Exit(1)
		}
		limiterStorage = redisStore
		slog.Info("rate limiter using redis")
	}

	// Services
	taskService := services.NewTaskService(database.DB)
	blockService := services.NewTimeBlockService(database.DB, taskService)
	inboxService := services.NewInboxService(database.DB)
	settingsService := services.NewSettingsService(database.DB)
	userService := services.NewUserService(database.DB)
	dashboardService := services.NewDashboardService(taskService, blockService, inboxService)

	aiClient := advisor.NewClient(cfg.OpenAIAPIURL, cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.AITimeout)
	if !aiClient.IsAvailable() {
		slog.Warn("OPENAI_API_KEY not set, AI advisor disabled")
	}

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    cfg.BodyLimit,
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${locals:requestid}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(middleware.SecurityHeaders())

	routes.Setup(app, cfg, limiterStorage, routes.Handlers{
		Health:    handlers.NewHealthHandler(database.DB),
		Auth:      handlers.NewAuthHandler(userService),
		Tasks:     handlers.NewTaskHandler(taskService),
		Blocks:    handlers.NewTimeBlockHandler(blockService),
		Inbox:     handlers.NewInboxHandler(inboxService),
		Settings:  handlers.NewSettingsHandler(settingsService),
		AI:        handlers.NewAIHandler(aiClient),
		Calendar:  handlers.NewCalendarHandler(blockService, settingsService),
		Dashboard: handlers.NewDashboardHandler(dashboardService),
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.AppEnv)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	<-cleanup.Stop().Done()
	pgLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if redisStore != nil {
		if err := redisStore.Close(); err != nil {
			slog.Error("redis close error", "error", err)
		}
	}
	if err := database.Close(); err != nil {
		slog.Error("database close error", "error", err)
	}

	slog.Info("server stopped")
}
