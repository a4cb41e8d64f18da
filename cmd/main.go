package main

import (
	"context"
	"crypto/tls"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-visit-reminder/internal/auth"
	"github.com/KasumiMercury/primind-visit-reminder/internal/config"
	"github.com/KasumiMercury/primind-visit-reminder/internal/handler"
	"github.com/KasumiMercury/primind-visit-reminder/internal/health"
	"github.com/KasumiMercury/primind-visit-reminder/internal/infra/alarmrecorder"
	"github.com/KasumiMercury/primind-visit-reminder/internal/infra/database"
	"github.com/KasumiMercury/primind-visit-reminder/internal/infra/repository"
	"github.com/KasumiMercury/primind-visit-reminder/internal/observability/logging"
	"github.com/KasumiMercury/primind-visit-reminder/internal/observability/metrics"
	"github.com/KasumiMercury/primind-visit-reminder/internal/observability/middleware"
	"github.com/KasumiMercury/primind-visit-reminder/internal/service/delivery"
	"github.com/KasumiMercury/primind-visit-reminder/internal/service/reminder"
	"github.com/KasumiMercury/primind-visit-reminder/internal/service/sweep"
	"github.com/KasumiMercury/primind-visit-reminder/internal/service/trigger"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	obs, err := initObservability(ctx)
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	obs.SetLogLevel(cfg.LogLevel)

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	alarmMetrics, err := metrics.NewAlarmMetrics()
	if err != nil {
		slog.Error("failed to initialize alarm metrics", slog.String("error", err.Error()))
		return 1
	}

	// InfluxDB for local, BigQuery for gcloud
	eventRecorder, err := alarmrecorder.NewRecorder(ctx, cfg.AlarmEvents)
	if err != nil {
		slog.Error("failed to initialize alarm event recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := eventRecorder.Close(); err != nil {
			slog.Warn("failed to close alarm event recorder", slog.String("error", err.Error()))
		}
	}()

	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		slog.Error("failed to open database",
			slog.String("event", "database.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}
	defer func() {
		if err := database.Close(db); err != nil {
			slog.Warn("failed to close database", slog.String("error", err.Error()))
		}
	}()

	redisOptions := &redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	if cfg.Redis.TLS {
		redisOptions.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	redisClient := redis.NewClient(redisOptions)

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}()

	slog.Info("redis connected",
		slog.String("addr", cfg.Redis.Addr),
	)

	reminderRepo := database.NewReminderRepository(db)
	queueRepo := repository.NewQueueRepository(redisClient)

	reminderService := reminder.NewService(reminderRepo, cfg.Reminder.Location, alarmMetrics)
	evaluator := trigger.NewEvaluator(reminderRepo, queueRepo, eventRecorder, alarmMetrics, cfg.Reminder.AdvanceOffset)
	deliveryService := delivery.NewService(queueRepo, reminderRepo, eventRecorder, alarmMetrics, cfg.Reminder.AdvanceOffset)

	if cfg.Reminder.SweepEnabled() {
		sweeper := sweep.NewSweeper(reminderRepo, evaluator, cfg.Reminder.SweepSchedule, cfg.Reminder.Location)
		if err := sweeper.Start(ctx); err != nil {
			slog.Error("failed to start sweeper", slog.String("error", err.Error()))
			return 1
		}
		defer func() {
			stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer stopCancel()
			sweeper.Stop(stopCtx)
		}()
	}

	authenticator := auth.NewAuthenticator(cfg.JWTSecret)
	reminderHandler := handler.NewReminderHandler(reminderService)
	alarmHandler := handler.NewAlarmHandler(evaluator, deliveryService)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/health", "/health/live", "/health/ready"},
		Module:      logging.Module(serviceModule),
		TracerName:  "github.com/KasumiMercury/primind-visit-reminder/internal/observability/middleware",
		HTTPMetrics: httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())

	healthChecker := health.NewChecker(redisClient, reminderRepo, Version)
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	v1 := r.Group("/api/v1")
	handler.RegisterCallerRoutes(v1, authenticator.RequireCaller(), reminderHandler, alarmHandler)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.Duration("advance_offset", cfg.Reminder.AdvanceOffset),
			slog.String("timezone", cfg.Reminder.Location.String()),
			slog.String("sweep_schedule", cfg.Reminder.SweepSchedule),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}
