package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KasumiMercury/primind-visit-reminder/internal/config"
	"github.com/KasumiMercury/primind-visit-reminder/internal/observability/logging"
	"github.com/KasumiMercury/primind-visit-reminder/internal/poller"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.LoadClientConfig()

	// Stdout belongs to the alarm display.
	logger := slog.New(logging.NewHandler(logging.HandlerConfig{
		Service: logging.ServiceInfo{
			Name:    "visit-reminder-client",
			Version: Version,
		},
		Environment:   logging.EnvDev,
		DefaultModule: logging.Module("alarm-client"),
		Level:         cfg.SlogLevel(),
		Writer:        os.Stderr,
	}))
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := poller.NewClient(cfg.ServerURL, cfg.Token, &http.Client{Timeout: cfg.PollTimeout + 5*time.Second})
	presenter := poller.NewTerminalPresenter(os.Stdin, os.Stdout, time.Local)
	sounder := poller.NewBellSounder(os.Stdout, 0)

	p := poller.New(client, presenter, sounder, poller.Options{
		Interval: cfg.PollInterval,
		Timeout:  cfg.PollTimeout,
	})

	slog.Info("alarm client started",
		slog.String("server_url", cfg.ServerURL),
		slog.Duration("poll_interval", cfg.PollInterval),
	)

	p.Run(ctx)

	slog.Info("alarm client stopped")
	return 0
}
