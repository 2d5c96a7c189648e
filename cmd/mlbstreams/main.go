package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"mlb-streams/internal/app"
	"mlb-streams/internal/config"
	"mlb-streams/internal/logging"
	"mlb-streams/internal/metrics"
	"mlb-streams/internal/providers"
	"mlb-streams/internal/providers/statsapi"
	"mlb-streams/internal/providers/streamed"
	"mlb-streams/internal/snapshots"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_APP_RUN") == "1" {
		return
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "mlb-streams",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	recorder, shutdownMetrics, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		return fmt.Errorf("metrics setup: %w", err)
	}
	// Flush on a fresh context so a Ctrl-C still exports what we gathered.
	defer func() {
		if err := shutdownMetrics(context.Background()); err != nil {
			logging.Warn(logger, "metrics shutdown failed", "error", err)
		}
	}()

	dumps := snapshots.NewWriter(cfg.Snapshots.Dir)

	schedule := providers.NewDateFallbackProvider(statsapi.NewClient(statsapi.Config{
		BaseURL:    cfg.StatsAPI.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.StatsAPI.Timeout},
		Logger:     logger,
		Snapshots:  dumps,
	}), logger)

	streamsClient := streamed.NewClient(streamed.Config{
		BaseURL:    cfg.Streamed.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.Streamed.Timeout},
		Logger:     logger,
		Snapshots:  dumps,
	})

	cli := app.New(app.Config{
		Schedule: schedule,
		Sources:  streamsClient,
		Streams:  streamsClient,
		Logger:   logger,
		Recorder: recorder,
		Input:    os.Stdin,
		Output:   os.Stdout,
		Date:     cfg.ScheduleDate,
		Timezone: cfg.Timezone,
	})

	return cli.Run(ctx)
}
