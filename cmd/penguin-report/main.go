package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"penguincli/internal/config"
	"penguincli/internal/infrastructure"
	"penguincli/internal/operations"
	"penguincli/pkg/contracts"
)

// shutdownTimeout bounds the telemetry flush after a run
const shutdownTimeout = 5 * time.Second

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("Penguin report failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	paths, err := cfg.ResolvePaths()
	if err != nil {
		return fmt.Errorf("failed to resolve paths: %w", err)
	}

	cfg.Logging.FilePath = paths.LogFile
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer infrastructure.CloseLogFile()

	ctx = infrastructure.EnsureTraceID(ctx)
	logger.InfoContext(ctx, "Starting penguin report",
		slog.String("version", contracts.GetFullVersionString()),
		slog.String("species", cfg.Report.Species))
	paths.LogPathResolution(logger)

	tel, err := infrastructure.InitTelemetry(cfg.Telemetry, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := tel.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Telemetry shutdown failed", slog.String("error", err.Error()))
		}
	}()

	_, runErr := operations.Run(ctx, cfg, paths, tel, logger)

	// metrics are written for failed runs too
	if paths.MetricsFile != "" {
		if err := tel.WriteMetrics(paths.MetricsFile); err != nil {
			logger.WarnContext(ctx, "Failed to write metrics", slog.String("error", err.Error()))
		}
	}

	if runErr != nil {
		return runErr
	}

	logger.InfoContext(ctx, "Penguin report complete", slog.String("output", paths.OutputFile))
	return nil
}
