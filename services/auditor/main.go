package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/qrsegnaletica/signage-tracker/internal/backend"
	"github.com/qrsegnaletica/signage-tracker/internal/logging"
	"github.com/qrsegnaletica/signage-tracker/services/auditor/internal/audit"
	"github.com/qrsegnaletica/signage-tracker/services/auditor/internal/config"
	"github.com/qrsegnaletica/signage-tracker/services/auditor/internal/db"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("auditor failed: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, "signage-auditor")
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.MaxElapsed+cfg.RequestTimeout+30*time.Second)
	defer cancel()

	// Retries are driven by the auditor's backoff, not by the HTTP client.
	client := backend.New(backend.Options{
		BaseURL: cfg.BackendBaseURL,
		Token:   cfg.BackendToken,
		Timeout: cfg.RequestTimeout,
	}, logger)

	var recorder audit.Recorder
	if cfg.DryRun {
		logger.Info("dry-run: quality issues will only be logged")
	} else {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := db.EnsureSchema(ctx, pool); err != nil {
			return err
		}
		recorder = db.NewRecorder(pool)
	}

	report, err := audit.New(client, recorder, audit.Options{
		MaxElapsed: cfg.MaxElapsed,
		DryRun:     cfg.DryRun,
	}, logger).Run(ctx)
	if err != nil {
		return err
	}

	logger.Info("audit finished",
		zap.String("run_id", report.RunID),
		zap.Int("products", report.Products),
		zap.Int("maintenances", report.Maintenances),
		zap.Int("issues", len(report.Issues)),
		zap.Bool("dry_run", cfg.DryRun),
	)
	return nil
}
