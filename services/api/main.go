package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/qrsegnaletica/signage-tracker/internal/backend"
	"github.com/qrsegnaletica/signage-tracker/internal/logging"
	"github.com/qrsegnaletica/signage-tracker/services/api/config"
	"github.com/qrsegnaletica/signage-tracker/services/api/db"
	httpserver "github.com/qrsegnaletica/signage-tracker/services/api/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, "signage-api")
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	upstream := backend.New(backend.Options{
		BaseURL: cfg.BackendBaseURL,
		Token:   cfg.BackendToken,
		Timeout: cfg.BackendTimeout,
		Retries: cfg.BackendRetries,
	}, logger)

	var issues httpserver.IssueReader
	if cfg.QualityEnabled() {
		store, err := db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("db connection error", zap.Error(err))
		}
		defer store.Close()
		issues = store
	} else {
		logger.Info("DATABASE_URL not set, stored quality reports disabled")
	}

	srv := httpserver.New(cfg, upstream, issues, logger)
	logger.Info("REST API listening",
		zap.String("addr", cfg.ListenAddr()),
		zap.String("backend", cfg.BackendBaseURL),
	)

	if err := srv.Run(ctx); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
