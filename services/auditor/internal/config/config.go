package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultRequestTimeout = 30 * time.Second
	defaultMaxElapsed     = 2 * time.Minute
)

// Config holds runtime configuration for the auditor job.
type Config struct {
	BackendBaseURL string
	BackendToken   string
	DatabaseURL    string
	RequestTimeout time.Duration
	MaxElapsed     time.Duration
	DryRun         bool
	LogLevel       string
	LogFormat      string
}

// Load reads configuration from environment variables (optionally .env).
func Load() (Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	cfg := Config{}

	dryRun := strings.TrimSpace(v.GetString("DRY_RUN"))
	cfg.DryRun = dryRun == "1" || strings.EqualFold(dryRun, "true")

	cfg.BackendBaseURL = strings.TrimRight(strings.TrimSpace(v.GetString("BACKEND_BASE_URL")), "/")
	if cfg.BackendBaseURL == "" {
		return cfg, errors.New("BACKEND_BASE_URL is required")
	}
	cfg.BackendToken = strings.TrimSpace(v.GetString("BACKEND_API_TOKEN"))

	// A dry run only logs, so it can go without a database.
	cfg.DatabaseURL = strings.TrimSpace(v.GetString("DATABASE_URL"))
	if cfg.DatabaseURL == "" && !cfg.DryRun {
		return cfg, errors.New("DATABASE_URL is required")
	}

	cfg.RequestTimeout = defaultRequestTimeout
	if s := strings.TrimSpace(v.GetString("AUDITOR_REQUEST_TIMEOUT")); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return cfg, fmt.Errorf("invalid AUDITOR_REQUEST_TIMEOUT: %w", err)
		}
		cfg.RequestTimeout = d
	}

	cfg.MaxElapsed = defaultMaxElapsed
	if s := strings.TrimSpace(v.GetString("AUDITOR_MAX_ELAPSED")); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return cfg, fmt.Errorf("invalid AUDITOR_MAX_ELAPSED: %w", err)
		}
		cfg.MaxElapsed = d
	}

	cfg.LogLevel = strings.ToLower(v.GetString("LOG_LEVEL"))
	cfg.LogFormat = strings.ToLower(v.GetString("LOG_FORMAT"))

	return cfg, nil
}
