package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds environment-driven settings for the REST API.
type Config struct {
	BackendBaseURL string
	BackendToken   string
	BackendTimeout time.Duration
	BackendRetries int
	DatabaseURL    string
	Port           int
	BearerToken    string
	RequestTimeout time.Duration
	LogLevel       string
	LogFormat      string
}

// Load reads configuration from environment variables (optionally .env).
func Load() (Config, error) {
	_ = godotenv.Load() // ignore missing file

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "")
	v.SetDefault("API_PORT", "")
	v.SetDefault("BACKEND_TIMEOUT", "15s")
	v.SetDefault("BACKEND_RETRIES", "2")
	v.SetDefault("API_REQUEST_TIMEOUT", "20s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	return load(v)
}

func load(v *viper.Viper) (Config, error) {
	cfg := Config{Port: 8080}

	cfg.BackendBaseURL = strings.TrimRight(strings.TrimSpace(v.GetString("BACKEND_BASE_URL")), "/")
	if cfg.BackendBaseURL == "" {
		return cfg, errors.New("BACKEND_BASE_URL is required")
	}
	cfg.BackendToken = strings.TrimSpace(v.GetString("BACKEND_API_TOKEN"))

	var err error
	if cfg.BackendTimeout, err = duration(v, "BACKEND_TIMEOUT"); err != nil {
		return cfg, err
	}
	if cfg.RequestTimeout, err = duration(v, "API_REQUEST_TIMEOUT"); err != nil {
		return cfg, err
	}

	retries, err := strconv.Atoi(strings.TrimSpace(v.GetString("BACKEND_RETRIES")))
	if err != nil || retries < 0 {
		return cfg, fmt.Errorf("invalid BACKEND_RETRIES: %s", v.GetString("BACKEND_RETRIES"))
	}
	cfg.BackendRetries = retries

	if portStr := v.GetString("PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil && port > 0 {
			cfg.Port = port
		} else {
			return cfg, fmt.Errorf("invalid PORT: %s", portStr)
		}
	} else if portStr := v.GetString("API_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil && port > 0 {
			cfg.Port = port
		} else {
			return cfg, fmt.Errorf("invalid API_PORT: %s", portStr)
		}
	}

	cfg.DatabaseURL = strings.TrimSpace(v.GetString("DATABASE_URL"))
	cfg.BearerToken = v.GetString("API_BEARER_TOKEN")
	cfg.LogLevel = strings.ToLower(v.GetString("LOG_LEVEL"))
	cfg.LogFormat = strings.ToLower(v.GetString("LOG_FORMAT"))

	return cfg, nil
}

func duration(v *viper.Viper, key string) (time.Duration, error) {
	raw := strings.TrimSpace(v.GetString(key))
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, raw)
	}
	return d, nil
}

// ListenAddr returns the host:port string for the HTTP server.
func (c Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// QualityEnabled reports whether the quality-issue store is configured.
func (c Config) QualityEnabled() bool {
	return c.DatabaseURL != ""
}
