package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, env map[string]string) {
	t.Helper()
	for _, key := range []string{
		"BACKEND_BASE_URL", "BACKEND_API_TOKEN", "BACKEND_TIMEOUT", "BACKEND_RETRIES",
		"API_REQUEST_TIMEOUT", "PORT", "API_PORT", "DATABASE_URL", "API_BEARER_TOKEN",
		"LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, env[key])
	}
}

func TestLoad_Defaults(t *testing.T) {
	setEnv(t, map[string]string{"BACKEND_BASE_URL": "https://backend.example/api/"})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://backend.example/api", cfg.BackendBaseURL)
	assert.Equal(t, 15*time.Second, cfg.BackendTimeout)
	assert.Equal(t, 2, cfg.BackendRetries)
	assert.Equal(t, 20*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, ":8080", cfg.ListenAddr())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.False(t, cfg.QualityEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	setEnv(t, map[string]string{
		"BACKEND_BASE_URL":    "http://localhost:3000",
		"BACKEND_API_TOKEN":   "svc",
		"BACKEND_TIMEOUT":     "3s",
		"BACKEND_RETRIES":     "0",
		"API_REQUEST_TIMEOUT": "1m",
		"API_PORT":            "9090",
		"DATABASE_URL":        "postgres://localhost/signage",
		"API_BEARER_TOKEN":    "secret",
		"LOG_LEVEL":           "DEBUG",
		"LOG_FORMAT":          "console",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "svc", cfg.BackendToken)
	assert.Equal(t, 3*time.Second, cfg.BackendTimeout)
	assert.Equal(t, 0, cfg.BackendRetries)
	assert.Equal(t, time.Minute, cfg.RequestTimeout)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "secret", cfg.BearerToken)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.True(t, cfg.QualityEnabled())
}

func TestLoad_PortPrecedence(t *testing.T) {
	setEnv(t, map[string]string{
		"BACKEND_BASE_URL": "http://localhost:3000",
		"PORT":             "7000",
		"API_PORT":         "9090",
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Port)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"missing backend", map[string]string{}, "BACKEND_BASE_URL is required"},
		{"bad port", map[string]string{"BACKEND_BASE_URL": "http://b", "PORT": "eighty"}, "invalid PORT: eighty"},
		{"bad api port", map[string]string{"BACKEND_BASE_URL": "http://b", "API_PORT": "-1"}, "invalid API_PORT: -1"},
		{"bad timeout", map[string]string{"BACKEND_BASE_URL": "http://b", "BACKEND_TIMEOUT": "soon"}, `invalid BACKEND_TIMEOUT: "soon"`},
		{"bad retries", map[string]string{"BACKEND_BASE_URL": "http://b", "BACKEND_RETRIES": "-2"}, "invalid BACKEND_RETRIES: -2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, tt.env)
			_, err := Load()
			require.Error(t, err)
			assert.EqualError(t, err, tt.want)
		})
	}
}
