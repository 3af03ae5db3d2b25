package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		wantErr bool
		check   func(*testing.T, *Config)
	}{
		{
			name:    "defaults",
			envVars: map[string]string{},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "Routes_Request.xlsx", cfg.InputPath)
				assert.Equal(t, "Report", cfg.SheetName)
				assert.Equal(t, "Google_Maps_API-KEY.txt", cfg.CredentialPath)
				assert.Equal(t, ".", cfg.OutputDir)
				assert.Equal(t, "https://maps.googleapis.com/maps/api/distancematrix/json", cfg.Routing.BaseURL)
				assert.Equal(t, 10*time.Second, cfg.Routing.RequestTimeout)
				assert.Equal(t, 3, cfg.Retry.MaxAttempts)
				assert.Equal(t, 2*time.Second, cfg.Retry.Delay)
				assert.Equal(t, "info", cfg.Log.Level)
				assert.Equal(t, "console", cfg.Log.Format)
			},
		},
		{
			name: "overrides",
			envVars: map[string]string{
				"ROUTES_INPUT_PATH":  "in/routes.xlsx",
				"ROUTES_SHEET":       "Routes",
				"API_KEY_PATH":       "secrets/key.txt",
				"OUTPUT_DIR":         "out",
				"RETRY_MAX_ATTEMPTS": "5",
				"RETRY_DELAY":        "0s",
				"REQUEST_TIMEOUT":    "30s",
				"LOG_LEVEL":          "DEBUG",
				"LOG_FORMAT":         "json",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "in/routes.xlsx", cfg.InputPath)
				assert.Equal(t, "Routes", cfg.SheetName)
				assert.Equal(t, "secrets/key.txt", cfg.CredentialPath)
				assert.Equal(t, "out", cfg.OutputDir)
				assert.Equal(t, 5, cfg.Retry.MaxAttempts)
				assert.Equal(t, time.Duration(0), cfg.Retry.Delay)
				assert.Equal(t, 30*time.Second, cfg.Routing.RequestTimeout)
				assert.Equal(t, "debug", cfg.Log.Level)
				assert.Equal(t, "json", cfg.Log.Format)
			},
		},
		{
			name:    "unparsable numbers fall back to defaults",
			envVars: map[string]string{"RETRY_MAX_ATTEMPTS": "three", "RETRY_DELAY": "soon"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 3, cfg.Retry.MaxAttempts)
				assert.Equal(t, 2*time.Second, cfg.Retry.Delay)
			},
		},
		{
			name:    "zero attempts rejected",
			envVars: map[string]string{"RETRY_MAX_ATTEMPTS": "0"},
			wantErr: true,
		},
		{
			name:    "bad url rejected",
			envVars: map[string]string{"DISTANCE_MATRIX_URL": "not a url"},
			wantErr: true,
		},
		{
			name:    "unknown log format rejected",
			envVars: map[string]string{"LOG_FORMAT": "xml"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{
				"ROUTES_INPUT_PATH", "ROUTES_SHEET", "API_KEY_PATH", "OUTPUT_DIR",
				"DISTANCE_MATRIX_URL", "REQUEST_TIMEOUT", "RETRY_MAX_ATTEMPTS",
				"RETRY_DELAY", "LOG_LEVEL", "LOG_FORMAT",
			} {
				t.Setenv(k, "")
			}
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}
