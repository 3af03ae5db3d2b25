package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds everything one enrichment run needs.
// Defaults reproduce the file names and retry policy the tool has always used.
type Config struct {
	InputPath      string `validate:"required"`
	SheetName      string `validate:"required,max=31"`
	CredentialPath string `validate:"required"`
	OutputDir      string `validate:"required"`
	Routing        RoutingConfig
	Retry          RetryConfig
	Log            LogConfig
}

// RoutingConfig configures the Distance Matrix client.
type RoutingConfig struct {
	BaseURL        string        `validate:"required,url"`
	RequestTimeout time.Duration `validate:"gt=0"`
}

// RetryConfig bounds attempts per route request.
type RetryConfig struct {
	MaxAttempts int           `validate:"min=1"`
	Delay       time.Duration `validate:"gte=0"`
}

type LogConfig struct {
	Level  string `validate:"oneof=debug info warn error"`
	Format string `validate:"oneof=console json"`
}

var validate = validator.New()

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		InputPath:      getEnv("ROUTES_INPUT_PATH", "Routes_Request.xlsx"),
		SheetName:      getEnv("ROUTES_SHEET", "Report"),
		CredentialPath: getEnv("API_KEY_PATH", "Google_Maps_API-KEY.txt"),
		OutputDir:      getEnv("OUTPUT_DIR", "."),
		Routing: RoutingConfig{
			BaseURL:        getEnv("DISTANCE_MATRIX_URL", "https://maps.googleapis.com/maps/api/distancematrix/json"),
			RequestTimeout: getEnvAsDuration("REQUEST_TIMEOUT", 10*time.Second),
		},
		Retry: RetryConfig{
			MaxAttempts: getEnvAsInt("RETRY_MAX_ATTEMPTS", 3),
			Delay:       getEnvAsDuration("RETRY_DELAY", 2*time.Second),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "console")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks required fields and ranges.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed on %q", fe.Namespace(), fe.Tag()))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
