package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	OCR      OCRConfig
	Retry    RetryConfig
	Batch    BatchConfig
}

// DatabaseConfig holds job-store configuration. An empty DSN selects a local
// SQLite file next to the output directory.
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// OCRConfig holds remote recognition service configuration.
type OCRConfig struct {
	APIKey       string
	SecretKey    string
	TokenURL     string
	BaseURL      string
	LanguageType string
	Timeout      time.Duration
	// TokenSafetyMargin is subtracted from the declared token lifetime so a
	// refresh happens before the remote side starts rejecting the token.
	TokenSafetyMargin time.Duration
}

// RetryConfig holds the backoff policy applied to transient failures.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

// BatchConfig holds orchestration settings.
type BatchConfig struct {
	Concurrency    int
	ArtifactSuffix string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 10),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 1),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		OCR: OCRConfig{
			APIKey:            getEnv("OCR_API_KEY", ""),
			SecretKey:         getEnv("OCR_SECRET_KEY", ""),
			TokenURL:          getEnv("OCR_TOKEN_URL", "https://aip.baidubce.com/oauth/2.0/token"),
			BaseURL:           getEnv("OCR_BASE_URL", "https://aip.baidubce.com/rest/2.0/ocr/v1"),
			LanguageType:      getEnv("OCR_LANGUAGE_TYPE", "CHN_ENG"),
			Timeout:           getEnvAsDuration("OCR_TIMEOUT", 30*time.Second),
			TokenSafetyMargin: getEnvAsDuration("OCR_TOKEN_SAFETY_MARGIN", 5*time.Minute),
		},
		Retry: RetryConfig{
			MaxAttempts: getEnvAsInt("RETRY_MAX_ATTEMPTS", 3),
			BaseDelay:   getEnvAsDuration("RETRY_BASE_DELAY", 1*time.Second),
		},
		Batch: BatchConfig{
			Concurrency:    getEnvAsInt("BATCH_CONCURRENCY", 3),
			ArtifactSuffix: getEnv("ARTIFACT_SUFFIX", "_ocr.md"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.OCR.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "OCR_API_KEY is required", ErrInvalidInput)
	}
	if c.OCR.SecretKey == "" {
		return NewAppError("CONFIG_ERROR", "OCR_SECRET_KEY is required", ErrInvalidInput)
	}
	if c.Retry.MaxAttempts < 1 {
		return NewAppError("CONFIG_ERROR", "RETRY_MAX_ATTEMPTS must be at least 1", ErrInvalidInput)
	}
	if c.Batch.Concurrency < 1 {
		return NewAppError("CONFIG_ERROR", "BATCH_CONCURRENCY must be at least 1", ErrInvalidInput)
	}
	return nil
}
