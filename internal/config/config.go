package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/kyuyo-labs/payroll-engine-go/internal/pkg/validator"
)

type Config struct {
	App    AppConfig
	Rates  RatesConfig
	Output OutputConfig
	Batch  BatchConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Env      string
	LogLevel string
}

// RatesConfig points at the statutory rate table. An empty TablePath
// means the built-in defaults are used.
type RatesConfig struct {
	TablePath string
}

// OutputConfig holds artifact output configuration
type OutputConfig struct {
	Dir      string
	Currency string
}

// BatchConfig holds payroll run configuration
type BatchConfig struct {
	Workers int
}

func Load() (*Config, error) {
	// A .env file is optional; real environments set variables directly
	_ = godotenv.Load()

	config := &Config{}

	config.App = AppConfig{
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.Rates = RatesConfig{
		TablePath: getEnv("RATE_TABLE_PATH", ""),
	}

	config.Output = OutputConfig{
		Dir:      getEnv("OUTPUT_DIR", "out"),
		Currency: getEnv("CURRENCY", "JPY"),
	}

	workers, err := strconv.Atoi(getEnv("BATCH_WORKERS", "4"))
	if err != nil {
		return nil, fmt.Errorf("invalid BATCH_WORKERS: %w", err)
	}
	config.Batch = BatchConfig{
		Workers: workers,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if !validator.IsInSlice(c.App.LogLevel, []string{"debug", "info", "warn", "error"}) {
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error")
	}
	if validator.IsEmpty(c.Output.Dir) {
		return fmt.Errorf("OUTPUT_DIR is required")
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("BATCH_WORKERS must be at least 1")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
