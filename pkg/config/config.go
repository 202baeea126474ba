// pkg/config/config.go
package config

import (
	"errors"
	"os"
	"strconv"
)

// Config represents the application configuration
type Config struct {
	// Detection engine tunables
	Engine *EngineConfig

	// Dataset source settings
	SourceDriver string // "postgres" or "snowflake"
	Postgres     *PostgresConfig
	Snowflake    *SnowflakeConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// EngineConfig holds the detection engine tunables. The defaults are
// empirically chosen; they trade recall against precision rather than
// correctness, so hosts may adjust them freely.
type EngineConfig struct {
	// ConfidenceCutoff is the minimum classifier confidence required before a
	// value is canonicalized
	ConfidenceCutoff float64

	// SimilarityThreshold is the minimum normalized edit-distance similarity
	// for two values to be clustered
	SimilarityThreshold float64

	// SimilarityMaxDistinct caps the number of distinct values entering the
	// pairwise similarity pass. Above it the pass is skipped with a warning,
	// since the comparison is quadratic in the number of distinct values.
	SimilarityMaxDistinct int
}

// DefaultEngineConfig returns the default engine tunables
func DefaultEngineConfig() *EngineConfig {
	return &EngineConfig{
		ConfidenceCutoff:      0.3,
		SimilarityThreshold:   0.7,
		SimilarityMaxDistinct: 2000,
	}
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Engine: &EngineConfig{
			ConfidenceCutoff:      getEnvAsFloat("CONFIDENCE_CUTOFF", 0.3),
			SimilarityThreshold:   getEnvAsFloat("SIMILARITY_THRESHOLD", 0.7),
			SimilarityMaxDistinct: getEnvAsInt("SIMILARITY_MAX_DISTINCT", 2000),
		},
		SourceDriver: getEnv("SOURCE_DRIVER", "postgres"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "json"),
	}

	switch cfg.SourceDriver {
	case "postgres":
		pgConfig, err := LoadPostgresConfig()
		if err != nil {
			return nil, errors.New("failed to load PostgreSQL configuration: " + err.Error())
		}
		cfg.Postgres = pgConfig
	case "snowflake":
		snowConfig, err := LoadSnowflakeConfig()
		if err != nil {
			return nil, errors.New("failed to load Snowflake configuration: " + err.Error())
		}
		cfg.Snowflake = snowConfig
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures all required configuration is present and valid
func (c *Config) Validate() error {
	if c.Engine == nil {
		return errors.New("engine configuration is required")
	}

	if err := c.Engine.Validate(); err != nil {
		return err
	}

	switch c.SourceDriver {
	case "postgres":
		if c.Postgres == nil {
			return errors.New("postgreSQL configuration is required")
		}
	case "snowflake":
		if c.Snowflake == nil {
			return errors.New("snowflake configuration is required")
		}
	default:
		return errors.New("source driver must be postgres or snowflake")
	}

	return nil
}

// Validate ensures engine tunables are in range
func (c *EngineConfig) Validate() error {
	if c.ConfidenceCutoff < 0 || c.ConfidenceCutoff >= 1 {
		return errors.New("confidence cutoff must be in [0, 1)")
	}

	if c.SimilarityThreshold <= 0 || c.SimilarityThreshold >= 1 {
		return errors.New("similarity threshold must be in (0, 1)")
	}

	if c.SimilarityMaxDistinct <= 0 {
		return errors.New("similarity distinct-value ceiling must be positive")
	}

	return nil
}

// Helper functions for environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}
