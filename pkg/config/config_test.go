// pkg/config/config_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultEngineConfig(t *testing.T) {
	cfg := DefaultEngineConfig()

	assert.Equal(t, 0.3, cfg.ConfidenceCutoff)
	assert.Equal(t, 0.7, cfg.SimilarityThreshold)
	assert.Equal(t, 2000, cfg.SimilarityMaxDistinct)
	assert.NoError(t, cfg.Validate())
}

func TestEngineConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  EngineConfig
	}{
		{"negative cutoff", EngineConfig{ConfidenceCutoff: -0.1, SimilarityThreshold: 0.7, SimilarityMaxDistinct: 2000}},
		{"cutoff at one", EngineConfig{ConfidenceCutoff: 1, SimilarityThreshold: 0.7, SimilarityMaxDistinct: 2000}},
		{"zero threshold", EngineConfig{ConfidenceCutoff: 0.3, SimilarityThreshold: 0, SimilarityMaxDistinct: 2000}},
		{"threshold at one", EngineConfig{ConfidenceCutoff: 0.3, SimilarityThreshold: 1, SimilarityMaxDistinct: 2000}},
		{"zero ceiling", EngineConfig{ConfidenceCutoff: 0.3, SimilarityThreshold: 0.7, SimilarityMaxDistinct: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.cfg.Validate())
		})
	}

	valid := EngineConfig{ConfidenceCutoff: 0, SimilarityThreshold: 0.7, SimilarityMaxDistinct: 1}
	assert.NoError(t, valid.Validate())
}

func setPostgresEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SOURCE_DRIVER", "postgres")
	t.Setenv("POSTGRES_USER", "standardize")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DB", "warehouse")
}

func TestLoadConfigDefaults(t *testing.T) {
	setPostgresEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.SourceDriver)
	assert.Equal(t, 0.3, cfg.Engine.ConfidenceCutoff)
	assert.Equal(t, 0.7, cfg.Engine.SimilarityThreshold)
	assert.Equal(t, 2000, cfg.Engine.SimilarityMaxDistinct)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)

	require.NotNil(t, cfg.Postgres)
	assert.Equal(t, "standardize", cfg.Postgres.User)
	assert.Equal(t, "warehouse", cfg.Postgres.Database)
	assert.Equal(t, "localhost", cfg.Postgres.Host)
	assert.Equal(t, 5432, cfg.Postgres.Port)
}

func TestLoadConfigEngineOverrides(t *testing.T) {
	setPostgresEnv(t)
	t.Setenv("CONFIDENCE_CUTOFF", "0.5")
	t.Setenv("SIMILARITY_THRESHOLD", "0.85")
	t.Setenv("SIMILARITY_MAX_DISTINCT", "500")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 0.5, cfg.Engine.ConfidenceCutoff)
	assert.Equal(t, 0.85, cfg.Engine.SimilarityThreshold)
	assert.Equal(t, 500, cfg.Engine.SimilarityMaxDistinct)
}

// Unparsable overrides fall back to the defaults rather than failing the load
func TestLoadConfigBadOverrides(t *testing.T) {
	setPostgresEnv(t)
	t.Setenv("SIMILARITY_THRESHOLD", "not-a-number")
	t.Setenv("SIMILARITY_MAX_DISTINCT", "also-not")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 0.7, cfg.Engine.SimilarityThreshold)
	assert.Equal(t, 2000, cfg.Engine.SimilarityMaxDistinct)
}

func TestLoadConfigMissingPostgresCredentials(t *testing.T) {
	t.Setenv("SOURCE_DRIVER", "postgres")
	t.Setenv("POSTGRES_USER", "")
	t.Setenv("POSTGRES_PASSWORD", "")
	t.Setenv("POSTGRES_DB", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigUnknownDriver(t *testing.T) {
	t.Setenv("SOURCE_DRIVER", "oracle")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadSnowflakeConfig(t *testing.T) {
	t.Setenv("SNOWFLAKE_USER", "loader")
	t.Setenv("SNOWFLAKE_PASSWORD", "secret")
	t.Setenv("SNOWFLAKE_ACCOUNT", "myorg-myaccount")
	t.Setenv("SNOWFLAKE_WAREHOUSE", "COMPUTE_WH")
	t.Setenv("SNOWFLAKE_DATABASE", "ANALYTICS")
	t.Setenv("SNOWFLAKE_ROLE", "ANALYST")

	cfg, err := LoadSnowflakeConfig()
	require.NoError(t, err)

	assert.Equal(t, "loader", cfg.User)
	assert.Equal(t, "ANALYTICS", cfg.Database)

	dsn := cfg.ConnectionString()
	assert.Contains(t, dsn, "loader:secret@myorg-myaccount/ANALYTICS")
	assert.Contains(t, dsn, "warehouse=COMPUTE_WH")
	assert.Contains(t, dsn, "role=ANALYST")
}

func TestPostgresConnectionString(t *testing.T) {
	cfg := &PostgresConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "standardize",
		Password: "secret",
		Database: "warehouse",
		SSLMode:  "require",
	}

	assert.Equal(t,
		"host=db.internal port=5433 user=standardize password=secret dbname=warehouse sslmode=require",
		cfg.ConnectionString())
}
