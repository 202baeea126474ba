// pkg/source/snowflake.go
package source

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	sf "github.com/snowflakedb/gosnowflake"
	"go.uber.org/zap"

	"github.com/dataprep-go/standardize/pkg/config"
	"github.com/dataprep-go/standardize/pkg/model"
)

// SnowflakeSource implements the DatasetSource interface for Snowflake
type SnowflakeSource struct {
	db     *sqlx.DB
	logger *zap.Logger
	cfg    *config.SnowflakeConfig
}

// NewSnowflakeSource creates a new Snowflake dataset source
func NewSnowflakeSource(ctx context.Context, cfg *config.SnowflakeConfig) (*SnowflakeSource, error) {
	logger := zap.L().Named("snowflake-source")

	// Create DSN using Snowflake's DSN builder
	sfConfig := &sf.Config{
		Account:       cfg.Account,
		User:          cfg.User,
		Password:      cfg.Password,
		Database:      cfg.Database,
		Warehouse:     cfg.Warehouse,
		Role:          cfg.Role,
		Authenticator: cfg.Authenticator,
	}

	// Log connection attempt (without credentials)
	logger.Info("Connecting to Snowflake",
		zap.String("account", cfg.Account),
		zap.String("user", cfg.User),
		zap.String("database", cfg.Database),
		zap.String("warehouse", cfg.Warehouse),
		zap.String("role", cfg.Role))

	dsn, err := sf.DSN(sfConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to build Snowflake DSN: %w", err)
	}

	db, err := sqlx.Open("snowflake", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Snowflake connection: %w", err)
	}

	// Configure connection pool
	ApplyConnectionSettings(
		db.DB,
		cfg.MaxOpenConns,
		cfg.MaxIdleConns,
		cfg.ConnMaxLifetime,
		cfg.ConnMaxIdleTime,
	)

	// Set query timeout if configured
	if cfg.QueryTimeout > 0 {
		_, err = db.ExecContext(
			ctx,
			fmt.Sprintf("ALTER SESSION SET STATEMENT_TIMEOUT_IN_SECONDS = %d",
				int(cfg.QueryTimeout.Seconds())),
		)
		if err != nil {
			logger.Warn("Failed to set statement timeout", zap.Error(err))
		}
	}

	// Verify connection
	if err := PingWithTimeout(ctx, db.DB, 10*time.Second); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to Snowflake: %w", err)
	}

	src := &SnowflakeSource{
		db:     db,
		logger: logger,
		cfg:    cfg,
	}

	LogConnectionStats(logger, cfg.Database, db.DB)
	return src, nil
}

// DB returns the underlying database handle
func (s *SnowflakeSource) DB() *sqlx.DB {
	return s.db
}

// Validate verifies the Snowflake connection and access rights
func (s *SnowflakeSource) Validate() error {
	var role, database, warehouse string
	err := s.db.QueryRow("SELECT CURRENT_ROLE(), CURRENT_DATABASE(), CURRENT_WAREHOUSE()").Scan(
		&role, &database, &warehouse)
	if err != nil {
		return fmt.Errorf("failed to verify Snowflake access: %w", err)
	}

	s.logger.Info("Connected to Snowflake",
		zap.String("role", role),
		zap.String("database", database),
		zap.String("warehouse", warehouse))

	// Verify we're connected to the correct database
	if database != s.cfg.Database {
		return fmt.Errorf("connected to wrong database: %s (expected: %s)",
			database, s.cfg.Database)
	}

	return nil
}

// Close closes the database connection
func (s *SnowflakeSource) Close() error {
	s.logger.Info("Closing Snowflake connection")
	LogConnectionStats(s.logger, s.cfg.Database, s.db.DB)
	return s.db.Close()
}

// FetchDataset materializes up to limit rows of a table into memory
func (s *SnowflakeSource) FetchDataset(ctx context.Context, table string, limit int) (*model.Dataset, error) {
	dataset, err := fetchDataset(ctx, s.db, table, limit)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Fetched dataset",
		zap.String("table", table),
		zap.Int("rows", len(dataset.Rows)),
		zap.Int("columns", len(dataset.Columns)))

	return dataset, nil
}

// FetchColumn materializes the raw values of a single column
func (s *SnowflakeSource) FetchColumn(ctx context.Context, table, column string, limit int) ([]string, error) {
	return fetchColumn(ctx, s.db, table, column, limit)
}
