// pkg/source/postgres.go
package source

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/dataprep-go/standardize/pkg/config"
	"github.com/dataprep-go/standardize/pkg/model"
)

// PostgresSource implements the DatasetSource interface for PostgreSQL
type PostgresSource struct {
	db     *sqlx.DB
	logger *zap.Logger
	cfg    *config.PostgresConfig
}

// NewPostgresSource creates and initializes a new PostgreSQL dataset source
func NewPostgresSource(ctx context.Context, cfg *config.PostgresConfig) (*PostgresSource, error) {
	logger := zap.L().Named("postgres-source")

	// Log connection attempt
	logger.Info("Connecting to PostgreSQL",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Database),
		zap.String("user", cfg.User))

	db, err := sqlx.Open("postgres", cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize PostgreSQL connection: %w", err)
	}

	// Configure connection pool
	ApplyConnectionSettings(
		db.DB,
		cfg.MaxOpenConns,
		cfg.MaxIdleConns,
		cfg.ConnMaxLifetime,
		cfg.ConnMaxIdleTime,
	)

	// Set statement timeout if configured
	if cfg.StatementTimeout > 0 {
		_, err = db.ExecContext(
			ctx,
			fmt.Sprintf("SET statement_timeout = %d", cfg.StatementTimeout.Milliseconds()),
		)
		if err != nil {
			logger.Warn("Failed to set statement timeout", zap.Error(err))
		}
	}

	// Verify connection
	if err := PingWithTimeout(ctx, db.DB, 5*time.Second); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	src := &PostgresSource{
		db:     db,
		logger: logger,
		cfg:    cfg,
	}

	LogConnectionStats(logger, cfg.Database, db.DB)
	return src, nil
}

// DB returns the underlying database handle
func (s *PostgresSource) DB() *sqlx.DB {
	return s.db
}

// Validate verifies the PostgreSQL connection
func (s *PostgresSource) Validate() error {
	var version string
	err := s.db.QueryRow("SELECT version()").Scan(&version)
	if err != nil {
		return fmt.Errorf("failed to query PostgreSQL version: %w", err)
	}

	s.logger.Info("PostgreSQL connection validated",
		zap.String("version", version),
		zap.String("database", s.cfg.Database),
		zap.String("host", s.cfg.Host),
		zap.Int("port", s.cfg.Port))

	return nil
}

// Close closes the database connection
func (s *PostgresSource) Close() error {
	s.logger.Info("Closing PostgreSQL connection")
	LogConnectionStats(s.logger, s.cfg.Database, s.db.DB)
	return s.db.Close()
}

// FetchDataset materializes up to limit rows of a table into memory
func (s *PostgresSource) FetchDataset(ctx context.Context, table string, limit int) (*model.Dataset, error) {
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
func (s *PostgresSource) FetchColumn(ctx context.Context, table, column string, limit int) ([]string, error) {
	return fetchColumn(ctx, s.db, table, column, limit)
}
