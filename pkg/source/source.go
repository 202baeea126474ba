// pkg/source/source.go
package source

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/dataprep-go/standardize/pkg/model"
)

// DatasetSource materializes tabular datasets for analysis
type DatasetSource interface {
	// DB returns the underlying database handle
	DB() *sqlx.DB

	// Validate verifies the connection and permissions
	Validate() error

	// Close closes the connection and releases resources
	Close() error

	// FetchDataset materializes up to limit rows of a table into memory.
	// A limit of 0 fetches all rows.
	FetchDataset(ctx context.Context, table string, limit int) (*model.Dataset, error)

	// FetchColumn materializes the raw values of a single column, trimmed,
	// with missing and empty cells excluded
	FetchColumn(ctx context.Context, table, column string, limit int) ([]string, error)
}

// fetchDataset reads a table into a model.Dataset using sqlx map scanning
func fetchDataset(
	ctx context.Context,
	db *sqlx.DB,
	table string,
	limit int,
) (*model.Dataset, error) {
	query := fmt.Sprintf("SELECT * FROM %s", table)
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := db.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query table %s: %w", table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns for table %s: %w", table, err)
	}

	dataset := &model.Dataset{
		Name:    table,
		Columns: columns,
	}

	for rows.Next() {
		row := make(model.Row, len(columns))
		if err := rows.MapScan(row); err != nil {
			return nil, fmt.Errorf("failed to scan row from table %s: %w", table, err)
		}
		dataset.Rows = append(dataset.Rows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration failed for table %s: %w", table, err)
	}

	return dataset, nil
}

// fetchColumn reads one column's raw values, excluding NULL and empty cells
func fetchColumn(
	ctx context.Context,
	db *sqlx.DB,
	table, column string,
	limit int,
) ([]string, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s IS NOT NULL", column, table, column)
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := db.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query column %s.%s: %w", table, column, err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var cell interface{}
		if err := rows.Scan(&cell); err != nil {
			return nil, fmt.Errorf("failed to scan value from %s.%s: %w", table, column, err)
		}

		value := strings.TrimSpace(model.CellString(cell))
		if value == "" {
			continue
		}
		values = append(values, value)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration failed for %s.%s: %w", table, column, err)
	}

	return values, nil
}

// ConnStats contains standardized connection statistics
type ConnStats struct {
	OpenConnections int
	InUse           int
	Idle            int
	MaxOpenConns    int
}

// GetConnectionStats returns connection pool statistics for logging
func GetConnectionStats(db *sql.DB) ConnStats {
	stats := db.Stats()
	return ConnStats{
		OpenConnections: stats.OpenConnections,
		InUse:           stats.InUse,
		Idle:            stats.Idle,
		MaxOpenConns:    stats.MaxOpenConnections,
	}
}

// LogConnectionStats logs connection pool statistics
func LogConnectionStats(logger *zap.Logger, name string, db *sql.DB) {
	stats := GetConnectionStats(db)
	logger.Debug("Connection pool stats",
		zap.String("database", name),
		zap.Int("open_connections", stats.OpenConnections),
		zap.Int("in_use", stats.InUse),
		zap.Int("idle", stats.Idle),
		zap.Int("max_open", stats.MaxOpenConns),
	)
}

// PingWithTimeout attempts to ping a database with a timeout
func PingWithTimeout(ctx context.Context, db *sql.DB, timeout time.Duration) error {
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- db.PingContext(pingCtx)
	}()

	select {
	case err := <-errCh:
		return err
	case <-pingCtx.Done():
		return fmt.Errorf("ping timed out after %v: %w", timeout, pingCtx.Err())
	}
}

// ApplyConnectionSettings configures database connection pool settings
func ApplyConnectionSettings(db *sql.DB, maxOpen, maxIdle int, maxLifetime, maxIdleTime time.Duration) {
	if maxOpen > 0 {
		db.SetMaxOpenConns(maxOpen)
	}
	if maxIdle > 0 {
		db.SetMaxIdleConns(maxIdle)
	}
	if maxLifetime > 0 {
		db.SetConnMaxLifetime(maxLifetime)
	}
	if maxIdleTime > 0 {
		db.SetConnMaxIdleTime(maxIdleTime)
	}
}
