// pkg/audit/recorder.go
package audit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/dataprep-go/standardize/pkg/model"
)

// Recorder persists applied standardization operations so operators can
// review what was rewritten and why
type Recorder struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewRecorder creates a new Recorder instance and ensures the tracking table exists
func NewRecorder(db *sqlx.DB, logger *zap.Logger) (*Recorder, error) {
	if db == nil {
		return nil, errors.New("database connection cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	recorder := &Recorder{
		db:     db,
		logger: logger,
	}

	// Ensure the tracking table exists
	if err := recorder.setupTrackingTable(); err != nil {
		return nil, fmt.Errorf("failed to setup tracking table: %w", err)
	}

	return recorder, nil
}

// setupTrackingTable ensures the standardization_log tracking table exists
func (r *Recorder) setupTrackingTable() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	createTableSQL := `
		CREATE TABLE IF NOT EXISTS public.standardization_log (
			id SERIAL PRIMARY KEY,
			dataset_name TEXT NOT NULL,
			column_name TEXT NOT NULL,
			original_value TEXT NOT NULL,
			new_value TEXT NOT NULL,
			pattern_family TEXT NOT NULL,
			run_id TEXT NOT NULL,
			applied_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		)
	`
	_, err := r.db.ExecContext(ctx, createTableSQL)
	if err != nil {
		return fmt.Errorf("failed to create tracking table: %w", err)
	}

	r.logger.Info("Ensured standardization_log table exists")
	return nil
}

// RecordOperations batch inserts standardization operations into the
// tracking table in a single transaction
func (r *Recorder) RecordOperations(ctx context.Context, operations []model.StandardizationOperation) error {
	if len(operations) == 0 {
		return nil
	}

	txCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	// Begin transaction
	tx, err := r.db.BeginTxx(txCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				r.logger.Error("Failed to rollback transaction",
					zap.NamedError("rollback_error", rbErr),
					zap.Error(err))
			}
		}
	}()

	// Prepare statement
	stmt, err := tx.PreparexContext(txCtx, `
		INSERT INTO public.standardization_log
		(dataset_name, column_name, original_value, new_value, pattern_family, run_id)
		VALUES ($1, $2, $3, $4, $5, $6)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	// Execute batch insert
	for _, op := range operations {
		_, err = stmt.ExecContext(txCtx,
			op.DatasetName,
			op.ColumnName,
			op.OriginalValue,
			op.NewValue,
			op.PatternFamily,
			op.RunID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert standardization operation: %w", err)
		}
	}

	// Commit transaction
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.logger.Info("Recorded standardization operations", zap.Int("count", len(operations)))
	return nil
}
