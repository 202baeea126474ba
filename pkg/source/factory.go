// pkg/source/factory.go
package source

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dataprep-go/standardize/pkg/config"
)

// Factory creates dataset sources
type Factory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewFactory creates a new dataset source factory
func NewFactory(cfg *config.Config, logger *zap.Logger) *Factory {
	return &Factory{
		cfg:    cfg,
		logger: logger,
	}
}

// Create builds the dataset source selected by the configuration
func (f *Factory) Create(ctx context.Context) (DatasetSource, error) {
	switch f.cfg.SourceDriver {
	case "postgres":
		f.logger.Info("Creating PostgreSQL dataset source")
		src, err := NewPostgresSource(ctx, f.cfg.Postgres)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL source: %w", err)
		}
		return src, nil
	case "snowflake":
		f.logger.Info("Creating Snowflake dataset source")
		src, err := NewSnowflakeSource(ctx, f.cfg.Snowflake)
		if err != nil {
			return nil, fmt.Errorf("failed to create Snowflake source: %w", err)
		}
		return src, nil
	default:
		return nil, fmt.Errorf("unknown source driver: %s", f.cfg.SourceDriver)
	}
}
