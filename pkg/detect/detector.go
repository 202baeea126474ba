// pkg/detect/detector.go
package detect

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dataprep-go/standardize/pkg/config"
	"github.com/dataprep-go/standardize/pkg/model"
)

// Detector runs the full inconsistency detection pipeline over one column:
// frequency counting, canonicalization-based grouping, the similarity
// fallback pass, and ranking. It holds no state across calls and is safe to
// invoke repeatedly.
type Detector struct {
	cfg    *config.EngineConfig
	logger *zap.Logger
}

// NewDetector creates a new Detector instance
func NewDetector(cfg *config.EngineConfig, logger *zap.Logger) (*Detector, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg == nil {
		cfg = config.DefaultEngineConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine configuration: %w", err)
	}

	return &Detector{
		cfg:    cfg,
		logger: logger,
	}, nil
}

// Analyze detects inconsistent value formats in one column and proposes a
// standardized replacement for each non-canonical variant. The values must
// already be trimmed and non-empty; the result is deterministic for a given
// input sequence.
func (d *Detector) Analyze(
	ctx context.Context,
	column string,
	values []string,
) (*model.AnalysisResult, error) {
	result := &model.AnalysisResult{
		RunID:     uuid.New().String(),
		Column:    column,
		StartTime: time.Now(),
	}

	freq, err := BuildFrequencyTable(column, values)
	if err != nil {
		return nil, err
	}

	grouping, flagged := d.groupingCandidates(column, freq)

	var similarity []model.InconsistencyCandidate
	if len(freq) > d.cfg.SimilarityMaxDistinct {
		warning := fmt.Sprintf(
			"similarity check skipped: %d distinct values exceed the ceiling of %d",
			len(freq), d.cfg.SimilarityMaxDistinct)
		result.AddWarning(warning)
		result.Stats.SimilaritySkipped = true

		d.logger.Warn("Dataset too large for similarity check",
			zap.String("column", column),
			zap.Int("distinct_values", len(freq)),
			zap.Int("ceiling", d.cfg.SimilarityMaxDistinct))
	} else {
		similarity, err = d.similarityCandidates(ctx, column, freq, flagged)
		if err != nil {
			return nil, err
		}
	}

	result.Candidates = rankCandidates(grouping, similarity)
	result.Stats.ValuesAnalyzed = freq.Total()
	result.Stats.DistinctValues = len(freq)
	result.Stats.GroupingCandidates = len(grouping)
	result.Stats.SimilarityCandidates = len(similarity)
	result.Complete()

	d.logger.Info("Column analysis complete",
		zap.String("run_id", result.RunID),
		zap.String("column", column),
		zap.Int("values_analyzed", result.Stats.ValuesAnalyzed),
		zap.Int("distinct_values", result.Stats.DistinctValues),
		zap.Int("candidates", len(result.Candidates)),
		zap.Duration("duration", result.Duration))

	return result, nil
}

// rankCandidates merges the two candidate sources, removes per-value
// duplicates with canonicalization-based entries taking precedence, and sorts
// descending by occurrence count with ties broken by ascending original value
func rankCandidates(
	grouping []model.InconsistencyCandidate,
	similarity []model.InconsistencyCandidate,
) []model.InconsistencyCandidate {
	seen := make(map[string]bool, len(grouping)+len(similarity))
	merged := make([]model.InconsistencyCandidate, 0, len(grouping)+len(similarity))

	for _, c := range grouping {
		if seen[c.OriginalValue] {
			continue
		}
		merged = append(merged, c)
		seen[c.OriginalValue] = true
	}
	for _, c := range similarity {
		if seen[c.OriginalValue] {
			continue
		}
		merged = append(merged, c)
		seen[c.OriginalValue] = true
	}

	sort.Slice(merged, func(i, j int) bool {
		if merged[i].OccurrenceCount != merged[j].OccurrenceCount {
			return merged[i].OccurrenceCount > merged[j].OccurrenceCount
		}
		return merged[i].OriginalValue < merged[j].OriginalValue
	})

	return merged
}
