// pkg/model/candidate.go
package model

import (
	"time"
)

// InconsistencyCandidate proposes a standardized replacement for one
// non-canonical value observed in a column
type InconsistencyCandidate struct {
	Column            string // Column the value was observed in
	OriginalValue     string // Raw value as it appears in the data
	OccurrenceCount   int    // How many cells hold the original value
	StandardizedValue string // Proposed replacement (always differs from original)
	PatternFamily     string // Family that produced the proposal, or "Similar Format"
}

// ReplacementMap is the operator-approved subset of candidates to apply,
// mapping original value to standardized value. Owned by the caller.
type ReplacementMap map[string]string

// AnalysisStats summarizes one detection run for host dashboards
type AnalysisStats struct {
	ValuesAnalyzed       int  // Non-empty cells in the column
	DistinctValues       int  // Distinct non-empty values
	GroupingCandidates   int  // Candidates from canonicalization buckets
	SimilarityCandidates int  // Candidates from the edit-distance pass
	SimilaritySkipped    bool // True when the pairwise pass was skipped for size
}

// AnalysisResult is the output of one detection run over a single column
type AnalysisResult struct {
	RunID      string                   // Unique identifier for this run
	Column     string                   // Column analyzed
	Candidates []InconsistencyCandidate // Ordered by occurrence count desc, value asc
	Stats      AnalysisStats
	Warnings   []string // Non-fatal conditions (e.g. similarity pass skipped)
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
}

// Complete marks the analysis as finished and calculates duration
func (r *AnalysisResult) Complete() {
	r.EndTime = time.Now()
	r.Duration = r.EndTime.Sub(r.StartTime)
}

// AddWarning adds a non-fatal warning to the result
func (r *AnalysisResult) AddWarning(warning string) {
	r.Warnings = append(r.Warnings, warning)
}
