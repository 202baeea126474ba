// pkg/model/standardization.go
package model

import (
	"time"
)

// StandardizationOperation represents a single applied replacement
type StandardizationOperation struct {
	DatasetName   string    // Source dataset (table or file name)
	ColumnName    string    // Column that was standardized
	OriginalValue string    // Value before replacement
	NewValue      string    // Value after replacement
	PatternFamily string    // Family that proposed the replacement
	RunID         string    // Analysis run the replacement came from
	AppliedAt     time.Time // When the replacement was applied (set by database)
}

// OperationsForReplacements builds audit records for an approved replacement
// map, annotating each with the family recorded on the matching candidate.
func OperationsForReplacements(
	dataset *Dataset,
	column string,
	replacements ReplacementMap,
	candidates []InconsistencyCandidate,
	runID string,
) []StandardizationOperation {
	ops := make([]StandardizationOperation, 0, len(replacements))
	for _, c := range candidates {
		newValue, ok := replacements[c.OriginalValue]
		if !ok {
			continue
		}
		ops = append(ops, StandardizationOperation{
			DatasetName:   dataset.Name,
			ColumnName:    column,
			OriginalValue: c.OriginalValue,
			NewValue:      newValue,
			PatternFamily: c.PatternFamily,
			RunID:         runID,
		})
	}

	return ops
}
