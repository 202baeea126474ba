// pkg/apply/apply.go
package apply

import (
	"fmt"

	"github.com/dataprep-go/standardize/pkg/model"
)

// ColumnNotFoundError reports that the target column is absent from the
// dataset schema
type ColumnNotFoundError struct {
	Column  string
	Dataset string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column %q not found in dataset %q", e.Column, e.Dataset)
}

// Replacements produces a new dataset with the target column's values
// rewritten per the operator-approved replacement map. Cells whose
// stringified value is not a key in the map are left as they are, and the
// input dataset is never mutated: the rows slice is new, and any row that
// needs a substitution is copied before modification.
func Replacements(
	dataset *model.Dataset,
	column string,
	replacements model.ReplacementMap,
) (*model.Dataset, error) {
	if dataset == nil {
		return nil, fmt.Errorf("dataset cannot be nil")
	}

	if !dataset.HasColumn(column) {
		return nil, &ColumnNotFoundError{Column: column, Dataset: dataset.Name}
	}

	transformed := &model.Dataset{
		Name:    dataset.Name,
		Columns: dataset.Columns,
		Rows:    make([]model.Row, len(dataset.Rows)),
	}

	for i, row := range dataset.Rows {
		cell, ok := row[column]
		if !ok || cell == nil {
			transformed.Rows[i] = row
			continue
		}

		standardized, ok := replacements[model.CellString(cell)]
		if !ok {
			transformed.Rows[i] = row
			continue
		}

		// Copy the row before substituting so the caller's dataset is untouched
		copied := make(model.Row, len(row))
		for k, v := range row {
			copied[k] = v
		}
		copied[column] = standardized
		transformed.Rows[i] = copied
	}

	return transformed, nil
}
