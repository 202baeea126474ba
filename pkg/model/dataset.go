// pkg/model/dataset.go
package model

import (
	"fmt"
	"strings"
)

// Row represents a single dataset record, mapping column name to cell value.
// Cell values may be strings, numbers, booleans, or nil for missing cells.
type Row map[string]interface{}

// Dataset is an in-memory tabular dataset as handed over by an ingestion
// collaborator (CSV upload, warehouse query, etc.)
type Dataset struct {
	Name    string   // Source identifier (table name, file name)
	Columns []string // Column names in display order (may be empty if unknown)
	Rows    []Row    // Records
}

// HasColumn reports whether the dataset contains the named column, either in
// the declared column list or in any row.
func (d *Dataset) HasColumn(name string) bool {
	for _, col := range d.Columns {
		if col == name {
			return true
		}
	}

	// Fall back to scanning rows when the schema wasn't declared
	if len(d.Columns) == 0 {
		for _, row := range d.Rows {
			if _, ok := row[name]; ok {
				return true
			}
		}
	}

	return false
}

// ColumnValues extracts the raw string values for one column, trimmed, with
// missing/null/empty cells excluded. The result preserves row order.
func (d *Dataset) ColumnValues(name string) []string {
	values := make([]string, 0, len(d.Rows))

	for _, row := range d.Rows {
		cell, ok := row[name]
		if !ok || cell == nil {
			continue
		}

		value := strings.TrimSpace(CellString(cell))
		if value == "" {
			continue
		}

		values = append(values, value)
	}

	return values
}

// CellString converts a cell value to its string representation
func CellString(v interface{}) string {
	if v == nil {
		return ""
	}

	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	default:
		// Use Sprint as a fallback
		return fmt.Sprintf("%v", val)
	}
}
