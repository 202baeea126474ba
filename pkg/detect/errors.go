// pkg/detect/errors.go
package detect

import "fmt"

// InsufficientDataError reports a column that has nothing to analyze: zero
// non-empty values, or fewer than two distinct values. It signals "no
// inconsistencies detectable", not a crash condition, so callers should show
// a neutral message rather than an error banner.
type InsufficientDataError struct {
	Column         string
	DistinctValues int
}

func (e *InsufficientDataError) Error() string {
	if e.DistinctValues == 0 {
		return fmt.Sprintf("column %q has no non-empty values to analyze", e.Column)
	}
	return fmt.Sprintf("column %q has only %d distinct value(s); at least 2 are required",
		e.Column, e.DistinctValues)
}
