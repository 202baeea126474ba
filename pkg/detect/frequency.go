// pkg/detect/frequency.go
package detect

import "sort"

// FrequencyTable maps each distinct non-empty column value to its occurrence
// count. The sum of all counts equals the number of non-empty cells analyzed.
type FrequencyTable map[string]int

// BuildFrequencyTable tabulates occurrence counts for a column's raw values.
// The values must already be trimmed and non-empty. Returns
// InsufficientDataError when the sequence is empty or holds fewer than two
// distinct values.
func BuildFrequencyTable(column string, values []string) (FrequencyTable, error) {
	freq := make(FrequencyTable, len(values))
	for _, v := range values {
		freq[v]++
	}

	if len(freq) < 2 {
		return nil, &InsufficientDataError{
			Column:         column,
			DistinctValues: len(freq),
		}
	}

	return freq, nil
}

// Total returns the number of cells the table was built from
func (ft FrequencyTable) Total() int {
	total := 0
	for _, count := range ft {
		total += count
	}
	return total
}

// SortedValues returns the distinct values in ascending lexicographic order,
// giving passes over the table a deterministic iteration order.
func (ft FrequencyTable) SortedValues() []string {
	values := make([]string, 0, len(ft))
	for v := range ft {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
