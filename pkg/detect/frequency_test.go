// pkg/detect/frequency_test.go
package detect

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFrequencyTable(t *testing.T) {
	values := []string{"a", "b", "a", "c", "a", "b"}

	freq, err := BuildFrequencyTable("col", values)
	require.NoError(t, err)

	assert.Equal(t, 3, freq["a"])
	assert.Equal(t, 2, freq["b"])
	assert.Equal(t, 1, freq["c"])

	// Conservation: the counts sum to the number of cells analyzed
	assert.Equal(t, len(values), freq.Total())
}

func TestBuildFrequencyTableInsufficientData(t *testing.T) {
	tests := []struct {
		name     string
		values   []string
		distinct int
	}{
		{"empty column", nil, 0},
		{"single distinct value", []string{"same", "same", "same"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildFrequencyTable("col", tt.values)
			require.Error(t, err)

			var insufficient *InsufficientDataError
			require.True(t, errors.As(err, &insufficient))
			assert.Equal(t, "col", insufficient.Column)
			assert.Equal(t, tt.distinct, insufficient.DistinctValues)
		})
	}
}

func TestFrequencyTableSortedValues(t *testing.T) {
	freq, err := BuildFrequencyTable("col", []string{"b", "a", "c"})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, freq.SortedValues())
}
