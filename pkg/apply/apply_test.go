// pkg/apply/apply_test.go
package apply

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataprep-go/standardize/pkg/model"
)

func testDataset() *model.Dataset {
	return &model.Dataset{
		Name:    "contacts",
		Columns: []string{"id", "phone"},
		Rows: []model.Row{
			{"id": 1, "phone": "(555) 123 4567"},
			{"id": 2, "phone": "5551234567"},
			{"id": 3, "phone": "(555) 123-4567"},
			{"id": 4, "phone": nil},
			{"id": 5},
		},
	}
}

func TestReplacements(t *testing.T) {
	dataset := testDataset()
	replacements := model.ReplacementMap{
		"(555) 123 4567": "(555) 123-4567",
		"5551234567":     "(555) 123-4567",
	}

	transformed, err := Replacements(dataset, "phone", replacements)
	require.NoError(t, err)

	require.Len(t, transformed.Rows, len(dataset.Rows))
	assert.Equal(t, "(555) 123-4567", transformed.Rows[0]["phone"])
	assert.Equal(t, "(555) 123-4567", transformed.Rows[1]["phone"])

	// Cells not named in the map, nil cells, and missing cells are untouched
	assert.Equal(t, "(555) 123-4567", transformed.Rows[2]["phone"])
	assert.Nil(t, transformed.Rows[3]["phone"])
	_, ok := transformed.Rows[4]["phone"]
	assert.False(t, ok)

	// Other columns survive on rewritten rows
	assert.Equal(t, 1, transformed.Rows[0]["id"])
}

func TestReplacementsDoesNotMutateInput(t *testing.T) {
	dataset := testDataset()
	replacements := model.ReplacementMap{"(555) 123 4567": "(555) 123-4567"}

	_, err := Replacements(dataset, "phone", replacements)
	require.NoError(t, err)

	assert.Equal(t, "(555) 123 4567", dataset.Rows[0]["phone"])
	assert.Equal(t, "5551234567", dataset.Rows[1]["phone"])
}

func TestReplacementsColumnNotFound(t *testing.T) {
	dataset := testDataset()

	_, err := Replacements(dataset, "email", model.ReplacementMap{})
	require.Error(t, err)

	var notFound *ColumnNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "email", notFound.Column)
	assert.Equal(t, "contacts", notFound.Dataset)
}

func TestReplacementsNilDataset(t *testing.T) {
	_, err := Replacements(nil, "phone", model.ReplacementMap{})
	assert.Error(t, err)
}

// A dataset without a declared schema still resolves the column by scanning
// rows
func TestReplacementsUndeclaredSchema(t *testing.T) {
	dataset := &model.Dataset{
		Name: "inline",
		Rows: []model.Row{
			{"status": "YES"},
			{"status": "no"},
		},
	}

	transformed, err := Replacements(dataset, "status", model.ReplacementMap{
		"YES": "true",
		"no":  "false",
	})
	require.NoError(t, err)

	assert.Equal(t, "true", transformed.Rows[0]["status"])
	assert.Equal(t, "false", transformed.Rows[1]["status"])
}

// Non-string cells are matched through their string representation
func TestReplacementsNonStringCells(t *testing.T) {
	dataset := &model.Dataset{
		Name:    "flags",
		Columns: []string{"active"},
		Rows: []model.Row{
			{"active": []byte("YES")},
			{"active": 0},
		},
	}

	transformed, err := Replacements(dataset, "active", model.ReplacementMap{
		"YES": "true",
		"0":   "false",
	})
	require.NoError(t, err)

	assert.Equal(t, "true", transformed.Rows[0]["active"])
	assert.Equal(t, "false", transformed.Rows[1]["active"])
}
