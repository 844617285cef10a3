package model

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	t.Run("square matrix passes", func(t *testing.T) {
		input := SeatingInput{Preferences: [][]float64{{0, 1, 2}, {1, 0, 3}, {2, 3, 0}}}

		assert.NoError(t, input.Validate())
	})

	t.Run("empty matrix passes", func(t *testing.T) {
		assert.NoError(t, SeatingInput{}.Validate())
	})

	t.Run("ragged matrix fails", func(t *testing.T) {
		input := SeatingInput{Preferences: [][]float64{{0, 1, 2}, {1, 0}, {2, 3, 0}}}

		assert.ErrorIs(t, input.Validate(), ErrDimension)
	})

	t.Run("non-square matrix fails", func(t *testing.T) {
		input := SeatingInput{Preferences: [][]float64{{0, 1}, {1, 0}, {2, 3}}}

		assert.ErrorIs(t, input.Validate(), ErrDimension)
	})

	t.Run("guest list mismatch fails", func(t *testing.T) {
		input := SeatingInput{
			Guests:      []string{"Ada", "Ben"},
			Preferences: [][]float64{{0, 1, 2}, {1, 0, 3}, {2, 3, 0}},
		}

		assert.ErrorIs(t, input.Validate(), ErrDimension)
	})
}

func TestInputFromJson(t *testing.T) {
	file := path.Join(t.TempDir(), "party.json")
	content := `{
		"guests": ["Ada", "Ben", "Chloe"],
		"preferences": [[0, 5, -1], [5, 0, 2], [-1, 2, 0]],
		"metadata": {"table": "round", "occasion": "wedding"}
	}`
	assert.NoError(t, os.WriteFile(file, []byte(content), 0644))

	input, err := InputFromJson(file)

	assert.NoError(t, err)
	assert.Equal(t, []string{"Ada", "Ben", "Chloe"}, input.Guests)
	assert.Equal(t, [][]float64{{0, 5, -1}, {5, 0, 2}, {-1, 2, 0}}, input.Preferences)
	assert.Equal(t, "round", input.Metadata.Table)
}

func TestInputFromJsonRejectsRaggedMatrix(t *testing.T) {
	file := path.Join(t.TempDir(), "party.json")
	content := `{"preferences": [[0, 5], [5, 0, 2], [-1, 2, 0]]}`
	assert.NoError(t, os.WriteFile(file, []byte(content), 0644))

	_, err := InputFromJson(file)

	assert.ErrorIs(t, err, ErrDimension)
}

func TestInputFromJsonMissingFile(t *testing.T) {
	_, err := InputFromJson(path.Join(t.TempDir(), "nope.json"))

	assert.Error(t, err)
}
