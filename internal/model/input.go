package model

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

type Metadata struct {
	Table    string
	Occasion string
}

// SeatingInput is the external representation of a solve request: one
// preference score per ordered guest pair. Preferences[i][j] is how much
// guest i wants to sit next to guest j (0 neutral, positive wants, negative
// avoids); the matrix need not be symmetric and its diagonal is unused.
type SeatingInput struct {
	Guests      []string
	Preferences [][]float64
	Metadata    Metadata
}

// Validate rejects dimension problems before any solver is contacted.
func (input SeatingInput) Validate() error {
	n := len(input.Preferences)
	for i, row := range input.Preferences {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d entries, expected %d", ErrDimension, i, len(row), n)
		}
	}
	if len(input.Guests) > 0 && len(input.Guests) != n {
		return fmt.Errorf("%w: %d guests but a %dx%d preference matrix", ErrDimension, len(input.Guests), n, n)
	}
	return nil
}

func InputFromJson(file string) (SeatingInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return SeatingInput{}, err
	}
	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return SeatingInput{}, err
	}

	var input SeatingInput
	if err := mapstructure.Decode(inputJson, &input); err != nil {
		return SeatingInput{}, err
	}

	return input, input.Validate()
}
