package model

import (
	"fmt"
	"math"

	"github.com/cornerman/tabletetris/internal/lp"
)

// interpretAdjacency turns raw solver output into a validated adjacency
// matrix. Values are rounded to the nearest of 0 and 1; everything else is
// checked, not repaired: asymmetry, a nonzero diagonal or a row degree other
// than 2 means the model or the solver binding is broken and surfaces as
// ErrCorruptSolution.
func interpretAdjacency(solution lp.Solution, n int, indexer Indexer) ([][]int, error) {
	adjacency := make([][]int, n)
	for i := range adjacency {
		adjacency[i] = make([]int, n)
	}

	for name, value := range solution.Values {
		i, j, err := indexer.Pair(name)
		if err != nil {
			continue // solvers may report auxiliary columns
		}
		if i < 0 || j < 0 || i >= n || j >= n {
			return nil, fmt.Errorf("%w: variable %v addresses guest outside 0..%d", ErrCorruptSolution, name, n-1)
		}

		rounded := int(math.Round(value))
		if rounded != 0 && rounded != 1 || math.Abs(value-float64(rounded)) > 0.4 {
			return nil, fmt.Errorf("%w: variable %v has non-binary value %v", ErrCorruptSolution, name, value)
		}
		adjacency[i][j] = rounded
	}

	for i := 0; i < n; i++ {
		if adjacency[i][i] != 0 {
			return nil, fmt.Errorf("%w: guest %d is adjacent to itself", ErrCorruptSolution, i)
		}
		degree := 0
		for j := 0; j < n; j++ {
			if adjacency[i][j] != adjacency[j][i] {
				return nil, fmt.Errorf("%w: adjacency of guests %d and %d is asymmetric", ErrCorruptSolution, i, j)
			}
			degree += adjacency[i][j]
		}
		if degree != 2 {
			return nil, fmt.Errorf("%w: guest %d has %d neighbors instead of 2", ErrCorruptSolution, i, degree)
		}
	}

	return adjacency, nil
}
