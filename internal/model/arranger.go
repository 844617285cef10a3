package model

import "github.com/cornerman/tabletetris/internal/lp"

// Arrangement is a finished single-table seating: the guests in clockwise
// order starting at guest 0, the adjacency matrix behind it, the preference
// weight collected along the table and the number of cutting-plane rounds
// it took to converge.
type Arrangement struct {
	Order           []int
	Adjacency       [][]int
	TotalPreference float64
	Iterations      int
}

type Arranger interface {
	Arrange(preferences [][]float64) (*Arrangement, error)

	Verify(arrangement *Arrangement, preferences [][]float64) bool
}

func NewArranger(solver lp.Solver) Arranger {
	return newCuttingPlaneArranger(solver, DefaultEpsilon, 0)
}

// NewCuttingPlaneArranger exposes the tuning knobs: epsilon is the uniform
// tie-breaking bonus (see DefaultEpsilon), maxIterations caps the
// cutting-plane loop (0 means the default of 2n rounds).
func NewCuttingPlaneArranger(solver lp.Solver, epsilon float64, maxIterations int) Arranger {
	return newCuttingPlaneArranger(solver, epsilon, maxIterations)
}
