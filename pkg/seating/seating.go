// Package seating computes an optimal circular seating order for one table
// from pairwise preference scores. The problem is modeled as a
// degree-constrained subgraph ILP and solved through an external MIP backend
// with iterative subtour elimination.
package seating

import (
	"github.com/cornerman/tabletetris/internal/lp"
	"github.com/cornerman/tabletetris/internal/model"
)

type (
	Arrangement = model.Arrangement
	Arranger    = model.Arranger
	Input       = model.SeatingInput
	Solver      = lp.Solver
	Options     = lp.Options
)

var (
	ErrDimension       = model.ErrDimension
	ErrInfeasible      = model.ErrInfeasible
	ErrNoSingleCycle   = model.ErrNoSingleCycle
	ErrIterationBudget = model.ErrIterationBudget
	ErrCorruptSolution = model.ErrCorruptSolution
)

func New(solver Solver) Arranger {
	return model.NewArranger(solver)
}

// NewWithLimits exposes the epsilon tie-breaker and the cutting-plane
// iteration budget (0 keeps the 2n default).
func NewWithLimits(solver Solver, epsilon float64, maxIterations int) Arranger {
	return model.NewCuttingPlaneArranger(solver, epsilon, maxIterations)
}

// Arrange is the one-shot convenience entrypoint.
func Arrange(preferences [][]float64, solver Solver) (*Arrangement, error) {
	return New(solver).Arrange(preferences)
}

func InputFromJson(file string) (Input, error) {
	return model.InputFromJson(file)
}

func NewGlpsolSolver(options Options) Solver { return lp.NewGlpsolSolver(options) }

func NewCbcSolver(options Options) Solver { return lp.NewCbcSolver(options) }

// NewExhaustiveSolver is exact and dependency-free but only viable for
// small parties; see internal/lp for its limits.
func NewExhaustiveSolver() Solver { return lp.NewExhaustiveSolver() }
