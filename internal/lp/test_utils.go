package lp

import (
	"fmt"
	"math"
)

// MaxExhaustiveVariables caps the search space of the exhaustive solver.
const MaxExhaustiveVariables = 42

type exhaustiveSolver struct{}

// NewExhaustiveSolver returns a deterministic exact backend that enumerates
// binary assignments depth-first with partial-sum pruning. It exists so that
// tests (and tiny instances) do not depend on an installed MIP binary; it is
// far too slow for anything beyond a handful of variables without tightly
// pruning constraints.
func NewExhaustiveSolver() Solver {
	return &exhaustiveSolver{}
}

type constraintState struct {
	bound Bound
	// coefficient per variable index, zero when the variable does not occur
	coefficients []float64
	assigned     float64
	positiveLeft float64
	negativeLeft float64
}

func (state *constraintState) violatedForever() bool {
	switch state.bound.Kind {
	case BoundEqual:
		return state.assigned+state.positiveLeft < state.bound.Value ||
			state.assigned+state.negativeLeft > state.bound.Value
	case BoundAtMost:
		return state.assigned+state.negativeLeft > state.bound.Value
	case BoundAtLeast:
		return state.assigned+state.positiveLeft < state.bound.Value
	}
	return false
}

func (solver *exhaustiveSolver) Solve(model Model) (Solution, error) {
	if len(model.Binaries) > MaxExhaustiveVariables {
		return Solution{}, fmt.Errorf("exhaustive solver cannot handle %d binary variables", len(model.Binaries))
	}

	index := make(map[string]int, len(model.Binaries))
	for i, variable := range model.Binaries {
		index[variable] = i
	}

	objective := make([]float64, len(model.Binaries))
	for _, term := range model.Objective {
		position, ok := index[term.Variable]
		if !ok {
			return Solution{}, fmt.Errorf("objective references unknown variable %q", term.Variable)
		}
		objective[position] += term.Coefficient
	}

	states := make([]*constraintState, len(model.Constraints))
	for i, constraint := range model.Constraints {
		state := &constraintState{
			bound:        constraint.Bound,
			coefficients: make([]float64, len(model.Binaries)),
		}
		for _, term := range constraint.Terms {
			position, ok := index[term.Variable]
			if !ok {
				return Solution{}, fmt.Errorf("constraint %q references unknown variable %q", constraint.Name, term.Variable)
			}
			state.coefficients[position] += term.Coefficient
		}
		for _, coefficient := range state.coefficients {
			if coefficient > 0 {
				state.positiveLeft += coefficient
			} else {
				state.negativeLeft += coefficient
			}
		}
		states[i] = state
	}

	assignment := make([]float64, len(model.Binaries))
	best := make([]float64, len(model.Binaries))
	bestValue := math.Inf(-1)
	if model.Direction == Minimize {
		bestValue = math.Inf(1)
	}
	found := false

	var search func(position int, value float64)
	search = func(position int, value float64) {
		for _, state := range states {
			if state.violatedForever() {
				return
			}
		}
		if position == len(assignment) {
			better := value > bestValue
			if model.Direction == Minimize {
				better = value < bestValue
			}
			if better {
				bestValue = value
				copy(best, assignment)
				found = true
			}
			return
		}

		for _, bit := range []float64{1, 0} {
			assignment[position] = bit
			for _, state := range states {
				coefficient := state.coefficients[position]
				state.assigned += coefficient * bit
				if coefficient > 0 {
					state.positiveLeft -= coefficient
				} else {
					state.negativeLeft -= coefficient
				}
			}

			search(position+1, value+objective[position]*bit)

			for _, state := range states {
				coefficient := state.coefficients[position]
				state.assigned -= coefficient * bit
				if coefficient > 0 {
					state.positiveLeft += coefficient
				} else {
					state.negativeLeft += coefficient
				}
			}
		}
	}
	search(0, 0)

	if !found {
		return Solution{Status: StatusNoFeasible}, nil
	}

	solution := Solution{
		Status:    StatusOptimal,
		Values:    make(map[string]float64, len(model.Binaries)),
		Objective: bestValue,
	}
	for i, variable := range model.Binaries {
		solution.Values[variable] = best[i]
	}
	return solution, nil
}

// AssertSolution reports whether every constraint of the model holds for the
// given variable assignment, up to a small numeric tolerance.
func AssertSolution(model Model, solution Solution) bool {
	const tolerance = 1e-6
	for _, constraint := range model.Constraints {
		total := 0.0
		for _, term := range constraint.Terms {
			total += term.Coefficient * solution.Values[term.Variable]
		}
		switch constraint.Bound.Kind {
		case BoundEqual:
			if math.Abs(total-constraint.Bound.Value) > tolerance {
				return false
			}
		case BoundAtMost:
			if total > constraint.Bound.Value+tolerance {
				return false
			}
		case BoundAtLeast:
			if total < constraint.Bound.Value-tolerance {
				return false
			}
		}
	}
	return true
}
