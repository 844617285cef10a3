package lp

// Status is the outcome reported by a MIP backend for a solve call.
type Status int

const (
	StatusUndefined Status = iota
	StatusFeasible
	StatusInfeasible
	StatusNoFeasible
	StatusOptimal
	StatusUnbounded
)

func (s Status) String() string {
	switch s {
	case StatusFeasible:
		return "feasible"
	case StatusInfeasible:
		return "infeasible"
	case StatusNoFeasible:
		return "no feasible solution"
	case StatusOptimal:
		return "optimal"
	case StatusUnbounded:
		return "unbounded"
	default:
		return "undefined"
	}
}

// Solution carries the backend's status and, when Usable, a value per
// variable. Binary variables are expected to lie near 0 or 1 but are not
// rounded here; interpretation belongs to the caller.
type Solution struct {
	Status    Status
	Values    map[string]float64
	Objective float64
}

// Usable reports whether the solution contains a variable assignment worth
// interpreting.
func (s Solution) Usable() bool {
	return s.Status == StatusOptimal || s.Status == StatusFeasible
}

// Options are diagnostic/performance knobs shared by all backends. They have
// no effect on correctness.
type Options struct {
	Verbose  bool
	Presolve bool
}

// Solver abstracts an external MIP backend. Solve must be safe for
// concurrent use: each call owns its own temporary state.
type Solver interface {
	Solve(model Model) (Solution, error)
}
