package model

import "errors"

var (
	// ErrDimension is returned when the preference matrix is missing, not
	// square, or inconsistent with the guest list.
	ErrDimension = errors.New("seating: invalid preference matrix dimensions")

	// ErrInfeasible is returned when the base model is rejected by the
	// solver before any cutting plane was added.
	ErrInfeasible = errors.New("seating: no feasible base arrangement")

	// ErrNoSingleCycle is returned when the solver rejects the model after
	// subtour cuts were added, proving no single-table arrangement exists.
	ErrNoSingleCycle = errors.New("seating: no single-cycle arrangement exists for these preferences")

	// ErrIterationBudget is returned when the cutting-plane loop does not
	// converge within its iteration budget. The true feasibility status is
	// unknown at that point.
	ErrIterationBudget = errors.New("seating: cutting-plane iteration budget exhausted")

	// ErrCorruptSolution flags a structural invariant violation in solver
	// output (non-binary value, asymmetry, wrong degree, broken cycle walk).
	// It indicates a defect in the model or the solver binding, never an
	// ordinary infeasibility.
	ErrCorruptSolution = errors.New("seating: solver returned a structurally invalid solution")
)
