package model

import (
	"fmt"

	"github.com/cornerman/tabletetris/internal/lp"

	"github.com/samber/lo"
)

type cuttingPlaneArranger struct {
	//** Dependencies
	solver  lp.Solver
	indexer Indexer

	epsilon       float64
	maxIterations int // 0 means 2n, the defensive default
}

func newCuttingPlaneArranger(solver lp.Solver, epsilon float64, maxIterations int) *cuttingPlaneArranger {
	return &cuttingPlaneArranger{
		solver:        solver,
		indexer:       NewIndexer(),
		epsilon:       epsilon,
		maxIterations: maxIterations,
	}
}

// Arrange runs the cutting-plane loop: solve the base degree-2 model, trace
// the cycles of the resulting adjacency matrix, and keep forbidding every
// improper cycle's node set until a single cycle spans all guests.
//
// All loop state (the accumulated cuts, the intermediate matrices) is local
// to the call, so one arranger may serve concurrent Arrange requests.
func (arranger *cuttingPlaneArranger) Arrange(preferences [][]float64) (*Arrangement, error) {
	if err := (SeatingInput{Preferences: preferences}).Validate(); err != nil {
		return nil, err
	}

	n := len(preferences)
	if n <= 2 {
		return trivialArrangement(n, preferences), nil
	}

	base := buildBaseModel(preferences, arranger.epsilon, arranger.indexer)
	budget := arranger.maxIterations
	if budget <= 0 {
		// Empirically each round eliminates at least one subtour pattern,
		// so 2n rounds is generous. It is a safety valve, not a proven
		// convergence bound.
		budget = 2 * n
	}

	var cuts []lp.Constraint
	for iteration := 1; iteration <= budget; iteration++ {
		combined := base
		combined.Constraints = append(base.Constraints[:len(base.Constraints):len(base.Constraints)], cuts...)

		solution, err := arranger.solver.Solve(combined)
		if err != nil {
			return nil, fmt.Errorf("solver failure on iteration %d: %w", iteration, err)
		}
		if !solution.Usable() {
			if len(cuts) == 0 {
				return nil, fmt.Errorf("%w: solver status %v", ErrInfeasible, solution.Status)
			}
			return nil, fmt.Errorf("%w: solver status %v after %d cuts", ErrNoSingleCycle, solution.Status, len(cuts))
		}

		adjacency, err := interpretAdjacency(solution, n, arranger.indexer)
		if err != nil {
			return nil, err
		}

		cycles, err := subtours(adjacency)
		if err != nil {
			return nil, err
		}

		if len(cycles) == 1 && len(cycles[0]) == n {
			order, err := seatingOrder(adjacency)
			if err != nil {
				return nil, err
			}
			return &Arrangement{
				Order:           order,
				Adjacency:       adjacency,
				TotalPreference: totalPreference(adjacency, preferences),
				Iterations:      iteration,
			}, nil
		}

		progressed := false
		for _, cycle := range cycles {
			if len(cycle) < n {
				cuts = append(cuts, subtourCut(cycle, iteration, arranger.indexer))
				progressed = true
			}
		}
		if !progressed {
			// Multiple cycles yet none shorter than n cannot happen; bail
			// out instead of re-solving the same model forever.
			return nil, fmt.Errorf("%w: %d cycles but no eligible cut", ErrCorruptSolution, len(cycles))
		}
	}

	return nil, fmt.Errorf("%w: no single cycle within %d iterations", ErrIterationBudget, budget)
}

// Verify re-derives the arrangement's structure from scratch: adjacency
// invariants, a single spanning cycle, and an order consistent with the
// matrix. Mirrors Arrange's postconditions without trusting its internals.
func (arranger *cuttingPlaneArranger) Verify(arrangement *Arrangement, preferences [][]float64) bool {
	if arrangement == nil {
		return false
	}
	n := len(preferences)
	if len(arrangement.Order) != n || len(arrangement.Adjacency) != n {
		return false
	}
	if n == 0 {
		return true
	}
	if arrangement.Order[0] != 0 {
		return false
	}

	guests := lo.Uniq(arrangement.Order)
	if len(guests) != n || lo.Max(guests) != n-1 || lo.Min(guests) != 0 {
		return false
	}

	if n <= 2 {
		return n == 1 || arrangement.Adjacency[0][1] == 1 && arrangement.Adjacency[1][0] == 1
	}

	for i := 0; i < n; i++ {
		if len(arrangement.Adjacency[i]) != n {
			return false
		}
	}
	for i := 0; i < n; i++ {
		if arrangement.Adjacency[i][i] != 0 {
			return false
		}
		degree := 0
		for j := 0; j < n; j++ {
			if arrangement.Adjacency[i][j] != arrangement.Adjacency[j][i] {
				return false
			}
			degree += arrangement.Adjacency[i][j]
		}
		if degree != 2 {
			return false
		}
	}

	// consecutive guests around the table (wraparound included) must be
	// adjacent; with degree 2 everywhere this also proves a single cycle
	for position, guest := range arrangement.Order {
		neighbor := arrangement.Order[(position+1)%n]
		if arrangement.Adjacency[guest][neighbor] != 1 {
			return false
		}
	}

	return arrangement.TotalPreference == totalPreference(arrangement.Adjacency, preferences)
}

func trivialArrangement(n int, preferences [][]float64) *Arrangement {
	arrangement := &Arrangement{Order: make([]int, n), Adjacency: make([][]int, n)}
	for i := 0; i < n; i++ {
		arrangement.Order[i] = i
		arrangement.Adjacency[i] = make([]int, n)
	}
	if n == 2 {
		arrangement.Adjacency[0][1] = 1
		arrangement.Adjacency[1][0] = 1
		arrangement.TotalPreference = preferences[0][1] + preferences[1][0]
	}
	return arrangement
}

// totalPreference sums pref[i][j] over all ordered adjacent pairs, without
// the epsilon bonus the objective carries.
func totalPreference(adjacency [][]int, preferences [][]float64) float64 {
	total := 0.0
	for i := range adjacency {
		for j := range adjacency[i] {
			if adjacency[i][j] == 1 {
				total += preferences[i][j]
			}
		}
	}
	return total
}
