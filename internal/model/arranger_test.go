package model

import (
	"sync"
	"testing"

	"github.com/cornerman/tabletetris/internal/lp"

	"github.com/stretchr/testify/assert"
)

// scriptedSolver replays a fixed sequence of solutions, one per Solve call,
// regardless of the submitted model.
type scriptedSolver struct {
	mutex     sync.Mutex
	solutions []lp.Solution
	calls     int
}

func (solver *scriptedSolver) Solve(lp.Model) (lp.Solution, error) {
	solver.mutex.Lock()
	defer solver.mutex.Unlock()
	if solver.calls >= len(solver.solutions) {
		solver.calls++
		return solver.solutions[len(solver.solutions)-1], nil
	}
	solution := solver.solutions[solver.calls]
	solver.calls++
	return solution, nil
}

func TestArrangeTrivialSizes(t *testing.T) {
	// the scripted solver would blow up on any real solve; trivial sizes
	// must never reach it
	arranger := NewArranger(&scriptedSolver{})

	t.Run("no guests", func(t *testing.T) {
		arrangement, err := arranger.Arrange([][]float64{})

		assert.NoError(t, err)
		assert.Empty(t, arrangement.Order)
		assert.Empty(t, arrangement.Adjacency)
		assert.Zero(t, arrangement.TotalPreference)
		assert.True(t, arranger.Verify(arrangement, [][]float64{}))
	})

	t.Run("single guest", func(t *testing.T) {
		arrangement, err := arranger.Arrange([][]float64{{0}})

		assert.NoError(t, err)
		assert.Equal(t, []int{0}, arrangement.Order)
		assert.Equal(t, [][]int{{0}}, arrangement.Adjacency)
		assert.True(t, arranger.Verify(arrangement, [][]float64{{0}}))
	})

	t.Run("pair", func(t *testing.T) {
		preferences := [][]float64{{0, -7}, {3, 0}}

		arrangement, err := arranger.Arrange(preferences)

		assert.NoError(t, err)
		assert.Equal(t, []int{0, 1}, arrangement.Order)
		assert.Equal(t, [][]int{{0, 1}, {1, 0}}, arrangement.Adjacency)
		assert.Equal(t, -4.0, arrangement.TotalPreference)
		assert.True(t, arranger.Verify(arrangement, preferences))
	})
}

func TestArrangeRejectsBadDimensions(t *testing.T) {
	arranger := NewArranger(&scriptedSolver{})

	_, err := arranger.Arrange([][]float64{{0, 1, 2}, {1, 0}, {2, 3, 0}})

	assert.ErrorIs(t, err, ErrDimension)
}

// Scenario A: 4 guests with a known optimum, checked against brute-force
// enumeration of the three distinct 4-cycles.
func TestArrangeFourGuestsIsOptimal(t *testing.T) {
	preferences := [][]float64{
		{0, 10, 0, 5},
		{10, 0, 1, 0},
		{0, 1, 0, 8},
		{5, 0, 8, 0},
	}
	weight := func(order []int) float64 {
		total := 0.0
		for position, guest := range order {
			neighbor := order[(position+1)%len(order)]
			total += preferences[guest][neighbor] + preferences[neighbor][guest]
		}
		return total
	}
	best := weight([]int{0, 1, 2, 3})
	for _, order := range [][]int{{0, 1, 3, 2}, {0, 2, 1, 3}} {
		if candidate := weight(order); candidate > best {
			best = candidate
		}
	}

	arranger := NewArranger(lp.NewExhaustiveSolver())
	arrangement, err := arranger.Arrange(preferences)

	assert.NoError(t, err)
	assert.Equal(t, best, arrangement.TotalPreference)
	assert.Equal(t, arrangement.TotalPreference, weight(arrangement.Order))
	assert.True(t, arranger.Verify(arrangement, preferences))
}

// Scenario B: all-neutral preferences still have to produce one full cycle,
// driven purely by the epsilon bonus.
func TestArrangeNeutralPreferences(t *testing.T) {
	preferences := make([][]float64, 5)
	for i := range preferences {
		preferences[i] = make([]float64, 5)
	}

	arranger := NewArranger(lp.NewExhaustiveSolver())
	arrangement, err := arranger.Arrange(preferences)

	assert.NoError(t, err)
	assert.Len(t, arrangement.Order, 5)
	assert.Zero(t, arrangement.TotalPreference)
	assert.True(t, arranger.Verify(arrangement, preferences))

	cycles, err := subtours(arrangement.Adjacency)
	assert.NoError(t, err)
	assert.Len(t, cycles, 1)
	assert.Len(t, cycles[0], 5)
}

// Scenario C: three guests admit exactly one cycle topology.
func TestArrangeThreeGuests(t *testing.T) {
	preferences := [][]float64{
		{0, -100, 2},
		{7, 0, -3},
		{0, 42, 0},
	}

	arranger := NewArranger(lp.NewExhaustiveSolver())
	arrangement, err := arranger.Arrange(preferences)

	assert.NoError(t, err)
	assert.Equal(t, 1, arrangement.Iterations)
	assert.Equal(t, [][]int{{0, 1, 1}, {1, 0, 1}, {1, 1, 0}}, arrangement.Adjacency)
	assert.True(t, arranger.Verify(arrangement, preferences))
}

// Scenario D: two tight triangles make the first solve split into two
// subtours; the cuts must merge them within the budget.
func TestArrangeBreaksSubtours(t *testing.T) {
	preferences := clannishParty()

	arranger := NewArranger(lp.NewExhaustiveSolver())
	arrangement, err := arranger.Arrange(preferences)

	assert.NoError(t, err)
	assert.Greater(t, arrangement.Iterations, 1)
	assert.True(t, arranger.Verify(arrangement, preferences))

	cycles, err := subtours(arrangement.Adjacency)
	assert.NoError(t, err)
	assert.Len(t, cycles, 1)
	assert.Len(t, cycles[0], 6)
}

// clannishParty returns 6 guests forming two mutually devoted triangles
// {0,1,2} and {3,4,5} with no interest across the aisle.
func clannishParty() [][]float64 {
	preferences := make([][]float64, 6)
	for i := range preferences {
		preferences[i] = make([]float64, 6)
		for j := range preferences[i] {
			if i != j && i/3 == j/3 {
				preferences[i][j] = 50
			}
		}
	}
	return preferences
}

func TestArrangeIsDeterministic(t *testing.T) {
	preferences := [][]float64{
		{0, 10, 0, 5},
		{10, 0, 1, 0},
		{0, 1, 0, 8},
		{5, 0, 8, 0},
	}
	arranger := NewArranger(lp.NewExhaustiveSolver())

	first, err := arranger.Arrange(preferences)
	assert.NoError(t, err)
	second, err := arranger.Arrange(preferences)
	assert.NoError(t, err)

	assert.Equal(t, first.Adjacency, second.Adjacency)
	assert.Equal(t, first.Order, second.Order)
}

func TestArrangeInfeasibleFirstIteration(t *testing.T) {
	solver := &scriptedSolver{solutions: []lp.Solution{{Status: lp.StatusInfeasible}}}
	arranger := NewArranger(solver)

	_, err := arranger.Arrange(clannishParty())

	assert.ErrorIs(t, err, ErrInfeasible)
	assert.NotErrorIs(t, err, ErrNoSingleCycle)
	assert.Equal(t, 1, solver.calls)
}

func TestArrangeInfeasibleAfterCuts(t *testing.T) {
	indexer := NewIndexer()
	split := solutionFor(ring(6, []int{0, 1, 2}, []int{3, 4, 5}), indexer)
	solver := &scriptedSolver{solutions: []lp.Solution{split, {Status: lp.StatusNoFeasible}}}
	arranger := NewArranger(solver)

	_, err := arranger.Arrange(clannishParty())

	assert.ErrorIs(t, err, ErrNoSingleCycle)
	assert.NotErrorIs(t, err, ErrInfeasible)
	assert.Equal(t, 2, solver.calls)
}

func TestArrangeIterationBudget(t *testing.T) {
	// a solver stuck on the same split solution never converges; the loop
	// must stop after 2n rounds
	indexer := NewIndexer()
	split := solutionFor(ring(6, []int{0, 1, 2}, []int{3, 4, 5}), indexer)
	solver := &scriptedSolver{solutions: []lp.Solution{split}}
	arranger := NewArranger(solver)

	_, err := arranger.Arrange(clannishParty())

	assert.ErrorIs(t, err, ErrIterationBudget)
	assert.Equal(t, 12, solver.calls)
}

func TestArrangeCustomIterationBudget(t *testing.T) {
	indexer := NewIndexer()
	split := solutionFor(ring(6, []int{0, 1, 2}, []int{3, 4, 5}), indexer)
	solver := &scriptedSolver{solutions: []lp.Solution{split}}
	arranger := NewCuttingPlaneArranger(solver, DefaultEpsilon, 3)

	_, err := arranger.Arrange(clannishParty())

	assert.ErrorIs(t, err, ErrIterationBudget)
	assert.Equal(t, 3, solver.calls)
}

func TestArrangeCorruptSolverOutput(t *testing.T) {
	indexer := NewIndexer()
	corrupt := solutionFor(ring(6, []int{0, 1, 2, 3, 4, 5}), indexer)
	corrupt.Values[indexer.Variable(0, 1)] = 0.5
	arranger := NewArranger(&scriptedSolver{solutions: []lp.Solution{corrupt}})

	_, err := arranger.Arrange(clannishParty())

	assert.ErrorIs(t, err, ErrCorruptSolution)
}

func TestVerifyRejectsTampering(t *testing.T) {
	preferences := clannishParty()
	arranger := NewArranger(lp.NewExhaustiveSolver())
	arrangement, err := arranger.Arrange(preferences)
	assert.NoError(t, err)

	assert.False(t, arranger.Verify(nil, preferences))

	tampered := *arrangement
	tampered.TotalPreference++
	assert.False(t, arranger.Verify(&tampered, preferences))

	tampered = *arrangement
	tampered.Order = append([]int{}, arrangement.Order...)
	tampered.Order[0], tampered.Order[1] = tampered.Order[1], tampered.Order[0]
	assert.False(t, arranger.Verify(&tampered, preferences))

	tampered = *arrangement
	tampered.Order = arrangement.Order[:5]
	assert.False(t, arranger.Verify(&tampered, preferences))
}
