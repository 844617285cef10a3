package model

import (
	"fmt"

	"github.com/cornerman/tabletetris/internal/lp"
)

// DefaultEpsilon is the uniform tie-breaking bonus added to every pair's
// objective coefficient. It nudges the solver toward enabling adjacencies
// when all preferences are neutral or negative; it must stay well below the
// smallest meaningful preference gap.
const DefaultEpsilon = 0.01

// buildBaseModel translates an n x n preference matrix into the base ILP:
//
//	maximize sum over i!=j of x_ij * (pref[i][j] + epsilon)
//	sum over j!=i of x_ij = 2          for every guest i
//	x_ij - x_ji = 0                    for every i < j
//	x_ij binary
//
// Its feasible region is the set of disjoint cycle covers of the guests; the
// cutting-plane loop narrows that down to single cycles. Pure function: it
// never mutates its inputs and may be called once per iteration.
func buildBaseModel(preferences [][]float64, epsilon float64, indexer Indexer) lp.Model {
	n := len(preferences)
	model := lp.Model{Direction: lp.Maximize}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			variable := indexer.Variable(i, j)
			model.Binaries = append(model.Binaries, variable)
			model.Objective = append(model.Objective, lp.Term{
				Variable:    variable,
				Coefficient: preferences[i][j] + epsilon,
			})
		}
	}

	// Exactly two neighbors per guest. Equality rather than <= 2: everyone
	// sits at the one table, so the solution must be a full cycle cover and
	// not a partial matching or a set of chains.
	for i := 0; i < n; i++ {
		terms := make([]lp.Term, 0, n-1)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			terms = append(terms, lp.Term{Variable: indexer.Variable(i, j), Coefficient: 1})
		}
		model.Constraints = append(model.Constraints, lp.Constraint{
			Name:  fmt.Sprintf("degree_%d", i),
			Terms: terms,
			Bound: lp.Equal(2),
		})
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			model.Constraints = append(model.Constraints, lp.Constraint{
				Name: fmt.Sprintf("sym_%d_%d", i, j),
				Terms: []lp.Term{
					{Variable: indexer.Variable(i, j), Coefficient: 1},
					{Variable: indexer.Variable(j, i), Coefficient: -1},
				},
				Bound: lp.Equal(0),
			})
		}
	}

	return model
}

// subtourCut builds the classical elimination constraint for an improper
// cycle: among the cycle's node set, at most len(cycle)-1 adjacency edges
// may remain, so that exact node set can never close into a loop again.
func subtourCut(cycle []int, iteration int, indexer Indexer) lp.Constraint {
	var terms []lp.Term
	for a := 0; a < len(cycle); a++ {
		for b := a + 1; b < len(cycle); b++ {
			terms = append(terms, lp.Term{Variable: indexer.Variable(cycle[a], cycle[b]), Coefficient: 1})
		}
	}
	return lp.Constraint{
		Name:  fmt.Sprintf("subtour_%d_%d", iteration, cycle[0]),
		Terms: terms,
		Bound: lp.AtMost(float64(len(cycle) - 1)),
	}
}
