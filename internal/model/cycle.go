package model

import "fmt"

// seatingOrder walks the final single cycle starting at guest 0 and returns
// the seats in visit order. The walk must return to guest 0 after exactly n
// steps having seen n distinct guests; anything else means the single-cycle
// precondition was violated upstream.
func seatingOrder(adjacency [][]int) ([]int, error) {
	n := len(adjacency)
	if n == 0 {
		return []int{}, nil
	}
	if n == 1 {
		return []int{0}, nil
	}
	if n == 2 {
		if adjacency[0][1] != 1 || adjacency[1][0] != 1 {
			return nil, fmt.Errorf("%w: two guests must be mutually adjacent", ErrCorruptSolution)
		}
		return []int{0, 1}, nil
	}

	order := make([]int, 0, n)
	seen := make([]bool, n)
	previous := -1
	current := 0
	for step := 0; step < n; step++ {
		if seen[current] {
			return nil, fmt.Errorf("%w: seating walk visited guest %d twice", ErrCorruptSolution, current)
		}
		seen[current] = true
		order = append(order, current)

		next, err := forward(adjacency, current, previous)
		if err != nil {
			return nil, err
		}
		previous, current = current, next
	}
	if current != 0 {
		return nil, fmt.Errorf("%w: seating walk ended at guest %d instead of returning to guest 0", ErrCorruptSolution, current)
	}

	return order, nil
}
