package model

import "fmt"

// subtours decomposes a degree-2 adjacency matrix into its disjoint simple
// cycles. Starting from each unvisited guest it follows the boundary: step
// to whichever of the two neighbors is not the guest just arrived from,
// until the walk closes. Each guest has exactly two neighbors, so the walk
// is O(n) overall with no recursion and no backtracking.
//
// Degenerate components are still cycles: an isolated guest is a 1-cycle
// and a mutually adjacent pair is a 2-cycle. Any other guest with a degree
// different from 2 aborts the traversal; upstream validation should have
// caught it, and walking on would loop forever.
func subtours(adjacency [][]int) ([][]int, error) {
	n := len(adjacency)
	visited := make([]bool, n)
	var cycles [][]int

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}

		neighbors := neighborsOf(adjacency, start)
		switch len(neighbors) {
		case 0:
			visited[start] = true
			cycles = append(cycles, []int{start})
			continue
		case 1:
			partner := neighbors[0]
			if partners := neighborsOf(adjacency, partner); len(partners) == 1 && partners[0] == start {
				visited[start], visited[partner] = true, true
				cycles = append(cycles, []int{start, partner})
				continue
			}
			return nil, fmt.Errorf("%w: guest %d has degree 1 during cycle tracing", ErrCorruptSolution, start)
		case 2:
			// regular walk below
		default:
			return nil, fmt.Errorf("%w: guest %d has degree %d during cycle tracing", ErrCorruptSolution, start, len(neighbors))
		}

		cycle := []int{}
		previous := -1
		current := start
		for {
			visited[current] = true
			cycle = append(cycle, current)

			next, err := forward(adjacency, current, previous)
			if err != nil {
				return nil, err
			}
			previous, current = current, next
			if current == start {
				break
			}
			if visited[current] {
				return nil, fmt.Errorf("%w: cycle trace from guest %d revisited guest %d", ErrCorruptSolution, start, current)
			}
		}
		cycles = append(cycles, cycle)
	}

	return cycles, nil
}

func neighborsOf(adjacency [][]int, i int) []int {
	var neighbors []int
	for j, adjacent := range adjacency[i] {
		if adjacent == 1 {
			neighbors = append(neighbors, j)
		}
	}
	return neighbors
}

// forward returns the neighbor of current that is not previous.
func forward(adjacency [][]int, current, previous int) (int, error) {
	neighbors := neighborsOf(adjacency, current)
	if len(neighbors) != 2 {
		return 0, fmt.Errorf("%w: guest %d has degree %d during cycle tracing", ErrCorruptSolution, current, len(neighbors))
	}
	if neighbors[0] == previous {
		return neighbors[1], nil
	}
	return neighbors[0], nil
}
