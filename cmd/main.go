package main

import (
	"fmt"
	"log"

	"github.com/cornerman/tabletetris/pkg/seating"
)

// A party engineered so that the first degree-2 solve splits into two
// subtours: Ada/Ben and Chloe/Dan strongly want each other while everyone
// else is lukewarm, so the cutting-plane loop has real work to do.
var (
	guests      = []string{"Ada", "Ben", "Chloe", "Dan", "Eve", "Felix"}
	preferences = [][]float64{
		{0, 9, 0, 0, 1, 1},
		{9, 0, 0, 0, 1, 0},
		{0, 0, 0, 9, 0, 1},
		{0, 0, 9, 0, 1, 0},
		{1, 1, 0, 1, 0, 2},
		{1, 0, 1, 0, 2, 0},
	}
)

func main() {
	solver := seating.NewExhaustiveSolver()
	// solver := seating.NewGlpsolSolver(seating.Options{Presolve: true})
	// solver := seating.NewCbcSolver(seating.Options{Presolve: true})
	arranger := seating.New(solver)

	arrangement, err := arranger.Arrange(preferences)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Seating (total preference %v, %v iterations):\n", arrangement.TotalPreference, arrangement.Iterations)
	for seat, guest := range arrangement.Order {
		fmt.Printf("Seat %v: %v\n", seat, guests[guest])
	}

	if !arranger.Verify(arrangement, preferences) {
		log.Fatal("Verification failed")
	}
}
