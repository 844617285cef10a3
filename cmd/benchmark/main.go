package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"slices"
	"time"

	"github.com/cornerman/tabletetris/pkg/seating"

	"github.com/samber/lo"
)

const (
	minGuests = 4
	maxGuests = 12
	rounds    = 5
)

var solvers = map[string]func() seating.Solver{
	"glpsol": func() seating.Solver { return seating.NewGlpsolSolver(seating.Options{Presolve: true}) },
	"cbc":    func() seating.Solver { return seating.NewCbcSolver(seating.Options{Presolve: true}) },
}

// generatePreferences builds a random party: integer scores in [-5, 10)
// with a zero diagonal, deliberately asymmetric.
func generatePreferences(n int, rng *rand.Rand) [][]float64 {
	preferences := make([][]float64, n)
	for i := range preferences {
		preferences[i] = make([]float64, n)
		for j := range preferences[i] {
			if i != j {
				preferences[i][j] = float64(rng.IntN(15) - 5)
			}
		}
	}
	return preferences
}

func main() {
	rng := rand.New(rand.NewPCG(42, 0))
	records := [][]string{{"solver", "guests", "round", "milliseconds", "iterations", "preference"}}

	names := lo.Keys(solvers)
	slices.Sort(names)

	for _, name := range names {
		for n := minGuests; n <= maxGuests; n++ {
			for round := range rounds {
				preferences := generatePreferences(n, rng)
				arranger := seating.New(solvers[name]())

				start := time.Now()
				arrangement, err := arranger.Arrange(preferences)
				elapsed := time.Since(start)
				if err != nil {
					log.Fatalf("%v failed on %v guests: %v", name, n, err)
				}

				records = append(records, []string{
					name,
					fmt.Sprint(n),
					fmt.Sprint(round),
					fmt.Sprint(elapsed.Milliseconds()),
					fmt.Sprint(arrangement.Iterations),
					fmt.Sprint(arrangement.TotalPreference),
				})
				log.Printf("%v: %v guests, round %v: %v (%v iterations)", name, n, round, elapsed, arrangement.Iterations)
			}
		}
	}

	writer := csv.NewWriter(os.Stdout)
	if err := writer.WriteAll(records); err != nil {
		log.Fatalf("cannot write results: %v", err)
	}
}
