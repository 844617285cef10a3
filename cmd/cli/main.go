package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/cornerman/tabletetris/pkg/seating"
)

var (
	validSolvers = []string{"glpsol", "cbc", "exhaustive"}
	solvers      = map[string]func(seating.Options) seating.Solver{
		"glpsol":     seating.NewGlpsolSolver,
		"cbc":        seating.NewCbcSolver,
		"exhaustive": func(seating.Options) seating.Solver { return seating.NewExhaustiveSolver() },
	}
)

func main() {
	// Define arguments
	solverPtr := flag.String("solver", "glpsol", "MIP solver to use. Allowed values are: \"glpsol\", \"cbc\" and \"exhaustive\", where \"glpsol\" is the default")
	filePathPtr := flag.String("file", "", "Path to the input file (JSON with \"guests\" and \"preferences\")")
	outFilePathPtr := flag.String("out", "", "Path to the file where the output will be written; if empty, it'll be written into the Standard Output")
	epsilonPtr := flag.Float64("epsilon", 0.01, "Uniform tie-breaking bonus added to every pair's objective coefficient")
	iterationsPtr := flag.Int("iterations", 0, "Cutting-plane iteration budget; 0 means twice the number of guests")
	verbosePtr := flag.Bool("verbose", false, "Log raw solver output")
	flag.Parse()
	solverStr := strings.ToLower(*solverPtr)
	filePath := *filePathPtr
	outFile := *outFilePathPtr

	// Validate arguments
	if !slices.Contains(validSolvers, solverStr) {
		log.Fatalf("%v is not a valid solver", solverStr)
	} else if filePath == "" {
		log.Fatal("an input file must be specified")
	} else if *epsilonPtr <= 0 {
		log.Fatalf("epsilon must be positive: %v", *epsilonPtr)
	} else if *iterationsPtr < 0 {
		log.Fatalf("the iteration budget cannot be negative: %v", *iterationsPtr)
	}

	input, err := seating.InputFromJson(filePath)
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}

	solver := solvers[solverStr](seating.Options{Verbose: *verbosePtr, Presolve: true})
	arranger := seating.NewWithLimits(solver, *epsilonPtr, *iterationsPtr)

	arrangement, err := arranger.Arrange(input.Preferences)
	if err != nil {
		log.Fatal(err)
	}
	if !arranger.Verify(arrangement, input.Preferences) {
		log.Fatal("Verification failed")
	}

	names := make([]string, len(arrangement.Order))
	for seat, guest := range arrangement.Order {
		names[seat] = fmt.Sprintf("%v", guest)
		if len(input.Guests) > 0 {
			names[seat] = input.Guests[guest]
		}
	}

	if outFile == "" {
		fmt.Printf("Total preference: %v (%v iterations)\n", arrangement.TotalPreference, arrangement.Iterations)
		for seat, name := range names {
			fmt.Printf("Seat %v: %v\n", seat, name)
		}
		return
	}

	output, err := json.MarshalIndent(map[string]any{
		"order":           arrangement.Order,
		"seats":           names,
		"totalPreference": arrangement.TotalPreference,
		"iterations":      arrangement.Iterations,
	}, "", "  ")
	if err != nil {
		log.Fatalf("cannot serialize output: %v", err)
	}
	if err := os.WriteFile(outFile, output, 0644); err != nil {
		log.Fatalf("cannot write output file: %v", err)
	}
}
