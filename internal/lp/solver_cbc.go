package lp

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

const cbcPath = "cbc"

type cbcSolver struct {
	options Options
}

func NewCbcSolver(options Options) Solver {
	return &cbcSolver{options: options}
}

func (solver *cbcSolver) Solve(model Model) (Solution, error) {
	modelFile, err := os.CreateTemp("", "seating-*.lp")
	if err != nil {
		return Solution{}, fmt.Errorf("cannot create model file: %w", err)
	}
	defer os.Remove(modelFile.Name())

	if _, err := modelFile.WriteString(model.ToCPLEXLP()); err != nil {
		return Solution{}, fmt.Errorf("cannot write model file: %w", err)
	}
	modelFile.Close()

	solutionFile, err := os.CreateTemp("", "seating-*.sol")
	if err != nil {
		return Solution{}, fmt.Errorf("cannot create solution file: %w", err)
	}
	solutionFile.Close()
	defer os.Remove(solutionFile.Name())

	args := []string{modelFile.Name()}
	if !solver.options.Presolve {
		args = append(args, "-presolve", "off")
	}
	args = append(args, "solve", "solution", solutionFile.Name())
	cmd := exec.Command(cbcPath, args...)

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return Solution{}, fmt.Errorf("an error occurred during cbc execution: %v : %v", err.Error(), stderr.String())
	}
	if solver.options.Verbose {
		log.Printf("cbc output:\n%v", stdOut.String())
	}

	content, err := os.ReadFile(solutionFile.Name())
	if err != nil {
		return Solution{}, fmt.Errorf("cannot read cbc solution: %w", err)
	}

	return ParseCbcSolution(string(content))
}

// ParseCbcSolution extracts status and column values from the solution file
// written by cbc's "solution" command. The first line summarizes the result
// ("Optimal - objective value 46.06"); the remaining lines list one nonzero
// column each as "<index> <name> <value> <reduced cost>".
func ParseCbcSolution(content string) (Solution, error) {
	lines := strings.Split(strings.TrimSpace(content), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return Solution{}, fmt.Errorf("cbc wrote an empty solution file")
	}

	solution := Solution{Values: map[string]float64{}}
	summary := strings.TrimSpace(lines[0])
	switch {
	case strings.HasPrefix(summary, "Optimal"):
		solution.Status = StatusOptimal
	case strings.HasPrefix(summary, "Stopped") && strings.Contains(summary, "objective value"):
		solution.Status = StatusFeasible
	case strings.HasPrefix(summary, "Infeasible"):
		solution.Status = StatusInfeasible
	case strings.HasPrefix(summary, "Integer infeasible"):
		solution.Status = StatusNoFeasible
	case strings.HasPrefix(summary, "Unbounded"):
		solution.Status = StatusUnbounded
	default:
		solution.Status = StatusUndefined
	}
	if !solution.Usable() {
		return solution, nil
	}

	if fields := strings.Fields(summary); len(fields) >= 5 {
		if value, err := strconv.ParseFloat(fields[len(fields)-1], 64); err == nil {
			solution.Objective = value
		}
	}

	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		value, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return Solution{}, fmt.Errorf("invalid value in cbc solution line %q: %w", line, err)
		}
		solution.Values[fields[1]] = value
	}

	return solution, nil
}
