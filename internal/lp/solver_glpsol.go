package lp

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

const glpsolPath = "glpsol"

type glpsolSolver struct {
	options Options
}

func NewGlpsolSolver(options Options) Solver {
	return &glpsolSolver{options: options}
}

func (solver *glpsolSolver) Solve(model Model) (Solution, error) {
	modelFile, err := os.CreateTemp("", "seating-*.lp")
	if err != nil {
		return Solution{}, fmt.Errorf("cannot create model file: %w", err)
	}
	defer os.Remove(modelFile.Name())

	if _, err := modelFile.WriteString(model.ToCPLEXLP()); err != nil {
		return Solution{}, fmt.Errorf("cannot write model file: %w", err)
	}
	modelFile.Close()

	reportFile, err := os.CreateTemp("", "seating-*.sol")
	if err != nil {
		return Solution{}, fmt.Errorf("cannot create report file: %w", err)
	}
	reportFile.Close()
	defer os.Remove(reportFile.Name())

	args := []string{"--lp", modelFile.Name(), "--output", reportFile.Name()}
	if solver.options.Presolve {
		args = append(args, "--presol")
	} else {
		args = append(args, "--nopresol")
	}
	cmd := exec.Command(glpsolPath, args...)

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	// glpsol reports infeasibility through the solution report, not through
	// its exit code, so any non-zero exit is a genuine execution failure.
	if err := cmd.Run(); err != nil {
		return Solution{}, fmt.Errorf("an error occurred during glpsol execution: %v : %v", err.Error(), stderr.String())
	}
	if solver.options.Verbose {
		log.Printf("glpsol output:\n%v", stdOut.String())
	}

	report, err := os.ReadFile(reportFile.Name())
	if err != nil {
		return Solution{}, fmt.Errorf("cannot read glpsol report: %w", err)
	}

	return ParseGlpsolReport(string(report))
}

// ParseGlpsolReport extracts status and column activities from the
// plain-text solution report written by glpsol's --output flag.
func ParseGlpsolReport(report string) (Solution, error) {
	lines := strings.Split(report, "\n")

	statusLine, ok := lo.Find(lines, func(line string) bool { return strings.HasPrefix(line, "Status:") })
	if !ok {
		return Solution{}, fmt.Errorf("glpsol report contains no status line")
	}

	solution := Solution{Values: map[string]float64{}}
	switch status := strings.TrimSpace(strings.TrimPrefix(statusLine, "Status:")); status {
	case "INTEGER OPTIMAL", "OPTIMAL":
		solution.Status = StatusOptimal
	case "INTEGER NON-OPTIMAL", "FEASIBLE":
		solution.Status = StatusFeasible
	case "INTEGER EMPTY", "INFEASIBLE (FINAL)":
		solution.Status = StatusNoFeasible
	case "INFEASIBLE":
		solution.Status = StatusInfeasible
	case "UNBOUNDED":
		solution.Status = StatusUnbounded
	default:
		solution.Status = StatusUndefined
	}
	if !solution.Usable() {
		return solution, nil
	}

	if objectiveLine, ok := lo.Find(lines, func(line string) bool { return strings.HasPrefix(line, "Objective:") }); ok {
		fields := strings.Fields(objectiveLine)
		// "Objective:  obj = <value> (MAXimum)"
		if len(fields) >= 4 {
			if value, err := strconv.ParseFloat(fields[3], 64); err == nil {
				solution.Objective = value
			}
		}
	}

	columnSection := false
	for _, line := range lines {
		if strings.Contains(line, "Column name") {
			columnSection = true
			continue
		}
		if !columnSection || strings.HasPrefix(line, "------") {
			continue
		}
		if strings.TrimSpace(line) == "" {
			if len(solution.Values) > 0 {
				break
			}
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		name := fields[1]
		activityField := fields[2]
		if activityField == "*" { // integer columns carry a status marker
			if len(fields) < 4 {
				continue
			}
			activityField = fields[3]
		}
		activity, err := strconv.ParseFloat(activityField, 64)
		if err != nil {
			return Solution{}, fmt.Errorf("invalid activity in glpsol report line %q: %w", line, err)
		}
		solution.Values[name] = activity
	}

	return solution, nil
}
