package lp

import (
	"fmt"
	"strings"
)

// Direction of the objective function.
type Direction int

const (
	Maximize Direction = iota
	Minimize
)

// BoundKind discriminates the three supported row bounds: a fixed equality
// or a one-sided inequality.
type BoundKind int

const (
	BoundEqual BoundKind = iota
	BoundAtMost
	BoundAtLeast
)

// Term is a single (variable, coefficient) entry of a linear expression.
type Term struct {
	Variable    string
	Coefficient float64
}

// Bound restricts the value of a constraint's linear expression.
type Bound struct {
	Kind  BoundKind
	Value float64
}

func Equal(v float64) Bound   { return Bound{Kind: BoundEqual, Value: v} }
func AtMost(v float64) Bound  { return Bound{Kind: BoundAtMost, Value: v} }
func AtLeast(v float64) Bound { return Bound{Kind: BoundAtLeast, Value: v} }

// Constraint is a named linear constraint: Terms <op> Bound.Value.
type Constraint struct {
	Name  string
	Terms []Term
	Bound Bound
}

// Model is an integer-programming instance: an objective, a list of linear
// constraints and the set of variables restricted to {0, 1}.
type Model struct {
	Direction   Direction
	Objective   []Term
	Constraints []Constraint
	Binaries    []string
}

// ToCPLEXLP serializes the model into the CPLEX LP text format understood by
// glpsol, cbc and most other MIP solvers.
func (m Model) ToCPLEXLP() string {
	var builder strings.Builder

	if m.Direction == Maximize {
		builder.WriteString("Maximize\n obj:")
	} else {
		builder.WriteString("Minimize\n obj:")
	}
	writeExpression(&builder, m.Objective)
	builder.WriteString("\nSubject To\n")

	for i, constraint := range m.Constraints {
		name := constraint.Name
		if name == "" {
			name = fmt.Sprintf("c%d", i)
		}
		fmt.Fprintf(&builder, " %s:", name)
		writeExpression(&builder, constraint.Terms)
		switch constraint.Bound.Kind {
		case BoundEqual:
			fmt.Fprintf(&builder, " = %v\n", constraint.Bound.Value)
		case BoundAtMost:
			fmt.Fprintf(&builder, " <= %v\n", constraint.Bound.Value)
		case BoundAtLeast:
			fmt.Fprintf(&builder, " >= %v\n", constraint.Bound.Value)
		}
	}

	if len(m.Binaries) > 0 {
		builder.WriteString("Binary\n")
		for _, variable := range m.Binaries {
			fmt.Fprintf(&builder, " %s\n", variable)
		}
	}
	builder.WriteString("End\n")

	return builder.String()
}

func writeExpression(builder *strings.Builder, terms []Term) {
	for _, term := range terms {
		if term.Coefficient < 0 {
			fmt.Fprintf(builder, " - %v %s", -term.Coefficient, term.Variable)
		} else {
			fmt.Fprintf(builder, " + %v %s", term.Coefficient, term.Variable)
		}
	}
}
