package solver

import (
	"context"
	"time"
)

// Status is the four-way answer of one solve call.
type Status int

const (
	// Optimal means the returned assignment is proven cost-minimal.
	Optimal Status = iota

	// Feasible means the budget ran out; the returned assignment is the
	// best found but optimality is unproven.
	Feasible

	// Infeasible means no assignment satisfies the constraints.
	Infeasible

	// Unknown means the budget ran out before any feasible assignment
	// was found; infeasibility is unproven.
	Unknown
)

func (s Status) String() string {
	switch s {
	case Optimal:
		return "Optimal"
	case Feasible:
		return "Feasible"
	case Infeasible:
		return "Infeasible"
	}
	return "Unknown"
}

// Assignment holds values for every variable of a Model. Bools is indexed
// by BoolVar-1, Nums by NumVar.
type Assignment struct {
	Bools []bool
	Nums  []float64
}

// Bool returns the value of a boolean variable.
func (a Assignment) Bool(v BoolVar) bool { return a.Bools[int(v)-1] }

// Num returns the value of a numeric variable.
func (a Assignment) Num(v NumVar) float64 { return a.Nums[int(v)] }

// Value evaluates a linear expression under the assignment.
func (a Assignment) Value(e LinearExpr) float64 {
	var res float64
	for _, t := range e.Bools {
		if a.Bool(t.Var) {
			res += t.Coeff
		}
	}
	for _, t := range e.Nums {
		res += t.Coeff * a.Num(t.Var)
	}
	return res
}

// Outcome is the result of one solve. Assignment and Value are meaningful
// only for Optimal and Feasible statuses.
type Outcome struct {
	Status     Status
	Assignment Assignment
	Value      float64
}

// Adapter is the narrow contract ixsel requires from a solving engine:
// submit a model, extra per-run constraints, one linear objective to
// minimize and a wall-clock budget; receive one of four outcomes.
//
// The returned error reports translation or engine failures, never
// infeasibility - that is an Outcome. Implementations must be safe for
// concurrent use with distinct calls sharing one frozen Model.
type Adapter interface {
	Solve(
		ctx context.Context,
		m *Model,
		extra []Constraint,
		objective LinearExpr,
		budget time.Duration,
	) (Outcome, error)
}
