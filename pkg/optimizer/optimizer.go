package optimizer

import (
	"context"
	"log/slog"
	"time"

	"github.com/ixsel/ixsel/pkg/solver"
	"github.com/ixsel/ixsel/pkg/workload"
)

// Optimizer drives the lexicographic multi-goal loop: one solve per goal
// in priority order, each completed goal turning into a permanent bound
// for the goals after it.
type Optimizer struct {
	adapter solver.Adapter
	budget  time.Duration
}

// New creates an Optimizer. budget is the wall-clock limit of each
// individual solve; the Optimizer keeps no timer of its own.
func New(adapter solver.Adapter, budget time.Duration) *Optimizer {
	return &Optimizer{adapter: adapter, budget: budget}
}

// GoalValue is one goal's achieved optimum.
type GoalValue struct {
	Name  workload.GoalName
	Value float64
}

// Result is the outcome of a complete lexicographic run.
type Result struct {
	// Assignment is the solution of the last goal's solve.
	Assignment solver.Assignment

	// Selected pairs with Problem.Indexes.
	Selected []bool

	// Achieved lists the per-goal optima in goal order.
	Achieved []GoalValue
}

// Optimize runs the goal sequence of the Plan's Problem.
//
// For goals g_1..g_n: minimize objective(g_k) under the Model's permanent
// constraints plus the bounds accumulated from goals 1..k-1. After each
// goal but the last, the bound objective(g_k) <= v_k·(1+tolerance_k) is
// appended; bounds are never removed or loosened. The accumulator is
// private to this call, so a shared Plan supports concurrent runs.
//
// An Infeasible or Unknown solve aborts the run with an error carrying
// the 1-based index of the failing goal.
func (o *Optimizer) Optimize(ctx context.Context, pl *Plan) (*Result, error) {
	goals := pl.Problem.Goals
	extra := make([]solver.Constraint, 0, len(goals))
	achieved := make([]GoalValue, 0, len(goals))
	var last solver.Outcome

	for k, g := range goals {
		obj := pl.Objective(g.Name)
		out, err := o.adapter.Solve(ctx, pl.Model, extra, obj, o.budget)
		if err != nil {
			return nil, err
		}

		switch out.Status {
		case solver.Infeasible:
			return nil, InfeasibleError(k+1, g.Name.String())
		case solver.Unknown:
			return nil, ResourceExhaustedError(k+1, g.Name.String())
		}

		slog.Debug("goal solved",
			"step", k+1,
			"goal", g.Name.String(),
			"status", out.Status.String(),
			"value", out.Value,
		)

		achieved = append(achieved, GoalValue{Name: g.Name, Value: out.Value})
		last = out

		if k < len(goals)-1 {
			extra = append(extra, solver.LE(obj, out.Value*(1+g.Tolerance)))
		}
	}

	return &Result{
		Assignment: last.Assignment,
		Selected:   pl.Selection(last.Assignment),
		Achieved:   achieved,
	}, nil
}
