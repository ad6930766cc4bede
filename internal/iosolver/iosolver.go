// Package iosolver implements the solver.Adapter boundary on top of the
// gophersat pseudo-boolean engine.
//
// The Model's numeric variables cannot be handed to a boolean engine
// directly. Each one is lowered to an exactly-one choice among its
// available upper bounds: the unconditional bound (a scan's default cost)
// and, per indicator constraint, the bound that becomes available when
// the guarding boolean is true. Linear constraints and objectives then
// substitute the weighted choice literals for the numeric variable. All
// fractional coefficients are scaled to integers by a fixed multiplier
// before reaching the engine.
package iosolver

import (
	"context"
	"time"

	gnsat "github.com/crillab/gophersat/solver"
	"github.com/ixsel/ixsel/pkg/solver"
)

// DefaultMultiplier preserves two decimal places of cost estimates.
const DefaultMultiplier = 100

// PBAdapter is a solver.Adapter backed by gophersat. The zero value is
// not usable; create instances with New.
type PBAdapter struct {
	multiplier int
}

// New creates a PBAdapter. multiplier scales fractional costs to
// integers; values < 1 fall back to DefaultMultiplier.
func New(multiplier int) *PBAdapter {
	if multiplier < 1 {
		multiplier = DefaultMultiplier
	}
	return &PBAdapter{multiplier: multiplier}
}

// Solve encodes the model plus per-run constraints as a pseudo-boolean
// problem, minimizes the objective within the budget, and maps the
// engine's answer to the four-way Outcome.
func (a *PBAdapter) Solve(
	ctx context.Context,
	m *solver.Model,
	extra []solver.Constraint,
	objective solver.LinearExpr,
	budget time.Duration,
) (solver.Outcome, error) {
	enc, err := newEncoding(m, extra, objective, a.multiplier)
	if err != nil {
		return solver.Outcome{}, err
	}

	// A model without booleans or constraints has nothing to search;
	// numeric variables settle at their unconditional bounds.
	if m.BoolCount() == 0 && len(enc.constrs) == 0 {
		asgn := enc.decode(nil)
		return solver.Outcome{
			Status:     solver.Optimal,
			Assignment: asgn,
			Value:      asgn.Value(objective),
		}, nil
	}

	pb := gnsat.ParsePBConstrs(enc.constrs)
	if len(enc.costLits) > 0 {
		pb.SetCostFunc(enc.costLits, enc.costWeights)
	}
	s := gnsat.New(pb)

	results := make(chan gnsat.Result)
	stop := make(chan struct{})
	solved := make(chan struct{})

	timer := time.NewTimer(budget)
	defer timer.Stop()
	go func() {
		select {
		case <-timer.C:
			close(stop)
		case <-ctx.Done():
			close(stop)
		case <-solved:
		}
	}()

	// Optimal streams every improving model; the last one is the best
	// found so far if the search is cut short.
	var best *gnsat.Result
	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for r := range results {
			r := r
			best = &r
		}
	}()

	final := s.Optimal(results, stop)
	close(solved)
	<-collected

	switch final.Status {
	case gnsat.Sat:
		asgn := enc.decode(final.Model)
		return solver.Outcome{
			Status:     solver.Optimal,
			Assignment: asgn,
			Value:      asgn.Value(objective),
		}, nil
	case gnsat.Unsat:
		return solver.Outcome{Status: solver.Infeasible}, nil
	default: // Indet: the budget ran out
		if best == nil {
			return solver.Outcome{Status: solver.Unknown}, nil
		}
		asgn := enc.decode(best.Model)
		return solver.Outcome{
			Status:     solver.Feasible,
			Assignment: asgn,
			Value:      asgn.Value(objective),
		}, nil
	}
}
