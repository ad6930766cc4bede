// Package optimizer contains ixsel's core: turning a workload Problem
// into solver variables and constraints, and driving the lexicographic
// multi-goal optimization loop over a solver.Adapter.
package optimizer

import (
	"maps"
	"slices"

	"github.com/ixsel/ixsel/pkg/solver"
	"github.com/ixsel/ixsel/pkg/workload"
)

// Plan couples a Problem with its solver Model and the variable handles
// needed to form objectives and read solutions. Once built it is frozen;
// concurrent Optimize calls may share it.
type Plan struct {
	Problem *workload.Problem
	Model   *solver.Model

	// selected[i] pairs with Problem.Indexes[i].
	selected []solver.BoolVar
	// scanCost[j] pairs with Problem.Scans[j].
	scanCost []solver.NumVar
	// indexPos maps index ID to its position in Problem.Indexes.
	indexPos map[string]int
}

// Build validates the Problem and constructs its Model.
//
// For every index a boolean selection variable is created. For every scan
// a numeric cost variable with domain [0, DefaultCost] is created,
// bounded unconditionally by the scan's default cost and conditionally,
// per coverage entry, by the covering index's cost when that index is
// selected. Nothing pins the variable to a single value: downward
// pressure comes from whichever goal currently minimizes it, and
// reporting recomputes exact per-scan costs from the final selection (see
// stats.go).
//
// Rule constraints are added once and never relaxed.
func Build(p *workload.Problem) (*Plan, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	m := solver.NewModel()
	pl := &Plan{
		Problem:  p,
		Model:    m,
		selected: make([]solver.BoolVar, len(p.Indexes)),
		scanCost: make([]solver.NumVar, len(p.Scans)),
		indexPos: make(map[string]int, len(p.Indexes)),
	}

	for i, idx := range p.Indexes {
		pl.selected[i] = m.NewBool()
		pl.indexPos[idx.ID] = i
	}

	for j, s := range p.Scans {
		v := m.NewNum(s.DefaultCost)
		pl.scanCost[j] = v
		m.AddConstraint(solver.UpperBound(v, s.DefaultCost))

		// Sorted for a reproducible constraint order.
		for _, indexID := range slices.Sorted(maps.Keys(s.Coverage)) {
			b := pl.selected[pl.indexPos[indexID]]
			m.AddConstraint(solver.Implies(b, v, s.Coverage[indexID]))
		}
	}

	if limit := p.Rules.MaxPossibleIndexes; limit != nil {
		var e solver.LinearExpr
		for i, idx := range p.Indexes {
			if idx.Kind == workload.Possible {
				e.AddBool(pl.selected[i], 1)
			}
		}
		m.AddConstraint(solver.LE(e, float64(*limit)))
	}

	if limit := p.Rules.MaxIWO; limit != nil {
		var e solver.LinearExpr
		for i, idx := range p.Indexes {
			e.AddBool(pl.selected[i], idx.WriteOverhead)
		}
		m.AddConstraint(solver.LE(e, *limit))
	}

	return pl, nil
}

// SelectedVar returns the selection variable of Problem.Indexes[i].
func (pl *Plan) SelectedVar(i int) solver.BoolVar { return pl.selected[i] }

// ScanCostVar returns the cost variable of Problem.Scans[j].
func (pl *Plan) ScanCostVar(j int) solver.NumVar { return pl.scanCost[j] }

// Selection extracts the chosen index set from an assignment; the result
// pairs with Problem.Indexes.
func (pl *Plan) Selection(a solver.Assignment) []bool {
	res := make([]bool, len(pl.selected))
	for i, v := range pl.selected {
		res[i] = a.Bool(v)
	}
	return res
}
