package optimizer

import (
	"github.com/ixsel/ixsel/pkg/solver"
	"github.com/ixsel/ixsel/pkg/workload"
)

// Objective maps a goal name to its linear expression over the Plan's
// variables:
//
//   - MinimizeTotalCost: Σ scanCost over all scans
//   - MinimizeIndexCount: Σ selected over Possible indexes only
//   - MinimizeIWO: Σ selected·writeOverhead over all indexes
func (pl *Plan) Objective(name workload.GoalName) solver.LinearExpr {
	var e solver.LinearExpr
	switch name {
	case workload.MinimizeTotalCost:
		for _, v := range pl.scanCost {
			e.AddNum(v, 1)
		}
	case workload.MinimizeIndexCount:
		for i, idx := range pl.Problem.Indexes {
			if idx.Kind == workload.Possible {
				e.AddBool(pl.selected[i], 1)
			}
		}
	case workload.MinimizeIWO:
		for i, idx := range pl.Problem.Indexes {
			if idx.WriteOverhead != 0 {
				e.AddBool(pl.selected[i], idx.WriteOverhead)
			}
		}
	}
	return e
}
