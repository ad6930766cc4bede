package optimizer

import (
	"github.com/ixsel/ixsel/pkg/workload"
)

// This file recomputes reporting values from the final selected-index set
// with pure functions. Solver scan-cost variables are deliberately only
// upper-bounded, so once total cost stops being the active objective their
// values may sit above the true achievable minimum; everything reported to
// users is derived here from the selection instead.

// CostOfScan returns the realized cost of a scan under a selection: the
// cheapest coverage offered by any selected index, or the scan's default
// cost when no selected index improves on it.
func CostOfScan(p *workload.Problem, selected []bool, s workload.Scan) float64 {
	res := s.DefaultCost
	for i, idx := range p.Indexes {
		if !selected[i] {
			continue
		}
		if c, ok := s.Coverage[idx.ID]; ok && c < res {
			res = c
		}
	}
	return res
}

// BestCoveredBy returns the ID of the selected index that yields the
// scan's realized cost. ok is false when no selected index beats the
// default cost, i.e. the scan is uncovered.
func BestCoveredBy(
	p *workload.Problem, selected []bool, s workload.Scan,
) (string, bool) {
	best := s.DefaultCost
	var id string
	var ok bool
	for i, idx := range p.Indexes {
		if !selected[i] {
			continue
		}
		if c, covers := s.Coverage[idx.ID]; covers && c < best {
			best = c
			id = idx.ID
			ok = true
		}
	}
	return id, ok
}

// TotalCost returns the combined realized cost of all scans.
func TotalCost(p *workload.Problem, selected []bool) float64 {
	var res float64
	for _, s := range p.Scans {
		res += CostOfScan(p, selected, s)
	}
	return res
}

// MaximumCost returns the highest realized cost among all scans.
func MaximumCost(p *workload.Problem, selected []bool) float64 {
	var res float64
	for _, s := range p.Scans {
		if c := CostOfScan(p, selected, s); c > res {
			res = c
		}
	}
	return res
}

// TotalIWO returns the summed write overhead of the selected indexes of
// the given kinds (pass both kinds for the overall total).
func TotalIWO(
	p *workload.Problem, selected []bool, kinds ...workload.IndexKind,
) float64 {
	var res float64
	for i, idx := range p.Indexes {
		if selected[i] && kindIn(idx.Kind, kinds) {
			res += idx.WriteOverhead
		}
	}
	return res
}

// CountSelected returns how many indexes of the given kinds are selected.
func CountSelected(
	p *workload.Problem, selected []bool, kinds ...workload.IndexKind,
) int {
	var res int
	for i, idx := range p.Indexes {
		if selected[i] && kindIn(idx.Kind, kinds) {
			res++
		}
	}
	return res
}

// ComputeObjective returns the real value a goal attains under a
// selection, independent of any solver assignment.
func ComputeObjective(
	p *workload.Problem, selected []bool, name workload.GoalName,
) float64 {
	switch name {
	case workload.MinimizeTotalCost:
		return TotalCost(p, selected)
	case workload.MinimizeIndexCount:
		return float64(CountSelected(p, selected, workload.Possible))
	case workload.MinimizeIWO:
		return TotalIWO(p, selected, workload.Existing, workload.Possible)
	}
	return 0
}

func kindIn(k workload.IndexKind, kinds []workload.IndexKind) bool {
	for _, v := range kinds {
		if v == k {
			return true
		}
	}
	return false
}
