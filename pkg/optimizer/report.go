package optimizer

import (
	"github.com/ixsel/ixsel/pkg/workload"
)

// Report is the user-facing result of one optimization run. JSON field
// names follow the wire format of the workload input files.
type Report struct {
	Goals      []GoalReport  `json:"Goals"`
	Scans      []ScanReport  `json:"Scans"`
	Indexes    IndexesReport `json:"Indexes"`
	Statistics Statistics    `json:"Statistics"`
}

// GoalReport is one goal's achieved value, in goal order.
type GoalReport struct {
	Name  string  `json:"Name"`
	Value float64 `json:"Value"`
}

// ScanReport describes the fate of one scan under the final selection.
type ScanReport struct {
	ScanID string  `json:"Scan ID"`
	Cost   float64 `json:"Cost"`

	// BestCoveredBy is absent when no selected index improves on the
	// scan's default cost.
	BestCoveredBy *string `json:"Best Covered By,omitempty"`
}

// IndexReport is one index's selection decision.
type IndexReport struct {
	IndexOID string `json:"Index OID"`
	Selected bool   `json:"Selected"`
}

// IndexesReport groups selection decisions by index kind.
type IndexesReport struct {
	Existing []IndexReport `json:"Existing Indexes"`
	Possible []IndexReport `json:"Possible Indexes"`
}

// Statistics aggregates the run's outcome.
type Statistics struct {
	Coverage    CoverageStats    `json:"Coverage"`
	Cost        CostStats        `json:"Cost"`
	IndexesUsed IndexesUsedStats `json:"Indexes Used"`
	IWO         IWOStats         `json:"Index Write Overhead"`
}

// CoverageStats counts scans by how they are served. Total is the number
// of covered scans (Existing + Possible); Total + Uncovered equals the
// number of scans in the workload.
type CoverageStats struct {
	Total     int `json:"Total"`
	Existing  int `json:"Existing"`
	Possible  int `json:"Possible"`
	Uncovered int `json:"Uncovered"`
}

type CostStats struct {
	Total   float64 `json:"Total"`
	Maximum float64 `json:"Maximum"`
}

type IndexesUsedStats struct {
	Total    int `json:"Total"`
	Existing int `json:"Existing"`
	Possible int `json:"Possible"`
}

type IWOStats struct {
	Total    float64 `json:"Total"`
	Existing float64 `json:"Existing"`
	Possible float64 `json:"Possible"`
}

// Extract converts an optimization Result into a Report. Every number is
// recomputed from the final selection; achieved goal values are reported
// as their real values under that selection, which coincide with the
// solver's optima for proven-optimal runs.
func Extract(p *workload.Problem, res *Result) *Report {
	rep := &Report{}

	for _, gv := range res.Achieved {
		rep.Goals = append(rep.Goals, GoalReport{
			Name:  gv.Name.String(),
			Value: ComputeObjective(p, res.Selected, gv.Name),
		})
	}

	for _, s := range p.Scans {
		sr := ScanReport{
			ScanID: s.ID,
			Cost:   CostOfScan(p, res.Selected, s),
		}
		if id, ok := BestCoveredBy(p, res.Selected, s); ok {
			sr.BestCoveredBy = &id
		}
		rep.Scans = append(rep.Scans, sr)
	}

	for i, idx := range p.Indexes {
		ir := IndexReport{IndexOID: idx.ID, Selected: res.Selected[i]}
		if idx.Kind == workload.Existing {
			rep.Indexes.Existing = append(rep.Indexes.Existing, ir)
		} else {
			rep.Indexes.Possible = append(rep.Indexes.Possible, ir)
		}
	}

	var covExisting, covPossible int
	for _, s := range p.Scans {
		id, ok := BestCoveredBy(p, res.Selected, s)
		if !ok {
			continue
		}
		if idx, found := p.IndexByID(id); found && idx.Kind == workload.Existing {
			covExisting++
		} else {
			covPossible++
		}
	}
	covered := covExisting + covPossible
	rep.Statistics.Coverage = CoverageStats{
		Total:     covered,
		Existing:  covExisting,
		Possible:  covPossible,
		Uncovered: len(p.Scans) - covered,
	}

	rep.Statistics.Cost = CostStats{
		Total:   TotalCost(p, res.Selected),
		Maximum: MaximumCost(p, res.Selected),
	}

	rep.Statistics.IndexesUsed = IndexesUsedStats{
		Total: CountSelected(p, res.Selected,
			workload.Existing, workload.Possible),
		Existing: CountSelected(p, res.Selected, workload.Existing),
		Possible: CountSelected(p, res.Selected, workload.Possible),
	}

	rep.Statistics.IWO = IWOStats{
		Total: TotalIWO(p, res.Selected,
			workload.Existing, workload.Possible),
		Existing: TotalIWO(p, res.Selected, workload.Existing),
		Possible: TotalIWO(p, res.Selected, workload.Possible),
	}

	return rep
}
