// Package ioworkload reads workload and settings JSON files into a
// workload.Problem and writes optimization reports back as JSON.
package ioworkload

import (
	"math"

	"github.com/gnames/gnfmt"
	"github.com/ixsel/ixsel/pkg/workload"
)

// JSON shapes of the input files.

type workloadJSON struct {
	Scans           []scanJSON  `json:"Scans"`
	ExistingIndexes []indexJSON `json:"Existing Indexes"`
	PossibleIndexes []indexJSON `json:"Possible Indexes"`
}

type scanJSON struct {
	ScanID string `json:"Scan ID"`

	// A null cost marks a scan without statistics; such scans are
	// skipped entirely.
	SequentialScanCost *float64 `json:"Sequential Scan Cost"`

	ExistingIndexCosts []coverageJSON `json:"Existing Index Costs"`
	PossibleIndexCosts []coverageJSON `json:"Possible Index Costs"`
}

type coverageJSON struct {
	IndexOID string  `json:"Index OID"`
	Cost     float64 `json:"Cost"`
}

type indexJSON struct {
	Index              indexIDJSON `json:"Index"`
	IndexWriteOverhead float64     `json:"Index Write Overhead"`
}

type indexIDJSON struct {
	IndexOID string `json:"Index OID"`
}

type settingsJSON struct {
	Options   optionsJSON `json:"Options"`
	TimeLimit *float64    `json:"Time Limit"`
}

type optionsJSON struct {
	Goals []goalJSON `json:"Goals"`
	Rules []ruleJSON `json:"Rules"`
}

type goalJSON struct {
	Name      string  `json:"Name"`
	Tolerance float64 `json:"Tolerance"`
}

type ruleJSON struct {
	Name  string   `json:"Name"`
	Value *float64 `json:"Value"`
}

// Settings holds the optional run options of a settings file.
type Settings struct {
	Goals []workload.Goal
	Rules workload.Rules

	// TimeLimitSec overrides the configured per-solve budget when set.
	TimeLimitSec *float64
}

// Goal and rule wire names.
const (
	goalTotalCost  = "Minimize Total Cost"
	goalIndexCount = "Minimize Number of Indexes"
	goalIWO        = "Minimize Index Write Overhead"

	ruleMaxPossible = "Maximum Number of Possible Indexes"
	ruleMaxIWO      = "Maximum Index Write Overhead"
)

// NewProblem assembles a Problem from a workload file and an optional
// settings file (nil means defaults). The returned Settings carry the
// per-invocation time limit, if any.
func NewProblem(data, settings []byte) (*workload.Problem, *Settings, error) {
	scans, indexes, err := ParseWorkload(data)
	if err != nil {
		return nil, nil, err
	}
	st, err := ParseSettings(settings)
	if err != nil {
		return nil, nil, err
	}
	p := &workload.Problem{
		Goals:   st.Goals,
		Rules:   st.Rules,
		Scans:   scans,
		Indexes: indexes,
	}
	return p, st, nil
}

// ParseWorkload decodes a workload JSON document. Scans with a null
// sequential cost are skipped; coverage entries that cannot improve on
// the scan's sequential cost are dropped, since no selection would ever
// realize them.
func ParseWorkload(data []byte) ([]workload.Scan, []workload.Index, error) {
	enc := gnfmt.GNjson{}
	var w workloadJSON
	if err := enc.Decode(data, &w); err != nil {
		return nil, nil, ParseError("workload", err)
	}

	var indexes []workload.Index
	for _, idx := range w.ExistingIndexes {
		indexes = append(indexes, workload.Index{
			ID:            idx.Index.IndexOID,
			Kind:          workload.Existing,
			WriteOverhead: idx.IndexWriteOverhead,
		})
	}
	for _, idx := range w.PossibleIndexes {
		indexes = append(indexes, workload.Index{
			ID:            idx.Index.IndexOID,
			Kind:          workload.Possible,
			WriteOverhead: idx.IndexWriteOverhead,
		})
	}

	var scans []workload.Scan
	for _, s := range w.Scans {
		if s.SequentialScanCost == nil {
			continue
		}
		scan := workload.Scan{
			ID:          s.ScanID,
			DefaultCost: *s.SequentialScanCost,
			Coverage:    make(map[string]float64),
		}
		covs := append(
			append([]coverageJSON{}, s.ExistingIndexCosts...),
			s.PossibleIndexCosts...,
		)
		for _, c := range covs {
			if c.Cost >= scan.DefaultCost {
				continue
			}
			scan.Coverage[c.IndexOID] = c.Cost
		}
		scans = append(scans, scan)
	}

	return scans, indexes, nil
}

// ParseSettings decodes a settings JSON document; nil or empty input
// yields the defaults (minimize total cost exactly, then minimize the
// number of possible indexes, no rules).
func ParseSettings(data []byte) (*Settings, error) {
	res := &Settings{Goals: workload.DefaultGoals()}
	if len(data) == 0 {
		return res, nil
	}

	enc := gnfmt.GNjson{}
	var s settingsJSON
	if err := enc.Decode(data, &s); err != nil {
		return nil, ParseError("settings", err)
	}

	if len(s.Options.Goals) > 0 {
		res.Goals = nil
		for _, g := range s.Options.Goals {
			name, err := parseGoalName(g.Name)
			if err != nil {
				return nil, err
			}
			res.Goals = append(res.Goals, workload.Goal{
				Name:      name,
				Tolerance: g.Tolerance,
			})
		}
	}

	seen := make(map[string]struct{})
	for _, r := range s.Options.Rules {
		if _, ok := seen[r.Name]; ok {
			return nil, DuplicateRuleError(r.Name)
		}
		seen[r.Name] = struct{}{}
		if r.Value == nil {
			continue // explicit null keeps the rule unconstrained
		}
		switch r.Name {
		case ruleMaxPossible:
			n := int(math.Round(*r.Value))
			res.Rules.MaxPossibleIndexes = &n
		case ruleMaxIWO:
			v := *r.Value
			res.Rules.MaxIWO = &v
		default:
			return nil, UnknownRuleError(r.Name)
		}
	}

	res.TimeLimitSec = s.TimeLimit
	return res, nil
}

func parseGoalName(s string) (workload.GoalName, error) {
	switch s {
	case goalTotalCost:
		return workload.MinimizeTotalCost, nil
	case goalIndexCount:
		return workload.MinimizeIndexCount, nil
	case goalIWO:
		return workload.MinimizeIWO, nil
	}
	return 0, UnknownGoalError(s)
}
