// Package workload defines the immutable in-memory representation of an
// index-selection problem: the scans of a workload, the existing and
// candidate indexes that can serve them, hard resource rules, and the
// ordered optimization goals.
//
// A Problem is built once per invocation from external input and never
// mutated afterwards; all downstream components treat it as read-only.
package workload

// IndexKind tells whether an index already exists in the database or is a
// candidate that could be created.
type IndexKind int

const (
	Existing IndexKind = iota
	Possible
)

func (k IndexKind) String() string {
	if k == Existing {
		return "Existing"
	}
	return "Possible"
}

// Scan is a unit of query work whose cost depends on which index, if any,
// serves it.
type Scan struct {
	// ID identifies the scan, usually a query fingerprint.
	ID string

	// DefaultCost is the cost incurred if no selected index covers the
	// scan (the sequential read cost).
	DefaultCost float64

	// Coverage maps an index ID to the cost this scan achieves when that
	// index is selected. A cost above DefaultCost is legal but never
	// preferable.
	Coverage map[string]float64
}

// Index is an existing or possible database index.
type Index struct {
	ID   string
	Kind IndexKind

	// WriteOverhead is the maintenance cost the index imposes on write
	// operations (IWO).
	WriteOverhead float64
}

// Rules are hard constraints every solution must satisfy regardless of
// goals. A nil field means the corresponding rule is not applied.
type Rules struct {
	// MaxPossibleIndexes bounds the count of selected Possible indexes.
	MaxPossibleIndexes *int

	// MaxIWO bounds the total write overhead of all selected indexes,
	// Existing and Possible alike.
	MaxIWO *float64
}

// GoalName is one of the closed set of supported optimization objectives.
type GoalName int

const (
	// MinimizeTotalCost minimizes the combined realized cost of all scans.
	MinimizeTotalCost GoalName = iota

	// MinimizeIndexCount minimizes the number of selected Possible
	// indexes. Existing-index retention is governed by IWO, not counted
	// here.
	MinimizeIndexCount

	// MinimizeIWO minimizes the total write overhead of all selected
	// indexes.
	MinimizeIWO
)

// String returns the wire name of the goal, as used in settings files and
// reports.
func (g GoalName) String() string {
	switch g {
	case MinimizeTotalCost:
		return "Minimize Total Cost"
	case MinimizeIndexCount:
		return "Minimize Number of Indexes"
	case MinimizeIWO:
		return "Minimize Index Write Overhead"
	}
	return "Unknown Goal"
}

// Goal is a single optimization objective with a priority position (its
// place in Problem.Goals) and a tolerance.
type Goal struct {
	Name GoalName

	// Tolerance is the fractional slack allowed on this goal's achieved
	// optimum when it is held as a bound for subsequent goals. 0 means
	// the exact optimum is held.
	Tolerance float64
}

// Problem is the complete, read-only description of one index-selection
// run.
type Problem struct {
	// Goals is the ordered, non-empty sequence of objectives.
	Goals []Goal

	Rules Rules

	Scans []Scan

	Indexes []Index
}

// DefaultGoals is the goal sequence applied when the settings input has
// none: first minimize total scan cost exactly, then minimize the number
// of possible indexes.
func DefaultGoals() []Goal {
	return []Goal{
		{Name: MinimizeTotalCost, Tolerance: 0},
		{Name: MinimizeIndexCount, Tolerance: 0},
	}
}

// IndexByID returns the index with the given ID, or false when the
// Problem has no such index.
func (p *Problem) IndexByID(id string) (Index, bool) {
	for _, idx := range p.Indexes {
		if idx.ID == id {
			return idx, true
		}
	}
	return Index{}, false
}

// CountIndexes returns the number of Existing and Possible indexes.
func (p *Problem) CountIndexes() (existing, possible int) {
	for _, idx := range p.Indexes {
		if idx.Kind == Existing {
			existing++
		} else {
			possible++
		}
	}
	return existing, possible
}
