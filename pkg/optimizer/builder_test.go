package optimizer_test

import (
	"testing"

	"github.com/ixsel/ixsel/pkg/optimizer"
	"github.com/ixsel/ixsel/pkg/solver"
	"github.com/ixsel/ixsel/pkg/workload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smallProblem is two scans over three indexes; scan-b is uncoverable.
func smallProblem() *workload.Problem {
	return &workload.Problem{
		Goals: workload.DefaultGoals(),
		Scans: []workload.Scan{
			{
				ID:          "scan-a",
				DefaultCost: 150.7,
				Coverage: map[string]float64{
					"idx-1": 42.2,
					"idx-2": 60,
				},
			},
			{ID: "scan-b", DefaultCost: 99},
		},
		Indexes: []workload.Index{
			{ID: "idx-1", Kind: workload.Possible, WriteOverhead: 12.5},
			{ID: "idx-2", Kind: workload.Possible, WriteOverhead: 3},
			{ID: "idx-3", Kind: workload.Existing, WriteOverhead: 7},
		},
	}
}

func TestBuild_Variables(t *testing.T) {
	p := smallProblem()
	pl, err := optimizer.Build(p)
	require.NoError(t, err, "a valid problem should build")

	assert.Equal(t, len(p.Indexes), pl.Model.BoolCount(),
		"one selection variable per index")
	assert.Equal(t, len(p.Scans), pl.Model.NumCount(),
		"one cost variable per scan")

	for j, s := range p.Scans {
		hi := pl.Model.NumHi(pl.ScanCostVar(j))
		assert.InDelta(t, s.DefaultCost, hi, 1e-9,
			"cost variable domain should be capped by the default cost")
	}
}

func TestBuild_CoverageConstraints(t *testing.T) {
	p := smallProblem()
	pl, err := optimizer.Build(p)
	require.NoError(t, err)

	var upperBounds, indicators int
	for _, c := range pl.Model.Constraints() {
		switch c.Kind {
		case solver.NumUpperBound:
			upperBounds++
		case solver.Indicator:
			indicators++
		}
	}
	assert.Equal(t, len(p.Scans), upperBounds,
		"each scan should get one unconditional bound")
	assert.Equal(t, 2, indicators,
		"each coverage entry should get one indicator")
}

func TestBuild_RuleConstraints(t *testing.T) {
	limit := 1
	iwo := 15.0

	p := smallProblem()
	p.Rules.MaxPossibleIndexes = &limit
	p.Rules.MaxIWO = &iwo

	pl, err := optimizer.Build(p)
	require.NoError(t, err)

	var linear []solver.Constraint
	for _, c := range pl.Model.Constraints() {
		if c.Kind == solver.LinearLE {
			linear = append(linear, c)
		}
	}
	require.Len(t, linear, 2, "both rules should become constraints")

	// Count rule: possible indexes only, coefficient 1.
	assert.Len(t, linear[0].Expr.Bools, 2)
	assert.InDelta(t, 1.0, linear[0].Bound, 1e-9)

	// IWO rule: all indexes, write overhead coefficients.
	assert.Len(t, linear[1].Expr.Bools, 3)
	assert.InDelta(t, 15.0, linear[1].Bound, 1e-9)
}

func TestBuild_InvalidProblem(t *testing.T) {
	p := smallProblem()
	p.Goals = nil

	_, err := optimizer.Build(p)
	assert.Error(t, err, "validation should run before building")
}

func TestPlan_Selection(t *testing.T) {
	p := smallProblem()
	pl, err := optimizer.Build(p)
	require.NoError(t, err)

	a := solver.Assignment{
		Bools: []bool{true, false, true},
		Nums:  []float64{42.2, 99},
	}
	assert.Equal(t, []bool{true, false, true}, pl.Selection(a),
		"selection should pair with Problem.Indexes")
}

func TestPlan_Objectives(t *testing.T) {
	p := smallProblem()
	pl, err := optimizer.Build(p)
	require.NoError(t, err)

	cost := pl.Objective(workload.MinimizeTotalCost)
	assert.Empty(t, cost.Bools)
	assert.Len(t, cost.Nums, len(p.Scans),
		"total cost should sum every scan cost variable")

	count := pl.Objective(workload.MinimizeIndexCount)
	assert.Len(t, count.Bools, 2,
		"index count should only range over possible indexes")
	assert.Empty(t, count.Nums)

	iwo := pl.Objective(workload.MinimizeIWO)
	assert.Len(t, iwo.Bools, 3,
		"IWO should range over all indexes with nonzero overhead")
	for _, term := range iwo.Bools {
		assert.NotZero(t, term.Coeff)
	}
}
