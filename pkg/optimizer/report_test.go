package optimizer_test

import (
	"testing"

	"github.com/ixsel/ixsel/pkg/optimizer"
	"github.com/ixsel/ixsel/pkg/solver"
	"github.com/ixsel/ixsel/pkg/workload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	p := smallProblem()
	res := &optimizer.Result{
		Assignment: solver.Assignment{
			Bools: []bool{true, false, false},
			Nums:  []float64{42.2, 99},
		},
		Selected: []bool{true, false, false},
		Achieved: []optimizer.GoalValue{
			{Name: workload.MinimizeTotalCost, Value: 141.2},
			{Name: workload.MinimizeIndexCount, Value: 1},
		},
	}

	rep := optimizer.Extract(p, res)

	require.Len(t, rep.Goals, 2)
	assert.Equal(t, "Minimize Total Cost", rep.Goals[0].Name)
	assert.InDelta(t, 141.2, rep.Goals[0].Value, 1e-9,
		"goal values should be recomputed from the selection")
	assert.Equal(t, "Minimize Number of Indexes", rep.Goals[1].Name)
	assert.InDelta(t, 1.0, rep.Goals[1].Value, 1e-9)

	require.Len(t, rep.Scans, 2)
	assert.Equal(t, "scan-a", rep.Scans[0].ScanID)
	assert.InDelta(t, 42.2, rep.Scans[0].Cost, 1e-9)
	require.NotNil(t, rep.Scans[0].BestCoveredBy)
	assert.Equal(t, "idx-1", *rep.Scans[0].BestCoveredBy)

	assert.InDelta(t, 99.0, rep.Scans[1].Cost, 1e-9)
	assert.Nil(t, rep.Scans[1].BestCoveredBy,
		"uncovered scans should omit the covering index")

	require.Len(t, rep.Indexes.Possible, 2)
	require.Len(t, rep.Indexes.Existing, 1)
	assert.True(t, rep.Indexes.Possible[0].Selected)
	assert.False(t, rep.Indexes.Possible[1].Selected)
	assert.False(t, rep.Indexes.Existing[0].Selected)

	st := rep.Statistics
	assert.Equal(t, 1, st.Coverage.Total)
	assert.Equal(t, 1, st.Coverage.Possible)
	assert.Equal(t, 0, st.Coverage.Existing)
	assert.Equal(t, 1, st.Coverage.Uncovered)

	assert.InDelta(t, 141.2, st.Cost.Total, 1e-9)
	assert.InDelta(t, 99.0, st.Cost.Maximum, 1e-9)

	assert.Equal(t, 1, st.IndexesUsed.Total)
	assert.Equal(t, 1, st.IndexesUsed.Possible)
	assert.Equal(t, 0, st.IndexesUsed.Existing)

	assert.InDelta(t, 12.5, st.IWO.Total, 1e-9)
	assert.InDelta(t, 12.5, st.IWO.Possible, 1e-9)
	assert.InDelta(t, 0.0, st.IWO.Existing, 1e-9)
}
