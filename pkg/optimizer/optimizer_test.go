package optimizer_test

import (
	"context"
	"testing"
	"time"

	"github.com/gnames/gn"
	"github.com/ixsel/ixsel/pkg/errcode"
	"github.com/ixsel/ixsel/pkg/optimizer"
	"github.com/ixsel/ixsel/pkg/solver"
	"github.com/ixsel/ixsel/pkg/workload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type solveCall struct {
	extra     []solver.Constraint
	objective solver.LinearExpr
	budget    time.Duration
}

// fakeAdapter replays scripted outcomes and records every call.
type fakeAdapter struct {
	outcomes []solver.Outcome
	calls    []solveCall
}

func (f *fakeAdapter) Solve(
	_ context.Context,
	_ *solver.Model,
	extra []solver.Constraint,
	objective solver.LinearExpr,
	budget time.Duration,
) (solver.Outcome, error) {
	f.calls = append(f.calls, solveCall{
		extra:     append([]solver.Constraint{}, extra...),
		objective: objective,
		budget:    budget,
	})
	return f.outcomes[len(f.calls)-1], nil
}

func outcomeWith(
	st solver.Status, bools []bool, nums []float64, value float64,
) solver.Outcome {
	return solver.Outcome{
		Status:     st,
		Assignment: solver.Assignment{Bools: bools, Nums: nums},
		Value:      value,
	}
}

func TestOptimize_AccumulatesBounds(t *testing.T) {
	p := smallProblem()
	p.Goals = []workload.Goal{
		{Name: workload.MinimizeTotalCost, Tolerance: 0},
		{Name: workload.MinimizeIndexCount, Tolerance: 0.5},
		{Name: workload.MinimizeIWO, Tolerance: 0},
	}
	pl, err := optimizer.Build(p)
	require.NoError(t, err)

	sel := []bool{true, false, false}
	nums := []float64{42.2, 99}
	fake := &fakeAdapter{outcomes: []solver.Outcome{
		outcomeWith(solver.Optimal, sel, nums, 141.2),
		outcomeWith(solver.Optimal, sel, nums, 1),
		outcomeWith(solver.Optimal, sel, nums, 12.5),
	}}

	opt := optimizer.New(fake, time.Minute)
	res, err := opt.Optimize(context.Background(), pl)
	require.NoError(t, err, "an all-optimal run should succeed")

	require.Len(t, fake.calls, 3, "one solve per goal")
	assert.Empty(t, fake.calls[0].extra,
		"the first goal runs without accumulated bounds")
	require.Len(t, fake.calls[1].extra, 1)
	require.Len(t, fake.calls[2].extra, 2)

	// Zero tolerance holds the exact optimum of goal one.
	b1 := fake.calls[1].extra[0]
	assert.Equal(t, solver.LinearLE, b1.Kind)
	assert.InDelta(t, 141.2, b1.Bound, 1e-9)

	// Goal two's bound is relaxed by its tolerance.
	b2 := fake.calls[2].extra[1]
	assert.InDelta(t, 1*(1+0.5), b2.Bound, 1e-9)

	assert.Equal(t, time.Minute, fake.calls[0].budget,
		"each solve gets the configured budget")

	assert.Equal(t, sel, res.Selected)
	require.Len(t, res.Achieved, 3)
	assert.InDelta(t, 141.2, res.Achieved[0].Value, 1e-9)
	assert.InDelta(t, 1.0, res.Achieved[1].Value, 1e-9)
	assert.InDelta(t, 12.5, res.Achieved[2].Value, 1e-9)
}

func TestOptimize_FeasibleAccepted(t *testing.T) {
	p := smallProblem()
	pl, err := optimizer.Build(p)
	require.NoError(t, err)

	sel := []bool{false, false, false}
	nums := []float64{150.7, 99}
	fake := &fakeAdapter{outcomes: []solver.Outcome{
		outcomeWith(solver.Feasible, sel, nums, 249.7),
		outcomeWith(solver.Optimal, sel, nums, 0),
	}}

	opt := optimizer.New(fake, time.Minute)
	res, err := opt.Optimize(context.Background(), pl)
	require.NoError(t, err,
		"a feasible-but-unproven solve should not abort the run")
	assert.InDelta(t, 249.7, res.Achieved[0].Value, 1e-9)
}

func TestOptimize_InfeasibleAborts(t *testing.T) {
	p := smallProblem()
	pl, err := optimizer.Build(p)
	require.NoError(t, err)

	sel := []bool{true, false, false}
	nums := []float64{42.2, 99}
	fake := &fakeAdapter{outcomes: []solver.Outcome{
		outcomeWith(solver.Optimal, sel, nums, 141.2),
		{Status: solver.Infeasible},
	}}

	opt := optimizer.New(fake, time.Minute)
	_, err = opt.Optimize(context.Background(), pl)
	require.Error(t, err, "infeasibility should abort the run")

	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.OptimizerInfeasibleError, gnErr.Code)
	require.NotEmpty(t, gnErr.Vars)
	assert.Equal(t, 2, gnErr.Vars[0],
		"the error should carry the 1-based index of the failing goal")
}

func TestOptimize_UnknownAborts(t *testing.T) {
	p := smallProblem()
	pl, err := optimizer.Build(p)
	require.NoError(t, err)

	fake := &fakeAdapter{outcomes: []solver.Outcome{
		{Status: solver.Unknown},
	}}

	opt := optimizer.New(fake, time.Nanosecond)
	_, err = opt.Optimize(context.Background(), pl)
	require.Error(t, err, "an exhausted budget should abort the run")

	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.OptimizerResourceExhaustedError, gnErr.Code)
	require.NotEmpty(t, gnErr.Vars)
	assert.Equal(t, 1, gnErr.Vars[0])
}
