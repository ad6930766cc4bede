package solver_test

import (
	"testing"

	"github.com/ixsel/ixsel/pkg/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModel_Variables(t *testing.T) {
	m := solver.NewModel()

	b1 := m.NewBool()
	b2 := m.NewBool()
	assert.Equal(t, solver.BoolVar(1), b1,
		"boolean handles should be 1-based")
	assert.Equal(t, solver.BoolVar(2), b2)
	assert.Equal(t, 2, m.BoolCount())

	n1 := m.NewNum(150.7)
	n2 := m.NewNum(99)
	assert.Equal(t, solver.NumVar(0), n1,
		"numeric handles should be 0-based")
	assert.Equal(t, solver.NumVar(1), n2)
	assert.Equal(t, 2, m.NumCount())
	assert.InDelta(t, 150.7, m.NumHi(n1), 1e-9)
	assert.InDelta(t, 99.0, m.NumHi(n2), 1e-9)
}

func TestModel_Constraints(t *testing.T) {
	m := solver.NewModel()
	b := m.NewBool()
	n := m.NewNum(100)

	var e solver.LinearExpr
	e.AddBool(b, 2)
	e.AddNum(n, 1)

	m.AddConstraint(solver.LE(e, 42))
	m.AddConstraint(solver.UpperBound(n, 100))
	m.AddConstraint(solver.Implies(b, n, 17.5))

	cs := m.Constraints()
	require.Len(t, cs, 3)

	assert.Equal(t, solver.LinearLE, cs[0].Kind)
	assert.InDelta(t, 42.0, cs[0].Bound, 1e-9)

	assert.Equal(t, solver.NumUpperBound, cs[1].Kind)
	assert.Equal(t, n, cs[1].Num)

	assert.Equal(t, solver.Indicator, cs[2].Kind)
	assert.Equal(t, b, cs[2].If)
	assert.InDelta(t, 17.5, cs[2].Bound, 1e-9)
}

func TestLinearExpr_IsEmpty(t *testing.T) {
	var e solver.LinearExpr
	assert.True(t, e.IsEmpty())

	e.AddBool(solver.BoolVar(1), 1)
	assert.False(t, e.IsEmpty())
}

func TestAssignment_Value(t *testing.T) {
	a := solver.Assignment{
		Bools: []bool{true, false, true},
		Nums:  []float64{42.2, 150.7},
	}

	assert.True(t, a.Bool(solver.BoolVar(1)))
	assert.False(t, a.Bool(solver.BoolVar(2)))
	assert.InDelta(t, 150.7, a.Num(solver.NumVar(1)), 1e-9)

	var e solver.LinearExpr
	e.AddBool(solver.BoolVar(1), 10)   // true: counts
	e.AddBool(solver.BoolVar(2), 100)  // false: ignored
	e.AddBool(solver.BoolVar(3), 0.5)  // true: counts
	e.AddNum(solver.NumVar(0), 2)      // 2*42.2
	e.AddNum(solver.NumVar(1), 1)      // 150.7

	assert.InDelta(t, 10+0.5+2*42.2+150.7, a.Value(e), 1e-9,
		"expression value should sum active terms")
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Optimal", solver.Optimal.String())
	assert.Equal(t, "Feasible", solver.Feasible.String())
	assert.Equal(t, "Infeasible", solver.Infeasible.String())
	assert.Equal(t, "Unknown", solver.Unknown.String())
}
