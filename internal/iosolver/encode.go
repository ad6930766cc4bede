package iosolver

import (
	"maps"
	"math"
	"slices"

	gnsat "github.com/crillab/gophersat/solver"
	"github.com/ixsel/ixsel/pkg/solver"
)

// numOption is one admissible value of a lowered numeric variable. The
// unconditional option has guard 0.
type numOption struct {
	guard solver.BoolVar
	value float64
	lit   int
}

// encoding is the pseudo-boolean translation of one solve call.
type encoding struct {
	model   *solver.Model
	mult    int
	nextVar int

	// options[j] lists the admissible values of numeric variable j;
	// options[j][0] is always the unconditional bound.
	options [][]numOption

	constrs     []gnsat.PBConstr
	costLits    []gnsat.Lit
	costWeights []int
}

func newEncoding(
	m *solver.Model,
	extra []solver.Constraint,
	objective solver.LinearExpr,
	mult int,
) (*encoding, error) {
	e := &encoding{
		model:   m,
		mult:    mult,
		nextVar: m.BoolCount(),
		options: make([][]numOption, m.NumCount()),
	}

	// Unconditional bounds first: the tightest one is the fallback value
	// of each numeric variable.
	hi := make([]float64, m.NumCount())
	for j := range hi {
		hi[j] = m.NumHi(solver.NumVar(j))
	}
	indicators := make([][]numOption, m.NumCount())
	for _, c := range allConstraints(m, extra) {
		switch c.Kind {
		case solver.NumUpperBound:
			if err := e.checkNum(c.Num); err != nil {
				return nil, err
			}
			if c.Bound < hi[int(c.Num)] {
				hi[int(c.Num)] = c.Bound
			}
		case solver.Indicator:
			if err := e.checkNum(c.Num); err != nil {
				return nil, err
			}
			if err := e.checkBool(c.If); err != nil {
				return nil, err
			}
			indicators[int(c.Num)] = append(indicators[int(c.Num)],
				numOption{guard: c.If, value: c.Bound})
		}
	}

	// Lower each numeric variable to an exactly-one choice among its
	// available bounds; a conditional option requires its guard.
	for j := range e.options {
		opts := []numOption{{value: hi[j], lit: e.newVar()}}
		for _, ind := range indicators[j] {
			ind.lit = e.newVar()
			opts = append(opts, ind)
		}
		e.options[j] = opts

		lits := make([]int, len(opts))
		for i, o := range opts {
			lits[i] = o.lit
		}
		e.constrs = append(e.constrs,
			gnsat.PropClause(lits...),
			gnsat.AtMost(lits, 1),
		)
		for _, o := range opts[1:] {
			e.constrs = append(e.constrs,
				gnsat.PropClause(-o.lit, int(o.guard)))
		}
	}

	for _, c := range allConstraints(m, extra) {
		if c.Kind != solver.LinearLE {
			continue
		}
		if err := e.addLE(c); err != nil {
			return nil, err
		}
	}

	if err := e.setCost(objective); err != nil {
		return nil, err
	}
	return e, nil
}

func allConstraints(m *solver.Model, extra []solver.Constraint) []solver.Constraint {
	res := make([]solver.Constraint, 0, len(m.Constraints())+len(extra))
	res = append(res, m.Constraints()...)
	res = append(res, extra...)
	return res
}

func (e *encoding) newVar() int {
	e.nextVar++
	return e.nextVar
}

func (e *encoding) checkBool(v solver.BoolVar) error {
	if int(v) < 1 || int(v) > e.model.BoolCount() {
		return EncodeError("boolean variable", int(v))
	}
	return nil
}

func (e *encoding) checkNum(v solver.NumVar) error {
	if int(v) < 0 || int(v) >= e.model.NumCount() {
		return EncodeError("numeric variable", int(v))
	}
	return nil
}

func (e *encoding) scale(f float64) int {
	return int(math.Round(f * float64(e.mult)))
}

// scaleFloor keeps tolerance bounds conservative: the scaled right-hand
// side is floored. Values within a relative epsilon of an integer snap
// to it first, so a zero-tolerance bound computed from summed floats
// still holds the exact scaled optimum.
func (e *encoding) scaleFloor(f float64) int {
	x := f * float64(e.mult)
	r := math.Round(x)
	if math.Abs(x-r) < 1e-6*math.Max(1, math.Abs(r)) {
		return int(r)
	}
	return int(math.Floor(x))
}

// terms flattens a linear expression into scaled (literal, weight) pairs,
// substituting choice literals for numeric variables.
func (e *encoding) terms(expr solver.LinearExpr) ([]int, []int, error) {
	var lits, weights []int
	for _, t := range expr.Bools {
		if err := e.checkBool(t.Var); err != nil {
			return nil, nil, err
		}
		lits = append(lits, int(t.Var))
		weights = append(weights, e.scale(t.Coeff))
	}
	for _, t := range expr.Nums {
		if err := e.checkNum(t.Var); err != nil {
			return nil, nil, err
		}
		for _, o := range e.options[int(t.Var)] {
			lits = append(lits, o.lit)
			weights = append(weights, e.scale(t.Coeff*o.value))
		}
	}
	return lits, weights, nil
}

// addLE encodes Σ w·lit <= bound as a normalized at-least constraint
// with positive weights only.
func (e *encoding) addLE(c solver.Constraint) error {
	lits, weights, err := e.terms(c.Expr)
	if err != nil {
		return err
	}

	// Σ w·l <= K  ⇔  Σ (-w)·l >= -K; negative weights flip literals.
	bound := -e.scaleFloor(c.Bound)
	var nlits, nweights []int
	for i, w := range weights {
		w = -w
		l := lits[i]
		if w == 0 {
			continue
		}
		if w < 0 {
			w = -w
			l = -l
			bound += w
		}
		nlits = append(nlits, l)
		nweights = append(nweights, w)
	}

	if bound <= 0 {
		return nil // trivially satisfied
	}
	if len(nlits) == 0 {
		e.addContradiction()
		return nil
	}
	e.constrs = append(e.constrs, gnsat.GtEq(nlits, nweights, bound))
	return nil
}

// addContradiction makes the problem unsatisfiable; used for constraints
// no assignment can meet after normalization.
func (e *encoding) addContradiction() {
	f := e.newVar()
	e.constrs = append(e.constrs,
		gnsat.PropClause(f),
		gnsat.PropClause(-f),
	)
}

// setCost translates the objective into gophersat's cost function. Terms
// are aggregated per variable and normalized to positive weights by
// literal flipping; the dropped constant offset cannot change which
// assignment is optimal, and reported values are evaluated from the
// decoded assignment anyway.
func (e *encoding) setCost(objective solver.LinearExpr) error {
	lits, weights, err := e.terms(objective)
	if err != nil {
		return err
	}

	acc := make(map[int]int, len(lits))
	for i, w := range weights {
		if l := lits[i]; l > 0 {
			acc[l] += w
		} else {
			acc[-l] -= w
		}
	}

	for _, v := range slices.Sorted(maps.Keys(acc)) {
		w := acc[v]
		switch {
		case w > 0:
			e.costLits = append(e.costLits, gnsat.IntToLit(int32(v)))
			e.costWeights = append(e.costWeights, w)
		case w < 0:
			e.costLits = append(e.costLits, gnsat.IntToLit(int32(-v)))
			e.costWeights = append(e.costWeights, -w)
		}
	}
	return nil
}

// decode reads a gophersat model back into an Assignment. The engine's
// model is indexed by variable minus one and also covers the choice
// literals, which need no decoding of their own. Numeric variables take
// the greatest lower bound of their active upper bounds, so decoded
// values carry no solver slack.
func (e *encoding) decode(mm []bool) solver.Assignment {
	bools := make([]bool, e.model.BoolCount())
	for i := range bools {
		if i < len(mm) {
			bools[i] = mm[i]
		}
	}

	nums := make([]float64, e.model.NumCount())
	for j, opts := range e.options {
		val := opts[0].value
		for _, o := range opts[1:] {
			if bools[int(o.guard)-1] && o.value < val {
				val = o.value
			}
		}
		nums[j] = val
	}
	return solver.Assignment{Bools: bools, Nums: nums}
}
