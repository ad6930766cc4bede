// Package solver defines the boundary between ixsel's optimization core
// and an external combinatorial solving engine.
//
// The core describes its decision space with a Model: boolean decision
// variables, bounded non-negative numeric variables, and a conjunction of
// linear and indicator constraints. An Adapter implementation (see
// internal/iosolver) translates the Model for a concrete engine and maps
// the engine's answer to one of four outcomes. Keeping this package free
// of engine types makes the solving backend swappable without touching
// model construction or the lexicographic loop.
package solver

// BoolVar is a handle to a boolean decision variable. Handles are 1-based
// so that they double as literals for backends with DIMACS-style numbering.
type BoolVar int

// NumVar is a handle to a bounded numeric variable with domain
// [0, hi] where hi is fixed at creation.
type NumVar int

// BoolTerm is a coefficient applied to a boolean variable (false counts
// as 0, true as 1).
type BoolTerm struct {
	Var   BoolVar
	Coeff float64
}

// NumTerm is a coefficient applied to a numeric variable.
type NumTerm struct {
	Var   NumVar
	Coeff float64
}

// LinearExpr is a weighted sum of boolean and numeric variables.
type LinearExpr struct {
	Bools []BoolTerm
	Nums  []NumTerm
}

// AddBool appends a boolean term to the expression.
func (e *LinearExpr) AddBool(v BoolVar, coeff float64) {
	e.Bools = append(e.Bools, BoolTerm{Var: v, Coeff: coeff})
}

// AddNum appends a numeric term to the expression.
func (e *LinearExpr) AddNum(v NumVar, coeff float64) {
	e.Nums = append(e.Nums, NumTerm{Var: v, Coeff: coeff})
}

// IsEmpty reports whether the expression has no terms.
func (e LinearExpr) IsEmpty() bool {
	return len(e.Bools) == 0 && len(e.Nums) == 0
}

// ConstraintKind discriminates the supported constraint forms.
type ConstraintKind int

const (
	// LinearLE is Σ coeff·var <= Bound over Expr.
	LinearLE ConstraintKind = iota

	// NumUpperBound is Num <= Bound, unconditionally.
	NumUpperBound

	// Indicator is "if If is true then Num <= Bound". It imposes nothing
	// when If is false.
	Indicator
)

// Constraint is one member of a Model's constraint conjunction.
type Constraint struct {
	Kind  ConstraintKind
	Expr  LinearExpr
	Bound float64
	Num   NumVar
	If    BoolVar
}

// LE builds a linear inequality constraint Σ coeff·var <= bound.
func LE(expr LinearExpr, bound float64) Constraint {
	return Constraint{Kind: LinearLE, Expr: expr, Bound: bound}
}

// UpperBound builds an unconditional upper bound on a numeric variable.
func UpperBound(v NumVar, bound float64) Constraint {
	return Constraint{Kind: NumUpperBound, Num: v, Bound: bound}
}

// Implies builds an indicator constraint: when b is true, v <= bound.
func Implies(b BoolVar, v NumVar, bound float64) Constraint {
	return Constraint{Kind: Indicator, If: b, Num: v, Bound: bound}
}

// Model is a set of variables plus permanent constraints. It is mutable
// during construction and treated as frozen once handed to the optimizer;
// per-run constraints are passed separately to Adapter.Solve so a single
// Model can serve concurrent optimization runs.
type Model struct {
	boolCount   int
	numHi       []float64
	constraints []Constraint
}

// NewModel creates an empty model.
func NewModel() *Model {
	return &Model{}
}

// NewBool creates a boolean decision variable.
func (m *Model) NewBool() BoolVar {
	m.boolCount++
	return BoolVar(m.boolCount)
}

// NewNum creates a numeric variable with domain [0, hi].
func (m *Model) NewNum(hi float64) NumVar {
	m.numHi = append(m.numHi, hi)
	return NumVar(len(m.numHi) - 1)
}

// AddConstraint appends a permanent constraint.
func (m *Model) AddConstraint(c Constraint) {
	m.constraints = append(m.constraints, c)
}

// BoolCount returns the number of boolean variables.
func (m *Model) BoolCount() int { return m.boolCount }

// NumCount returns the number of numeric variables.
func (m *Model) NumCount() int { return len(m.numHi) }

// NumHi returns the domain upper bound of a numeric variable.
func (m *Model) NumHi(v NumVar) float64 { return m.numHi[int(v)] }

// Constraints returns the permanent constraint set. Callers must not
// modify the returned slice.
func (m *Model) Constraints() []Constraint { return m.constraints }
