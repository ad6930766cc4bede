package optimizer

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/ixsel/ixsel/pkg/errcode"
)

// InfeasibleError reports that the constrained minimization of a goal has
// no satisfying assignment. goalIndex is 1-based; Vars[0] carries it so
// callers can decide which rule to relax or which tolerance to raise.
func InfeasibleError(goalIndex int, goalName string) error {
	msg := "No solution satisfies the constraints at goal %d (<em>%s</em>); " +
		"relax a rule or raise an earlier goal's tolerance"
	vars := []any{goalIndex, goalName}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.OptimizerInfeasibleError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: infeasible at goal %d (%s)",
			fn, goalIndex, goalName),
	}
}

// ResourceExhaustedError reports that the solver budget ran out before any
// feasible assignment was found for a goal. The core cannot tell this
// apart from true infeasibility, but the distinct code lets callers retry
// with a larger budget instead of relaxing rules.
func ResourceExhaustedError(goalIndex int, goalName string) error {
	msg := "Solver budget exhausted at goal %d (<em>%s</em>) with no " +
		"feasible solution; retry with a larger time limit"
	vars := []any{goalIndex, goalName}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.OptimizerResourceExhaustedError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: budget exhausted at goal %d (%s)",
			fn, goalIndex, goalName),
	}
}
