package iosolver

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/ixsel/ixsel/pkg/errcode"
)

func EncodeError(what string, handle int) error {
	msg := "Internal error while encoding the model (%s %d out of range)"
	vars := []any{what, handle}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SolverEncodeError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: %s handle %d out of range",
			fn, what, handle),
	}
}
