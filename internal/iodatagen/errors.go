package iodatagen

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/ixsel/ixsel/pkg/errcode"
)

func RangeError(what string) error {
	msg := "Invalid %s range for workload generation"
	vars := []any{what}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DatagenRangeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: invalid %s range", fn, what),
	}
}
