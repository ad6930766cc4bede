package workload

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/ixsel/ixsel/pkg/errcode"
)

func EmptyGoalsError() error {
	msg := "The goal sequence is empty, at least one goal is required"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WorkloadEmptyGoalsError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: empty goal sequence", fn),
	}
}

func UnknownIndexError(scanID, indexID string) error {
	msg := "Scan <em>%s</em> lists coverage by unknown index <em>%s</em>"
	vars := []any{scanID, indexID}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WorkloadUnknownIndexError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: scan %q refers to unknown index %q",
			fn, scanID, indexID),
	}
}

func NegativeValueError(field string, value float64) error {
	msg := "%s must not be negative, got <em>%v</em>"
	vars := []any{field, value}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WorkloadNegativeValueError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: %s is negative: %v",
			fn, field, value),
	}
}

func DuplicateIDError(kind, id string) error {
	msg := "Duplicate %s identifier <em>%s</em>"
	vars := []any{kind, id}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WorkloadDuplicateIDError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: duplicate %s id %q",
			fn, kind, id),
	}
}
