package ioworkload

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/ixsel/ixsel/pkg/errcode"
)

func ParseError(what string, err error) error {
	msg := "Cannot parse the %s file"
	vars := []any{what}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WorkloadParseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %w", fn, err),
	}
}

func UnknownGoalError(name string) error {
	msg := "Unknown goal <em>%s</em> in the settings file"
	vars := []any{name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WorkloadUnknownGoalError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: unknown goal %q", fn, name),
	}
}

func UnknownRuleError(name string) error {
	msg := "Unknown rule <em>%s</em> in the settings file"
	vars := []any{name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WorkloadUnknownRuleError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: unknown rule %q", fn, name),
	}
}

func DuplicateRuleError(name string) error {
	msg := "Rule <em>%s</em> appears more than once in the settings file"
	vars := []any{name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WorkloadDuplicateRuleError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: duplicate rule %q", fn, name),
	}
}

func EncodeReportError(err error) error {
	msg := "Cannot encode the report"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WriteFileError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: %w", fn, err),
	}
}

func WriteFileError(path string, err error) error {
	msg := "Cannot write file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WriteFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %w", fn, err),
	}
}

func ReadFileError(path string, err error) error {
	msg := "Cannot read file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %w", fn, err),
	}
}
