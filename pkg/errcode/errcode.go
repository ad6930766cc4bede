// Package errcode enumerates error codes used across ixsel.
package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Workload errors
	WorkloadParseError
	WorkloadEmptyGoalsError
	WorkloadUnknownIndexError
	WorkloadNegativeValueError
	WorkloadDuplicateIDError
	WorkloadUnknownGoalError
	WorkloadUnknownRuleError
	WorkloadDuplicateRuleError

	// Optimizer errors
	OptimizerInfeasibleError
	OptimizerResourceExhaustedError

	// Solver errors
	SolverEncodeError

	// Datagen errors
	DatagenRangeError
)
