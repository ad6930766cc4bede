// Package config provides configuration management for ixsel.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Solver: time_limit_sec, multiplier
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use IXSEL_ prefix with underscores for nesting:
//
//	IXSEL_SOLVER_TIME_LIMIT_SEC=600
//	IXSEL_LOG_LEVEL=info
//	IXSEL_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete ixsel configuration.
type Config struct {
	// Solver contains settings for the constraint-solving backend.
	Solver SolverConfig `mapstructure:"solver" yaml:"solver"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for parallel operations.
	// Default value is set according to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// SolverConfig contains settings for the constraint-solving backend.
type SolverConfig struct {
	// TimeLimitSec is the per-solve wall-clock budget in seconds.
	// One lexicographic run performs one solve per goal, each with this
	// budget. A settings file can override it per invocation.
	TimeLimitSec float64 `mapstructure:"time_limit_sec" yaml:"time_limit_sec"`

	// Multiplier scales fractional costs to integers before they reach the
	// pseudo-boolean solver. 100 preserves two decimal places, which is the
	// precision of planner cost estimates in the input data.
	Multiplier int `mapstructure:"multiplier" yaml:"multiplier"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Solver: SolverConfig{
			// Effectively unlimited; real limits come from settings files.
			TimeLimitSec: 999_999,
			Multiplier:   100,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(), // Default to number of CPU threads
	}

	return res
}
