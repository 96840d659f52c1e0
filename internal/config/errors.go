package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoInput is returned when no payload is specified.
	// This error occurs when neither --file nor a positional argument
	// provides an input.
	ErrNoInput = errors.New("no input specified: provide payloads as arguments or use --file")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	// A batch size of zero would mean no items are ever processed.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrInvalidWorkers is returned when the worker count is negative.
	// Use 0 to size the pool from the number of CPUs.
	ErrInvalidWorkers = errors.New("invalid worker count: must be non-negative")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
