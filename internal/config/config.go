package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultKind is the processor variant used when none is requested.
	// Text is the default because free-form text is the most common input.
	DefaultKind = "text"

	// DefaultBatchSize of 4 concurrent items balances throughput with
	// keeping per-item log output readable. Runs with many inputs can
	// raise this via the --batch CLI flag.
	DefaultBatchSize = 4

	// DefaultWorkers of 0 keeps processing synchronous. A positive value
	// switches the run onto the asynchronous path with a worker pool of
	// that size.
	DefaultWorkers = 0

	// AppName is the application name used for XDG directory paths.
	AppName = "procpipe"
)

// Config holds all run options for procpipe.
// This struct is populated from CLI flags and passed through the
// application via dependency injection rather than global state.
type Config struct {
	// Kind selects the processor variant ("text" or "data").
	// Matching is case-insensitive; unknown kinds fail at creation.
	Kind string

	// BatchSize is the number of concurrently processed items when a run
	// has multiple inputs. A value of 1 forces sequential processing.
	BatchSize int

	// Workers is the asynchronous worker pool size. Zero keeps the run
	// synchronous; a positive value schedules payloads on a shared pool.
	Workers int

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// JSONReport enables JSON report output instead of the human-readable
	// format. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of the
	// human-readable format. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .procpipe in the current directory
	// and then in the user's home directory.
	ConfigFilePath string

	// InputFile is a path to a file with one payload per line, used in
	// place of (or in addition to) positional inputs.
	InputFile string

	// Inputs is the list of payloads to process.
	Inputs []string

	// UUIDIdentity selects UUID processor identifiers instead of the
	// sequential PROC-n form.
	UUIDIdentity bool

	// Features are feature-flag names enabled from the command line.
	// They extend the flags loaded from the configuration file.
	Features []string

	// File holds the defaults loaded from the configuration file.
	File *File
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values because several defaults are non-zero. This also serves as
// documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		Kind:      DefaultKind,
		BatchSize: DefaultBatchSize,
		Workers:   DefaultWorkers,
		File:      DefaultFile(),
	}
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid; the first error
// found wins, because fixing one often makes others irrelevant.
func (c *Config) Validate() error {
	if len(c.Inputs) == 0 {
		return ErrNoInput
	}

	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	if c.Workers < 0 {
		return ErrInvalidWorkers
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}

// XDGDataDir returns the XDG data directory for procpipe.
// On Linux: ~/.local/share/procpipe
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for procpipe.
// On Linux: ~/.config/procpipe
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGCacheDir returns the XDG cache directory for procpipe.
// On Linux: ~/.cache/procpipe
func XDGCacheDir() string {
	return filepath.Join(xdg.CacheHome, AppName)
}
