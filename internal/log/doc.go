// Package log provides logging helpers built on top of the standard slog
// package, with automatic truncation of oversized attribute values.
//
// This package extends slog to provide:
//   - Truncation of large payload values so raw inputs don't flood logs
//   - Configurable log levels with verbose mode support
//   - Consistent log formatting (text or JSON) across the application
//
// # Usage
//
//	// Create a logger
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//
//	// Use as a standard slog.Logger
//	logger.Debug("processing payload",
//	    "payload", input, // truncated past 256 bytes
//	    "processor", id,
//	)
//
//	// Set as default logger
//	slog.SetDefault(logger)
package log
