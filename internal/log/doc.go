// Package log builds the slog loggers used by writedist.
//
// Loggers write to stderr so that they never mix with the records a
// command writes to its output file or the parameter echo on stdout.
// By default only warnings and errors are shown; verbose mode enables
// debug output.
//
// The SanitizeHandler wraps any slog.Handler. Trace addresses are
// arbitrary text, so string attributes are truncated to MaxValueLen bytes
// and invalid UTF-8 is replaced before the record reaches the underlying
// handler.
//
// # Usage
//
//	logger := log.New(os.Stderr, log.Options{Verbose: true, Format: log.FormatJSON})
//	logger, runID := log.WithRunID(logger)
//	logger.Info("run started", "address", line)
package log
