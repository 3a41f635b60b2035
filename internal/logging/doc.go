// Package logging constructs the application's slog loggers.
//
// Two output formats are supported: a human console format with optional
// ANSI color (only when the destination is a terminal) and machine JSON.
// The package also re-exports the slog attribute constructors so callers
// never import log/slog directly for routine logging.
package logging
