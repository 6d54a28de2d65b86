// Package logger provides structured logging for sshblend.
//
// This package wraps the standard library log/slog:
//
//   - logger.go: Logger interface, handler setup, dynamic level
//   - context.go: Context-aware logging with run ID propagation
//
// Features:
//
//   - Text output for terminals (default), JSON for machine capture
//   - Dynamic log level, switchable at runtime for verbose mode
//   - Package-level default logger for glue code
//
// The CLI defaults to the warn level so a quiet run prints nothing;
// verbose mode lowers the level to debug.
package logger
