// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured JSON logging
// with configurable log levels, and carries loggers and session IDs on contexts so
// session components log with consistent attributes.
package logger
