// Package ports defines the boundary interfaces of the resolution engine.
package ports

import "io"

// Logger is the abstraction for application logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Info logs an informational message.
	Info(msg string)

	// Warn logs a warning message.
	Warn(msg string)

	// Error logs an error, unwrapping structured error chains where possible.
	Error(err error)

	// SetOutput updates the logger's output destination.
	SetOutput(w io.Writer)
}
