// Package logging provides a logging abstraction layer that decouples the engine
// from a specific logging framework. Components receive a Logger through their
// constructors; nothing in the engine logs through a package-level global.
package logging

// Logger defines the interface for structured logging throughout the engine.
type Logger interface {
	// Debug logs a debug-level message with optional fields
	Debug(msg string, fields ...Field)

	// Info logs an info-level message with optional fields
	Info(msg string, fields ...Field)

	// Warn logs a warning-level message with optional fields
	Warn(msg string, fields ...Field)

	// Error logs an error-level message with optional fields
	Error(msg string, fields ...Field)

	// WithError returns a new logger with an error field attached
	WithError(err error) Logger

	// WithField returns a new logger with a single field attached
	WithField(key string, value interface{}) Logger

	// WithFields returns a new logger with multiple fields attached
	WithFields(fields ...Field) Logger
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value interface{}
}

// OrDefault returns logger, or a text-format info-level logger when logger is nil.
// Constructors use it so that a zero-configured component still logs somewhere.
func OrDefault(logger Logger) Logger {
	if logger != nil {
		return logger
	}
	return NewLogrusAdapter("info", "text")
}
