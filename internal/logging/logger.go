// Package logging decouples the parsers and commands from the concrete logging
// framework. Everything logs through Logger; LogrusAdapter backs it in production
// and MockLogger captures entries in tests.
package logging

// Logger is the structured logger used throughout the application.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// WithError returns a derived logger carrying err.
	WithError(err error) Logger

	// WithField returns a derived logger carrying a single key/value.
	WithField(key string, value interface{}) Logger

	// WithFields returns a derived logger carrying all fields.
	WithFields(fields ...Field) Logger

	// Fatalf logs and exits the process.
	Fatalf(msg string, args ...interface{})
}

// Field is a key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}
