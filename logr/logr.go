// Package logr defines the Logger interface used to report failures.
// Components in this repo never return asynchronous errors to their
// callers; they report them through a Logger instead, so a Logger here
// is first of all an error sink.
package logr

// Logger is a sub-interface of github.com/go-logr/logr::Logger. Three
// methods are enough for this repo's needs.
type Logger interface {
	// Info logs a non-error message with the given key/value pairs as context.
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error, with the given message and key/value pairs as context.
	// err must not be nil.
	Error(err error, msg string, keysAndValues ...interface{})

	// WithValues returns a new Logger with some key/value pairs attached
	// to every subsequent log entry.
	WithValues(keysAndValues ...interface{}) Logger
}

type nopLogger struct{}

func (l nopLogger) Info(msg string, keysAndValues ...interface{}) {}

func (l nopLogger) Error(err error, msg string, keysAndValues ...interface{}) {}

func (l nopLogger) WithValues(keysAndValues ...interface{}) Logger { return nopLogger{} }

var (
	// Nop discards everything.
	Nop Logger = nopLogger{}
)
