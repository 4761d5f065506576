// Package zerologr implements logr.Logger using github.com/rs/zerolog.
package zerologr

import (
	"github.com/rs/zerolog"

	"github.com/huangjunwen/seqrunner/logr"
)

// Logger implements logr.Logger interface using zerolog.Logger.
type Logger zerolog.Logger

var (
	_ logr.Logger = (*Logger)(nil)
)

// Info implements logr.Logger interface.
func (logger *Logger) Info(msg string, keysAndValues ...interface{}) {
	l := (*zerolog.Logger)(logger)
	ev := l.Info()
	for i := 0; i < len(keysAndValues); i += 2 {
		ev = ev.Interface(keysAndValues[i].(string), keysAndValues[i+1])
	}
	ev.Msg(msg)
}

// Error implements logr.Logger interface.
func (logger *Logger) Error(err error, msg string, keysAndValues ...interface{}) {
	l := (*zerolog.Logger)(logger)
	ev := l.Error().Err(err)
	for i := 0; i < len(keysAndValues); i += 2 {
		ev = ev.Interface(keysAndValues[i].(string), keysAndValues[i+1])
	}
	ev.Msg(msg)
}

// WithValues implements logr.Logger interface.
func (logger *Logger) WithValues(keysAndValues ...interface{}) logr.Logger {
	l := (*zerolog.Logger)(logger)
	c := l.With()
	for i := 0; i < len(keysAndValues); i += 2 {
		c = c.Interface(keysAndValues[i].(string), keysAndValues[i+1])
	}
	l2 := c.Logger()
	return (*Logger)(&l2)
}
