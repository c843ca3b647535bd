package logger

import (
	"fmt"
	"io"

	"go.uber.org/multierr"

	"github.com/philipp01105/prettylog/core"
	"github.com/philipp01105/prettylog/formatter"
)

// Logger is the main logging interface (immutable)
type Logger struct {
	adapters []Adapter
	level    core.Level
	tag      string
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	adapters []Adapter
	level    core.Level
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level: core.VerboseLevel, // Adapters do their own filtering
	}
}

// WithAdapter registers an adapter
func (b *Builder) WithAdapter(a Adapter) *Builder {
	b.adapters = append(b.adapters, a)
	return b
}

// WithStrategy registers a format strategy through NewAdapter
func (b *Builder) WithStrategy(s formatter.FormatStrategy, opts ...AdapterOption) *Builder {
	return b.WithAdapter(NewAdapter(s, opts...))
}

// WithLevel sets the minimum level for all adapters
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	adapters := make([]Adapter, len(b.adapters))
	copy(adapters, b.adapters)
	return &Logger{
		adapters: adapters,
		level:    b.level,
	}
}

// T returns a Logger whose records carry the given per-call tag
func (l *Logger) T(tag string) *Logger {
	return &Logger{
		adapters: l.adapters,
		level:    l.level,
		tag:      tag,
	}
}

// Tag returns the per-call tag of the logger
func (l *Logger) Tag() string {
	return l.tag
}

// Log logs a message at the specified level
func (l *Logger) Log(level core.Level, msg string) error {
	return l.log(level, msg)
}

// log is the internal logging method. Every loggable adapter is called;
// their errors are combined.
func (l *Logger) log(level core.Level, msg string) error {
	// Level check optimization - exit early before touching adapters
	if level < l.level {
		return nil
	}

	var err error
	for _, a := range l.adapters {
		if !a.IsLoggable(level, l.tag) {
			continue
		}
		err = multierr.Append(err, a.Log(level, l.tag, msg))
	}
	return err
}

// Verbose logs a verbose message
func (l *Logger) Verbose(msg string) error {
	return l.log(core.VerboseLevel, msg)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string) error {
	return l.log(core.DebugLevel, msg)
}

// Info logs an info message
func (l *Logger) Info(msg string) error {
	return l.log(core.InfoLevel, msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string) error {
	return l.log(core.WarnLevel, msg)
}

// Error logs an error message
func (l *Logger) Error(msg string) error {
	return l.log(core.ErrorLevel, msg)
}

// Assert logs a message for a condition that should never happen
func (l *Logger) Assert(msg string) error {
	return l.log(core.AssertLevel, msg)
}

// Verbosef logs a verbose message with formatting
func (l *Logger) Verbosef(format string, args ...interface{}) error {
	if core.VerboseLevel < l.level {
		return nil
	}
	return l.log(core.VerboseLevel, fmt.Sprintf(format, args...))
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) error {
	if core.DebugLevel < l.level {
		return nil
	}
	return l.log(core.DebugLevel, fmt.Sprintf(format, args...))
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) error {
	if core.InfoLevel < l.level {
		return nil
	}
	return l.log(core.InfoLevel, fmt.Sprintf(format, args...))
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) error {
	if core.WarnLevel < l.level {
		return nil
	}
	return l.log(core.WarnLevel, fmt.Sprintf(format, args...))
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) error {
	if core.ErrorLevel < l.level {
		return nil
	}
	return l.log(core.ErrorLevel, fmt.Sprintf(format, args...))
}

// Assertf logs an assert message with formatting
func (l *Logger) Assertf(format string, args ...interface{}) error {
	if core.AssertLevel < l.level {
		return nil
	}
	return l.log(core.AssertLevel, fmt.Sprintf(format, args...))
}

// Close closes every adapter that implements io.Closer
func (l *Logger) Close() error {
	var err error
	for _, a := range l.adapters {
		if c, ok := a.(io.Closer); ok {
			err = multierr.Append(err, c.Close())
		}
	}
	return err
}
