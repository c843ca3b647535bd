package logger

import (
	"io"

	"github.com/philipp01105/prettylog/core"
	"github.com/philipp01105/prettylog/formatter"
)

// Adapter connects a Logger to a format strategy and decides which
// records the strategy receives
type Adapter interface {
	// IsLoggable reports whether a record with this level and tag should be logged
	IsLoggable(level core.Level, tag string) bool
	// Log passes the record on to the format strategy
	Log(level core.Level, tag, message string) error
}

// AdapterOption configures an adapter created by NewAdapter
type AdapterOption func(*formatAdapter)

// WithMinLevel drops records below level
func WithMinLevel(level core.Level) AdapterOption {
	return func(a *formatAdapter) {
		a.minLevel = level
	}
}

// WithFilter drops records for which fn returns false
func WithFilter(fn func(level core.Level, tag string) bool) AdapterOption {
	return func(a *formatAdapter) {
		a.filter = fn
	}
}

type formatAdapter struct {
	strategy formatter.FormatStrategy
	minLevel core.Level
	filter   func(level core.Level, tag string) bool
}

// NewAdapter creates an adapter for the given format strategy. Without
// options every record is loggable.
func NewAdapter(strategy formatter.FormatStrategy, opts ...AdapterOption) Adapter {
	a := &formatAdapter{
		strategy: strategy,
		minLevel: core.VerboseLevel,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *formatAdapter) IsLoggable(level core.Level, tag string) bool {
	if level < a.minLevel {
		return false
	}
	if a.filter != nil {
		return a.filter(level, tag)
	}
	return true
}

func (a *formatAdapter) Log(level core.Level, tag, message string) error {
	return a.strategy.Log(level, tag, message)
}

func (a *formatAdapter) Close() error {
	if c, ok := a.strategy.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
