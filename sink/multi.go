package sink

import (
	"io"

	"go.uber.org/multierr"

	"github.com/philipp01105/prettylog/core"
)

// MultiSink sends each line to multiple sinks
type MultiSink struct {
	sinks []Sink
}

// NewMultiSink creates a new multi-sink
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

// Log sends the line to every sink, in order. A failing sink does not stop
// the others; all failures are combined into the returned error.
func (m *MultiSink) Log(level core.Level, tag, line string) error {
	var err error
	for _, s := range m.sinks {
		err = multierr.Append(err, s.Log(level, tag, line))
	}
	return err
}

// Close closes every sink that implements io.Closer
func (m *MultiSink) Close() error {
	var err error
	for _, s := range m.sinks {
		if c, ok := s.(io.Closer); ok {
			err = multierr.Append(err, c.Close())
		}
	}
	return err
}
