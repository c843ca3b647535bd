package sink

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/philipp01105/prettylog/core"
)

// WriterSink writes encoded lines to an io.Writer
type WriterSink struct {
	writer  io.Writer
	encoder Encoder
	clock   func() time.Time
	mu      sync.Mutex
	stats   *Stats
}

// WriterConfig holds configuration for the writer sink
type WriterConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Encoder to use (default: TextEncoder)
	Encoder Encoder
	// Clock stamps each line (default: core.CoarseNow with the coarse clock started)
	Clock func() time.Time
}

// NewWriterSink creates a new writer sink
func NewWriterSink(cfg WriterConfig) *WriterSink {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Encoder == nil {
		cfg.Encoder = NewTextEncoder()
	}
	if cfg.Clock == nil {
		core.StartCoarseClock()
		cfg.Clock = core.CoarseNow
	}

	return &WriterSink{
		writer:  cfg.Writer,
		encoder: cfg.Encoder,
		clock:   cfg.Clock,
		stats:   NewStats(),
	}
}

// NewConsoleSink returns a text sink on stdout, the default sink of the formatter
func NewConsoleSink() *WriterSink {
	return NewWriterSink(WriterConfig{})
}

// Log encodes and writes a single line
func (s *WriterSink) Log(level core.Level, tag, text string) error {
	line := Line{Time: s.clock(), Level: level, Tag: tag, Text: text}

	buf := getBuffer()
	s.encoder.Encode(&line, buf)

	s.mu.Lock()
	_, err := s.writer.Write(buf.Bytes())
	s.mu.Unlock()
	putBuffer(buf)

	if err != nil {
		s.stats.IncrementFailed(level)
		return errors.Wrap(err, "sink: write line")
	}
	s.stats.IncrementProcessed(level)
	return nil
}

// Stats returns a snapshot of the current statistics
func (s *WriterSink) Stats() Snapshot {
	return s.stats.GetSnapshot()
}

// Close closes the underlying writer if it is closable and not a standard stream
func (s *WriterSink) Close() error {
	if s.writer == os.Stdout || s.writer == os.Stderr {
		return nil
	}
	if c, ok := s.writer.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
