package sink

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"github.com/philipp01105/prettylog/core"
)

// SlogSink forwards lines to a log/slog handler
type SlogSink struct {
	handler slog.Handler
}

// NewSlogSink creates a sink writing to h. A nil handler uses slog.Default().Handler().
func NewSlogSink(h slog.Handler) *SlogSink {
	if h == nil {
		h = slog.Default().Handler()
	}
	return &SlogSink{handler: h}
}

// Log builds a slog.Record for the line and passes it to the handler
func (s *SlogSink) Log(level core.Level, tag, line string) error {
	ctx := context.Background()
	lvl := SlogLevel(level)
	if !s.handler.Enabled(ctx, lvl) {
		return nil
	}

	r := slog.NewRecord(time.Now(), lvl, line, 0)
	r.AddAttrs(slog.String("tag", tagOrDefault(tag)))
	if err := s.handler.Handle(ctx, r); err != nil {
		return errors.Wrap(err, "sink: slog handle")
	}
	return nil
}

// SlogLevel converts a core.Level to a slog.Level
func SlogLevel(level core.Level) slog.Level {
	switch level {
	case core.VerboseLevel:
		return slog.LevelDebug - 4
	case core.DebugLevel:
		return slog.LevelDebug
	case core.InfoLevel:
		return slog.LevelInfo
	case core.WarnLevel:
		return slog.LevelWarn
	case core.ErrorLevel:
		return slog.LevelError
	default:
		return slog.LevelError + 4
	}
}

// LevelFromSlog converts a slog.Level to a core.Level
func LevelFromSlog(level slog.Level) core.Level {
	switch {
	case level > slog.LevelError:
		return core.AssertLevel
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.VerboseLevel
	}
}
