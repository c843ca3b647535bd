package sink

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/prettylog/core"
)

// ZapSink forwards lines to a zap.Logger
type ZapSink struct {
	logger *zap.Logger
}

// NewZapSink creates a sink writing to l. A nil logger falls back to zap.NewNop.
func NewZapSink(l *zap.Logger) *ZapSink {
	if l == nil {
		l = zap.NewNop()
	}
	return &ZapSink{logger: l}
}

// Log writes the line as the message of a zap entry with a "tag" field.
// zap reports write failures to its ErrorOutput, not to the caller.
func (s *ZapSink) Log(level core.Level, tag, line string) error {
	if ce := s.logger.Check(zapLevel(level), line); ce != nil {
		ce.Write(zap.String("tag", tagOrDefault(tag)))
	}
	return nil
}

// Close flushes the logger
func (s *ZapSink) Close() error {
	return s.logger.Sync()
}

// zapLevel never returns DPanic or above so the sink cannot panic or exit
func zapLevel(level core.Level) zapcore.Level {
	switch level {
	case core.VerboseLevel, core.DebugLevel:
		return zapcore.DebugLevel
	case core.InfoLevel:
		return zapcore.InfoLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
