package sink

import (
	"github.com/sirupsen/logrus"

	"github.com/philipp01105/prettylog/core"
)

// LogrusSink forwards lines to a logrus.Logger
type LogrusSink struct {
	logger *logrus.Logger
}

// NewLogrusSink creates a sink writing to l. A nil logger uses logrus.StandardLogger.
func NewLogrusSink(l *logrus.Logger) *LogrusSink {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &LogrusSink{logger: l}
}

// Log writes the line as a logrus entry with a "tag" field
func (s *LogrusSink) Log(level core.Level, tag, line string) error {
	s.logger.WithField("tag", tagOrDefault(tag)).Log(logrusLevel(level), line)
	return nil
}

// logrusLevel never returns Fatal or Panic so the sink cannot exit or panic
func logrusLevel(level core.Level) logrus.Level {
	switch level {
	case core.VerboseLevel:
		return logrus.TraceLevel
	case core.DebugLevel:
		return logrus.DebugLevel
	case core.InfoLevel:
		return logrus.InfoLevel
	case core.WarnLevel:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}
