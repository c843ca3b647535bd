package sink

import (
	"github.com/rs/zerolog"

	"github.com/philipp01105/prettylog/core"
)

// ZerologSink forwards lines to a zerolog.Logger
type ZerologSink struct {
	logger zerolog.Logger
}

// NewZerologSink creates a sink writing to l
func NewZerologSink(l zerolog.Logger) *ZerologSink {
	return &ZerologSink{logger: l}
}

// Log writes the line as the message of a zerolog event with a "tag" field.
// zerolog reports write failures through its ErrorHandler, not to the caller.
func (s *ZerologSink) Log(level core.Level, tag, line string) error {
	s.logger.WithLevel(zerologLevel(level)).Str("tag", tagOrDefault(tag)).Msg(line)
	return nil
}

func zerologLevel(level core.Level) zerolog.Level {
	switch level {
	case core.VerboseLevel:
		return zerolog.TraceLevel
	case core.DebugLevel:
		return zerolog.DebugLevel
	case core.InfoLevel:
		return zerolog.InfoLevel
	case core.WarnLevel:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
