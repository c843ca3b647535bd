package logger

import (
	"context"
	"log/slog"
	"strings"

	"github.com/philipp01105/prettylog/sink"
)

// TagKey is the slog attribute key whose value becomes the per-call tag
const TagKey = "tag"

// SlogHandler is an adapter that implements slog.Handler on top of a Logger.
// This allows the pretty pipeline to be used as a drop-in handler for log/slog.
type SlogHandler struct {
	logger *Logger
	attrs  []string
	tag    string
	group  string
}

// NewSlogHandler creates a new slog.Handler adapter wrapping the given Logger.
func NewSlogHandler(l *Logger) *SlogHandler {
	return &SlogHandler{logger: l, tag: l.tag}
}

// Enabled reports whether the logger handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return sink.LevelFromSlog(level) >= s.logger.level
}

// Handle renders the record message followed by one key=value line per attribute.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	tag := s.tag
	lines := make([]string, 0, 1+len(s.attrs)+record.NumAttrs())
	lines = append(lines, record.Message)
	lines = append(lines, s.attrs...)

	record.Attrs(func(a slog.Attr) bool {
		if s.group == "" && a.Key == TagKey {
			tag = a.Value.Resolve().String()
			return true
		}
		lines = appendAttr(lines, s.group, a)
		return true
	})

	return s.logger.T(tag).log(sink.LevelFromSlog(record.Level), strings.Join(lines, "\n"))
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h := s.clone()
	for _, a := range attrs {
		if s.group == "" && a.Key == TagKey {
			h.tag = a.Value.Resolve().String()
			continue
		}
		h.attrs = appendAttr(h.attrs, s.group, a)
	}
	return h
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	h := s.clone()
	if s.group != "" {
		h.group = s.group + "." + name
	} else {
		h.group = name
	}
	return h
}

func (s *SlogHandler) clone() *SlogHandler {
	attrs := make([]string, len(s.attrs))
	copy(attrs, s.attrs)
	return &SlogHandler{
		logger: s.logger,
		attrs:  attrs,
		tag:    s.tag,
		group:  s.group,
	}
}

// appendAttr appends a as key=value, prepending the group prefix if present.
// Group attributes are flattened.
func appendAttr(lines []string, group string, a slog.Attr) []string {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return lines
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, child := range a.Value.Group() {
			lines = appendAttr(lines, key, child)
		}
		return lines
	}
	return append(lines, key+"="+a.Value.String())
}
