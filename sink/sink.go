package sink

import (
	"github.com/philipp01105/prettylog/core"
)

// NoTag is the tag used by sinks when a line carries no tag
const NoTag = "NO_TAG"

// Sink defines the interface for log line outputs
type Sink interface {
	// Log emits a single rendered line
	Log(level core.Level, tag, line string) error
}

// Func adapts a plain function to the Sink interface
type Func func(level core.Level, tag, line string) error

// Log calls f
func (f Func) Log(level core.Level, tag, line string) error {
	return f(level, tag, line)
}

func tagOrDefault(tag string) string {
	if tag == "" {
		return NoTag
	}
	return tag
}
