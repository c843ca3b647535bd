package logger

import (
	"github.com/philipp01105/prettylog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	VerboseLevel = core.VerboseLevel
	DebugLevel   = core.DebugLevel
	InfoLevel    = core.InfoLevel
	WarnLevel    = core.WarnLevel
	ErrorLevel   = core.ErrorLevel
	AssertLevel  = core.AssertLevel
)

// ParseLevel converts a string to a Level
func ParseLevel(s string) Level {
	return core.ParseLevel(s)
}
