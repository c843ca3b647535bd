package core

import "strings"

// Level represents the priority of a log record
type Level int8

const (
	// VerboseLevel for the most detailed tracing output
	VerboseLevel Level = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// AssertLevel for conditions that should never happen
	AssertLevel
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case VerboseLevel:
		return "VERBOSE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case AssertLevel:
		return "ASSERT"
	default:
		return "UNKNOWN"
	}
}

// Letter returns the single-letter logcat form of the level
func (l Level) Letter() byte {
	if l < VerboseLevel || l > AssertLevel {
		return '?'
	}
	return "VDIWEA"[l]
}

// ParseLevel converts a string to a Level. Unknown names map to DebugLevel.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "VERBOSE", "V", "TRACE":
		return VerboseLevel
	case "DEBUG", "D":
		return DebugLevel
	case "INFO", "I":
		return InfoLevel
	case "WARN", "WARNING", "W":
		return WarnLevel
	case "ERROR", "E":
		return ErrorLevel
	case "ASSERT", "A", "WTF":
		return AssertLevel
	default:
		return DebugLevel
	}
}
