package core

// Record is a single log call as seen by a format strategy.
// An empty Message is valid and renders no body lines.
type Record struct {
	Level   Level
	Tag     string
	Message string
}

// NewRecord returns a record for the given level, override tag and message
func NewRecord(level Level, tag, message string) *Record {
	return &Record{Level: level, Tag: tag, Message: message}
}
