package sink

import (
	"bytes"
)

// DefaultTextTimestampFormat mirrors the logcat "threadtime" date layout
const DefaultTextTimestampFormat = "01-02 15:04:05.000"

// TextEncoder encodes lines in logcat style:
//
//	01-02 15:04:05.000 D/PRETTY_LOGGER: │ hello
type TextEncoder struct {
	// TimestampFormat specifies the time layout (default: DefaultTextTimestampFormat)
	TimestampFormat string
	// OmitTime drops the timestamp column
	OmitTime bool
}

// NewTextEncoder creates a new text encoder
func NewTextEncoder() *TextEncoder {
	return &TextEncoder{TimestampFormat: DefaultTextTimestampFormat}
}

// Encode writes the line into buf
func (e *TextEncoder) Encode(line *Line, buf *bytes.Buffer) {
	if !e.OmitTime {
		layout := e.TimestampFormat
		if layout == "" {
			layout = DefaultTextTimestampFormat
		}
		// Use AppendFormat to avoid a string allocation
		buf.Write(line.Time.AppendFormat(buf.AvailableBuffer(), layout))
		buf.WriteByte(' ')
	}

	buf.WriteByte(line.Level.Letter())
	buf.WriteByte('/')
	buf.WriteString(tagOrDefault(line.Tag))
	buf.WriteString(": ")
	buf.WriteString(line.Text)
	buf.WriteByte('\n')
}
