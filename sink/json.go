package sink

import (
	"bytes"
	"time"
)

// JSONEncoder encodes each line as a single JSON object
type JSONEncoder struct {
	// TimestampFormat specifies the time layout (default: time.RFC3339Nano)
	TimestampFormat string
}

// NewJSONEncoder creates a new JSON encoder
func NewJSONEncoder() *JSONEncoder {
	return &JSONEncoder{TimestampFormat: time.RFC3339Nano}
}

// Encode builds JSON manually into the buffer without allocations
func (e *JSONEncoder) Encode(line *Line, buf *bytes.Buffer) {
	layout := e.TimestampFormat
	if layout == "" {
		layout = time.RFC3339Nano
	}

	buf.WriteString(`{"time":"`)
	buf.Write(line.Time.AppendFormat(buf.AvailableBuffer(), layout))

	buf.WriteString(`","level":"`)
	buf.WriteString(line.Level.String())

	buf.WriteString(`","tag":"`)
	appendJSONString(buf, tagOrDefault(line.Tag))

	buf.WriteString(`","line":"`)
	appendJSONString(buf, line.Text)

	buf.WriteString("\"}\n")
}

// appendJSONString writes a JSON-escaped string (without surrounding quotes) to the buffer
func appendJSONString(buf *bytes.Buffer, s string) {
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		// Flush unescaped prefix
		if start < i {
			buf.WriteString(s[start:i])
		}
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			buf.WriteString(`\u00`)
			buf.WriteByte(hexChars[c>>4])
			buf.WriteByte(hexChars[c&0x0f])
		}
		start = i + 1
	}
	if start < len(s) {
		buf.WriteString(s[start:])
	}
}

var hexChars = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}
