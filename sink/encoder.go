package sink

import (
	"bytes"
	"sync"
	"time"

	"github.com/philipp01105/prettylog/core"
)

// Line is a single rendered line together with its metadata
type Line struct {
	Time  time.Time
	Level core.Level
	Tag   string
	Text  string
}

// Encoder serializes a line into a caller-provided buffer
type Encoder interface {
	// Encode appends the encoded line, including its terminator, to buf
	Encode(line *Line, buf *bytes.Buffer)
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
