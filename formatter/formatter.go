package formatter

import (
	"bytes"
	"reflect"
	"sync"

	"github.com/pkg/errors"

	"github.com/philipp01105/prettylog/core"
	"github.com/philipp01105/prettylog/sink"
)

// FormatStrategy decides how a log call is rendered and where the result goes
type FormatStrategy interface {
	// Log renders message under the given level and per-call tag
	Log(level core.Level, tag, message string) error
}

// ErrNilRecord is returned when Format is called without a record
var ErrNilRecord = errors.New("formatter: nil record")

// DefaultTag is the formatter-wide tag used when none is configured
const DefaultTag = "PRETTY_LOGGER"

const loggerPackage = "github.com/philipp01105/prettylog/logger"

// Config holds formatter configuration. The zero value of each field is
// meaningful, so start from DefaultConfig and override what you need.
type Config struct {
	// MethodCount is the number of call-site frames to print (default: 2)
	MethodCount int
	// MethodOffset skips additional caller frames, e.g. an application's
	// own logging wrapper (default: 0)
	MethodOffset int
	// MinStackOffset is the first stack index inspected when searching for
	// the caller, relative to the frame that captured the stack (default: 0)
	MinStackOffset int
	// ShowThreadInfo prints the calling goroutine (default: true)
	ShowThreadInfo bool
	// Tag is the default display tag (default: DefaultTag)
	Tag string
	// ChunkSize is the byte ceiling of a single message chunk (default: DefaultChunkSize)
	ChunkSize int
	// LibraryTypes are declaring types treated as logging internals
	// (default: DefaultLibraryTypes())
	LibraryTypes []string
	// Sink receives every rendered line (default: sink.NewConsoleSink())
	Sink sink.Sink
	// Source captures the call stack (default: core.RuntimeStackSource{})
	Source core.StackSource
}

// DefaultConfig returns the default formatter configuration
func DefaultConfig() Config {
	return Config{
		MethodCount:    2,
		ShowThreadInfo: true,
		Tag:            DefaultTag,
		ChunkSize:      DefaultChunkSize,
	}
}

// DefaultLibraryTypes returns the declaring types of the formatter and of
// the logger facade, whose frames are never reported as the caller.
func DefaultLibraryTypes() []string {
	return []string{
		typeName(PrettyFormatter{}),
		loggerPackage + ".Logger",
		loggerPackage + ".formatAdapter",
		loggerPackage + ".SlogHandler",
		"log/slog",
		"log/slog.Logger",
	}
}

func typeName(v interface{}) string {
	t := reflect.TypeOf(v)
	return t.PkgPath() + "." + t.Name()
}

// bufferPool is a pool of bytes.Buffer used to assemble header lines
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(128)
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
