package formatter

import (
	"io"
	"iter"
	"slices"
	"strconv"

	"github.com/pkg/errors"

	"github.com/philipp01105/prettylog/core"
	"github.com/philipp01105/prettylog/sink"
)

// PrettyFormatter draws borders around a log message together with the
// calling goroutine and the call-site trail
type PrettyFormatter struct {
	methodCount    int
	methodOffset   int
	minStackOffset int
	showThreadInfo bool
	tag            string
	chunkSize      int
	libraryTypes   []string
	sink           sink.Sink
	source         core.StackSource
}

// NewPrettyFormatter creates a new pretty formatter. cfg is copied; missing
// sink, stack source, chunk size and library types are defaulted.
func NewPrettyFormatter(cfg Config) *PrettyFormatter {
	if cfg.Sink == nil {
		cfg.Sink = sink.NewConsoleSink()
	}
	if cfg.Source == nil {
		cfg.Source = core.RuntimeStackSource{}
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = DefaultChunkSize
	}
	if cfg.LibraryTypes == nil {
		cfg.LibraryTypes = DefaultLibraryTypes()
	}

	return &PrettyFormatter{
		methodCount:    max(cfg.MethodCount, 0),
		methodOffset:   max(cfg.MethodOffset, 0),
		minStackOffset: max(cfg.MinStackOffset, 0),
		showThreadInfo: cfg.ShowThreadInfo,
		tag:            cfg.Tag,
		chunkSize:      cfg.ChunkSize,
		libraryTypes:   slices.Clone(cfg.LibraryTypes),
		sink:           cfg.Sink,
		source:         cfg.Source,
	}
}

// Config returns a copy of the effective configuration
func (f *PrettyFormatter) Config() Config {
	return Config{
		MethodCount:    f.methodCount,
		MethodOffset:   f.methodOffset,
		MinStackOffset: f.minStackOffset,
		ShowThreadInfo: f.showThreadInfo,
		Tag:            f.tag,
		ChunkSize:      f.chunkSize,
		LibraryTypes:   slices.Clone(f.libraryTypes),
		Sink:           f.sink,
		Source:         f.source,
	}
}

// Log renders message and sends every line to the sink
func (f *PrettyFormatter) Log(level core.Level, tag, message string) error {
	return f.Format(core.NewRecord(level, tag, message))
}

// Format renders rec and sends every line to the sink, in order. The first
// sink error stops the block and is returned.
func (f *PrettyFormatter) Format(rec *core.Record) error {
	if rec == nil {
		return errors.WithStack(ErrNilRecord)
	}

	tag := MergeTag(f.tag, rec.Tag)
	for line := range f.Lines(rec) {
		if err := f.sink.Log(rec.Level, tag, line); err != nil {
			return errors.Wrapf(err, "formatter: emit %s line", rec.Level)
		}
	}
	return nil
}

// Close closes the sink if it implements io.Closer
func (f *PrettyFormatter) Close() error {
	if c, ok := f.sink.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Lines returns the rendered lines of rec. The stack is captured when the
// sequence is ranged over, so every iteration reflects its own call site.
// A nil record yields nothing.
func (f *PrettyFormatter) Lines(rec *core.Record) iter.Seq[string] {
	return func(yield func(string) bool) {
		if rec == nil {
			return
		}
		if !yield(TopBorder) {
			return
		}
		if !f.header(yield) {
			return
		}
		if !f.body(rec.Message, yield) {
			return
		}
		yield(BottomBorder)
	}
}

// header emits the thread line and the call-site trail, each followed by a divider
func (f *PrettyFormatter) header(yield func(string) bool) bool {
	if !f.showThreadInfo && f.methodCount == 0 {
		return true
	}

	stack := f.source.Capture()
	if f.showThreadInfo {
		if !yield(HorizontalLine + " Thread: " + stack.Thread) {
			return false
		}
		if !yield(MiddleBorder) {
			return false
		}
	}

	trace := stack.Frames
	offset, ok := LocateCallerOffset(trace, f.libraryTypes, f.minStackOffset)
	if !ok {
		return true
	}
	offset += f.methodOffset

	count := effectiveMethodCount(f.methodCount, offset, len(trace))
	if count == 0 {
		return true
	}

	level := ""
	for i := count; i >= 1; i-- {
		idx := i + offset
		if idx < 0 || idx >= len(trace) {
			continue
		}
		if !yield(callSiteLine(level, trace[idx])) {
			return false
		}
		level += callSiteIndent
	}
	return yield(MiddleBorder)
}

// body emits the message, chunked and split into display lines
func (f *PrettyFormatter) body(message string, yield func(string) bool) bool {
	for _, chunk := range Chunk(message, f.chunkSize) {
		for _, line := range SplitLines(chunk) {
			if !yield(HorizontalLine + " " + line) {
				return false
			}
		}
	}
	return true
}

func callSiteLine(level string, frame core.Frame) string {
	buf := getBuffer()
	buf.WriteString(HorizontalLine)
	buf.WriteByte(' ')
	buf.WriteString(level)
	buf.WriteString(frame.SimpleType())
	buf.WriteByte('.')
	buf.WriteString(frame.Method)
	buf.WriteString(" (")
	buf.WriteString(frame.File)
	buf.WriteByte(':')
	buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(frame.Line), 10))
	buf.WriteByte(')')
	line := buf.String()
	putBuffer(buf)
	return line
}
