package formatter

import (
	"github.com/philipp01105/prettylog/core"
	"github.com/philipp01105/prettylog/sink"
)

// Builder provides a fluent API for building PrettyFormatter instances
type Builder struct {
	cfg Config
}

// NewBuilder creates a new builder starting from DefaultConfig
func NewBuilder() *Builder {
	return &Builder{cfg: DefaultConfig()}
}

// WithMethodCount sets the number of call-site frames to print
func (b *Builder) WithMethodCount(n int) *Builder {
	b.cfg.MethodCount = n
	return b
}

// WithMethodOffset sets the number of caller frames to skip
func (b *Builder) WithMethodOffset(n int) *Builder {
	b.cfg.MethodOffset = n
	return b
}

// WithMinStackOffset sets the first stack index searched for the caller
func (b *Builder) WithMinStackOffset(n int) *Builder {
	b.cfg.MinStackOffset = n
	return b
}

// WithThreadInfo enables or disables the thread line
func (b *Builder) WithThreadInfo(enabled bool) *Builder {
	b.cfg.ShowThreadInfo = enabled
	return b
}

// WithTag sets the default display tag
func (b *Builder) WithTag(tag string) *Builder {
	b.cfg.Tag = tag
	return b
}

// WithChunkSize sets the byte ceiling of a message chunk
func (b *Builder) WithChunkSize(n int) *Builder {
	b.cfg.ChunkSize = n
	return b
}

// WithLibraryTypes adds declaring types that are never reported as the caller
func (b *Builder) WithLibraryTypes(types ...string) *Builder {
	if b.cfg.LibraryTypes == nil {
		b.cfg.LibraryTypes = DefaultLibraryTypes()
	}
	b.cfg.LibraryTypes = append(b.cfg.LibraryTypes, types...)
	return b
}

// WithSink sets the sink
func (b *Builder) WithSink(s sink.Sink) *Builder {
	b.cfg.Sink = s
	return b
}

// WithStackSource sets the stack source
func (b *Builder) WithStackSource(src core.StackSource) *Builder {
	b.cfg.Source = src
	return b
}

// Build creates the PrettyFormatter instance
func (b *Builder) Build() *PrettyFormatter {
	return NewPrettyFormatter(b.cfg)
}
