// Package formatter renders log records into bordered, multi-line blocks.
//
// PrettyFormatter is the format strategy. For every record it emits,
// line by line, to a sink.Sink:
//
//	┌────────────────────────────────────────────
//	│ Thread: goroutine 1
//	├┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄
//	│ main.main (main.go:12)
//	│    Service.Handle (service.go:40)
//	├┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┄
//	│ message
//	└────────────────────────────────────────────
//
// The call-site trail is taken from a core.StackSource. The formatter
// skips MinStackOffset frames, then every frame whose declaring type is
// one of the configured library types (the formatter itself and the
// logger facade), then MethodOffset more frames that the embedding
// application considers uninteresting. MethodCount frames after that
// are printed, outermost first.
//
// Messages longer than ChunkSize bytes are split into chunks that never
// cut a UTF-8 sequence. Every chunk is further split on newlines so
// that no emitted line contains a line break.
//
// A PrettyFormatter is immutable once constructed and safe for
// concurrent use. Rendering is synchronous and unbuffered: each line
// reaches the sink before the next one is produced, and the first sink
// error aborts the block and is returned to the caller.
package formatter
