// Package sink provides the Sink interface and its built-in
// implementations for emitting rendered log lines.
//
// A format strategy renders one log call into several lines and calls
// Sink.Log once per line, in order. Sinks never see a whole block; they
// receive the record's level, the display tag and a single line of text
// with no embedded newline.
//
// Built-in sinks:
//
//   - WriterSink writes each line to any io.Writer (default: stdout)
//     through an Encoder. TextEncoder produces logcat-style lines,
//     JSONEncoder produces one JSON object per line.
//   - MultiSink fans out each line to several child sinks and reports
//     every child failure.
//   - ZapSink, ZerologSink and LogrusSink forward lines to an existing
//     zap, zerolog or logrus logger.
//   - SlogSink forwards lines to a log/slog handler.
//
// Sinks are responsible for their own concurrency. WriterSink serializes
// writes with a mutex so lines of concurrent blocks are never torn, and
// tracks processed and failed line counts via Stats.
//
// An empty tag is replaced with NoTag by every sink.
package sink
