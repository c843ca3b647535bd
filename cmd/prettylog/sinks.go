package main

import (
	"io"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/prettylog/core"
	"github.com/philipp01105/prettylog/sink"
)

// newSink returns the sink named by kind, writing to out
func newSink(kind string, out io.Writer) (sink.Sink, error) {
	switch kind {
	case "", "text":
		core.StartCoarseClock()
		return sink.NewWriterSink(sink.WriterConfig{Writer: out}), nil
	case "json":
		core.StartCoarseClock()
		return sink.NewWriterSink(sink.WriterConfig{Writer: out, Encoder: sink.NewJSONEncoder()}), nil
	case "multi":
		text, _ := newSink("text", out)
		json, _ := newSink("json", out)
		return sink.NewMultiSink(text, json), nil
	case "logrus":
		l := logrus.New()
		l.SetOutput(out)
		l.SetLevel(logrus.TraceLevel)
		return sink.NewLogrusSink(l), nil
	case "zap":
		enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		// hide (*os.File).Sync, which fails on terminals and pipes
		ws := zapcore.AddSync(struct{ io.Writer }{out})
		c := zapcore.NewCore(enc, ws, zapcore.DebugLevel)
		return sink.NewZapSink(zap.New(c)), nil
	case "zerolog":
		l := zerolog.New(zerolog.ConsoleWriter{Out: out, NoColor: true}).
			Level(zerolog.TraceLevel).
			With().Timestamp().Logger()
		return sink.NewZerologSink(l), nil
	case "slog":
		h := slog.NewTextHandler(out, &slog.HandlerOptions{Level: sink.SlogLevel(core.VerboseLevel)})
		return sink.NewSlogSink(h), nil
	default:
		return nil, errors.Errorf("unknown sink %q", kind)
	}
}
