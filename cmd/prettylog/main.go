package main

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	log "github.com/sirupsen/logrus"

	"github.com/philipp01105/prettylog/core"
	"github.com/philipp01105/prettylog/formatter"
	"github.com/philipp01105/prettylog/logger"
)

type options struct {
	MethodCount  int    `long:"method-count" env:"PRETTYLOG_METHOD_COUNT" default:"2" description:"number of call-site frames to print"`
	MethodOffset int    `long:"method-offset" env:"PRETTYLOG_METHOD_OFFSET" default:"0" description:"number of caller frames to skip"`
	NoThreadInfo bool   `long:"no-thread-info" description:"hide the goroutine line"`
	Tag          string `long:"tag" env:"PRETTYLOG_TAG" default:"PRETTY_LOGGER" description:"default display tag"`
	CallTag      string `short:"t" long:"call-tag" description:"per-call tag merged into the display tag"`
	Level        string `short:"l" long:"level" env:"PRETTYLOG_LEVEL" default:"debug" description:"level of the rendered records"`
	ChunkSize    int    `long:"chunk-size" env:"PRETTYLOG_CHUNK_SIZE" default:"4000" description:"byte ceiling of a single message chunk"`
	Sink         string `long:"sink" env:"PRETTYLOG_SINK" default:"text" choice:"text" choice:"json" choice:"logrus" choice:"zap" choice:"zerolog" choice:"slog" choice:"multi" description:"destination of rendered lines"`
	Format       string `long:"format" default:"plain" choice:"plain" choice:"json" choice:"xml" description:"how the message is interpreted"`
	LogLevel     string `long:"log-level" default:"info" description:"log level of the command itself"`
}

func main() {
	opts, args := getCLIArgs()
	if lvl, err := log.ParseLevel(opts.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	l, err := newLogger(opts, os.Stdout)
	if err != nil {
		log.WithError(err).Fatal("Failed to build logger")
	}
	defer func() {
		if err := l.Close(); err != nil {
			log.WithError(err).Warn("Failed to close logger")
		}
	}()

	if len(args) > 0 {
		if err := emit(l, opts, strings.Join(args, " ")); err != nil {
			log.WithError(err).Error("Failed to log message")
		}
		return
	}

	log.Debug("Reading messages from stdin")
	if err := emitLines(l, opts, os.Stdin); err != nil {
		log.WithError(err).Error("Failed to log stdin")
	}
}

func getCLIArgs() (options, []string) {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	args, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		log.WithError(err).Fatal("Failed to parse command line arguments:", os.Args)
	}

	return opts, args
}

// newLogger builds the logger described by opts, rendering into out
func newLogger(opts options, out io.Writer) (*logger.Logger, error) {
	s, err := newSink(opts.Sink, out)
	if err != nil {
		return nil, err
	}

	f := formatter.NewBuilder().
		WithMethodCount(opts.MethodCount).
		WithMethodOffset(opts.MethodOffset).
		WithThreadInfo(!opts.NoThreadInfo).
		WithTag(opts.Tag).
		WithChunkSize(opts.ChunkSize).
		WithSink(s).
		Build()

	return logger.NewBuilder().WithStrategy(f).Build(), nil
}

// emit logs one message the way opts.Format asks for
func emit(l *logger.Logger, opts options, msg string) error {
	l = l.T(opts.CallTag)
	switch opts.Format {
	case "json":
		return l.JSON(msg)
	case "xml":
		return l.XML(msg)
	default:
		return l.Log(core.ParseLevel(opts.Level), msg)
	}
}

// emitLines logs every line of r as its own record. json and xml input is
// read whole.
func emitLines(l *logger.Logger, opts options, r io.Reader) error {
	if opts.Format != "plain" {
		b, err := io.ReadAll(r)
		if err != nil {
			return errors.Wrap(err, "read input")
		}
		return emit(l, opts, string(b))
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		if err := emit(l, opts, scanner.Text()); err != nil {
			return err
		}
	}
	return errors.Wrap(scanner.Err(), "read input")
}
