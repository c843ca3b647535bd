package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/prettylog/core"
)

func parseOptions(t *testing.T, args ...string) (options, []string) {
	t.Helper()
	var opts options
	rest, err := flags.NewParser(&opts, flags.None).ParseArgs(args)
	require.NoError(t, err)
	return opts, rest
}

func TestOptionsDefaults(t *testing.T) {
	opts, rest := parseOptions(t, "hello", "world")

	assert.Equal(t, []string{"hello", "world"}, rest)
	assert.Equal(t, 2, opts.MethodCount)
	assert.Equal(t, 0, opts.MethodOffset)
	assert.False(t, opts.NoThreadInfo)
	assert.Equal(t, "PRETTY_LOGGER", opts.Tag)
	assert.Equal(t, 4000, opts.ChunkSize)
	assert.Equal(t, "text", opts.Sink)
	assert.Equal(t, "plain", opts.Format)
}

func TestOptionsRejectUnknownSink(t *testing.T) {
	var opts options
	_, err := flags.NewParser(&opts, flags.None).ParseArgs([]string{"--sink", "syslog"})
	assert.Error(t, err)
}

func TestNewSink(t *testing.T) {
	for _, kind := range []string{"text", "json", "multi", "logrus", "zap", "zerolog", "slog"} {
		t.Run(kind, func(t *testing.T) {
			var buf bytes.Buffer
			s, err := newSink(kind, &buf)
			require.NoError(t, err)

			require.NoError(t, s.Log(core.InfoLevel, "CLI", "sink check"))
			assert.Contains(t, buf.String(), "sink check")
		})
	}

	_, err := newSink("syslog", &bytes.Buffer{})
	assert.Error(t, err)
}

func TestEmit(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
		want []string
	}{
		{
			name: "plain",
			args: []string{"--no-thread-info", "--method-count", "0", "-t", "NET", "-l", "warn"},
			msg:  "link down",
			want: []string{"W/PRETTY_LOGGER-NET: │ link down"},
		},
		{
			name: "json",
			args: []string{"--no-thread-info", "--method-count", "0", "--format", "json"},
			msg:  `{"a":1}`,
			want: []string{"D/PRETTY_LOGGER: │   \"a\": 1"},
		},
		{
			name: "xml",
			args: []string{"--no-thread-info", "--method-count", "0", "--format", "xml"},
			msg:  `<a><b/></a>`,
			want: []string{"D/PRETTY_LOGGER: │   <b></b>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, _ := parseOptions(t, tt.args...)
			var buf bytes.Buffer
			l, err := newLogger(opts, &buf)
			require.NoError(t, err)

			require.NoError(t, emit(l, opts, tt.msg))
			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestEmitLines(t *testing.T) {
	opts, _ := parseOptions(t, "--no-thread-info", "--method-count", "0", "--tag", "CLI")
	var buf bytes.Buffer
	l, err := newLogger(opts, &buf)
	require.NoError(t, err)

	require.NoError(t, emitLines(l, opts, strings.NewReader("first\nsecond\n")))

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "┌"), "one block per input line")
	assert.Contains(t, out, "D/CLI: │ first")
	assert.Contains(t, out, "D/CLI: │ second")
}
