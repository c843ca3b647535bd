package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/philipp01105/prettylog/core"
	"github.com/philipp01105/prettylog/logger"
)

type record struct {
	level   core.Level
	tag     string
	message string
}

type recordingStrategy struct {
	records []record
	err     error
	closed  bool
}

func (s *recordingStrategy) Log(level core.Level, tag, message string) error {
	s.records = append(s.records, record{level, tag, message})
	return s.err
}

func (s *recordingStrategy) Close() error {
	s.closed = true
	return nil
}

func newTestLogger(opts ...logger.AdapterOption) (*logger.Logger, *recordingStrategy) {
	s := &recordingStrategy{}
	return logger.NewBuilder().WithStrategy(s, opts...).Build(), s
}

func TestLogger_Levels(t *testing.T) {
	l, s := newTestLogger()

	require.NoError(t, l.Verbose("v"))
	require.NoError(t, l.Debug("d"))
	require.NoError(t, l.Info("i"))
	require.NoError(t, l.Warn("w"))
	require.NoError(t, l.Error("e"))
	require.NoError(t, l.Assert("a"))
	require.NoError(t, l.Log(logger.InfoLevel, "log"))

	want := []record{
		{logger.VerboseLevel, "", "v"},
		{logger.DebugLevel, "", "d"},
		{logger.InfoLevel, "", "i"},
		{logger.WarnLevel, "", "w"},
		{logger.ErrorLevel, "", "e"},
		{logger.AssertLevel, "", "a"},
		{logger.InfoLevel, "", "log"},
	}
	assert.Equal(t, want, s.records)
}

func TestLogger_FormattedLevels(t *testing.T) {
	l, s := newTestLogger()

	require.NoError(t, l.Verbosef("v%d", 1))
	require.NoError(t, l.Debugf("d%d", 2))
	require.NoError(t, l.Infof("i%d", 3))
	require.NoError(t, l.Warnf("w%d", 4))
	require.NoError(t, l.Errorf("e%d", 5))
	require.NoError(t, l.Assertf("a%d", 6))

	var messages []string
	for _, r := range s.records {
		messages = append(messages, r.message)
	}
	assert.Equal(t, []string{"v1", "d2", "i3", "w4", "e5", "a6"}, messages)
}

func TestLogger_LevelFiltering(t *testing.T) {
	s := &recordingStrategy{}
	l := logger.NewBuilder().
		WithStrategy(s).
		WithLevel(logger.WarnLevel).
		Build()

	require.NoError(t, l.Debug("dropped"))
	require.NoError(t, l.Infof("dropped %s", "too"))
	require.NoError(t, l.Warn("kept"))

	require.Len(t, s.records, 1)
	assert.Equal(t, "kept", s.records[0].message)
}

func TestLogger_FormattedLevelFiltering(t *testing.T) {
	s := &recordingStrategy{}
	l := logger.NewBuilder().
		WithStrategy(s).
		WithLevel(logger.AssertLevel + 1).
		Build()

	require.NoError(t, l.Verbosef("%s", "v"))
	require.NoError(t, l.Debugf("%s", "d"))
	require.NoError(t, l.Infof("%s", "i"))
	require.NoError(t, l.Warnf("%s", "w"))
	require.NoError(t, l.Errorf("%s", "e"))
	require.NoError(t, l.Assertf("%s", "a"))

	assert.Empty(t, s.records)
}

func TestLogger_AdapterOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []logger.AdapterOption
		want []string
	}{
		{
			name: "no options",
			want: []string{"debug", "info", "net"},
		},
		{
			name: "min level",
			opts: []logger.AdapterOption{logger.WithMinLevel(logger.InfoLevel)},
			want: []string{"info", "net"},
		},
		{
			name: "filter by tag",
			opts: []logger.AdapterOption{logger.WithFilter(func(_ core.Level, tag string) bool {
				return tag == "NET"
			})},
			want: []string{"net"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, s := newTestLogger(tt.opts...)
			require.NoError(t, l.Debug("debug"))
			require.NoError(t, l.Info("info"))
			require.NoError(t, l.T("NET").Info("net"))

			var got []string
			for _, r := range s.records {
				got = append(got, r.message)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogger_T(t *testing.T) {
	l, s := newTestLogger()

	tagged := l.T("HTTP")
	require.NoError(t, tagged.Info("tagged"))
	require.NoError(t, l.Info("plain"))

	require.Len(t, s.records, 2)
	assert.Equal(t, "HTTP", s.records[0].tag)
	assert.Equal(t, "", s.records[1].tag)
	assert.Equal(t, "HTTP", tagged.Tag())
	assert.Equal(t, "", l.Tag())
}

func TestLogger_CombinesAdapterErrors(t *testing.T) {
	first := &recordingStrategy{err: errors.New("first")}
	second := &recordingStrategy{}
	third := &recordingStrategy{err: errors.New("third")}

	l := logger.NewBuilder().
		WithStrategy(first).
		WithStrategy(second).
		WithStrategy(third).
		Build()

	err := l.Error("boom")
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)
	assert.Len(t, second.records, 1, "every adapter receives the record")
}

func TestLogger_BuildIsolatesAdapters(t *testing.T) {
	first := &recordingStrategy{}
	b := logger.NewBuilder().WithStrategy(first)
	l := b.Build()

	second := &recordingStrategy{}
	b.WithStrategy(second)

	require.NoError(t, l.Info("only first"))
	assert.Len(t, first.records, 1)
	assert.Empty(t, second.records)
}

func TestLogger_Close(t *testing.T) {
	l, s := newTestLogger()
	require.NoError(t, l.Close())
	assert.True(t, s.closed)
}

func TestLogger_NoAdapters(t *testing.T) {
	l := logger.NewBuilder().Build()
	assert.NoError(t, l.Info("nobody listens"))
	assert.NoError(t, l.Close())
}
