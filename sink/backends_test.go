package sink

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/philipp01105/prettylog/core"
)

func TestZapSink(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	s := NewZapSink(zap.New(obs))

	require.NoError(t, s.Log(core.DebugLevel, "APP", "│ hello"))
	require.NoError(t, s.Log(core.AssertLevel, "", "│ boom"))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "│ hello", entries[0].Message)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "APP", entries[0].ContextMap()["tag"])
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, NoTag, entries[1].ContextMap()["tag"])
	assert.NoError(t, s.Close())
}

func TestZapSink_LevelFiltered(t *testing.T) {
	obs, logs := observer.New(zapcore.WarnLevel)
	s := NewZapSink(zap.New(obs))

	require.NoError(t, s.Log(core.InfoLevel, "APP", "dropped"))
	require.NoError(t, s.Log(core.WarnLevel, "APP", "kept"))
	assert.Equal(t, 1, logs.Len())
}

func TestZapSink_NilLogger(t *testing.T) {
	assert.NoError(t, NewZapSink(nil).Log(core.InfoLevel, "APP", "line"))
}

func TestZapSink_WriteFailureGoesToErrorOutput(t *testing.T) {
	var errOut bytes.Buffer
	c := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(failingWriter{}),
		zapcore.DebugLevel,
	)
	s := NewZapSink(zap.New(c, zap.ErrorOutput(zapcore.AddSync(&errOut))))

	assert.NoError(t, s.Log(core.InfoLevel, "APP", "│ lost"))
	assert.Contains(t, errOut.String(), "disk full")
}

func TestZerologSink(t *testing.T) {
	var buf bytes.Buffer
	s := NewZerologSink(zerolog.New(&buf))

	require.NoError(t, s.Log(core.WarnLevel, "APP", "│ careful"))

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &data))
	assert.Equal(t, "warn", data["level"])
	assert.Equal(t, "APP", data["tag"])
	assert.Equal(t, "│ careful", data["message"])
}

func TestLogrusSink(t *testing.T) {
	l, hook := logrustest.NewNullLogger()
	l.SetLevel(logrus.TraceLevel)
	s := NewLogrusSink(l)

	require.NoError(t, s.Log(core.VerboseLevel, "APP", "│ trace"))
	require.NoError(t, s.Log(core.AssertLevel, "", "│ assert"))

	require.Len(t, hook.AllEntries(), 2)
	first := hook.AllEntries()[0]
	assert.Equal(t, logrus.TraceLevel, first.Level)
	assert.Equal(t, "│ trace", first.Message)
	assert.Equal(t, "APP", first.Data["tag"])

	last := hook.LastEntry()
	assert.Equal(t, logrus.ErrorLevel, last.Level)
	assert.Equal(t, NoTag, last.Data["tag"])
}

func TestSlogSink(t *testing.T) {
	var buf bytes.Buffer
	h := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	s := NewSlogSink(h)

	require.NoError(t, s.Log(core.VerboseLevel, "APP", "filtered"))
	assert.Zero(t, buf.Len())

	require.NoError(t, s.Log(core.InfoLevel, "APP", "│ hi"))
	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &data))
	assert.Equal(t, "INFO", data["level"])
	assert.Equal(t, "│ hi", data["msg"])
	assert.Equal(t, "APP", data["tag"])
}

func TestSlogLevelRoundTrip(t *testing.T) {
	for l := core.VerboseLevel; l <= core.AssertLevel; l++ {
		assert.Equal(t, l, LevelFromSlog(SlogLevel(l)), l.String())
	}
}
