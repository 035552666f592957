package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   Debug,
		" INFO ":  Info,
		"":        Info,
		"warning": Warn,
		"warn":    Warn,
		"error":   Error,
		"bogus":   Info,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "input %q", in)
	}
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat("text"))
	assert.Equal(t, FormatText, ParseFormat(""))
}

func TestLogger_WithMergesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewWithCore(core).With(map[string]any{"service": "photos"})

	l.Info("stored", map[string]any{"name": "a.png", " ": "ignored"})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "stored", entries[0].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, map[string]any{"service": "photos", "name": "a.png"}, entries[0].ContextMap())
}

func TestLogger_LevelFilter(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	l := NewWithCore(core)

	l.Debug("d", nil)
	l.Info("i", nil)
	l.Warn("w", nil)
	l.Error("e", nil)

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "w", logs.All()[0].Message)
	assert.Equal(t, "e", logs.All()[1].Message)
}

func TestLogger_WithEmptyReturnsSame(t *testing.T) {
	l := Nop()
	assert.Same(t, l, l.With(nil))
}
