package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel("DEBUG"))
	assert.Equal(t, Info, ParseLevel(""))
	assert.Equal(t, Warn, ParseLevel("warning"))
	assert.Equal(t, Error, ParseLevel("error"))
	assert.Equal(t, Info, ParseLevel("nonsense"))
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat(" json "))
	assert.Equal(t, FormatText, ParseFormat("console"))
}

func TestZapLogger_WithMergesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core)).With(map[string]any{"user_id": "u1"})

	l.Warn("fallback", map[string]any{"key": "purrlog/u1/pets", "err": errors.New("boom"), "": "skip"})

	entries := logs.FilterMessage("fallback").All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "u1", ctx["user_id"])
	assert.Equal(t, "purrlog/u1/pets", ctx["key"])
	assert.Equal(t, "boom", ctx["err"])
	_, hasEmpty := ctx[""]
	assert.False(t, hasEmpty)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Info("nothing", nil)
	assert.Same(t, l, l.With(nil))
}
