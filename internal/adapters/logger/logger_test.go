package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depcache/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func newBufferedLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetOutput(buf)
	return l, buf
}

func TestLogger_Levels(t *testing.T) {
	l, buf := newBufferedLogger(t)

	l.Debug("hidden")
	l.Info("resolved core")
	l.Warn("project part app has no headers")

	assert.Equal(t, "resolved core\n! project part app has no headers\n", buf.String())
}

func TestLogger_Verbose(t *testing.T) {
	l, buf := newBufferedLogger(t)

	l.SetVerbose(true)
	l.Debug("core: entry point 1:2 is stale, regenerating")
	l.SetVerbose(false)
	l.Debug("hidden")

	assert.Equal(t, "○ core: entry point 1:2 is stale, regenerating\n", buf.String())
}

func TestLogger_ErrorChain(t *testing.T) {
	l, buf := newBufferedLogger(t)

	err := zerr.Wrap(zerr.Wrap(errors.New("permission denied"), "failed to read file"), "failed to scan")
	l.Error(err)
	l.Error(nil)

	want := "✗ Error: failed to scan\n\n  Caused by:\n    → failed to read file\n    → permission denied\n"
	assert.Equal(t, want, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	l, buf := newBufferedLogger(t)
	l.SetJSON(true)
	l.SetVerbose(true)

	l.Debug("debugging")
	l.Error(errors.New("boom"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
	assert.Equal(t, "DEBUG", record["level"])
	assert.Equal(t, "debugging", record["msg"])

	require.NoError(t, json.Unmarshal([]byte(lines[1]), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "boom", record["error"])
}

func TestLogger_SetOutputKeepsJSONMode(t *testing.T) {
	l, _ := newBufferedLogger(t)
	l.SetJSON(true)

	buf := &bytes.Buffer{}
	l.SetOutput(buf)
	l.Info("hello")

	assert.True(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}
