package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"

	"bonemap/internal/logger"
)

func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()

	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)

	return lg, buf
}

func TestLoggerInfo(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Info("auto-fill finished", "filled", 3, "pair", "Rig->Mannequin")

	assert.Equal(t, "auto-fill finished filled=3 pair=Rig->Mannequin\n", buf.String())
}

func TestLoggerWarn(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Warn("bone skipped", "bone", "Tail")

	assert.Equal(t, "! bone skipped bone=Tail\n", buf.String())
}

func TestLoggerLevel(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Debug("hidden")
	assert.Empty(t, buf.String())

	require.NoError(t, lg.SetLevel("debug"))
	lg.Debug("shown")
	assert.Equal(t, "shown\n", buf.String())

	buf.Reset()
	require.NoError(t, lg.SetLevel("error"))
	lg.Warn("hidden")
	assert.Empty(t, buf.String())

	assert.Error(t, lg.SetLevel("loud"))
}

func TestLoggerError(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Error(nil)
	assert.Empty(t, buf.String())

	lg.Error(errors.New("disk full"))
	assert.Equal(t, "✗ Error: disk full\n", buf.String())
}

func TestLoggerJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Info("exported", "constraints", 2)
	lg.Error(errors.New("boom"))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &rec))
	assert.Equal(t, "exported", rec["msg"])
	assert.InDelta(t, 2, rec["constraints"], 0)

	require.NoError(t, json.Unmarshal(lines[1], &rec))
	assert.Equal(t, "boom", rec["error"])
}

func TestFormatErrorMultiline(t *testing.T) {
	err := errors.Join(errors.New("malformed mapping document"), errors.New("missing required field"))

	assert.Equal(t,
		"Error: malformed mapping document\n       missing required field",
		logger.FormatError(err))
}

func TestFormatErrorChain(t *testing.T) {
	cause := errors.New("permission denied")
	err := zerr.Wrap(zerr.With(zerr.Wrap(cause, "failed to write rig file"), "path", "rig.yaml"), "apply failed")

	assert.Equal(t,
		"Error: apply failed\n\n  Caused by:\n    → failed to write rig file\n    → permission denied",
		logger.FormatError(err))
}

func TestFormatErrorSkipsEmptyWrap(t *testing.T) {
	err := zerr.With(errors.New("disk full"), "path", "state.yaml")

	assert.Equal(t, "Error: disk full", logger.FormatError(err))
}

func TestLoggerErrorChain(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Error(zerr.Wrap(errors.New("no such file"), "failed to load rig"))
	assert.Equal(t, "✗ Error: failed to load rig\n\n  Caused by:\n    → no such file\n", buf.String())
}
