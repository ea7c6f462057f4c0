package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(&buf, "warn")
	require.NoError(t, err)

	log.Info("SubmitBooking: skipped %d", 1)
	log.Warn("SubmitBooking: no date selected for session=%s", "abc")

	out := buf.String()
	assert.NotContains(t, out, "skipped")
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, "no date selected for session=abc")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("", "verbose")
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	log := NewNop()
	log.Error("ignored %v", "value")
	assert.NoError(t, log.Close())
}
