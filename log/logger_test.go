package log_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwantia/vfsname/log"
)

// TestLoggerLevels verifies that messages below the level are dropped.
func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWriterLogger("vfs", log.Warn, &buf)

	logger.Debug("hidden %d", 1)
	logger.Info("hidden %d", 2)
	logger.Warn("shown %d", 3)
	logger.Error("shown %d", 4)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "WARN  [vfs] shown 3")
	assert.Contains(t, lines[1], "ERROR [vfs] shown 4")
}

// TestLoggerNamedWith verifies sub-logger names and fields.
func TestLoggerNamedWith(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWriterLogger("vfs", log.Debug, &buf)

	logger.Named("cache").With("fs", "ram:///").Debug("miss")
	assert.Contains(t, buf.String(), "[vfs/cache] miss fs=ram:///")
}

// TestLoggerJSON verifies the JSON line layout.
func TestLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWriterLogger("vfs", log.Info, &buf)
	logger.JSON = true

	logger.With("scheme", "ram").Info("registered")
	assert.Contains(t, buf.String(), `"level":"INFO"`)
	assert.Contains(t, buf.String(), `"service":"vfs"`)
	assert.Contains(t, buf.String(), `"fields":{"scheme":"ram"}`)
}

// TestParseLevel verifies level names and rejection of unknown ones.
func TestParseLevel(t *testing.T) {
	level, err := log.ParseLevel("warning")
	require.NoError(t, err)
	assert.Equal(t, log.Warn, level)

	_, err = log.ParseLevel("loud")
	assert.Error(t, err)
	assert.Panics(t, func() { log.Parse("loud") })
}

// TestDiscard verifies that the discard logger never writes.
func TestDiscard(t *testing.T) {
	logger := log.Discard()
	assert.False(t, logger.Enabled(log.Fatal))
	logger.Error("nothing")
}
