package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelWarn)

	l.Info("hidden")
	l.Warn("shown", "line", 3)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "line=3")
}

func TestNew_Debug(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelForVerbosity(2))

	l.Debug("now shown")
	assert.Contains(t, buf.String(), "level=DEBUG")
}

func TestLevelForVerbosity(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, LevelForVerbosity(0))
	assert.Equal(t, slog.LevelInfo, LevelForVerbosity(1))
	assert.Equal(t, slog.LevelDebug, LevelForVerbosity(2))
	assert.Equal(t, slog.LevelDebug, LevelForVerbosity(5))
}
