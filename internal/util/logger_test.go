package util

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"nonsense", LevelInfo},
		{"", LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLogLevel(tt.in), "level %q", tt.in)
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{level: LevelWarn}
	l.AddOutput(NewConsoleOutput(&buf, FormatText))

	l.Debug("quiet")
	l.Info("quiet too")
	l.Warn("loud")
	l.Errorf("also %s", "loud")

	out := buf.String()
	assert.NotContains(t, out, "quiet")
	assert.Contains(t, out, "[WARN] loud")
	assert.Contains(t, out, "[ERROR] also loud")
}

func TestLoggerFieldsSorted(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{level: LevelDebug}
	l.AddOutput(NewConsoleOutput(&buf, FormatText))

	l.Info("fetch done", Field{Key: "records", Value: 42}, Field{Key: "chart", Value: "timeline"})

	assert.Contains(t, buf.String(), "fetch done chart=timeline records=42")
}

func TestLoggerJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{level: LevelDebug}
	l.AddOutput(NewConsoleOutput(&buf, FormatJSON))

	l.Info("rendered")

	out := buf.String()
	assert.Contains(t, out, `"level":"INFO"`)
	assert.Contains(t, out, `"message":"rendered"`)
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	out, err := NewFileOutput(path, FormatText)
	require.NoError(t, err)

	l := &Logger{level: LevelDebug}
	l.AddOutput(out)
	l.Info("persisted")
	require.NoError(t, out.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[INFO] persisted")
}

func TestNewLoggerDegradesWithoutFile(t *testing.T) {
	// An unopenable log file must not produce a logger with no outputs.
	l := NewLogger("info", filepath.Join(t.TempDir(), "missing-dir", "app.log"), false)
	require.NotEmpty(t, l.outputs)
}
