package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelWarn, parseLevel("WARNING"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("info"))
	assert.Equal(t, slog.LevelInfo, parseLevel("bogus"))
}

func TestLoggerOutput(t *testing.T) {
	var buf bytes.Buffer
	old := Default()
	defer SetLogger(old)

	SetLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	Info("contact saved", slog.String("contact_id", "abc-123"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "contact saved", entry["msg"])
	assert.Equal(t, "abc-123", entry["contact_id"])
	assert.Equal(t, "INFO", entry["level"])
}

func TestWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	old := Default()
	defer SetLogger(old)

	SetLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	WithRequestID("req-42").Info("handled")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-42", entry["request_id"])
}
