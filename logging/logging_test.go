package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfoWritesJSONLineWithFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelInfo, Format: FormatJSON, Output: &buf})
	l.Info("tick processed", Fields("tick", 3, "node", "B"))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "tick processed", decoded["message"])
	assert.Equal(t, float64(3), decoded["tick"])
	assert.Equal(t, "B", decoded["node"])
}

func TestDebugSuppressedBelowConfiguredLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelWarn, Format: FormatJSON, Output: &buf})
	l.Debug("should not appear", nil)
	l.Info("also should not appear", nil)
	assert.Empty(t, buf.String())
}

func TestWithAttachesFieldToEveryLine(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelInfo, Format: FormatJSON, Output: &buf}).With("run_id", "abc123")
	l.Info("started", nil)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "abc123", decoded["run_id"])
}
