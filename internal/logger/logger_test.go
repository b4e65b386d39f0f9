package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		fallback bool
		want     zerolog.Level
	}{
		{"debug", "debug", false, zerolog.DebugLevel},
		{"upper case", "WARN", false, zerolog.WarnLevel},
		{"warning alias", "warning", false, zerolog.WarnLevel},
		{"error", " error ", false, zerolog.ErrorLevel},
		{"empty", "", false, zerolog.InfoLevel},
		{"empty with debug fallback", "", true, zerolog.DebugLevel},
		{"explicit wins over fallback", "info", true, zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input, tt.fallback))
		})
	}
}

func TestZerologAdapterWritesComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.DebugLevel)

	log.Info("EntryStore", "entry appended", map[string]interface{}{"count": 3})

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "info", record["level"])
	assert.Equal(t, "EntryStore", record["component"])
	assert.Equal(t, "entry appended", record["message"])
	assert.EqualValues(t, 3, record["count"])
}

func TestZerologAdapterError(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.InfoLevel)

	log.Error("Load", errors.New("boom"), nil)

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "error", record["level"])
	assert.Equal(t, "boom", record["error"])
}

func TestZerologAdapterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.WarnLevel)

	log.Debug("Test", "hidden", nil)
	log.Info("Test", "hidden", nil)
	assert.Empty(t, buf.String())

	log.Warning("Test", "shown", nil)
	assert.Contains(t, buf.String(), "shown")
}
