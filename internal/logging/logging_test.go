package logging

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "warn", Format: FormatJSON, Out: &buf})
	require.NoError(t, err)

	log.Info().Msg("hidden")
	log.Warn().Str("field", "age").Msg("shown")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "age", entry["field"])
	assert.Contains(t, entry["caller"], "logging_test.go:")
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Out: &buf})
	require.NoError(t, err)

	log.Info().Msg("hello")
	assert.Contains(t, buf.String(), "INFO")
	assert.Contains(t, buf.String(), "hello")
}

func TestNew_InvalidOptions(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	assert.Error(t, err)

	_, err = New(Options{Format: "xml"})
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, l)

	l, err = ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, l)
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sleepcheck.log")
	f, err := OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	_, err = f.WriteString("line\n")
	assert.NoError(t, err)
}
