package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inepdata/surveysweep/pkg/logging"
)

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf)

	logger.Info().Str("stage", "reconcile").Msg("pass complete")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "pass complete", entry["message"])
	assert.Equal(t, "reconcile", entry["stage"])
	assert.Contains(t, entry, "time")
}

func TestDefaultIsUsable(t *testing.T) {
	logger := logging.Default()
	require.NotNil(t, logger)

	// Swap in a buffer-backed logger and restore afterwards.
	prev := *logger
	var buf bytes.Buffer
	logging.SetDefault(logging.New(&buf))
	defer logging.SetDefault(prev)

	logging.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
}

func TestNopDiscards(t *testing.T) {
	// Must not panic or write anywhere.
	logging.Nop.Error().Msg("discarded")
}
