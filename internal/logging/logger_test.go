package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "info", false)
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Info().Str("route", "/analytics/top-specialties").Msg("request")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "request", entry["message"])
	assert.Equal(t, "/analytics/top-specialties", entry["route"])
	assert.Contains(t, entry, "time")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "chatty", false)
	assert.Error(t, err)
}

func TestNew_Pretty(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "debug", true)
	require.NoError(t, err)

	logger.Debug().Msg("console line")
	assert.Contains(t, buf.String(), "console line")
	assert.False(t, json.Valid(buf.Bytes()))
}
