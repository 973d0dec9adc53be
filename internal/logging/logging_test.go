package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLevels(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	tests := []struct {
		level string
		debug bool
		want  zerolog.Level
	}{
		{"warn", false, zerolog.WarnLevel},
		{"", false, zerolog.InfoLevel},
		{"loud", false, zerolog.InfoLevel},
		{"error", true, zerolog.DebugLevel},
	}
	for _, tt := range tests {
		setup(&bytes.Buffer{}, tt.level, false, tt.debug)
		assert.Equal(t, tt.want, zerolog.GlobalLevel(), "level=%q debug=%v", tt.level, tt.debug)
	}
}

func TestSetupWritesJSON(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })
	var buf bytes.Buffer
	logger := setup(&buf, "info", false, false)

	logger.Info().Str("room", "ABCD12").Msg("room created")
	logger.Debug().Msg("hidden")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "ABCD12", line["room"])
	assert.Equal(t, "room created", line["message"])
	assert.Contains(t, line, "time")
}
