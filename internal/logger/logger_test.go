//go:build !integration

package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		pretty   bool
		expected zerolog.Level
	}{
		{name: "debug level", level: "debug", expected: zerolog.DebugLevel},
		{name: "info level", level: "info", expected: zerolog.InfoLevel},
		{name: "warn level", level: "warn", expected: zerolog.WarnLevel},
		{name: "error level", level: "error", expected: zerolog.ErrorLevel},
		{name: "upper case level", level: " DEBUG ", expected: zerolog.DebugLevel},
		{name: "invalid level defaults to info", level: "invalid", expected: zerolog.InfoLevel},
		{name: "pretty output", level: "info", pretty: true, expected: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.level, tt.pretty)
			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
		})
	}
}

func TestInitWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "info", false)

	Logger().Info().Int64("courses_reduced", 7615042).Msg("Scenario calculated")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "Scenario calculated", entry["message"])
	assert.Equal(t, float64(7615042), entry["courses_reduced"])
	assert.NotEmpty(t, entry["time"])
}

func TestInitWithWriter_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "warn", false)

	Logger().Info().Msg("hidden")

	assert.Empty(t, buf.String())
	Init("info", false)
}

func TestWithContext(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "info", false)

	WithContext(map[string]interface{}{"adoption_rate": 0.5, "table": "scenarios"}).Info().Msg("with fields")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, 0.5, entry["adoption_rate"])
	assert.Equal(t, "scenarios", entry["table"])
	Init("info", false)
}

func TestLogger_FollowsReinitialization(t *testing.T) {
	var first, second bytes.Buffer
	InitWithWriter(&first, "info", false)
	l := Logger()

	InitWithWriter(&second, "info", false)
	l.Info().Msg("after reinit")

	assert.Empty(t, first.String())
	assert.Contains(t, second.String(), "after reinit")
	Init("info", false)
}

func TestWithContext_DoesNotLeakFields(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "info", false)

	WithContext(map[string]interface{}{"table": "scenarios"}).Info().Msg("scoped")
	buf.Reset()
	Logger().Info().Msg("global")

	assert.NotContains(t, buf.String(), "table")
	Init("info", false)
}
