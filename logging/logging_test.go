package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(level Level, format Format, f func()) string {
	var buf bytes.Buffer
	old := defaultLogger
	initLogger(&buf, level, format)
	defer func() {
		defaultLogger = old
	}()
	f()
	return buf.String()
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"warning": LevelWarn,
		" error ": LevelError,
		"loud":    LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestParseFormat(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(FormatJSON, ParseFormat("json"))
	assert.Equal(FormatText, ParseFormat("text"))
	assert.Equal(FormatText, ParseFormat(""))
}

func TestJSONOutput(t *testing.T) {
	out := capture(LevelInfo, FormatJSON, func() {
		Info("normalized page", "path", "a.html", "warnings", 2)
	})

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(out)), &entry))

	assert := assert.New(t)
	assert.Equal("normalized page", entry["msg"])
	assert.Equal("a.html", entry["path"])
	assert.Equal(float64(2), entry["warnings"])
	assert.Equal("INFO", entry["level"])
}

func TestLevelFilters(t *testing.T) {
	out := capture(LevelWarn, FormatText, func() {
		Debug("hidden")
		Info("hidden too")
		Warn("shown")
		Error("also shown")
	})

	assert := assert.New(t)
	assert.NotContains(out, "hidden")
	assert.Contains(out, "msg=shown")
	assert.Contains(out, `msg="also shown"`)
}
