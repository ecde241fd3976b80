package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal("./out", cfg.OutDir)
	assert.Equal(4, cfg.Workers)
	assert.Equal("info", cfg.LogLevel)
	assert.Equal("text", cfg.LogFormat)
	assert.Equal(100.0, cfg.Tempo)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SONGBOOK_OUT_DIR", "/tmp/songs")
	t.Setenv("SONGBOOK_WORKERS", "0")
	t.Setenv("SONGBOOK_TEMPO", "72.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal("/tmp/songs", cfg.OutDir)
	assert.Equal(1, cfg.Workers)
	assert.Equal(72.5, cfg.Tempo)
}

func TestLoadError(t *testing.T) {
	t.Setenv("SONGBOOK_WORKERS", "many")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}
