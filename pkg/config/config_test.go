package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hyemockd.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultDataDir, cfg.DataDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	t.Run("loads full config", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, "port: 3000\ndataDir: fixtures\nlogLevel: debug\nlogFormat: json\n")

		cfg, err := LoadFromFile(path)
		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "fixtures", cfg.DataDir)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
	})

	t.Run("absent fields keep defaults", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, "port: 3000\n")

		cfg, err := LoadFromFile(path)
		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, DefaultDataDir, cfg.DataDir)
		assert.Equal(t, DefaultReadTimeout, cfg.ReadTimeout)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, ErrFileNotFound)
	})

	t.Run("empty file", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, "")
		_, err := LoadFromFile(path)
		assert.ErrorIs(t, err, ErrEmptyFile)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, "port: [unclosed\n")
		_, err := LoadFromFile(path)
		assert.ErrorIs(t, err, ErrInvalidYAML)
	})

	t.Run("out of range port rejected", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, "port: 99999\n")
		_, err := LoadFromFile(path)
		assert.Error(t, err)
	})
}
