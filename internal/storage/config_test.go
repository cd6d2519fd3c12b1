package storage

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	def := DefaultConfig()
	assert.Equal(t, def.Theme, cfg.Theme)
	assert.Equal(t, def.ShowPathPanel, cfg.ShowPathPanel)
	assert.Equal(t, def.CacheSize, cfg.CacheSize)
	assert.Equal(t, path, cfg.Path())
	assert.FileExists(t, path)
}

func TestConfigSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	cfg.Theme = "nord"
	cfg.ShowPathPanel = false
	cfg.CacheSize = 8
	require.NoError(t, cfg.Save())

	again, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "nord", again.Theme)
	assert.False(t, again.ShowPathPanel)
	assert.Equal(t, 8, again.CacheSize)
}

func TestLoadConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"theme": "gruvbox"}`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "gruvbox", cfg.Theme)
	assert.True(t, cfg.ShowPathPanel, "missing keys keep their defaults")
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	t.Setenv("NAVTRAIL_THEME", "dracula")
	t.Setenv("NAVTRAIL_LOG_LEVEL", "debug")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "dracula", cfg.Theme)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestSaveLeavesEnvOverridesOutOfFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	t.Setenv("NAVTRAIL_THEME", "nord")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "nord", cfg.Theme)

	cfg.ShowPathPanel = false
	require.NoError(t, cfg.Save())

	require.NoError(t, os.Unsetenv("NAVTRAIL_THEME"))
	reloaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Theme, reloaded.Theme)
	assert.False(t, reloaded.ShowPathPanel)
}

func TestSaveKeepsExplicitChangeUnderEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	t.Setenv("NAVTRAIL_THEME", "nord")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	cfg.Theme = "gruvbox"
	require.NoError(t, cfg.Save())

	require.NoError(t, os.Unsetenv("NAVTRAIL_THEME"))
	reloaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "gruvbox", reloaded.Theme)
}

func TestLoadConfigBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"theme": `), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestAppDirsHonourXDG(t *testing.T) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		t.Skip("XDG only applies on unix")
	}
	base := t.TempDir()
	t.Setenv("XDG_DATA_HOME", base)

	dir, err := DataDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "navtrail"), dir)
}
