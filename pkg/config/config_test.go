package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDefaultConfig(t *testing.T) {
	cfg := GetDefaultConfig()

	assert.Equal(t, `C:\ProgramData\AppSetup\Cache`, cfg.CachePath)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, 5, cfg.CleanupDelaySeconds)
	assert.Equal(t, 600, cfg.HTTPTimeoutSeconds)
	assert.False(t, cfg.Debug)
}

func TestLoadConfig_FromFile(t *testing.T) {
	yamlBody := `
BatchPath: C:\ProgramData\AppSetup\batch.yaml
CachePath: D:\Scratch\Cache
LogLevel: DEBUG
CleanupDelaySeconds: 1
`
	path := filepath.Join(t.TempDir(), "Config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlBody), 0644))
	t.Setenv("APPSETUP_CONFIG", path)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, `C:\ProgramData\AppSetup\batch.yaml`, cfg.BatchPath)
	assert.Equal(t, `D:\Scratch\Cache`, cfg.CachePath)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, 1, cfg.CleanupDelaySeconds)
	// Unset fields fall back to defaults.
	assert.Equal(t, `C:\ProgramData\AppSetup\Logs`, cfg.LogPath)
	assert.Equal(t, 600, cfg.HTTPTimeoutSeconds)
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("APPSETUP_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig().CachePath, cfg.CachePath)
}

func TestLoadConfig_MalformedFileIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("CachePath: [broken"), 0644))
	t.Setenv("APPSETUP_CONFIG", path)

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	cfg := &Configuration{
		CachePath: filepath.Join(base, "cache"),
		LogPath:   filepath.Join(base, "logs"),
	}

	require.NoError(t, cfg.EnsureDirectories())
	assert.DirExists(t, cfg.CachePath)
	assert.DirExists(t, cfg.LogPath)
}
