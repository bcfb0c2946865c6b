package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `{
		"api_key": "test-key",
		"port": 8080,
		"cache_size": 2048,
		"badge_color": "3b82f6"
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 2048, cfg.CacheSize)
	assert.Equal(t, "3b82f6", cfg.BadgeColor)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadConfig_BadJSON(t *testing.T) {
	path := writeConfigFile(t, `{broken`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, (&Config{Port: 8080, CacheSize: 100, BadgeColor: "ff0000"}).Validate())
	assert.Error(t, (&Config{Port: -1}).Validate())
	assert.Error(t, (&Config{Port: 70000}).Validate())
	assert.Error(t, (&Config{CacheSize: -5}).Validate())
	assert.Error(t, (&Config{BadgeColor: "red"}).Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{APIKey: "explicit"}
	defaults := Config{APIKey: "default", Port: 8080, CacheSize: 1024, BadgeStyle: "flat"}

	merged := cfg.MergeWithDefaults(defaults)
	assert.Equal(t, "explicit", merged.APIKey)
	assert.Equal(t, 8080, merged.Port)
	assert.Equal(t, 1024, merged.CacheSize)
	assert.Equal(t, "flat", merged.BadgeStyle)
}
