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
		"sample_size": 50,
		"top_engaged": 10,
		"database_url": "postgres://localhost/mentions",
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.SampleSize)
	assert.Equal(t, 10, cfg.TopEngaged)
	assert.Equal(t, "postgres://localhost/mentions", cfg.DatabaseURL)
	assert.True(t, cfg.Verbose)
	assert.Zero(t, cfg.MostRecent)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfigFile(t, `{"sample_size": `)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{SampleSize: 25, TopEngaged: 5}
	assert.NoError(t, cfg.Validate())

	cfg = &Config{SampleSize: -1}
	assert.Error(t, cfg.Validate())

	cfg = &Config{LowestRated: -3}
	assert.Error(t, cfg.Validate())

	cfg = &Config{Input: filepath.Join(t.TempDir(), "missing.json")}
	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{SampleSize: 40}
	defaults := Config{
		SampleSize:  100,
		TopEngaged:  8,
		DatabaseURL: "postgres://localhost/mentions",
		Verbose:     true,
	}

	merged := cfg.MergeWithDefaults(defaults)

	// Explicit value wins; unset fields fall back to defaults.
	assert.Equal(t, 40, merged.SampleSize)
	assert.Equal(t, 8, merged.TopEngaged)
	assert.Equal(t, "postgres://localhost/mentions", merged.DatabaseURL)
	assert.True(t, merged.Verbose)
}
