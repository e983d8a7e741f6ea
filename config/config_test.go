package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadLayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nightswarm.yaml")
	data := `
game:
  tick_rate: 30
  seed: 99
audio:
  enabled: false
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Game.TickRate)
	assert.Equal(t, uint64(99), cfg.Game.Seed)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, "debug", cfg.Log.Level)

	// Untouched settings keep their defaults.
	assert.Equal(t, Default().Log.MaxSizeMB, cfg.Log.MaxSizeMB)
	assert.Equal(t, Default().Audio.Volume, cfg.Audio.Volume)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("game: [\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidateRanges(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"tick rate zero", func(c *Config) { c.Game.TickRate = 0 }},
		{"tick rate huge", func(c *Config) { c.Game.TickRate = 1000 }},
		{"volume negative", func(c *Config) { c.Audio.Volume = -0.1 }},
		{"volume above one", func(c *Config) { c.Audio.Volume = 1.5 }},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }},
		{"zero log size", func(c *Config) { c.Log.MaxSizeMB = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
