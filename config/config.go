// Package config loads the game's settings file. All settings have working
// defaults; a missing file is not an error.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full settings tree.
type Config struct {
	Game  GameConfig  `yaml:"game"`
	Audio AudioConfig `yaml:"audio"`
	Log   LogConfig   `yaml:"log"`
}

// GameConfig tunes the frame loop and run reproducibility.
type GameConfig struct {
	// TickRate is the target frames per second.
	TickRate int `yaml:"tick_rate"`

	// Seed fixes the run's random streams; zero picks a random seed.
	Seed uint64 `yaml:"seed"`
}

// AudioConfig tunes sound output.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// LogConfig tunes the rotated log file. The terminal owns stdout while the
// game runs, so logs always go to a file.
type LogConfig struct {
	Path       string `yaml:"path"`
	Level      string `yaml:"level"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			TickRate: 60,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.7,
		},
		Log: LogConfig{
			Path:       "nightswarm.log",
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 14,
		},
	}
}

// Load reads the settings file at path, layered over the defaults. A
// missing file returns the defaults; a malformed or invalid file is an
// error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks settings ranges.
func (c Config) Validate() error {
	if c.Game.TickRate < 1 || c.Game.TickRate > 240 {
		return fmt.Errorf("game.tick_rate %d out of range [1, 240]", c.Game.TickRate)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume %g out of range [0, 1]", c.Audio.Volume)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q not one of debug, info, warn, error", c.Log.Level)
	}
	if c.Log.MaxSizeMB < 1 {
		return fmt.Errorf("log.max_size_mb %d must be positive", c.Log.MaxSizeMB)
	}
	return nil
}
