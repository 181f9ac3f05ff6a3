// Package config provides configuration types and defaults for
// crowd-code-player.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/p-doom/crowd-code-player/internal/log"
	"github.com/p-doom/crowd-code-player/internal/replay"
)

// Config holds all configuration options for the player. Flags override
// values loaded from the config file.
type Config struct {
	Speed                float64     `mapstructure:"speed"`
	LongPauseThresholdMs int64       `mapstructure:"long_pause_threshold_ms"`
	Follow               bool        `mapstructure:"follow"`
	UI                   UIConfig    `mapstructure:"ui"`
	Theme                ThemeConfig `mapstructure:"theme"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowHelpLine bool `mapstructure:"show_help_line"`
}

// ThemeConfig holds theme customization options. Colors are hex strings.
type ThemeConfig struct {
	StatusBar string `mapstructure:"status_bar"` // status bar background
	Cursor    string `mapstructure:"cursor"`     // replay cursor cell background
	Banner    string `mapstructure:"banner"`     // long-pause banner background
	Muted     string `mapstructure:"muted"`      // help line foreground
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		Speed:                replay.DefaultSpeedFactor,
		LongPauseThresholdMs: replay.DefaultLongPauseThresholdMs,
		Follow:               false,
		UI: UIConfig{
			ShowHelpLine: true,
		},
		Theme: ThemeConfig{
			StatusBar: "#2D3436",
			Cursor:    "#FFFFFF",
			Banner:    "#FECA57",
			Muted:     "#696969",
		},
	}
}

// Validate checks that the configuration is playable.
func Validate(cfg Config) error {
	if cfg.Speed < replay.MinSpeedFactor || cfg.Speed > replay.MaxSpeedFactor {
		return fmt.Errorf("speed %.2f out of range [%.1f, %.1f]",
			cfg.Speed, replay.MinSpeedFactor, replay.MaxSpeedFactor)
	}
	if cfg.LongPauseThresholdMs <= 0 {
		return fmt.Errorf("long pause threshold must be positive, got %d", cfg.LongPauseThresholdMs)
	}
	return nil
}

// DefaultConfigTemplate returns the commented YAML written on first run.
func DefaultConfigTemplate() string {
	return `# crowd-code-player configuration
#
# Playback speed multiplier (recorded gaps are divided by this).
speed: 20.0

# Recorded idle gaps longer than this (milliseconds) are compressed into a
# short on-screen banner instead of being waited out.
long_pause_threshold_ms: 120000

# Keep watching the trace file and play rows appended while the recording
# is still running.
follow: false

ui:
  show_help_line: true

theme:
  status_bar: "#2D3436"
  cursor: "#FFFFFF"
  banner: "#FECA57"
  muted: "#696969"
`
}

// WriteDefaultConfig creates a config file at the given path with default
// settings and comments. Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
