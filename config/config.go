// Package config loads the TOML configuration file and supplies defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the complete application configuration.
type Config struct {
	Hotkey      HotkeyConfig      `toml:"hotkey"`
	Recording   RecordingConfig   `toml:"recording"`
	Transcriber TranscriberConfig `toml:"transcriber"`
	Delivery    DeliveryConfig    `toml:"delivery"`
	Output      OutputConfig      `toml:"output"`
	Log         LogConfig         `toml:"log"`
	Notify      NotifyConfig      `toml:"notify"`
}

// HotkeyConfig names the push-to-talk key.
type HotkeyConfig struct {
	Key string `toml:"key"`
}

// RecordingConfig holds capture timing. Durations are seconds.
type RecordingConfig struct {
	ToggleCooldown float64 `toml:"toggle_cooldown"`
	MinRecord      float64 `toml:"min_record"`
	PostRoll       float64 `toml:"post_roll"`
	SilenceWarn    float64 `toml:"silence_warn"`
	Device         int     `toml:"device"`
	SampleRate     int     `toml:"sample_rate"`
}

// TranscriberConfig holds the speech-to-text backend settings.
type TranscriberConfig struct {
	APIBase  string `toml:"api_base"`
	APIKey   string `toml:"api_key"`
	Model    string `toml:"model"`
	Language string `toml:"language"`
}

// DeliveryConfig controls how transcribed text reaches the focused app.
type DeliveryConfig struct {
	Mode           string  `toml:"mode"`
	CharsPerSecond int     `toml:"chars_per_second"`
	SendDelay      float64 `toml:"send_delay"`
}

// OutputConfig controls on-disk artifacts. Empty directories fall back
// to subdirectories of the log directory.
type OutputConfig struct {
	SaveAudio bool   `toml:"save_audio"`
	AudioDir  string `toml:"audio_dir"`
	SaveText  bool   `toml:"save_text"`
	TextDir   string `toml:"text_dir"`
}

// LogConfig controls diagnostics.
type LogConfig struct {
	Level string `toml:"level"`
	Dir   string `toml:"dir"`
}

// NotifyConfig controls desktop notifications.
type NotifyConfig struct {
	Enabled bool `toml:"enabled"`
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "voicetype", "config.toml")
}

// Load reads the config at path. A missing file is not an error; the
// defaults are returned so the tool works out of the box.
func Load(path string) (*Config, error) {
	cfg := Default()
	path = os.ExpandEnv(path)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.Recording.Device = -1 // auto-pick
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Hotkey.Key == "" {
		c.Hotkey.Key = "ctrl+shift+space"
	}
	if c.Recording.ToggleCooldown == 0 {
		c.Recording.ToggleCooldown = 0.3
	}
	if c.Recording.MinRecord == 0 {
		c.Recording.MinRecord = 1.2
	}
	if c.Recording.PostRoll == 0 {
		c.Recording.PostRoll = 0.35
	}
	if c.Recording.SilenceWarn == 0 {
		c.Recording.SilenceWarn = 8.0
	}
	if c.Transcriber.APIBase == "" {
		c.Transcriber.APIBase = "https://api.groq.com/openai/v1"
	}
	if c.Transcriber.Model == "" {
		c.Transcriber.Model = "whisper-large-v3"
	}
	if c.Delivery.Mode == "" {
		c.Delivery.Mode = "paste"
	}
	if c.Delivery.CharsPerSecond == 0 {
		c.Delivery.CharsPerSecond = 30
	}
	if c.Delivery.SendDelay == 0 {
		c.Delivery.SendDelay = 0.2
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

func (c *Config) validate() error {
	if c.Delivery.Mode != "paste" && c.Delivery.Mode != "type" {
		return fmt.Errorf("delivery.mode must be \"paste\" or \"type\", got %q", c.Delivery.Mode)
	}
	if c.Recording.ToggleCooldown < 0 || c.Recording.MinRecord < 0 || c.Recording.PostRoll < 0 {
		return fmt.Errorf("recording durations must not be negative")
	}
	if c.Delivery.CharsPerSecond < 0 {
		return fmt.Errorf("delivery.chars_per_second must not be negative")
	}
	return nil
}

// Seconds converts a fractional-seconds config value to a Duration.
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
