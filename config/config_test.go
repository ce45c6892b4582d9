package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Hotkey.Key != "ctrl+shift+space" {
		t.Errorf("hotkey = %q", cfg.Hotkey.Key)
	}
	if cfg.Recording.ToggleCooldown != 0.3 || cfg.Recording.MinRecord != 1.2 || cfg.Recording.PostRoll != 0.35 {
		t.Errorf("recording timing defaults wrong: %+v", cfg.Recording)
	}
	if cfg.Recording.Device != -1 {
		t.Errorf("device default = %d, want -1", cfg.Recording.Device)
	}
	if cfg.Transcriber.Model != "whisper-large-v3" {
		t.Errorf("model = %q", cfg.Transcriber.Model)
	}
	if cfg.Delivery.Mode != "paste" || cfg.Delivery.CharsPerSecond != 30 {
		t.Errorf("delivery defaults wrong: %+v", cfg.Delivery)
	}
}

func TestLoadOverridesAndFillsGaps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[hotkey]
key = "f8"

[recording]
min_record = 2.5
device = 3

[delivery]
mode = "type"
chars_per_second = 50
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Hotkey.Key != "f8" {
		t.Errorf("hotkey = %q", cfg.Hotkey.Key)
	}
	if cfg.Recording.MinRecord != 2.5 {
		t.Errorf("min_record = %v", cfg.Recording.MinRecord)
	}
	if cfg.Recording.Device != 3 {
		t.Errorf("device = %d", cfg.Recording.Device)
	}
	// untouched sections keep their defaults
	if cfg.Recording.PostRoll != 0.35 {
		t.Errorf("post_roll = %v", cfg.Recording.PostRoll)
	}
	if cfg.Delivery.Mode != "type" || cfg.Delivery.CharsPerSecond != 50 {
		t.Errorf("delivery = %+v", cfg.Delivery)
	}
}

func TestLoadRejectsBadMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[delivery]\nmode = \"shout\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown delivery mode")
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[recording\nmin ="), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSeconds(t *testing.T) {
	if got := Seconds(0.35); got != 350*time.Millisecond {
		t.Fatalf("Seconds(0.35) = %v", got)
	}
}
