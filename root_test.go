package main

import (
	"testing"

	"voicetype/config"
)

func TestApplyFlagOverrides(t *testing.T) {
	// untouched flags leave the config alone
	cfg := config.Default()
	applyFlagOverrides(cfg, rootCmd)
	if cfg.Hotkey.Key != "ctrl+shift+space" || cfg.Delivery.Mode != "paste" {
		t.Fatalf("defaults clobbered without flags: %+v", cfg)
	}

	for flag, val := range map[string]string{
		"key":    "f8",
		"mode":   "type",
		"cps":    "50",
		"device": "2",
		"model":  "whisper-large-v3-turbo",
		"notify": "true",
	} {
		if err := rootCmd.Flags().Set(flag, val); err != nil {
			t.Fatalf("setting --%s: %v", flag, err)
		}
	}
	applyFlagOverrides(cfg, rootCmd)

	if cfg.Hotkey.Key != "f8" {
		t.Errorf("key = %q", cfg.Hotkey.Key)
	}
	if cfg.Delivery.Mode != "type" || cfg.Delivery.CharsPerSecond != 50 {
		t.Errorf("delivery = %+v", cfg.Delivery)
	}
	if cfg.Recording.Device != 2 {
		t.Errorf("device = %d", cfg.Recording.Device)
	}
	if cfg.Transcriber.Model != "whisper-large-v3-turbo" {
		t.Errorf("model = %q", cfg.Transcriber.Model)
	}
	if !cfg.Notify.Enabled {
		t.Error("notify not enabled")
	}
	// flags the user never touched still keep their config values
	if cfg.Recording.MinRecord != 1.2 {
		t.Errorf("min_record = %v", cfg.Recording.MinRecord)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("got %q", got)
	}
	if got := truncate("0123456789abcdef", 10); got != "0123456789…" {
		t.Errorf("got %q", got)
	}
	// multibyte text must never be cut mid-rune
	if got := truncate("héllo wörld, ünïcode tèxt", 10); got != "héllo wörl…" {
		t.Errorf("got %q", got)
	}
	if got := truncate("日本語のテスト", 3); got != "日本語…" {
		t.Errorf("got %q", got)
	}
}
