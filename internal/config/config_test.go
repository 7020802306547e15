package config

import (
	"log/slog"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q, want %q", cfg.HTTPAddr, ":8080")
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want INFO", cfg.LogLevel)
	}
	if cfg.HotspotRadius != 15 {
		t.Errorf("HotspotRadius = %d, want 15", cfg.HotspotRadius)
	}
	if cfg.MapImage != "assets/rfw-asia-en-map.png" {
		t.Errorf("MapImage = %q", cfg.MapImage)
	}
	if cfg.DBPath != "" || cfg.HotspotsFile != "" {
		t.Errorf("optional sources should default empty: %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("HOTSPOT_RADIUS", "20")
	t.Setenv("DB_PATH", "data/hotspots.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9000" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want DEBUG", cfg.LogLevel)
	}
	if cfg.HotspotRadius != 20 {
		t.Errorf("HotspotRadius = %d, want 20", cfg.HotspotRadius)
	}
	if cfg.DBPath != "data/hotspots.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
}

func TestLoadRejectsBadRadius(t *testing.T) {
	for _, v := range []string{"0", "-3", "wide"} {
		t.Setenv("HOTSPOT_RADIUS", v)
		if _, err := Load(); err == nil {
			t.Errorf("HOTSPOT_RADIUS=%s: expected error", v)
		}
	}
}
