package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr      string     `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel      slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	MapImage      string     `env:"MAP_IMAGE" envDefault:"assets/rfw-asia-en-map.png"`
	MapTitle      string     `env:"MAP_TITLE" envDefault:"Rainforest Wild Asia Interactive Map"`
	HotspotRadius int        `env:"HOTSPOT_RADIUS" envDefault:"15"`
	HotspotsFile  string     `env:"HOTSPOTS_FILE"`
	DBPath        string     `env:"DB_PATH"`
	SPADir        string     `env:"SPA_DIR"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if cfg.HotspotRadius <= 0 {
		return nil, fmt.Errorf("HOTSPOT_RADIUS must be positive, got %d", cfg.HotspotRadius)
	}
	return &cfg, nil
}
