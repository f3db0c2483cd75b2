package config

import (
	"log/slog"
	"testing"

	"github.com/ironsheep/edge-ruler-mcp/internal/boundary"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{
		"EDGE_RULER_LOG_LEVEL", "EDGE_RULER_TOLERANCE", "EDGE_RULER_MODE",
		"EDGE_RULER_GRID_UNIT", "EDGE_RULER_SNAP_SAMPLES", "EDGE_RULER_HASH_DISTANCE",
	} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if *cfg != *Default() {
		t.Errorf("Load with empty env: got %+v, want %+v", *cfg, *Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("EDGE_RULER_LOG_LEVEL", "debug")
	t.Setenv("EDGE_RULER_TOLERANCE", "8")
	t.Setenv("EDGE_RULER_MODE", "include")
	t.Setenv("EDGE_RULER_GRID_UNIT", "8")
	t.Setenv("EDGE_RULER_SNAP_SAMPLES", "11")
	t.Setenv("EDGE_RULER_HASH_DISTANCE", "5")

	cfg := Load()
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel: got %v", cfg.LogLevel)
	}
	if cfg.Tolerance != 8 {
		t.Errorf("Tolerance: got %d", cfg.Tolerance)
	}
	if cfg.Mode != boundary.Include {
		t.Errorf("Mode: got %v", cfg.Mode)
	}
	if cfg.GridUnit != 8 {
		t.Errorf("GridUnit: got %v", cfg.GridUnit)
	}
	if cfg.SnapSamples != 11 {
		t.Errorf("SnapSamples: got %d", cfg.SnapSamples)
	}
	if cfg.HashDistance != 5 {
		t.Errorf("HashDistance: got %d", cfg.HashDistance)
	}
}

func TestLoad_InvalidValuesKeepDefaults(t *testing.T) {
	t.Setenv("EDGE_RULER_LOG_LEVEL", "chatty")
	t.Setenv("EDGE_RULER_TOLERANCE", "lots")
	t.Setenv("EDGE_RULER_MODE", "auto")
	t.Setenv("EDGE_RULER_GRID_UNIT", "x")

	cfg := Load()
	def := Default()
	if cfg.LogLevel != def.LogLevel || cfg.Tolerance != def.Tolerance || cfg.Mode != def.Mode || cfg.GridUnit != def.GridUnit {
		t.Errorf("invalid env leaked into config: %+v", *cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"tolerance too high", func(c *Config) { c.Tolerance = 256 }, true},
		{"negative tolerance", func(c *Config) { c.Tolerance = -1 }, true},
		{"zero grid", func(c *Config) { c.GridUnit = 0 }, true},
		{"one sample", func(c *Config) { c.SnapSamples = 1 }, true},
		{"hash distance", func(c *Config) { c.HashDistance = 65 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
