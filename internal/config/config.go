// Package config handles server configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/ironsheep/edge-ruler-mcp/internal/boundary"
)

// Config holds defaults applied to tool calls that omit optional arguments.
type Config struct {
	LogLevel     slog.Level
	Tolerance    int
	Mode         boundary.CorrectionMode
	GridUnit     float64 // screen units
	SnapSamples  int
	HashDistance int // max differing fingerprint bits for a repeated capture
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel:     slog.LevelInfo,
		Tolerance:    24,
		Mode:         boundary.Smart,
		GridUnit:     boundary.DefaultGridUnit,
		SnapSamples:  boundary.DefaultSnapSamples,
		HashDistance: 2,
	}
}

// Load reads EDGE_RULER_* variables over the defaults. Unparsable values keep
// their default.
func Load() *Config {
	def := Default()
	cfg := &Config{
		LogLevel:     getEnvLevel("EDGE_RULER_LOG_LEVEL", def.LogLevel),
		Tolerance:    getEnvInt("EDGE_RULER_TOLERANCE", def.Tolerance),
		Mode:         getEnvMode("EDGE_RULER_MODE", def.Mode),
		GridUnit:     getEnvFloat("EDGE_RULER_GRID_UNIT", def.GridUnit),
		SnapSamples:  getEnvInt("EDGE_RULER_SNAP_SAMPLES", def.SnapSamples),
		HashDistance: getEnvInt("EDGE_RULER_HASH_DISTANCE", def.HashDistance),
	}
	return cfg
}

// Validate reports the first out-of-range setting.
func (c *Config) Validate() error {
	if c.Tolerance < 0 || c.Tolerance > 255 {
		return fmt.Errorf("tolerance %d outside 0-255", c.Tolerance)
	}
	if c.GridUnit <= 0 {
		return fmt.Errorf("grid unit must be positive, got %v", c.GridUnit)
	}
	if c.SnapSamples < 2 {
		return fmt.Errorf("snap samples must be at least 2, got %d", c.SnapSamples)
	}
	if c.HashDistance < 0 || c.HashDistance > 64 {
		return fmt.Errorf("hash distance %d outside 0-64", c.HashDistance)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvLevel(key string, def slog.Level) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(getEnv(key, def.String())))); err != nil {
		return def
	}
	return lvl
}

func getEnvMode(key string, def boundary.CorrectionMode) boundary.CorrectionMode {
	m, err := boundary.ParseCorrectionMode(getEnv(key, def.String()))
	if err != nil {
		return def
	}
	return m
}
