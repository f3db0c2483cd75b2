package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ironsheep/edge-ruler-mcp/internal/config"
	"github.com/ironsheep/edge-ruler-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("edge-ruler-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("edge-ruler-mcp - MCP server for measuring on-screen distances between colour boundaries")
			fmt.Println()
			fmt.Println("Usage: edge-ruler-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  EDGE_RULER_LOG_LEVEL=debug       Log level (debug, info, warn, error)")
			fmt.Println("  EDGE_RULER_TOLERANCE=24          Default per-channel edge tolerance (0-255)")
			fmt.Println("  EDGE_RULER_MODE=smart            Default border mode (smart, include, none)")
			fmt.Println("  EDGE_RULER_GRID_UNIT=4           Grid unit for smart mode, in screen units")
			fmt.Println("  EDGE_RULER_SNAP_SAMPLES=7        Rays per side for rectangle snapping")
			fmt.Println("  EDGE_RULER_HASH_DISTANCE=2       Fingerprint bits two captures may differ by and keep skips")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			return
		}
	}

	cfg := config.Load()

	// stdout is for MCP protocol
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Warn("invalid configuration, using defaults", "error", err)
		level := cfg.LogLevel
		cfg = config.Default()
		cfg.LogLevel = level
	}

	logger.Debug("starting edge ruler",
		"version", Version,
		"build_time", BuildTime,
		"commit", GitCommit,
		"tolerance", cfg.Tolerance,
		"mode", cfg.Mode.String(),
		"grid_unit", cfg.GridUnit)

	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
