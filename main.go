package main

import (
	"flag"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/starfield/config"
	"github.com/pthm-cable/starfield/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	outputDir := flag.String("output-dir", "", "Output directory for perf CSV, config snapshot and screenshots")
	logPerf := flag.Bool("log-perf", false, "Log frame timing via slog")
	showHUD := flag.Bool("hud", false, "Start with the debug HUD visible")
	workers := flag.Int("workers", 0, "Shading workers (0 = GOMAXPROCS)")
	debug := flag.Bool("debug", false, "Enable debug logging")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := run(game.Options{
		Seed:      *seed,
		OutputDir: *outputDir,
		LogPerf:   *logPerf,
		ShowHUD:   *showHUD,
		Workers:   *workers,
	}); err != nil {
		slog.Error("starfield failed", "error", err)
		os.Exit(1)
	}
}

func run(opts game.Options) error {
	cfg := config.Cfg()

	var flags uint32
	if cfg.Screen.Resizable {
		flags |= rl.FlagWindowResizable
	}
	if cfg.Screen.HighDPI {
		flags |= rl.FlagWindowHighdpi
	}
	rl.SetConfigFlags(flags)
	rl.SetTraceLogLevel(rl.LogWarning)

	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))
	if cfg.Screen.HideCursor {
		rl.HideCursor()
	}

	app, err := game.NewApp(opts)
	if err != nil {
		return err
	}
	defer app.Unload()

	for !rl.WindowShouldClose() {
		app.Frame()
	}
	return nil
}
