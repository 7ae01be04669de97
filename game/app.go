// Package game hosts the starfield in a raylib window: input, per-frame orchestration and output.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/starfield/config"
	"github.com/pthm-cable/starfield/effects"
	"github.com/pthm-cable/starfield/renderer"
	"github.com/pthm-cable/starfield/starfield"
	"github.com/pthm-cable/starfield/telemetry"
	"github.com/pthm-cable/starfield/ui"
)

// Background is the clear color behind the stars.
var Background = rl.Black

// Options holds configuration for creating an App.
type Options struct {
	Seed      int64  // RNG seed (0 = time-based)
	OutputDir string // directory for perf.csv, config.yaml and screenshots (empty = disabled)
	LogPerf   bool   // log perf stats via slog
	ShowHUD   bool   // start with the HUD visible
	Workers   int    // shading workers (0 = GOMAXPROCS)
}

// App is the windowed starfield host. The window must be open before NewApp.
type App struct {
	cfg *config.Config

	frames *starfield.FrameQueue
	stars  *renderer.StarRenderer
	field  *starfield.Controller

	effects         *effects.System
	effectsRenderer *renderer.EffectsRenderer
	hud             *ui.HUD

	perf        *telemetry.PerfCollector
	output      *telemetry.OutputManager
	logPerf     bool
	lastPerfLog float64

	start        time.Time
	screenWidth  int
	screenHeight int
	screenshots  int
}

// NewApp attaches the starfield to the open window and wires the overlay, HUD and telemetry.
func NewApp(opts Options) (*App, error) {
	cfg := config.Cfg()

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	a := &App{
		cfg:             cfg,
		frames:          &starfield.FrameQueue{},
		stars:           renderer.NewStarRenderer(),
		effects:         effects.New(cfg, rand.New(rand.NewSource(seed+1))),
		effectsRenderer: renderer.NewEffectsRenderer(),
		hud:             ui.NewHUD(opts.ShowHUD || cfg.HUD.Visible),
		perf:            telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		logPerf:         opts.LogPerf,
		start:           time.Now(),
		screenWidth:     rl.GetScreenWidth(),
		screenHeight:    rl.GetScreenHeight(),
	}

	field, err := starfield.New(a.stars, starfield.Options{
		Rand:      rand.New(rand.NewSource(seed)),
		Scheduler: a.frames,
		Perf:      a.perf,
		Workers:   opts.Workers,
	})
	if err != nil {
		return nil, fmt.Errorf("starting starfield: %w", err)
	}
	a.field = field

	a.effects.SetOrbCenter(float32(a.screenWidth)/2, float32(a.screenHeight)/2)

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		a.Unload()
		return nil, err
	}
	a.output = output
	if err := a.output.WriteConfig(cfg); err != nil {
		slog.Warn("failed to write config snapshot", "error", err)
	}

	slog.Info("app ready",
		"seed", seed,
		"points", a.field.Field().Len(),
		"output_dir", a.output.Dir(),
	)
	return a, nil
}

// now returns seconds since the app started, the clock for the overlay.
func (a *App) now() float64 {
	return time.Since(a.start).Seconds()
}

// Frame runs one display refresh.
func (a *App) Frame() {
	now := a.now()
	a.handleInput(now)
	a.effects.Update(now)

	a.perf.StartFrame()

	rl.BeginDrawing()
	rl.ClearBackground(Background)

	// Runs the starfield's pending frame callback: shade and draw
	a.frames.Flush()

	a.perf.StartPhase(telemetry.PhaseEffects)
	if a.cfg.Effects.Enabled {
		a.effectsRenderer.Draw(a.effects, now)
	}

	a.perf.StartPhase(telemetry.PhaseHUD)
	a.drawHUD(now)

	rl.EndDrawing()

	a.perf.EndFrame()
	a.maybeLogPerf(now)
}

func (a *App) drawHUD(now float64) {
	stats := a.perf.Stats()
	vp := a.field.Viewport()

	actions := a.hud.Draw(ui.HUDData{
		FPS:         stats.FPS,
		FrameTime:   stats.AvgFrameDuration,
		P95:         stats.P95FrameDuration,
		Stars:       a.field.Field().Len(),
		Visible:     a.field.VisibleCount(),
		Particles:   a.effectsRenderer.Count(),
		Elapsed:     a.field.Elapsed(),
		PixelRatio:  vp.PixelRatio,
		ShadePct:    stats.PhasePct[telemetry.PhaseShade],
		TrailOn:     a.effects.TrailEnabled(),
		SpawnChance: a.effects.SpawnChance(),
	})
	a.hud.DrawControls(int32(a.screenHeight))

	if actions.ToggleTrail {
		a.effects.SetTrailEnabled(!a.effects.TrailEnabled())
	}
	if actions.Burst {
		a.effects.Click(now)
	}
	a.effects.SetSpawnChance(actions.SpawnChance)
}

// Unload stops the starfield workers, closes output and frees GPU resources.
func (a *App) Unload() {
	if a.field != nil {
		a.field.Unload()
		a.perf.Stats().LogStats()
	}
	if err := a.output.Close(); err != nil {
		slog.Warn("failed to close output", "error", err)
	}
	a.stars.Unload()
}

// Field returns the starfield controller.
func (a *App) Field() *starfield.Controller {
	return a.field
}
