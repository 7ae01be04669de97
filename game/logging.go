package game

import (
	"fmt"
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/starfield/raster"
	"github.com/pthm-cable/starfield/telemetry"
)

// maybeLogPerf logs and records perf stats once per configured interval.
func (a *App) maybeLogPerf(now float64) {
	interval := a.cfg.Telemetry.LogInterval
	if interval <= 0 || now-a.lastPerfLog < interval {
		return
	}
	a.lastPerfLog = now

	stats := a.perf.Stats()
	at := telemetry.FrameInfo{
		Frame:   int64(a.field.Frames()),
		Elapsed: a.field.Elapsed(),
		Visible: a.field.VisibleCount(),
	}

	if a.logPerf {
		slog.Info("perf",
			"frame", at.Frame,
			"visible", at.Visible,
			"particles", a.effects.Count(),
			"stats", stats,
		)
	}
	if err := a.output.WritePerf(stats, at); err != nil {
		slog.Warn("failed to write perf", "error", err)
	}
}

// saveScreenshot captures the window into the output directory, or the working directory.
func (a *App) saveScreenshot() {
	a.screenshots++
	name := fmt.Sprintf("starfield-%s-%03d.webp", time.Now().Format("20060102-150405"), a.screenshots)
	path := name
	if a.output != nil {
		path = a.output.Path(name)
	}

	img := rl.LoadImageFromScreen()
	defer rl.UnloadImage(img)

	if err := raster.WriteFile(path, img.ToImage()); err != nil {
		slog.Error("screenshot failed", "error", err)
		return
	}
	slog.Info("screenshot saved", "path", path)
}
