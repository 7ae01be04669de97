// Snapshot tool - renders one starfield frame headlessly to PNG or WebP.
//
// Usage: go run ./cmd/snapshot -out still.webp -t 12.5 -seed 42 -supersample 2
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/pthm-cable/starfield/raster"
	"github.com/pthm-cable/starfield/starfield"
)

func main() {
	outPath := flag.String("out", "starfield.png", "Output path (.png or .webp)")
	width := flag.Int("width", 1280, "Logical width")
	height := flag.Int("height", 720, "Logical height")
	ratio := flag.Float64("ratio", 1, "Device pixel ratio (capped at 2)")
	elapsed := flag.Float64("t", 0, "Elapsed seconds to render")
	seed := flag.Int64("seed", 1, "RNG seed for the point field")
	points := flag.Int("points", starfield.DefaultPointCount, "Number of points")
	supersample := flag.Int("supersample", 1, "Render at N times the size and downsample")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	if _, err := raster.FormatFromPath(*outPath); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if *elapsed < 0 {
		fmt.Fprintf(os.Stderr, "-t must not be negative\n")
		os.Exit(1)
	}

	surface := raster.New(*width, *height, *ratio)
	surface.SetOversample(*supersample)

	clock := starfield.NewManualClock(time.Unix(0, 0))
	c, err := starfield.New(surface, starfield.Options{
		PointCount: *points,
		Rand:       rand.New(rand.NewSource(*seed)),
		Clock:      clock,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start starfield: %v\n", err)
		os.Exit(1)
	}
	defer c.Unload()

	clock.Advance(time.Duration(*elapsed * float64(time.Second)))
	c.Tick()

	img := raster.Downsample(surface.Image(), *supersample)
	if err := raster.WriteFile(*outPath, img); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write image: %v\n", err)
		os.Exit(1)
	}

	b := img.Bounds()
	fmt.Printf("Starfield rendered to: %s (%dx%d, t=%.2fs, %d visible)\n",
		*outPath, b.Dx(), b.Dy(), *elapsed, c.VisibleCount())
}
