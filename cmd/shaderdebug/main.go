// Shader debug tool - renders a grid of star sprites through the star shader to an image.
//
// Each row is one color band; brightness rises left to right.
//
// Usage: go run ./cmd/shaderdebug -out sprites.png -size 48
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/starfield/raster"
	"github.com/pthm-cable/starfield/renderer"
	"github.com/pthm-cable/starfield/starfield"
)

// One hue per color band.
var bandHues = []float64{0.1, 0.5, 0.9}

func main() {
	outPath := flag.String("out", "sprites.png", "Output path (.png or .webp)")
	comparePath := flag.String("compare", "", "Also render the grid on the CPU raster to this path")
	size := flag.Float64("size", 48, "Sprite diameter in pixels")
	cols := flag.Int("cols", 8, "Brightness steps per row")
	flag.Parse()

	frame := spriteGrid(float32(*size), *cols)
	width := frame.Viewport.Width
	height := frame.Viewport.Height

	// Initialize raylib with hidden window
	rl.SetConfigFlags(rl.FlagWindowHidden)
	rl.InitWindow(int32(width), int32(height), "Shader Debug")
	defer rl.CloseWindow()

	stars := renderer.NewStarRenderer()
	if err := stars.Attach(width, height, 1); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load star shader: %v\n", err)
		os.Exit(1)
	}
	defer stars.Unload()

	// Create render texture
	target := rl.LoadRenderTexture(int32(width), int32(height))
	defer rl.UnloadRenderTexture(target)

	rl.BeginTextureMode(target)
	rl.ClearBackground(rl.Black)
	stars.Draw(frame)
	rl.EndTextureMode()

	// Get image from texture and flip it (OpenGL convention)
	img := rl.LoadImageFromTexture(target.Texture)
	rl.ImageFlipVertical(img)
	err := raster.WriteFile(*outPath, img.ToImage())
	rl.UnloadImage(img)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to export image: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Sprites rendered to: %s (%dx%d)\n", *outPath, width, height)

	if *comparePath != "" {
		cpu := raster.New(width, height, 1)
		if err := cpu.Attach(width, height, 1); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create raster: %v\n", err)
			os.Exit(1)
		}
		cpu.Draw(frame)
		if err := raster.WriteFile(*comparePath, cpu.Image()); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to export comparison: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("CPU reference rendered to: %s\n", *comparePath)
	}
}

// spriteGrid lays out one row per color band with brightness from 1/cols to 1.
func spriteGrid(size float32, cols int) *starfield.Frame {
	if cols < 1 {
		cols = 1
	}
	cell := size * 1.5
	rng := rand.New(rand.NewSource(1))

	f := &starfield.Frame{SpriteSize: size}
	f.Viewport.Width = int(cell * float32(cols))
	f.Viewport.Height = int(cell * float32(len(bandHues)))
	f.Viewport.PixelRatio = 1

	for row, hue := range bandHues {
		c := starfield.ColorForHue(hue, rng)
		for col := 0; col < cols; col++ {
			f.Sprites = append(f.Sprites, starfield.Sprite{
				X:          cell * (float32(col) + 0.5),
				Y:          cell * (float32(row) + 0.5),
				R:          c[0],
				G:          c[1],
				B:          c[2],
				Brightness: float32(col+1) / float32(cols),
			})
		}
	}
	return f
}
