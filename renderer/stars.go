package renderer

import (
	_ "embed"
	"errors"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/starfield/camera"
	"github.com/pthm-cable/starfield/starfield"
)

//go:embed shaders/stars.fs
var starsFS string

// StarRenderer draws starfield frames into the raylib window.
// Each sprite is a textured quad; the fragment shader applies the circular falloff.
type StarRenderer struct {
	shader      rl.Shader
	initialized bool

	pixelW, pixelH int
	pixelRatio     float64
}

// NewStarRenderer creates a star renderer. The window must exist before Attach.
func NewStarRenderer() *StarRenderer {
	return &StarRenderer{}
}

// Viewport reports the window's logical size and DPI scale.
func (r *StarRenderer) Viewport() camera.Viewport {
	ratio := float64(1)
	if scale := rl.GetWindowScaleDPI(); scale.X > 0 {
		ratio = float64(scale.X)
	}
	return camera.Viewport{
		Width:      rl.GetScreenWidth(),
		Height:     rl.GetScreenHeight(),
		PixelRatio: ratio,
	}
}

// Attach loads the star shader.
func (r *StarRenderer) Attach(pixelW, pixelH int, pixelRatio float64) error {
	if !rl.IsWindowReady() {
		return errors.New("window not ready")
	}
	if !r.initialized {
		r.shader = rl.LoadShaderFromMemory("", starsFS)
		if !rl.IsShaderValid(r.shader) {
			return errors.New("star shader failed to compile")
		}
		r.initialized = true
	}
	r.SetSize(pixelW, pixelH, pixelRatio)
	return nil
}

// SetSize records the backing size. raylib resizes the framebuffer with the window.
func (r *StarRenderer) SetSize(pixelW, pixelH int, pixelRatio float64) {
	r.pixelW, r.pixelH = pixelW, pixelH
	r.pixelRatio = pixelRatio
	slog.Debug("star surface size", "pixel_w", pixelW, "pixel_h", pixelH, "pixel_ratio", pixelRatio)
}

// PixelSize returns the last backing size set by the controller.
func (r *StarRenderer) PixelSize() (w, h int, ratio float64) {
	return r.pixelW, r.pixelH, r.pixelRatio
}

// Draw renders the frame's sprites with additive blending and no depth writes.
func (r *StarRenderer) Draw(f *starfield.Frame) {
	if !r.initialized || len(f.Sprites) == 0 {
		return
	}

	half := f.SpriteSize / 2

	rl.DisableDepthMask()
	rl.BeginBlendMode(rl.BlendAdditive)
	rl.BeginShaderMode(r.shader)

	rl.Begin(rl.Quads)
	for i := range f.Sprites {
		s := &f.Sprites[i]
		rl.Color4f(s.R, s.G, s.B, s.Brightness)

		// Counter-clockwise winding, as raylib's own quads
		rl.TexCoord2f(0, 0)
		rl.Vertex2f(s.X-half, s.Y-half)
		rl.TexCoord2f(0, 1)
		rl.Vertex2f(s.X-half, s.Y+half)
		rl.TexCoord2f(1, 1)
		rl.Vertex2f(s.X+half, s.Y+half)
		rl.TexCoord2f(1, 0)
		rl.Vertex2f(s.X+half, s.Y-half)
	}
	rl.End()

	rl.EndShaderMode()
	rl.EndBlendMode()
	rl.EnableDepthMask()
}

// Unload frees resources.
func (r *StarRenderer) Unload() {
	if r.initialized {
		rl.UnloadShader(r.shader)
		r.initialized = false
	}
}
