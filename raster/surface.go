// Package raster is a CPU implementation of the starfield drawing surface.
// It renders frames into an in-memory image for headless snapshots and tests.
package raster

import (
	"fmt"
	"image"
	"math"

	"github.com/pthm-cable/starfield/camera"
	"github.com/pthm-cable/starfield/starfield"
)

// Surface accumulates sprites additively over a black background.
type Surface struct {
	viewport camera.Viewport

	width, height int // device pixels, oversampling included
	ratio         float64
	oversample    int
	accum         []float32 // linear RGB per pixel
}

// New creates a surface reporting the given logical size and pixel density.
func New(width, height int, pixelRatio float64) *Surface {
	return &Surface{
		viewport: camera.Viewport{Width: width, Height: height, PixelRatio: pixelRatio},
	}
}

// Viewport reports the logical size and pixel density.
func (s *Surface) Viewport() camera.Viewport {
	return s.viewport
}

// Attach allocates the pixel buffer.
func (s *Surface) Attach(pixelW, pixelH int, pixelRatio float64) error {
	if pixelW <= 0 || pixelH <= 0 {
		return fmt.Errorf("invalid raster size %dx%d", pixelW, pixelH)
	}
	s.SetSize(pixelW, pixelH, pixelRatio)
	return nil
}

// SetSize reallocates the pixel buffer.
func (s *Surface) SetSize(pixelW, pixelH int, pixelRatio float64) {
	k := max(s.oversample, 1)
	s.width, s.height = pixelW*k, pixelH*k
	s.ratio = pixelRatio * float64(k)
	s.accum = make([]float32, s.width*s.height*3)
}

// SetOversample renders k device pixels per pixel in each direction, beyond the
// controller's pixel ratio cap. Takes effect on the next Attach or SetSize.
func (s *Surface) SetOversample(k int) {
	s.oversample = k
}

// SetViewport changes the size reported to the controller, as a window resize would.
func (s *Surface) SetViewport(vp camera.Viewport) {
	s.viewport = vp
}

// Size returns the buffer size in device pixels.
func (s *Surface) Size() (w, h int) {
	return s.width, s.height
}

// Draw clears the buffer and adds every sprite with its circular falloff.
func (s *Surface) Draw(f *starfield.Frame) {
	clear(s.accum)

	ratio := s.ratio
	if ratio <= 0 {
		ratio = 1
	}
	diameter := float64(f.SpriteSize) * ratio
	if diameter <= 0 {
		return
	}
	radius := diameter / 2

	for i := range f.Sprites {
		sp := &f.Sprites[i]
		cx := float64(sp.X) * ratio
		cy := float64(sp.Y) * ratio

		x0 := max(int(math.Floor(cx-radius)), 0)
		x1 := min(int(math.Ceil(cx+radius)), s.width)
		y0 := max(int(math.Floor(cy-radius)), 0)
		y1 := min(int(math.Ceil(cy+radius)), s.height)

		for py := y0; py < y1; py++ {
			dy := float64(py) + 0.5 - cy
			row := py * s.width
			for px := x0; px < x1; px++ {
				dx := float64(px) + 0.5 - cx
				// Normalized to the sprite: 0.5 is the edge
				dist := math.Sqrt(dx*dx+dy*dy) / diameter
				a := float32(starfield.SpriteAlpha(dist, float64(sp.Brightness)))
				if a <= 0 {
					continue
				}
				o := (row + px) * 3
				s.accum[o] += sp.R * a
				s.accum[o+1] += sp.G * a
				s.accum[o+2] += sp.B * a
			}
		}
	}
}

// At returns the accumulated linear color at a device pixel, unclamped.
func (s *Surface) At(x, y int) (r, g, b float32) {
	o := (y*s.width + x) * 3
	return s.accum[o], s.accum[o+1], s.accum[o+2]
}

// Image returns the buffer as an opaque image, clamping each channel to [0, 1].
func (s *Surface) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
	for i, n := 0, s.width*s.height; i < n; i++ {
		o := i * 4
		img.Pix[o] = toByte(s.accum[i*3])
		img.Pix[o+1] = toByte(s.accum[i*3+1])
		img.Pix[o+2] = toByte(s.accum[i*3+2])
		img.Pix[o+3] = 255
	}
	return img
}

func toByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
