package raster

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/pthm-cable/starfield/camera"
	"github.com/pthm-cable/starfield/starfield"
)

func attached(t *testing.T, w, h int, ratio float64) *Surface {
	t.Helper()
	s := New(w, h, ratio)
	pw, ph := s.Viewport().PixelSize(starfield.MaxPixelRatio)
	if err := s.Attach(pw, ph, ratio); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	return s
}

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestSpriteCenterIsColorTimesBrightness(t *testing.T) {
	s := attached(t, 32, 32, 1)
	s.Draw(&starfield.Frame{
		SpriteSize: starfield.SpriteDiameter,
		Sprites:    []starfield.Sprite{{X: 10.5, Y: 10.5, R: 1, G: 0.5, B: 0.25, Brightness: 0.8}},
	})

	r, g, b := s.At(10, 10)
	if !near(r, 0.8) || !near(g, 0.4) || !near(b, 0.2) {
		t.Errorf("expected centre (0.8, 0.4, 0.2), got (%v, %v, %v)", r, g, b)
	}

	// Two pixels out is the sprite edge
	if r, g, b := s.At(12, 10); r != 0 || g != 0 || b != 0 {
		t.Errorf("expected nothing at the edge, got (%v, %v, %v)", r, g, b)
	}
	// Falloff is monotonic
	r1, _, _ := s.At(11, 10)
	if r1 <= 0 || r1 >= r {
		t.Errorf("expected partial alpha one pixel out, got %v", r1)
	}
}

func TestOverlappingSpritesAdd(t *testing.T) {
	s := attached(t, 32, 32, 1)
	sp := starfield.Sprite{X: 10.5, Y: 10.5, R: 0.3, G: 0.3, B: 0.3, Brightness: 1}
	s.Draw(&starfield.Frame{SpriteSize: starfield.SpriteDiameter, Sprites: []starfield.Sprite{sp, sp}})

	r, _, _ := s.At(10, 10)
	if !near(r, 0.6) {
		t.Errorf("expected additive 0.6, got %v", r)
	}

	// A third pushes past 1 in the buffer but the image clamps
	s.Draw(&starfield.Frame{SpriteSize: starfield.SpriteDiameter, Sprites: []starfield.Sprite{sp, sp, sp, sp}})
	if c := s.Image().NRGBAAt(10, 10); c.R != 255 || c.A != 255 {
		t.Errorf("expected clamped white, got %+v", c)
	}
}

func TestDrawClearsPreviousFrame(t *testing.T) {
	s := attached(t, 16, 16, 1)
	s.Draw(&starfield.Frame{
		SpriteSize: starfield.SpriteDiameter,
		Sprites:    []starfield.Sprite{{X: 8.5, Y: 8.5, R: 1, G: 1, B: 1, Brightness: 1}},
	})
	s.Draw(&starfield.Frame{SpriteSize: starfield.SpriteDiameter})
	if r, _, _ := s.At(8, 8); r != 0 {
		t.Errorf("expected cleared buffer, got %v", r)
	}
}

func TestPixelRatioScalesSprites(t *testing.T) {
	s := attached(t, 16, 16, 2)
	if w, h := s.Size(); w != 32 || h != 32 {
		t.Fatalf("expected 32x32 device pixels, got %dx%d", w, h)
	}
	s.Draw(&starfield.Frame{
		SpriteSize: starfield.SpriteDiameter,
		Sprites:    []starfield.Sprite{{X: 8.25, Y: 8.25, R: 1, G: 1, B: 1, Brightness: 0.5}},
	})

	if r, _, _ := s.At(16, 16); !near(r, 0.5) {
		t.Errorf("expected centre 0.5 at device (16,16), got %v", r)
	}
	// 8 device pixels wide: three pixels out is still lit
	if r, _, _ := s.At(19, 16); r <= 0 {
		t.Error("expected sprite to cover 3 device pixels from centre at ratio 2")
	}
}

func TestSpritesAtEdgesAreClipped(t *testing.T) {
	s := attached(t, 8, 8, 1)
	s.Draw(&starfield.Frame{
		SpriteSize: starfield.SpriteDiameter,
		Sprites: []starfield.Sprite{
			{X: 0, Y: 0, R: 1, Brightness: 1},
			{X: 8, Y: 8, R: 1, Brightness: 1},
			{X: -50, Y: 4, R: 1, Brightness: 1},
		},
	})
	if r, _, _ := s.At(0, 0); r <= 0 {
		t.Error("expected corner sprite to light its visible quarter")
	}
}

func TestAttachRejectsEmpty(t *testing.T) {
	if err := New(0, 0, 1).Attach(0, 0, 1); err == nil {
		t.Error("expected error for zero size")
	}
}

func TestControllerRendersIntoRaster(t *testing.T) {
	s := New(160, 90, 1)
	clock := starfield.NewManualClock(time.Unix(0, 0))
	c, err := starfield.New(s, starfield.Options{
		PointCount: 5000,
		Rand:       rand.New(rand.NewSource(7)),
		Clock:      clock,
		Workers:    2,
	})
	if err != nil {
		t.Fatalf("starfield.New: %v", err)
	}
	defer c.Unload()

	clock.Advance(time.Second)
	c.Tick()

	lit := 0
	img := s.Image()
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i]|img.Pix[i+1]|img.Pix[i+2] != 0 {
			lit++
		}
	}
	if lit == 0 {
		t.Fatal("expected some lit pixels")
	}
	if c.VisibleCount() == 0 {
		t.Error("expected visible sprites")
	}

	// Resize follows the viewport
	s.SetViewport(camera.Viewport{Width: 80, Height: 40, PixelRatio: 3})
	c.Resize(80, 40, 3)
	if w, h := s.Size(); w != 160 || h != 80 {
		t.Errorf("expected ratio capped at 2 giving 160x80, got %dx%d", w, h)
	}
}

func TestOversample(t *testing.T) {
	s := New(16, 8, 1)
	s.SetOversample(3)
	if err := s.Attach(16, 8, 1); err != nil {
		t.Fatal(err)
	}
	if w, h := s.Size(); w != 48 || h != 24 {
		t.Fatalf("expected 48x24, got %dx%d", w, h)
	}

	s.Draw(&starfield.Frame{
		SpriteSize: starfield.SpriteDiameter,
		Sprites:    []starfield.Sprite{{X: 7.5, Y: 4.5, R: 1, G: 1, B: 1, Brightness: 1}},
	})
	// Logical (7.5, 4.5) lands on device pixel (22, 13) with its centre at (22.5, 13.5)
	if r, _, _ := s.At(22, 13); !near(r, 1) {
		t.Errorf("expected full centre at 3x, got %v", r)
	}

	down := Downsample(s.Image(), 3)
	if b := down.Bounds(); b.Dx() != 16 || b.Dy() != 8 {
		t.Errorf("expected downsampled 16x8, got %v", b)
	}
}
