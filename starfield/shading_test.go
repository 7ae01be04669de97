package starfield

import (
	"math"
	"testing"
)

func TestBrightnessRemap(t *testing.T) {
	if b := Brightness(-1); b != 0 {
		t.Errorf("phase -1: expected brightness 0, got %f", b)
	}
	if b := Brightness(1); b != 1 {
		t.Errorf("phase 1: expected brightness 1, got %f", b)
	}
	if b := Brightness(0); b != 0.5 {
		t.Errorf("phase 0: expected brightness 0.5, got %f", b)
	}

	for phase := -1.0; phase <= 1.0; phase += 0.01 {
		b := Brightness(phase)
		if b < 0 || b > 1 {
			t.Fatalf("phase %f: brightness %f out of [0,1]", phase, b)
		}
	}
}

func TestTwinkleFormula(t *testing.T) {
	testCases := []struct{ x, y, t float64 }{
		{0, 0, 0},
		{1, 2, 3},
		{-4999.5, 4321.25, 12.75},
		{100, -100, 0.016},
	}

	for _, tc := range testCases {
		want := math.Sin(tc.x*12.9898 + tc.y*78.233 + tc.t*2.0)
		if got := Twinkle(tc.x, tc.y, tc.t); math.Abs(got-want) > 1e-9 {
			t.Errorf("Twinkle(%f, %f, %f) = %f, expected %f", tc.x, tc.y, tc.t, got, want)
		}
	}
}

func TestTwinkleHalfPeriod(t *testing.T) {
	// Advancing time by half a period flips the phase.
	a := Twinkle(10, 20, 0)
	b := Twinkle(10, 20, math.Pi/2)
	if math.Abs(a+b) > 1e-9 {
		t.Errorf("expected phase to invert after half a period, got %f and %f", a, b)
	}
}

func TestSmoothstep(t *testing.T) {
	testCases := []struct{ x, want float64 }{
		{-1, 0},
		{0, 0},
		{0.25, 0.5},
		{0.5, 1},
		{2, 1},
	}

	for _, tc := range testCases {
		if got := Smoothstep(0, 0.5, tc.x); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("Smoothstep(0, 0.5, %f) = %f, expected %f", tc.x, got, tc.want)
		}
	}
}

func TestSpriteAlpha(t *testing.T) {
	// Center is fully lit, scaled by brightness
	if a := SpriteAlpha(0, 0.7); math.Abs(a-0.7) > 1e-12 {
		t.Errorf("center: expected 0.7, got %f", a)
	}
	// Edge and beyond are transparent
	if a := SpriteAlpha(0.5, 1); a != 0 {
		t.Errorf("edge: expected 0, got %f", a)
	}
	if a := SpriteAlpha(0.7, 1); a != 0 {
		t.Errorf("corner: expected 0, got %f", a)
	}
	// Falloff is monotonic
	prev := SpriteAlpha(0, 1)
	for d := 0.01; d <= 0.5; d += 0.01 {
		a := SpriteAlpha(d, 1)
		if a > prev {
			t.Fatalf("alpha increased at dist %f: %f > %f", d, a, prev)
		}
		prev = a
	}
}
