package starfield

import "math"

// Twinkle hash vector and speed.
const (
	twinkleHashX = 12.9898
	twinkleHashY = 78.233
	twinkleSpeed = 2.0
)

// Sprite constants.
const (
	SpriteDiameter = 4.0 // device-independent units
	spriteFalloff  = 0.5 // alpha reaches zero at this normalized radius
)

// ShadingState is the per-frame input to the shading stage.
type ShadingState struct {
	Time float64 // seconds since the loop started
}

// Twinkle returns the twinkle phase in [-1, 1] for a point at model-space (x, y).
func Twinkle(x, y, t float64) float64 {
	return math.Sin(x*twinkleHashX + y*twinkleHashY + t*twinkleSpeed)
}

// Brightness remaps a twinkle phase from [-1, 1] to [0, 1].
func Brightness(phase float64) float64 {
	return 0.5 + 0.5*phase
}

// Smoothstep is the GLSL smoothstep: Hermite interpolation of x between edge0 and edge1.
func Smoothstep(edge0, edge1, x float64) float64 {
	t := (x - edge0) / (edge1 - edge0)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}

// SpriteAlpha returns the opacity of a sprite fragment at dist from the sprite center,
// where dist is measured in sprite-normalized coordinates (0.5 = edge).
func SpriteAlpha(dist, brightness float64) float64 {
	return (1 - Smoothstep(0, spriteFalloff, dist)) * brightness
}
