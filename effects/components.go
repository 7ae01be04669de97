// Package effects provides the cursor and orb particle overlay drawn on top of the starfield.
package effects

import "image/color"

// Kind identifies what spawned a particle.
type Kind uint8

const (
	KindTrail Kind = iota
	KindBurst
)

// Easing selects the progress curve of a particle's animation.
type Easing uint8

const (
	EaseInOut Easing = iota
	EaseOut
)

// Origin is where a particle starts, in screen pixels.
type Origin struct {
	X, Y float32
}

// Motion is the total displacement covered over the particle's life.
type Motion struct {
	DX, DY float32
	Ease   Easing
}

// Life holds the particle's schedule in seconds of effect time.
type Life struct {
	Start    float64 // animation begins (spawn time plus any stagger delay)
	Duration float64
	Deadline float64 // hard hide time, 0 = none
}

// Appearance holds how the particle is drawn.
type Appearance struct {
	Size   float32
	Color  color.RGBA
	Shrink bool // scale to zero over the life
	Kind   Kind
}

// Particle is a renderable snapshot of one live particle.
type Particle struct {
	X, Y  float32
	Size  float32
	Color color.RGBA // alpha already scaled by the fade
	Kind  Kind
}

// ease maps linear progress in [0,1] through the given curve.
func ease(e Easing, t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	switch e {
	case EaseOut:
		return 1 - (1-t)*(1-t)
	default:
		return t * t * (3 - 2*t)
	}
}
