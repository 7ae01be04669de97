package effects

import "math"

// Orb is the glowing sphere at the center of the page. A click freezes its
// animations briefly and restarts them from phase zero.
type Orb struct {
	X, Y   float32
	Radius float32

	rotatePeriod float64
	pulsePeriod  float64
	corePeriod   float64
	restartDelay float64

	animStart float64 // effect time the current animation cycle began
}

// OrbState is the orb's pose at one instant.
type OrbState struct {
	X, Y      float32
	Radius    float32
	Rotation  float64 // radians
	Pulse     float64 // 0..1, ease-in-out over the pulse period
	CorePulse float64 // 0..1, alternating over the core period
	Animating bool
}

// Restart stops the animations and resumes them from zero after the restart delay.
func (o *Orb) Restart(now float64) {
	o.animStart = now + o.restartDelay
}

// State returns the orb pose at now.
func (o *Orb) State(now float64) OrbState {
	st := OrbState{X: o.X, Y: o.Y, Radius: o.Radius}
	if now < o.animStart {
		return st
	}
	t := now - o.animStart
	st.Animating = true

	if o.rotatePeriod > 0 {
		st.Rotation = 2 * math.Pi * frac(t/o.rotatePeriod)
	}
	if o.pulsePeriod > 0 {
		st.Pulse = 0.5 - 0.5*math.Cos(2*math.Pi*t/o.pulsePeriod)
	}
	if o.corePeriod > 0 {
		// Alternate direction: 0 -> 1 over one period, back over the next
		st.CorePulse = 0.5 - 0.5*math.Cos(math.Pi*t/o.corePeriod)
	}
	return st
}

func frac(x float64) float64 {
	return x - math.Floor(x)
}
