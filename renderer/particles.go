package renderer

import (
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/starfield/effects"
)

// Orb colors: magenta rim, cyan core.
var (
	orbInner = rl.Color{R: 255, G: 0, B: 255, A: 90}
	orbOuter = rl.Color{R: 255, G: 0, B: 255, A: 0}
	orbRing  = rl.Color{R: 0, G: 255, B: 255, A: 150}
	orbCore  = rl.Color{R: 0, G: 255, B: 255, A: 200}
)

// EffectsRenderer draws the cursor glow, overlay particles and the orb.
type EffectsRenderer struct {
	particles []effects.Particle
}

// NewEffectsRenderer creates a new effects renderer.
func NewEffectsRenderer() *EffectsRenderer {
	return &EffectsRenderer{
		particles: make([]effects.Particle, 0, 512),
	}
}

// Draw renders everything the effect system shows at now.
func (r *EffectsRenderer) Draw(sys *effects.System, now float64) {
	rl.BeginBlendMode(rl.BlendAdditive)

	r.drawOrb(sys.Orb(now))

	r.particles = sys.Particles(now, r.particles[:0])
	for i := range r.particles {
		p := &r.particles[i]
		size := p.Size / 2
		if size < 0.5 {
			continue
		}
		rl.DrawCircleV(rl.Vector2{X: p.X, Y: p.Y}, size, toRL(p.Color))
	}

	if x, y, ok := sys.Cursor(); ok {
		glow := toRL(sys.GlowColor())
		edge := glow
		edge.A = 0
		rl.DrawCircleGradient(int32(x), int32(y), sys.GlowRadius(), glow, edge)
	}

	rl.EndBlendMode()
}

// Count returns the number of particles drawn last frame.
func (r *EffectsRenderer) Count() int {
	return len(r.particles)
}

func (r *EffectsRenderer) drawOrb(st effects.OrbState) {
	if st.Radius <= 0 {
		return
	}
	center := rl.Vector2{X: st.X, Y: st.Y}
	radius := st.Radius * float32(1+0.1*st.Pulse)

	rl.DrawCircleGradient(int32(st.X), int32(st.Y), radius*1.4, orbInner, orbOuter)

	// Two opposing arcs make the rotation visible
	deg := float32(st.Rotation * 180 / math.Pi)
	rl.DrawRing(center, radius*0.92, radius, deg, deg+120, 48, orbRing)
	rl.DrawRing(center, radius*0.92, radius, deg+180, deg+300, 48, orbRing)

	core := orbCore
	core.A = uint8(120 + 80*st.CorePulse)
	rl.DrawCircleV(center, radius*float32(0.35+0.1*st.CorePulse), core)
}

func toRL(c color.RGBA) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
