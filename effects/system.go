package effects

import (
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/starfield/config"
)

// System owns the overlay particles. Times passed in are seconds of effect
// time from any monotonic source.
type System struct {
	world  *ecs.World
	mapper *ecs.Map4[Origin, Motion, Life, Appearance]
	filter *ecs.Filter4[Origin, Motion, Life, Appearance]

	cfg     config.EffectsConfig
	palette []color.RGBA
	glow    color.RGBA
	rng     *rand.Rand

	throttle float64
	stagger  float64

	trailEnabled bool
	spawnChance  float64
	lastTrail    float64
	hasTrail     bool
	liveTrail    int

	cursorX, cursorY float32
	hasCursor        bool

	orb Orb

	toRemove []ecs.Entity
}

// New creates an effect system from the loaded config. A nil rng is seeded from the clock.
func New(cfg *config.Config, rng *rand.Rand) *System {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	world := ecs.NewWorld()
	e := cfg.Effects

	return &System{
		world:        world,
		mapper:       ecs.NewMap4[Origin, Motion, Life, Appearance](world),
		filter:       ecs.NewFilter4[Origin, Motion, Life, Appearance](world),
		cfg:          e,
		palette:      cfg.Derived.Palette,
		glow:         cfg.Derived.GlowColor,
		rng:          rng,
		throttle:     cfg.Derived.TrailThrottle,
		stagger:      cfg.Derived.BurstStagger,
		trailEnabled: e.Trail.Enabled,
		spawnChance:  e.Trail.SpawnChance,
		orb: Orb{
			Radius:       float32(e.Orb.Radius),
			rotatePeriod: e.Orb.RotatePeriod,
			pulsePeriod:  e.Orb.PulsePeriod,
			corePeriod:   e.Orb.CorePeriod,
			restartDelay: cfg.Derived.OrbRestart,
		},
	}
}

// SetOrbCenter places the orb, normally at the window center.
func (s *System) SetOrbCenter(x, y float32) {
	s.orb.X, s.orb.Y = x, y
}

// Orb returns the orb pose at now.
func (s *System) Orb(now float64) OrbState {
	return s.orb.State(now)
}

// Cursor returns the glow position and whether the pointer has been seen.
func (s *System) Cursor() (x, y float32, ok bool) {
	return s.cursorX, s.cursorY, s.hasCursor
}

// GlowRadius returns the cursor glow radius in pixels.
func (s *System) GlowRadius() float32 {
	return float32(s.cfg.Glow.Radius)
}

// GlowColor returns the cursor glow color.
func (s *System) GlowColor() color.RGBA {
	return s.glow
}

// TrailEnabled reports whether pointer movement spawns trail particles.
func (s *System) TrailEnabled() bool { return s.trailEnabled }

// SetTrailEnabled toggles trail spawning. Live trail particles finish normally.
func (s *System) SetTrailEnabled(on bool) { s.trailEnabled = on }

// SpawnChance returns the probability that a qualifying move spawns a trail particle.
func (s *System) SpawnChance() float64 { return s.spawnChance }

// SetSpawnChance sets the trail spawn probability, clamped to [0,1].
func (s *System) SetSpawnChance(p float64) {
	s.spawnChance = math.Max(0, math.Min(1, p))
}

// PointerMoved moves the cursor glow and may spawn a trail particle.
// Spawns are throttled to one per throttle interval and then gated by the spawn chance.
func (s *System) PointerMoved(x, y float32, now float64) {
	s.cursorX, s.cursorY = x, y
	s.hasCursor = true

	if !s.cfg.Enabled || !s.trailEnabled {
		return
	}
	if s.hasTrail && now-s.lastTrail <= s.throttle {
		return
	}
	if s.rng.Float64() >= s.spawnChance {
		return
	}
	if s.cfg.Trail.MaxLive > 0 && s.liveTrail >= s.cfg.Trail.MaxLive {
		return
	}
	s.lastTrail = now
	s.hasTrail = true
	s.spawnTrail(x, y, now)
}

func (s *System) spawnTrail(x, y float32, now float64) {
	t := s.cfg.Trail
	origin := Origin{X: x, Y: y}
	motion := Motion{
		DX:   float32((s.rng.Float64() - 0.5) * t.Rise * 0.5),
		DY:   -float32(t.Rise),
		Ease: EaseInOut,
	}
	life := Life{Start: now, Duration: t.Lifetime}
	app := Appearance{
		Size:  float32(t.MinSize + s.rng.Float64()*(t.MaxSize-t.MinSize)),
		Color: s.pickColor(),
		Kind:  KindTrail,
	}
	s.mapper.NewEntity(&origin, &motion, &life, &app)
	s.liveTrail++
}

// Click restarts the orb animation and fires a new burst around the orb.
// Any burst still in flight is discarded.
func (s *System) Click(now float64) {
	s.orb.Restart(now)
	if !s.cfg.Enabled {
		return
	}

	s.removeWhere(func(_ *Life, app *Appearance) bool { return app.Kind == KindBurst })

	b := s.cfg.Burst
	deadline := now + b.Duration
	for i := 0; i < b.Count; i++ {
		angle := s.rng.Float64() * 2 * math.Pi
		dist := b.MinDistance + s.rng.Float64()*(b.MaxDistance-b.MinDistance)
		cos, sin := math.Cos(angle), math.Sin(angle)

		origin := Origin{
			X: s.orb.X + float32(cos*dist),
			Y: s.orb.Y + float32(sin*dist),
		}
		motion := Motion{
			DX:   float32(cos * b.Travel),
			DY:   float32(sin * b.Travel),
			Ease: EaseOut,
		}
		life := Life{
			Start:    now + float64(i)*s.stagger,
			Duration: b.Duration,
			Deadline: deadline,
		}
		app := Appearance{
			Size:   float32(b.MinSize + s.rng.Float64()*(b.MaxSize-b.MinSize)),
			Color:  s.pickColor(),
			Shrink: true,
			Kind:   KindBurst,
		}
		s.mapper.NewEntity(&origin, &motion, &life, &app)
	}
}

// Update removes particles whose animation or deadline has passed.
func (s *System) Update(now float64) {
	s.removeWhere(func(life *Life, _ *Appearance) bool { return expired(life, now) })
}

func expired(life *Life, now float64) bool {
	if life.Deadline > 0 && now >= life.Deadline {
		return true
	}
	return now >= life.Start+life.Duration
}

// removeWhere collects matching entities, then removes them once the query is done.
func (s *System) removeWhere(match func(*Life, *Appearance) bool) {
	s.toRemove = s.toRemove[:0]
	query := s.filter.Query()
	for query.Next() {
		_, _, life, app := query.Get()
		if match(life, app) {
			if app.Kind == KindTrail {
				s.liveTrail--
			}
			s.toRemove = append(s.toRemove, query.Entity())
		}
	}
	for _, e := range s.toRemove {
		s.world.RemoveEntity(e)
	}
}

// Particles appends a snapshot of every visible particle at now to dst.
// Particles still waiting out their stagger delay are not visible.
func (s *System) Particles(now float64, dst []Particle) []Particle {
	query := s.filter.Query()
	for query.Next() {
		origin, motion, life, app := query.Get()
		if now < life.Start || expired(life, now) {
			continue
		}
		p := (now - life.Start) / life.Duration
		k := ease(motion.Ease, p)
		fade := 1 - k

		size := app.Size
		if app.Shrink {
			size *= float32(fade)
		}
		c := app.Color
		c.A = uint8(math.Round(float64(c.A) * fade))

		dst = append(dst, Particle{
			X:     origin.X + motion.DX*float32(k),
			Y:     origin.Y + motion.DY*float32(k),
			Size:  size,
			Color: c,
			Kind:  app.Kind,
		})
	}
	return dst
}

// Count returns the number of live particles, including ones not yet visible.
func (s *System) Count() int {
	n := 0
	query := s.filter.Query()
	for query.Next() {
		n++
	}
	return n
}

func (s *System) pickColor() color.RGBA {
	if len(s.palette) == 0 {
		return color.RGBA{255, 255, 255, 204}
	}
	return s.palette[s.rng.Intn(len(s.palette))]
}
