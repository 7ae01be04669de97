package starfield

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/pthm-cable/starfield/camera"
)

// Camera and surface constants.
const (
	CameraFOV      = 75.0
	CameraNear     = 0.1
	CameraFar      = 10000.0
	CameraDistance = 1000.0
	MaxPixelRatio  = 2.0
)

// State is the controller lifecycle state.
type State uint8

const (
	StateInitializing State = iota
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateRunning:
		return "running"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Options configures a Controller. Zero values select the defaults.
type Options struct {
	PointCount int           // 0 = DefaultPointCount
	Rand       *rand.Rand    // nil = time-seeded
	Clock      Clock         // nil = SystemClock
	Scheduler  Scheduler     // nil = host calls Tick directly
	Perf       PhaseRecorder // nil = no phase timing
	Workers    int           // shading workers, 0 = GOMAXPROCS
}

// Controller owns the camera, surface and point field, and runs the frame loop.
type Controller struct {
	surface   Surface
	clock     Clock
	scheduler Scheduler
	perf      PhaseRecorder

	field    *PointField
	camera   *camera.Camera
	viewport camera.Viewport // logical size, ratio capped

	state       State
	start       time.Time
	shading     ShadingState
	orientation Orientation

	frame  Frame
	pool   *shadePool
	frames uint64
}

// New runs the one-shot setup and leaves the controller running.
// If opts.Scheduler is set, the first frame is scheduled before New returns.
func New(surface Surface, opts Options) (*Controller, error) {
	if surface == nil {
		return nil, fmt.Errorf("%w: no surface provided", ErrSurfaceUnavailable)
	}

	c := &Controller{
		surface:   surface,
		clock:     opts.Clock,
		scheduler: opts.Scheduler,
		perf:      opts.Perf,
		state:     StateInitializing,
		pool:      newShadePool(opts.Workers),
	}
	if c.clock == nil {
		c.clock = SystemClock{}
	}

	// Surface and camera
	vp := surface.Viewport()
	ratio := vp.EffectiveRatio(MaxPixelRatio)
	c.viewport = camera.Viewport{Width: vp.Width, Height: vp.Height, PixelRatio: ratio}
	c.camera = camera.New(CameraFOV, vp.Aspect(), CameraNear, CameraFar, CameraDistance)

	pw, ph := vp.PixelSize(MaxPixelRatio)
	if err := surface.Attach(pw, ph, ratio); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSurfaceUnavailable, err)
	}

	// Field
	count := opts.PointCount
	if count <= 0 {
		count = DefaultPointCount
	}
	c.field = Generate(count, opts.Rand)
	c.frame.Sprites = make([]Sprite, 0, count)

	c.start = c.clock.Now()
	c.state = StateRunning

	slog.Info("starfield running",
		"points", c.field.Len(),
		"width", vp.Width,
		"height", vp.Height,
		"pixel_ratio", ratio,
	)

	if c.scheduler != nil {
		c.scheduler.RequestFrame(c.animate)
	}

	return c, nil
}

// animate is the recurring frame callback. It re-submits itself before doing the work.
func (c *Controller) animate() {
	c.scheduler.RequestFrame(c.animate)
	c.Tick()
}

// Tick runs one frame: advance time, update orientation, shade, draw.
func (c *Controller) Tick() {
	if c.state != StateRunning {
		return
	}

	elapsed := c.clock.Now().Sub(c.start).Seconds()
	c.shading.Time = elapsed
	c.orientation = OrientationAt(elapsed)

	c.startPhase(PhaseShade)
	c.shade()

	c.startPhase(PhaseDraw)
	c.surface.Draw(&c.frame)
	c.frames++
}

// shade fills c.frame for the current shading state and orientation.
func (c *Controller) shade() {
	params := shadeParams{
		state:  c.shading,
		basis:  c.orientation.basis(),
		cam:    c.camera,
		width:  float64(c.viewport.Width),
		height: float64(c.viewport.Height),
		margin: SpriteDiameter,
	}

	c.frame.Time = c.shading.Time
	c.frame.Orientation = c.orientation
	c.frame.Viewport = c.viewport
	c.frame.SpriteSize = SpriteDiameter
	c.frame.Sprites = c.pool.shade(c.field.Points, &params, c.frame.Sprites[:0])
}

func (c *Controller) startPhase(phase string) {
	if c.perf != nil {
		c.perf.StartPhase(phase)
	}
}

// Resize reacts to a viewport change: refresh the camera projection and resize the surface.
// Non-positive sizes (minimized window) are ignored.
func (c *Controller) Resize(width, height int, pixelRatio float64) {
	if width <= 0 || height <= 0 {
		return
	}

	vp := camera.Viewport{Width: width, Height: height, PixelRatio: pixelRatio}
	ratio := vp.EffectiveRatio(MaxPixelRatio)

	c.camera.Resize(float64(width), float64(height))
	c.viewport = camera.Viewport{Width: width, Height: height, PixelRatio: ratio}

	pw, ph := vp.PixelSize(MaxPixelRatio)
	c.surface.SetSize(pw, ph, ratio)

	slog.Debug("starfield resized",
		"width", width,
		"height", height,
		"pixel_width", pw,
		"pixel_height", ph,
		"pixel_ratio", ratio,
	)
}

// Unload stops the shading workers. Tick keeps working afterwards, shading inline.
func (c *Controller) Unload() {
	c.pool.stop()
	c.pool.numWorkers = 1
}

// State returns the lifecycle state.
func (c *Controller) State() State { return c.state }

// Field returns the generated point field.
func (c *Controller) Field() *PointField { return c.field }

// Camera returns the controller's camera.
func (c *Controller) Camera() *camera.Camera { return c.camera }

// Viewport returns the logical viewport with the capped pixel ratio.
func (c *Controller) Viewport() camera.Viewport { return c.viewport }

// Shading returns the shading state of the last frame.
func (c *Controller) Shading() ShadingState { return c.shading }

// Orientation returns the field orientation of the last frame.
func (c *Controller) Orientation() Orientation { return c.orientation }

// Frames returns the number of frames drawn.
func (c *Controller) Frames() uint64 { return c.frames }

// VisibleCount returns the number of sprites drawn in the last frame.
func (c *Controller) VisibleCount() int { return len(c.frame.Sprites) }

// Elapsed returns seconds since the loop started, per the controller's clock.
func (c *Controller) Elapsed() float64 {
	return c.clock.Now().Sub(c.start).Seconds()
}

