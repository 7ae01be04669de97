package starfield

import (
	"errors"

	"github.com/pthm-cable/starfield/camera"
)

// ErrSurfaceUnavailable is returned when the rendering surface cannot be initialized.
// It is fatal: the host environment must provide a working surface.
var ErrSurfaceUnavailable = errors.New("starfield: rendering surface unavailable")

// Surface is the host-provided mount point the controller draws into.
type Surface interface {
	// Viewport reports the current logical size and device pixel density.
	Viewport() camera.Viewport

	// Attach creates the backing resources at the given device pixel size.
	Attach(pixelW, pixelH int, pixelRatio float64) error

	// SetSize resizes the backing resources. pixelRatio is already capped.
	SetSize(pixelW, pixelH int, pixelRatio float64)

	// Draw renders one frame. The frame is only valid for the duration of the call.
	Draw(f *Frame)
}

// Scheduler runs callbacks on the next display refresh.
type Scheduler interface {
	RequestFrame(cb func())
}

// PhaseRecorder receives phase boundaries for frame timing.
type PhaseRecorder interface {
	StartPhase(phase string)
}

// Phase names recorded by the controller.
const (
	PhaseShade = "shade"
	PhaseDraw  = "draw"
)
