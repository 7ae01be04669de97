// Package camera provides the perspective camera and viewport used to project the starfield.
package camera

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Camera is a perspective camera sitting on the +Z axis looking toward the origin.
type Camera struct {
	// FOV is the vertical field of view in degrees
	FOV float64

	// Aspect is viewport width / height
	Aspect float64

	// Clip planes (distance along the view direction)
	Near, Far float64

	// Distance from the origin along +Z
	Distance float64

	// Derived by UpdateProjection
	focalY float64
	focalX float64
}

// New creates a camera and computes its projection.
func New(fov, aspect, near, far, distance float64) *Camera {
	c := &Camera{
		FOV:      fov,
		Aspect:   aspect,
		Near:     near,
		Far:      far,
		Distance: distance,
	}
	c.UpdateProjection()
	return c
}

// UpdateProjection recomputes the derived projection terms from FOV and Aspect.
// Must be called after either field changes.
func (c *Camera) UpdateProjection() {
	c.focalY = 1 / math.Tan(c.FOV*math.Pi/360)
	c.focalX = c.focalY / c.Aspect
}

// Resize updates the aspect ratio for a new viewport size and refreshes the projection.
// Degenerate sizes leave the camera untouched.
func (c *Camera) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = width / height
	c.UpdateProjection()
}

// Project maps a world-space point to logical viewport coordinates.
// ok is false when the point falls outside the near/far clip range.
// Screen y grows downward.
func (c *Camera) Project(p r3.Vec, width, height float64) (sx, sy float64, ok bool) {
	// View space: camera at (0, 0, Distance) looking down -Z
	depth := c.Distance - p.Z
	if depth < c.Near || depth > c.Far {
		return 0, 0, false
	}

	ndcX := c.focalX * p.X / depth
	ndcY := c.focalY * p.Y / depth

	sx = (ndcX + 1) * 0.5 * width
	sy = (1 - ndcY) * 0.5 * height
	return sx, sy, true
}

// Viewport describes the host surface in logical units plus its device pixel density.
type Viewport struct {
	Width, Height int
	PixelRatio    float64
}

// EffectiveRatio returns the pixel ratio capped at max. Non-positive ratios count as 1.
func (v Viewport) EffectiveRatio(max float64) float64 {
	r := v.PixelRatio
	if r <= 0 {
		r = 1
	}
	if r > max {
		r = max
	}
	return r
}

// PixelSize returns the backing buffer size in device pixels with the ratio capped at max.
func (v Viewport) PixelSize(max float64) (w, h int) {
	r := v.EffectiveRatio(max)
	return int(math.Round(float64(v.Width) * r)), int(math.Round(float64(v.Height) * r))
}

// Aspect returns width / height, or 1 for a degenerate viewport.
func (v Viewport) Aspect() float64 {
	if v.Width <= 0 || v.Height <= 0 {
		return 1
	}
	return float64(v.Width) / float64(v.Height)
}
