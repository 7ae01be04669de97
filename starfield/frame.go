package starfield

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/starfield/camera"
)

// Rotation rates in radians per second of elapsed time.
const (
	RotationRateY = 0.01
	RotationRateX = 0.005
)

// Orientation is the field's rotation about the horizontal (X) and vertical (Y) axes.
type Orientation struct {
	X, Y float64
}

// OrientationAt returns the field orientation for an absolute elapsed time.
func OrientationAt(elapsed float64) Orientation {
	return Orientation{
		X: elapsed * RotationRateX,
		Y: elapsed * RotationRateY,
	}
}

// basis is a rotation matrix stored as its three column vectors.
type basis [3]r3.Vec

// basis builds the model rotation in XYZ Euler order: points are rotated about Y, then X.
func (o Orientation) basis() basis {
	rx := r3.NewRotation(o.X, r3.Vec{X: 1})
	ry := r3.NewRotation(o.Y, r3.Vec{Y: 1})
	return basis{
		rx.Rotate(ry.Rotate(r3.Vec{X: 1})),
		rx.Rotate(ry.Rotate(r3.Vec{Y: 1})),
		rx.Rotate(ry.Rotate(r3.Vec{Z: 1})),
	}
}

func (b *basis) apply(x, y, z float64) r3.Vec {
	return r3.Add(r3.Add(r3.Scale(x, b[0]), r3.Scale(y, b[1])), r3.Scale(z, b[2]))
}

// Sprite is one visible star after projection and shading.
// X and Y are logical viewport coordinates of the sprite center.
type Sprite struct {
	X, Y       float32
	R, G, B    float32
	Brightness float32
}

// Frame is everything a Surface needs to draw one refresh.
type Frame struct {
	Time        float64
	Orientation Orientation
	Viewport    camera.Viewport // logical size, ratio already capped
	SpriteSize  float32         // logical diameter
	Sprites     []Sprite
}

// shadeParams is the read-only input shared by all shading workers for one frame.
type shadeParams struct {
	state  ShadingState
	basis  basis
	cam    *camera.Camera
	width  float64
	height float64
	margin float64
}

// shadeRange projects and shades points[start:end], appending visible sprites to dst.
func shadeRange(points []Point, start, end int, p *shadeParams, dst []Sprite) []Sprite {
	for i := start; i < end; i++ {
		pt := &points[i]
		x := float64(pt.Position[0])
		y := float64(pt.Position[1])
		z := float64(pt.Position[2])

		sx, sy, ok := p.cam.Project(p.basis.apply(x, y, z), p.width, p.height)
		if !ok {
			continue
		}
		if sx < -p.margin || sx > p.width+p.margin || sy < -p.margin || sy > p.height+p.margin {
			continue
		}

		// Twinkle uses the unrotated model-space position
		brightness := Brightness(Twinkle(x, y, p.state.Time))

		dst = append(dst, Sprite{
			X:          float32(sx),
			Y:          float32(sy),
			R:          pt.Color[0],
			G:          pt.Color[1],
			B:          pt.Color[2],
			Brightness: float32(brightness),
		})
	}
	return dst
}
