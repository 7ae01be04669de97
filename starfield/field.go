// Package starfield generates the star point cloud and drives its per-frame animation.
package starfield

import (
	"math/rand"
	"time"
)

// Field generation constants.
const (
	DefaultPointCount = 50000
	HalfWidth         = 5000.0 // cube side is 2*HalfWidth
)

// Hue split points for the three star color families.
const (
	coolThreshold = 1.0 / 3.0
	warmThreshold = 2.0 / 3.0
)

// Point is a single star: model-space position and linear RGB color in [0,1].
type Point struct {
	Position [3]float32
	Color    [3]float32
}

// PointField holds the generated stars plus their packed attribute buffers.
// Positions and Colors are 3 floats per point, index-aligned with Points.
type PointField struct {
	Points    []Point
	Positions []float32
	Colors    []float32
}

// Len returns the number of points.
func (f *PointField) Len() int {
	return len(f.Points)
}

// Generate creates count points uniformly distributed in the field cube.
// A nil rng uses a time-seeded source.
func Generate(count int, rng *rand.Rand) *PointField {
	if count < 0 {
		count = 0
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	f := &PointField{
		Points:    make([]Point, count),
		Positions: make([]float32, 0, count*3),
		Colors:    make([]float32, 0, count*3),
	}

	for i := range f.Points {
		p := &f.Points[i]
		p.Position = [3]float32{
			float32((rng.Float64() - 0.5) * 2 * HalfWidth),
			float32((rng.Float64() - 0.5) * 2 * HalfWidth),
			float32((rng.Float64() - 0.5) * 2 * HalfWidth),
		}
		p.Color = ColorForHue(rng.Float64(), rng)

		f.Positions = append(f.Positions, p.Position[:]...)
		f.Colors = append(f.Colors, p.Color[:]...)
	}

	return f
}

// ColorForHue picks a star color family from hue and samples its channels from rng.
//
//	hue < 1/3        cool blue-white
//	1/3 <= hue < 2/3 warm white
//	hue >= 2/3       warm orange
func ColorForHue(hue float64, rng *rand.Rand) [3]float32 {
	var r, g, b float64
	switch {
	case hue < coolThreshold:
		r = 0.8 + rng.Float64()*0.2
		g = 0.8 + rng.Float64()*0.2
		b = 1.0
	case hue < warmThreshold:
		r = 1.0
		g = 0.9 + rng.Float64()*0.1
		b = 0.7 + rng.Float64()*0.1
	default:
		r = 1.0
		g = 0.6 + rng.Float64()*0.2
		b = 0.6 + rng.Float64()*0.2
	}
	return [3]float32{float32(r), float32(g), float32(b)}
}
