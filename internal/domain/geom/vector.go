// Package geom holds the 2D geometry used by the simulation: vectors,
// axis-aligned rectangles and pixel masks.
package geom

import (
	"errors"
	"math"
	"math/rand"
)

// ErrDegenerateVector is returned when a direction is requested between two
// coincident points.
var ErrDegenerateVector = errors.New("geom: origin and destination coincide")

// Vec2 is a point or a displacement in screen space (y grows downwards).
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the magnitude of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Vector returns the displacement from origin towards destination, scaled to
// the given magnitude.
func Vector(origin, destination Vec2, magnitude float64) (Vec2, error) {
	d := destination.Sub(origin)
	length := d.Len()
	if length == 0 {
		return Vec2{}, ErrDegenerateVector
	}
	return d.Scale(magnitude / length), nil
}

// Distance returns the Euclidean distance between two points.
func Distance(p1, p2 Vec2) float64 {
	return math.Hypot(p1.X-p2.X, p1.Y-p2.Y)
}

// InaccurateVector is Vector with the destination jittered by a uniform
// integer offset in [-inaccuracy, inaccuracy] on each axis.
func InaccurateVector(rng *rand.Rand, origin, destination Vec2, magnitude float64, inaccuracy int) (Vec2, error) {
	if inaccuracy > 0 {
		destination.X += float64(rng.Intn(2*inaccuracy+1) - inaccuracy)
		destination.Y += float64(rng.Intn(2*inaccuracy+1) - inaccuracy)
	}
	return Vector(origin, destination, magnitude)
}
