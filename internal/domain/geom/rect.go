package geom

// Rect is an axis-aligned box. Its size is fixed at creation; only the
// position is expected to change afterwards.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a rect with its top-left corner at (x, y).
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// NewRectCentered creates a rect whose center is c.
func NewRectCentered(c Vec2, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// SetLeft moves the rect so that its left edge is at x.
func (r *Rect) SetLeft(x float64) { r.X = x }

// SetRight moves the rect so that its right edge is at x.
func (r *Rect) SetRight(x float64) { r.X = x - r.W }

// SetTop moves the rect so that its top edge is at y.
func (r *Rect) SetTop(y float64) { r.Y = y }

// SetBottom moves the rect so that its bottom edge is at y.
func (r *Rect) SetBottom(y float64) { r.Y = y - r.H }

// Center returns the center point.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Corners returns the four corners in a fixed order:
// top-left, top-right, bottom-left, bottom-right.
func (r Rect) Corners() [4]Vec2 {
	return [4]Vec2{
		{X: r.Left(), Y: r.Top()},
		{X: r.Right(), Y: r.Top()},
		{X: r.Left(), Y: r.Bottom()},
		{X: r.Right(), Y: r.Bottom()},
	}
}

// Translate returns a copy moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Overlaps reports whether r and o share interior area. Rects that only
// touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}
