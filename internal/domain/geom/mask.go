package geom

import "math"

// Mask is a binary pixel mask anchored at an integer screen position.
// Bit (x, y) covers the screen pixel (OX+x, OY+y).
type Mask struct {
	OX, OY int
	W, H   int
	bits   []uint64
}

// NewMask creates an empty mask of the given size at (ox, oy).
func NewMask(ox, oy, w, h int) *Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Mask{
		OX:   ox,
		OY:   oy,
		W:    w,
		H:    h,
		bits: make([]uint64, (w*h+63)/64),
	}
}

// RectMask creates a fully set mask covering r.
func RectMask(r Rect) *Mask {
	x0 := int(math.Floor(r.Left()))
	y0 := int(math.Floor(r.Top()))
	x1 := int(math.Ceil(r.Right()))
	y1 := int(math.Ceil(r.Bottom()))
	m := NewMask(x0, y0, x1-x0, y1-y0)
	m.Fill()
	return m
}

// LineMask rasterises a segment from p1 to p2 drawn with a square brush of
// the given thickness in pixels.
func LineMask(p1, p2 Vec2, thickness int) *Mask {
	if thickness < 1 {
		thickness = 1
	}
	x0, y0 := int(math.Round(p1.X)), int(math.Round(p1.Y))
	x1, y1 := int(math.Round(p2.X)), int(math.Round(p2.Y))

	half := thickness / 2
	minX, maxX := min(x0, x1)-half, max(x0, x1)-half+thickness
	minY, maxY := min(y0, y1)-half, max(y0, y1)-half+thickness
	m := NewMask(minX, minY, maxX-minX, maxY-minY)

	// Bresenham, stamping the brush at every visited pixel
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx, sy := 1, 1
	if x0 >= x1 {
		sx = -1
	}
	if y0 >= y1 {
		sy = -1
	}
	e := dx + dy
	for {
		m.stamp(x0-half, y0-half, thickness)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
	return m
}

// Fill sets every bit.
func (m *Mask) Fill() {
	for i := range m.bits {
		m.bits[i] = ^uint64(0)
	}
}

// Set sets the bit for the screen pixel (px, py); out of range is ignored.
func (m *Mask) Set(px, py int) {
	x, y := px-m.OX, py-m.OY
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return
	}
	i := y*m.W + x
	m.bits[i/64] |= 1 << (i % 64)
}

// Get reports whether the screen pixel (px, py) is set.
func (m *Mask) Get(px, py int) bool {
	x, y := px-m.OX, py-m.OY
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return false
	}
	i := y*m.W + x
	return m.bits[i/64]&(1<<(i%64)) != 0
}

// Overlaps reports whether any screen pixel is set in both masks.
func (m *Mask) Overlaps(o *Mask) bool {
	x0 := max(m.OX, o.OX)
	y0 := max(m.OY, o.OY)
	x1 := min(m.OX+m.W, o.OX+o.W)
	y1 := min(m.OY+m.H, o.OY+o.H)
	if x0 >= x1 || y0 >= y1 {
		return false
	}
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			if m.Get(px, py) && o.Get(px, py) {
				return true
			}
		}
	}
	return false
}

func (m *Mask) stamp(px, py, size int) {
	for y := py; y < py+size; y++ {
		for x := px; x < px+size; x++ {
			m.Set(x, y)
		}
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
