package geom

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector_Magnitude(t *testing.T) {
	tests := []struct {
		name      string
		origin    Vec2
		dest      Vec2
		magnitude float64
	}{
		{"right", Vec2{0, 0}, Vec2{5, 0}, 10},
		{"up-left", Vec2{100, 100}, Vec2{37, 12}, 10},
		{"tiny offset", Vec2{1, 1}, Vec2{1.001, 1}, 3},
		{"far", Vec2{-400, 250}, Vec2{800, -600}, 7.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Vector(tt.origin, tt.dest, tt.magnitude)
			require.NoError(t, err)
			assert.InDelta(t, tt.magnitude, v.Len(), 1e-9)

			// same direction as the raw displacement
			d := tt.dest.Sub(tt.origin)
			assert.Greater(t, v.X*d.X+v.Y*d.Y, 0.0)
		})
	}
}

func TestVector_Degenerate(t *testing.T) {
	_, err := Vector(Vec2{3, 4}, Vec2{3, 4}, 10)
	assert.ErrorIs(t, err, ErrDegenerateVector)
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Distance(Vec2{0, 0}, Vec2{3, 4}))
	assert.Equal(t, 50.0, Distance(Vec2{500, 400}, Vec2{450, 400}))
	assert.Equal(t, 0.0, Distance(Vec2{7, 7}, Vec2{7, 7}))
}

func TestInaccurateVector(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	origin := Vec2{0, 0}
	dest := Vec2{100, 0}

	for i := 0; i < 200; i++ {
		v, err := InaccurateVector(rng, origin, dest, 10, 15)
		require.NoError(t, err)
		assert.InDelta(t, 10, v.Len(), 1e-9)

		// jitter of at most 15px at distance 100 bounds the angle
		angle := math.Abs(math.Atan2(v.Y, v.X))
		assert.LessOrEqual(t, angle, math.Atan2(15, 85)+1e-9)
	}
}

func TestInaccurateVector_ZeroInaccuracyIsExact(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	exact, err := Vector(Vec2{1, 2}, Vec2{40, -3}, 10)
	require.NoError(t, err)

	v, err := InaccurateVector(rng, Vec2{1, 2}, Vec2{40, -3}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, exact, v)
}

func TestInaccurateVector_SeededIsReproducible(t *testing.T) {
	a := rand.New(rand.NewSource(99))
	b := rand.New(rand.NewSource(99))
	for i := 0; i < 20; i++ {
		va, errA := InaccurateVector(a, Vec2{0, 0}, Vec2{60, 30}, 10, 15)
		vb, errB := InaccurateVector(b, Vec2{0, 0}, Vec2{60, 30}, 10, 15)
		require.NoError(t, errA)
		require.NoError(t, errB)
		assert.Equal(t, va, vb)
	}
}

func TestRect_Edges(t *testing.T) {
	r := NewRect(10, 20, 40, 70)
	assert.Equal(t, 10.0, r.Left())
	assert.Equal(t, 50.0, r.Right())
	assert.Equal(t, 20.0, r.Top())
	assert.Equal(t, 90.0, r.Bottom())
	assert.Equal(t, Vec2{30, 55}, r.Center())

	r.SetRight(100)
	assert.Equal(t, 60.0, r.X)
	r.SetBottom(100)
	assert.Equal(t, 30.0, r.Y)
	assert.Equal(t, 40.0, r.W, "size never changes")
	assert.Equal(t, 70.0, r.H, "size never changes")
}

func TestRect_Corners(t *testing.T) {
	c := NewRect(0, 0, 10, 20).Corners()
	assert.Equal(t, [4]Vec2{{0, 0}, {10, 0}, {0, 20}, {10, 20}}, c)
}

func TestRect_Overlaps(t *testing.T) {
	a := NewRect(0, 0, 50, 50)
	tests := []struct {
		name     string
		b        Rect
		expected bool
	}{
		{"inside", NewRect(10, 10, 5, 5), true},
		{"partial", NewRect(40, 40, 50, 50), true},
		{"touching right edge", NewRect(50, 0, 50, 50), false},
		{"touching bottom edge", NewRect(0, 50, 50, 50), false},
		{"apart", NewRect(100, 100, 5, 5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, a.Overlaps(tt.b))
			assert.Equal(t, tt.expected, tt.b.Overlaps(a))
		})
	}
}

func TestRectMask(t *testing.T) {
	m := RectMask(NewRect(50, 100, 50, 50))
	assert.Equal(t, 50, m.OX)
	assert.Equal(t, 100, m.OY)
	assert.Equal(t, 2500, countSet(m))
	assert.True(t, m.Get(50, 100))
	assert.True(t, m.Get(99, 149))
	assert.False(t, m.Get(100, 149))
}

func TestLineMask_Thickness(t *testing.T) {
	m := LineMask(Vec2{0, 0}, Vec2{20, 0}, 9)
	assert.Equal(t, 9, m.H)
	assert.True(t, m.Get(10, 0))
	assert.True(t, m.Get(10, 4))
	assert.True(t, m.Get(10, -4))
	assert.False(t, m.Get(10, 5))
}

func TestLineMask_Diagonal(t *testing.T) {
	m := LineMask(Vec2{0, 0}, Vec2{30, 30}, 1)
	for i := 0; i <= 30; i++ {
		assert.True(t, m.Get(i, i))
	}
	assert.False(t, m.Get(30, 0))
}

func TestMask_Overlaps(t *testing.T) {
	wall := RectMask(NewRect(100, 0, 50, 200))

	t.Run("line through wall", func(t *testing.T) {
		line := LineMask(Vec2{50, 100}, Vec2{200, 100}, 9)
		assert.True(t, line.Overlaps(wall))
		assert.True(t, wall.Overlaps(line))
	})

	t.Run("line stops short", func(t *testing.T) {
		line := LineMask(Vec2{0, 100}, Vec2{80, 100}, 9)
		assert.False(t, line.Overlaps(wall))
	})

	t.Run("line passes above", func(t *testing.T) {
		line := LineMask(Vec2{50, -20}, Vec2{200, -20}, 9)
		assert.False(t, line.Overlaps(wall))
	})

	t.Run("thickness grazes corner", func(t *testing.T) {
		line := LineMask(Vec2{50, -3}, Vec2{200, -3}, 9)
		assert.True(t, line.Overlaps(wall))
	})
}

func countSet(m *Mask) int {
	n := 0
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			if m.Get(m.OX+x, m.OY+y) {
				n++
			}
		}
	}
	return n
}
