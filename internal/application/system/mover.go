package system

import (
	"github.com/younwookim/sightline/internal/domain/entity"
	"github.com/younwookim/sightline/internal/domain/geom"
)

// Move displaces r by (vx, vy) one axis at a time, snapping it flush
// against every platform it ends up overlapping.
//
// Overlaps are collected once per axis, then resolved in platform order, so
// when several platforms overlap on the same axis the last one wins even if
// an earlier snap already cleared it.
func Move(r *geom.Rect, vx, vy float64, platforms []*entity.Platform) entity.Collisions {
	var c entity.Collisions

	r.X += vx
	for _, p := range overlapping(*r, platforms) {
		if vx < 0 {
			r.SetLeft(p.Rect.Right())
			c.Left = true
		} else if vx > 0 {
			r.SetRight(p.Rect.Left())
			c.Right = true
		}
	}

	r.Y += vy
	for _, p := range overlapping(*r, platforms) {
		if vy > 0 {
			r.SetBottom(p.Rect.Top())
			c.Bottom = true
		} else if vy < 0 {
			r.SetTop(p.Rect.Bottom())
			c.Top = true
		}
	}

	return c
}

func overlapping(r geom.Rect, platforms []*entity.Platform) []*entity.Platform {
	var hits []*entity.Platform
	for _, p := range platforms {
		if r.Overlaps(p.Rect) {
			hits = append(hits, p)
		}
	}
	return hits
}

// OffscreenPolicy selects what leaving the screen means for a moved box
type OffscreenPolicy int

const (
	// KillOffscreen despawns as soon as the box is fully off any edge
	KillOffscreen OffscreenPolicy = iota
	// DamageBelowScreen only reacts once the box fell Margin below the bottom
	DamageBelowScreen
)

// OffscreenAction is the result of an off-screen check
type OffscreenAction int

const (
	OnScreen OffscreenAction = iota
	Despawn
	FallDamage
)

// Screen is the visible play area
type Screen struct {
	Width  float64
	Height float64
	Margin float64 // distance below Height before fall damage
}

// Outside returns true if r lies entirely beyond an edge
func (s Screen) Outside(r geom.Rect) bool {
	return r.Left() > s.Width || r.Right() < 0 || r.Bottom() < 0 || r.Top() > s.Height
}

// Check applies the policy to r
func (s Screen) Check(r geom.Rect, policy OffscreenPolicy) OffscreenAction {
	if !s.Outside(r) {
		return OnScreen
	}
	switch policy {
	case KillOffscreen:
		return Despawn
	case DamageBelowScreen:
		if r.Top() > s.Height+s.Margin {
			return FallDamage
		}
	}
	return OnScreen
}
