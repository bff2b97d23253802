package entity

import "github.com/younwookim/sightline/internal/domain/geom"

// Weapon describes the projectiles an entity fires
type Weapon struct {
	Speed  float64 // pixels per tick
	Damage float64
	Size   float64 // square side in pixels
}

// Projectile is a fixed-velocity box with no gravity.
// Owner is only compared against to skip self hits.
type Projectile struct {
	Rect   geom.Rect
	VX, VY float64
	Damage float64
	Owner  EntityID
	Active bool
}

// NewProjectile creates a projectile centred on the muzzle point
func NewProjectile(muzzle, velocity geom.Vec2, w Weapon, owner EntityID) *Projectile {
	return &Projectile{
		Rect:   geom.NewRectCentered(muzzle, w.Size, w.Size),
		VX:     velocity.X,
		VY:     velocity.Y,
		Damage: w.Damage,
		Owner:  owner,
		Active: true,
	}
}

// Deactivate marks the projectile as despawned
func (p *Projectile) Deactivate() {
	p.Active = false
}
