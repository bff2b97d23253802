package entity

import "github.com/younwookim/sightline/internal/domain/geom"

// Motion holds the per-tick magnitudes that drive a body.
// Values are in pixels per tick, not per second: game speed follows the
// frame rate.
type Motion struct {
	Speed        float64 // horizontal speed while a move intent is held
	JumpImpulse  float64 // momentum set on launch, negative is up
	Gravity      float64 // momentum added per airborne tick
	MaxFallSpeed float64 // terminal momentum
}

// Collisions records which sides of a moved box hit a platform
type Collisions struct {
	Left, Right, Top, Bottom bool
}

// Any returns true if any side collided
func (c Collisions) Any() bool {
	return c.Left || c.Right || c.Top || c.Bottom
}

// Body is the kinematic state shared by players and enemies.
// Velocity is rebuilt every tick from the intent flags; only JumpMomentum
// carries over between ticks.
type Body struct {
	ID   EntityID
	Rect geom.Rect

	VX, VY       float64
	JumpMomentum float64
	OnPlatform   bool

	MovingLeft  bool
	MovingRight bool
	Jumping     bool

	Spawn  geom.Vec2
	Motion Motion
}

// NewBody creates a body with its top-left corner at the spawn point
func NewBody(id EntityID, x, y, w, h float64, motion Motion) Body {
	return Body{
		ID:     id,
		Rect:   geom.NewRect(x, y, w, h),
		Spawn:  geom.Vec2{X: x, Y: y},
		Motion: motion,
	}
}

// EntityID returns the body's ID
func (b *Body) EntityID() EntityID { return b.ID }

// Box returns the collision box
func (b *Body) Box() geom.Rect { return b.Rect }

// ResetVelocity zeroes the instantaneous velocity
func (b *Body) ResetVelocity() {
	b.VX = 0
	b.VY = 0
}

// Launch starts a jump
func (b *Body) Launch(impulse float64) {
	b.JumpMomentum = impulse
	b.OnPlatform = false
}

// Walk sets horizontal velocity from the move intents. Moving drops the
// ground-contact cache so gravity re-tests the floor this tick.
func (b *Body) Walk(speed float64) {
	if b.MovingRight {
		b.VX = speed
		b.OnPlatform = false
	}
	if b.MovingLeft {
		b.VX = -speed
		b.OnPlatform = false
	}
}

// Integrate applies gravity while airborne and derives VY from the clamped
// momentum.
func (b *Body) Integrate() {
	if !b.OnPlatform {
		b.JumpMomentum += b.Motion.Gravity
	}
	if b.JumpMomentum > b.Motion.MaxFallSpeed {
		b.JumpMomentum = b.Motion.MaxFallSpeed
	}
	b.VY = b.JumpMomentum
}

// Settle updates ground contact and momentum from a move result
func (b *Body) Settle(c Collisions) {
	if c.Bottom {
		b.JumpMomentum = 0
		b.OnPlatform = true
	}
	if c.Top {
		b.JumpMomentum = 0
		b.OnPlatform = false
	}
}

// Teleport moves the body back to its spawn point and makes it fall
func (b *Body) Teleport() {
	b.Rect.X = b.Spawn.X
	b.Rect.Y = b.Spawn.Y
	b.JumpMomentum = 0
	b.OnPlatform = false
}
