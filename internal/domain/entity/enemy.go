package entity

import (
	"time"

	"github.com/younwookim/sightline/internal/domain/geom"
)

// EnemyStats are the per-enemy tunables from the level's enemy list
type EnemyStats struct {
	MaxHealth    float64
	VisionRadius float64
	ResponseTime time.Duration // continuous sighting needed before the first shot
	FireCooldown time.Duration
	Inaccuracy   int // aim jitter in pixels per axis
	Weapon       Weapon
}

// DefaultEnemyStats returns the stock enemy tuning for a vision radius
func DefaultEnemyStats(vision float64) EnemyStats {
	return EnemyStats{
		MaxHealth:    50,
		VisionRadius: vision,
		ResponseTime: 1000 * time.Millisecond,
		FireCooldown: 320 * time.Millisecond,
		Inaccuracy:   15,
		Weapon:       Weapon{Speed: 10, Damage: 5, Size: 9},
	}
}

// DefaultEnemyMotion returns the stock enemy kinematics
func DefaultEnemyMotion() Motion {
	return Motion{Speed: 2, JumpImpulse: -16, Gravity: 1, MaxFallSpeed: 4}
}

// Enemy is a patrolling shooter that watches for the player
type Enemy struct {
	Body
	Stats  EnemyStats
	Health float64
	Hits   int

	Watching       bool
	FirstSpotted   time.Duration
	LastFired      time.Duration
	VectorToPlayer geom.Vec2
}

// NewEnemy creates an enemy at (x, y). Timestamps start at now.
func NewEnemy(id EntityID, x, y, w, h float64, motion Motion, stats EnemyStats, now time.Duration) *Enemy {
	return &Enemy{
		Body:         NewBody(id, x, y, w, h, motion),
		Stats:        stats,
		Health:       stats.MaxHealth,
		FirstSpotted: now,
		LastFired:    now,
	}
}

// Alive returns true while health remains
func (e *Enemy) Alive() bool {
	return e.Health > 0
}

// Hit reduces health. Enemy health is not clamped; removal happens at <= 0.
func (e *Enemy) Hit(amount float64, _ time.Duration) {
	e.Health -= amount
	e.Hits++
}

// Steer turns the intent flags into velocity for this tick
func (e *Enemy) Steer() {
	e.ResetVelocity()
	if e.Jumping && e.OnPlatform {
		e.Launch(e.Motion.JumpImpulse)
	}
	e.Walk(e.Motion.Speed)
	e.Integrate()
}

// Spotted records a perception result. Only the rising edge stamps
// FirstSpotted; a repeated sighting refreshes the aim vector alone.
func (e *Enemy) Spotted(status bool, vec geom.Vec2, now time.Duration) {
	if !status {
		e.Watching = false
		return
	}
	if !e.Watching {
		e.Watching = true
		e.FirstSpotted = now
	}
	e.VectorToPlayer = vec
}

// CanAttack returns true once the player has been watched for ResponseTime
// and the fire cooldown has elapsed.
func (e *Enemy) CanAttack(now time.Duration) bool {
	return e.Watching &&
		now-e.FirstSpotted >= e.Stats.ResponseTime &&
		now-e.LastFired >= e.Stats.FireCooldown
}

// Attack fires along VectorToPlayer if allowed. FirstSpotted is untouched.
func (e *Enemy) Attack(now time.Duration) (*Projectile, bool) {
	if !e.CanAttack(now) {
		return nil, false
	}
	e.LastFired = now
	return NewProjectile(e.Rect.Center(), e.VectorToPlayer, e.Stats.Weapon, e.ID), true
}

// RegulateCooldown shifts the attack timestamps by a paused duration
func (e *Enemy) RegulateCooldown(paused time.Duration) {
	e.LastFired += paused
	e.FirstSpotted += paused
}
