package entity

import (
	"time"

	"github.com/younwookim/sightline/internal/domain/geom"
)

// PlayerStats are the player's tunables
type PlayerStats struct {
	MaxHealth  float64
	MaxStamina float64
	Lives      int
	MaxLives   int

	SprintSpeed  float64
	SprintCost   float64 // stamina per sprinting tick
	JumpCost     float64
	HealthRegen  float64 // per tick
	StaminaRegen float64 // per tick

	FireCooldown          time.Duration
	StaminaCooldownJump   time.Duration
	StaminaCooldownSprint time.Duration
	HealthCooldown        time.Duration

	Weapon Weapon
}

// DefaultPlayerStats returns the stock player tuning
func DefaultPlayerStats() PlayerStats {
	return PlayerStats{
		MaxHealth:             25,
		MaxStamina:            100,
		Lives:                 3,
		MaxLives:              3,
		SprintSpeed:           6,
		SprintCost:            2,
		JumpCost:              5,
		HealthRegen:           0.01,
		StaminaRegen:          0.5,
		FireCooldown:          320 * time.Millisecond,
		StaminaCooldownJump:   2500 * time.Millisecond,
		StaminaCooldownSprint: 1500 * time.Millisecond,
		HealthCooldown:        7000 * time.Millisecond,
		Weapon:                Weapon{Speed: 10, Damage: 5, Size: 9},
	}
}

// DefaultPlayerMotion returns the stock player kinematics
func DefaultPlayerMotion() Motion {
	return Motion{Speed: 4, JumpImpulse: -16, Gravity: 1, MaxFallSpeed: 4}
}

// LifeEvent is the outcome of a health depletion check
type LifeEvent int

const (
	LifeUnchanged LifeEvent = iota
	LifeRespawned
	LifeDied
)

// Player represents the player entity
type Player struct {
	Body
	Stats PlayerStats

	health  float64
	stamina float64

	Lives     int
	Score     int
	Dead      bool
	Sprinting bool

	// Cooldown gates, measured on the simulation clock
	LastFired    time.Duration
	LastJumped   time.Duration
	LastSprinted time.Duration
	LastHit      time.Duration
}

// NewPlayer creates a player at (x, y) with full health and stamina.
// All cooldown timestamps start at now.
func NewPlayer(id EntityID, x, y, w, h float64, motion Motion, stats PlayerStats, now time.Duration) *Player {
	lives := stats.Lives
	if stats.MaxLives > 0 && lives > stats.MaxLives {
		lives = stats.MaxLives
	}
	return &Player{
		Body:         NewBody(id, x, y, w, h, motion),
		Stats:        stats,
		health:       stats.MaxHealth,
		stamina:      stats.MaxStamina,
		Lives:        lives,
		LastFired:    now,
		LastJumped:   now,
		LastSprinted: now,
		LastHit:      now,
	}
}

// Health returns the current health
func (p *Player) Health() float64 { return p.health }

// Stamina returns the current stamina
func (p *Player) Stamina() float64 { return p.stamina }

// SetHealth sets health, clamped into [0, MaxHealth]
func (p *Player) SetHealth(v float64) {
	p.health = clamp(v, 0, p.Stats.MaxHealth)
}

// SetStamina sets stamina, clamped into [0, MaxStamina]
func (p *Player) SetStamina(v float64) {
	p.stamina = clamp(v, 0, p.Stats.MaxStamina)
}

// Hit reduces health and restarts the health regen delay
func (p *Player) Hit(amount float64, now time.Duration) {
	p.LastHit = now
	p.SetHealth(p.health - amount)
}

// ReplenishHealth regenerates slowly once no damage was taken for
// HealthCooldown.
func (p *Player) ReplenishHealth(now time.Duration) {
	if now-p.LastHit >= p.Stats.HealthCooldown {
		p.SetHealth(p.health + p.Stats.HealthRegen)
	}
}

// ReplenishStamina regenerates unless jumping and sprinting together, and
// only after both stamina cooldowns elapsed.
func (p *Player) ReplenishStamina(now time.Duration) {
	if p.Jumping && p.Sprinting {
		return
	}
	if now-p.LastJumped < p.Stats.StaminaCooldownJump {
		return
	}
	if now-p.LastSprinted < p.Stats.StaminaCooldownSprint {
		return
	}
	p.SetStamina(p.stamina + p.Stats.StaminaRegen)
}

// Steer turns the intent flags into velocity for this tick.
// Jumps and sprints are paid for with stamina; when stamina runs short the
// intent is dropped so regeneration can start.
func (p *Player) Steer(now time.Duration) {
	if p.Jumping && p.OnPlatform {
		if p.stamina >= p.Stats.JumpCost {
			p.Launch(p.Motion.JumpImpulse)
			p.SetStamina(p.stamina - p.Stats.JumpCost)
			p.LastJumped = now
		} else {
			p.Jumping = false
		}
	}

	speed := p.Motion.Speed
	if p.MovingLeft || p.MovingRight {
		if p.Sprinting && p.stamina >= p.Stats.SprintCost {
			speed = p.Stats.SprintSpeed
			p.SetStamina(p.stamina - p.Stats.SprintCost)
			p.LastSprinted = now
		} else {
			p.Sprinting = false
		}
	}
	p.Walk(speed)
	p.Integrate()
}

// Update runs the player's per-tick bookkeeping before movement
func (p *Player) Update(now time.Duration) LifeEvent {
	p.ResetVelocity()
	p.ReplenishHealth(now)
	p.ReplenishStamina(now)
	p.Steer(now)
	return p.CheckDepleted()
}

// CheckDepleted respawns the player or marks it dead once health is gone.
// Dead is terminal.
func (p *Player) CheckDepleted() LifeEvent {
	if p.Dead || p.health > 0 {
		return LifeUnchanged
	}
	if p.Lives <= 0 {
		p.Dead = true
		return LifeDied
	}
	p.Respawn()
	return LifeRespawned
}

// Respawn spends a life, restores health and stamina and teleports home
func (p *Player) Respawn() {
	p.Lives--
	p.health = p.Stats.MaxHealth
	p.stamina = p.Stats.MaxStamina
	p.Teleport()
}

// CanFire returns true if the fire cooldown has elapsed
func (p *Player) CanFire(now time.Duration) bool {
	return now-p.LastFired >= p.Stats.FireCooldown
}

// Fire spawns a projectile from the player's center if the cooldown allows
func (p *Player) Fire(now time.Duration, velocity geom.Vec2) (*Projectile, bool) {
	if p.Dead || !p.CanFire(now) {
		return nil, false
	}
	p.LastFired = now
	return NewProjectile(p.Rect.Center(), velocity, p.Stats.Weapon, p.ID), true
}

// RegulateCooldown shifts every timestamp by a paused duration, as if the
// pause never happened.
func (p *Player) RegulateCooldown(paused time.Duration) {
	p.LastFired += paused
	p.LastJumped += paused
	p.LastSprinted += paused
	p.LastHit += paused
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
