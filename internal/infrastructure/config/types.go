// Package config loads game tuning, user settings and level descriptors.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTuning is returned when a tuning file holds unusable values
var ErrInvalidTuning = errors.New("invalid tuning")

// TuningConfig is the root config for tuning.yaml.
// All magnitudes are per tick.
type TuningConfig struct {
	Display    DisplayConfig    `yaml:"display"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Perception PerceptionConfig `yaml:"perception"`
	Combat     CombatConfig     `yaml:"combat"`
}

type DisplayConfig struct {
	ScreenWidth  int `yaml:"screen_width"`
	ScreenHeight int `yaml:"screen_height"`
	TileSize     int `yaml:"tile_size"`
	TPS          int `yaml:"tps"`
}

type PhysicsConfig struct {
	Gravity         float64 `yaml:"gravity"`
	MaxFallSpeed    float64 `yaml:"max_fall_speed"`
	OffscreenMargin float64 `yaml:"offscreen_margin"` // below-screen distance before the fall damage
	OffscreenDamage float64 `yaml:"offscreen_damage"`
}

type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	SprintSpeed  float64 `yaml:"sprint_speed"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxHealth    float64 `yaml:"max_health"`
	MaxStamina   float64 `yaml:"max_stamina"`
	Lives        int     `yaml:"lives"`
	MaxLives     int     `yaml:"max_lives"`
	SprintCost   float64 `yaml:"sprint_cost"`
	JumpCost     float64 `yaml:"jump_cost"`
	HealthRegen  float64 `yaml:"health_regen"`
	StaminaRegen float64 `yaml:"stamina_regen"`

	FireCooldown          time.Duration `yaml:"fire_cooldown"`
	StaminaCooldownJump   time.Duration `yaml:"stamina_cooldown_jump"`
	StaminaCooldownSprint time.Duration `yaml:"stamina_cooldown_sprint"`
	HealthCooldown        time.Duration `yaml:"health_cooldown"`
}

// EnemyConfig holds the defaults used when a level's enemy entry only
// names size and vision.
type EnemyConfig struct {
	MaxHealth    float64       `yaml:"max_health"`
	Speed        float64       `yaml:"speed"`
	JumpImpulse  float64       `yaml:"jump_impulse"`
	ResponseTime time.Duration `yaml:"response_time"`
	FireCooldown time.Duration `yaml:"fire_cooldown"`
	Inaccuracy   int           `yaml:"inaccuracy"`
}

type ProjectileConfig struct {
	Speed  float64 `yaml:"speed"`
	Damage float64 `yaml:"damage"`
	Size   float64 `yaml:"size"`
}

type PerceptionConfig struct {
	LineThickness int `yaml:"line_thickness"`
}

type CombatConfig struct {
	KillScore int `yaml:"kill_score"`
}

// Validate checks the values a simulation cannot run without
func (c *TuningConfig) Validate() error {
	switch {
	case c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidTuning, c.Display.ScreenWidth, c.Display.ScreenHeight)
	case c.Display.TileSize <= 0:
		return fmt.Errorf("%w: tile size %d", ErrInvalidTuning, c.Display.TileSize)
	case c.Display.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalidTuning, c.Display.TPS)
	case c.Physics.MaxFallSpeed <= 0:
		return fmt.Errorf("%w: max fall speed %v", ErrInvalidTuning, c.Physics.MaxFallSpeed)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size %vx%v", ErrInvalidTuning, c.Player.Width, c.Player.Height)
	case c.Player.JumpImpulse >= 0 || c.Enemy.JumpImpulse >= 0:
		return fmt.Errorf("%w: jump impulses must be negative", ErrInvalidTuning)
	case c.Projectile.Size <= 0 || c.Projectile.Speed <= 0:
		return fmt.Errorf("%w: projectile size %v speed %v", ErrInvalidTuning, c.Projectile.Size, c.Projectile.Speed)
	case c.Perception.LineThickness <= 0:
		return fmt.Errorf("%w: line thickness %d", ErrInvalidTuning, c.Perception.LineThickness)
	}
	return nil
}
