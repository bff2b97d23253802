package system

import (
	"time"

	"github.com/younwookim/sightline/internal/domain/entity"
	"github.com/younwookim/sightline/internal/infrastructure/config"
)

// PhysicsSystem moves the player and enemies through the level
type PhysicsSystem struct {
	config *config.TuningConfig
	level  *entity.Level
	screen Screen
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.TuningConfig, level *entity.Level) *PhysicsSystem {
	return &PhysicsSystem{
		config: cfg,
		level:  level,
		screen: ScreenFor(cfg),
	}
}

// ScreenFor returns the play area described by the tuning
func ScreenFor(cfg *config.TuningConfig) Screen {
	return Screen{
		Width:  float64(cfg.Display.ScreenWidth),
		Height: float64(cfg.Display.ScreenHeight),
		Margin: cfg.Physics.OffscreenMargin,
	}
}

// Update moves the player then every enemy by their current velocity.
// Bodies that fell below the screen take fall damage; their IDs are
// returned.
func (s *PhysicsSystem) Update(now time.Duration) []entity.EntityID {
	var fallen []entity.EntityID

	if p := s.level.Player; p != nil && !p.Dead {
		if s.moveBody(&p.Body) == FallDamage {
			p.Hit(s.config.Physics.OffscreenDamage, now)
			fallen = append(fallen, p.ID)
		}
	}

	for _, e := range s.level.Enemies {
		if s.moveBody(&e.Body) == FallDamage {
			e.Hit(s.config.Physics.OffscreenDamage, now)
			fallen = append(fallen, e.ID)
		}
	}

	return fallen
}

// moveBody runs the mover and settles ground contact from the result
func (s *PhysicsSystem) moveBody(b *entity.Body) OffscreenAction {
	c := Move(&b.Rect, b.VX, b.VY, s.level.Platforms)
	b.Settle(c)
	return s.screen.Check(b.Rect, DamageBelowScreen)
}
