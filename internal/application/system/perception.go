package system

import (
	"math/rand"
	"time"

	"github.com/younwookim/sightline/internal/domain/entity"
	"github.com/younwookim/sightline/internal/domain/geom"
	"github.com/younwookim/sightline/internal/infrastructure/config"
)

// PerceptionSystem decides which enemies can see the player
type PerceptionSystem struct {
	config *config.TuningConfig
	level  *entity.Level
	rng    *rand.Rand
}

// NewPerceptionSystem creates a new perception system. rng drives aim
// jitter.
func NewPerceptionSystem(cfg *config.TuningConfig, level *entity.Level, rng *rand.Rand) *PerceptionSystem {
	return &PerceptionSystem{
		config: cfg,
		level:  level,
		rng:    rng,
	}
}

// Update refreshes every enemy's sighting of the player
func (s *PerceptionSystem) Update(now time.Duration) {
	player := s.level.Player
	if player == nil {
		return
	}
	for _, e := range s.level.Enemies {
		corner, ok := s.Sight(e, player.Rect)
		if !ok {
			e.Spotted(false, geom.Vec2{}, now)
			continue
		}
		e.Spotted(true, s.aim(e, corner), now)
	}
}

// Sight returns the first corner of target, in TL, TR, BL, BR order, that
// lies within the enemy's vision radius with a clear line from its center.
func (s *PerceptionSystem) Sight(e *entity.Enemy, target geom.Rect) (geom.Vec2, bool) {
	center := e.Rect.Center()
	for _, corner := range target.Corners() {
		if geom.Distance(center, corner) > e.Stats.VisionRadius {
			continue
		}
		if s.Clear(center, corner) {
			return corner, true
		}
	}
	return geom.Vec2{}, false
}

// Clear returns true if no solid platform blocks the line from p1 to p2
func (s *PerceptionSystem) Clear(p1, p2 geom.Vec2) bool {
	line := geom.LineMask(p1, p2, s.config.Perception.LineThickness)
	for _, p := range s.level.Platforms {
		if line.Overlaps(p.Mask) {
			return false
		}
	}
	return true
}

// aim builds the jittered velocity toward corner, falling back to exact aim
// and then to the previous aim when the geometry degenerates
func (s *PerceptionSystem) aim(e *entity.Enemy, corner geom.Vec2) geom.Vec2 {
	center := e.Rect.Center()
	speed := e.Stats.Weapon.Speed
	if v, err := geom.InaccurateVector(s.rng, center, corner, speed, e.Stats.Inaccuracy); err == nil {
		return v
	}
	if v, err := geom.Vector(center, corner, speed); err == nil {
		return v
	}
	return e.VectorToPlayer
}
