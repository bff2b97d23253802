package system

import (
	"time"

	"github.com/younwookim/sightline/internal/domain/entity"
	"github.com/younwookim/sightline/internal/domain/geom"
)

// BehaviorSystem steers grounded enemies and lets watching enemies shoot
type BehaviorSystem struct {
	level  *entity.Level
	combat *CombatSystem
}

// NewBehaviorSystem creates a new behavior system. Shots are spawned
// through combat.
func NewBehaviorSystem(level *entity.Level, combat *CombatSystem) *BehaviorSystem {
	return &BehaviorSystem{
		level:  level,
		combat: combat,
	}
}

// PlatformsBeneath returns the platforms directly under r
func (s *BehaviorSystem) PlatformsBeneath(r geom.Rect) []*entity.Platform {
	return overlapping(r.Translate(0, 1), s.level.Platforms)
}

// PlatformBeside reports platforms touching r on the left and right
func (s *BehaviorSystem) PlatformBeside(r geom.Rect) (left, right bool) {
	platforms := s.level.Platforms
	return len(overlapping(r.Translate(-1, 0), platforms)) > 0, len(overlapping(r.Translate(1, 0), platforms)) > 0
}

// Update sets each grounded enemy's intents for the next tick, then fires
// for every watching enemy whose attack gate is open. Returns the enemies
// that fired.
func (s *BehaviorSystem) Update(now time.Duration) []entity.EntityID {
	for _, e := range s.level.Enemies {
		s.steer(e)
	}

	var fired []entity.EntityID
	for _, e := range s.level.Enemies {
		if !e.Watching {
			continue
		}
		if proj, ok := e.Attack(now); ok {
			s.combat.Spawn(proj)
			fired = append(fired, e.ID)
		}
	}
	return fired
}

func (s *BehaviorSystem) steer(e *entity.Enemy) {
	beneath := s.PlatformsBeneath(e.Rect)
	if len(beneath) == 0 {
		return
	}

	leftEdge, rightEdge := beneath[0].Rect.Left(), beneath[0].Rect.Right()
	for _, p := range beneath[1:] {
		leftEdge = min(leftEdge, p.Rect.Left())
		rightEdge = max(rightEdge, p.Rect.Right())
	}
	blockedLeft, blockedRight := s.PlatformBeside(e.Rect)
	atLeft := e.Rect.Left() < leftEdge || blockedLeft
	atRight := e.Rect.Right() > rightEdge || blockedRight

	e.Jumping = false

	if !e.Watching {
		if !e.MovingLeft && !e.MovingRight {
			e.MovingLeft = true
		}
		if e.MovingLeft && atLeft {
			e.MovingLeft, e.MovingRight = false, true
		} else if e.MovingRight && atRight {
			e.MovingLeft, e.MovingRight = true, false
		}
		return
	}

	player := s.level.Player
	switch {
	case player.Rect.Right() < e.Rect.Left():
		e.Jumping = atLeft
		e.MovingLeft, e.MovingRight = true, false
	case player.Rect.Left() > e.Rect.Right():
		e.Jumping = atRight
		e.MovingLeft, e.MovingRight = false, true
	default:
		e.MovingLeft, e.MovingRight = false, false
	}
}
