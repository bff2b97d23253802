package system

import (
	"time"

	"github.com/younwookim/sightline/internal/domain/entity"
	"github.com/younwookim/sightline/internal/infrastructure/config"
)

// Impact records a projectile striking an entity
type Impact struct {
	Owner  entity.EntityID
	Target entity.EntityID
	Damage float64
}

// CombatResult summarises one combat tick
type CombatResult struct {
	Impacts []Impact
	Killed  []entity.EntityID // enemies removed this tick
	Score   int               // points awarded to the player this tick
}

// CombatSystem owns the projectile lifecycle and damage resolution
type CombatSystem struct {
	config *config.TuningConfig
	level  *entity.Level
	screen Screen
}

// NewCombatSystem creates a new combat system
func NewCombatSystem(cfg *config.TuningConfig, level *entity.Level) *CombatSystem {
	return &CombatSystem{
		config: cfg,
		level:  level,
		screen: ScreenFor(cfg),
	}
}

// Spawn adds a projectile to the level
func (s *CombatSystem) Spawn(p *entity.Projectile) {
	s.level.Projectiles = append(s.level.Projectiles, p)
}

// Update moves every projectile, applies hits, then removes dead enemies
// and spent projectiles.
func (s *CombatSystem) Update(now time.Duration) CombatResult {
	var res CombatResult

	for _, proj := range s.level.Projectiles {
		if !proj.Active {
			continue
		}

		c := Move(&proj.Rect, proj.VX, proj.VY, s.level.Platforms)
		if c.Any() || s.screen.Check(proj.Rect, KillOffscreen) == Despawn {
			proj.Deactivate()
			continue
		}

		target := s.firstTarget(proj)
		if target == nil {
			continue
		}
		proj.Deactivate()

		enemy, isEnemy := target.(*entity.Enemy)
		wasAlive := isEnemy && enemy.Alive()
		target.Hit(proj.Damage, now)
		res.Impacts = append(res.Impacts, Impact{Owner: proj.Owner, Target: target.EntityID(), Damage: proj.Damage})

		if wasAlive && !enemy.Alive() && proj.Owner == PlayerID {
			res.Score += s.config.Combat.KillScore
		}
	}

	res.Killed = s.removeDead()
	s.compact()

	if p := s.level.Player; p != nil {
		p.Score += res.Score
	}
	return res
}

// firstTarget returns the first entity the projectile overlaps that did not
// fire it. The player is checked before enemies.
func (s *CombatSystem) firstTarget(proj *entity.Projectile) entity.Damageable {
	if p := s.level.Player; p != nil && !p.Dead && struck(proj, p) {
		return p
	}
	for _, e := range s.level.Enemies {
		if e.Alive() && struck(proj, e) {
			return e
		}
	}
	return nil
}

func struck(proj *entity.Projectile, target entity.Damageable) bool {
	return target.EntityID() != proj.Owner && proj.Rect.Overlaps(target.Box())
}

// removeDead drops enemies at zero health together with their projectiles
func (s *CombatSystem) removeDead() []entity.EntityID {
	var killed []entity.EntityID
	alive := s.level.Enemies[:0]
	for _, e := range s.level.Enemies {
		if e.Alive() {
			alive = append(alive, e)
			continue
		}
		killed = append(killed, e.ID)
	}
	for i := len(alive); i < len(s.level.Enemies); i++ {
		s.level.Enemies[i] = nil
	}
	s.level.Enemies = alive

	for _, id := range killed {
		for _, proj := range s.level.Projectiles {
			if proj.Owner == id {
				proj.Deactivate()
			}
		}
	}
	return killed
}

func (s *CombatSystem) compact() {
	active := s.level.Projectiles[:0]
	for _, proj := range s.level.Projectiles {
		if proj.Active {
			active = append(active, proj)
		}
	}
	for i := len(active); i < len(s.level.Projectiles); i++ {
		s.level.Projectiles[i] = nil
	}
	s.level.Projectiles = active
}
