package system

import (
	"errors"
	"fmt"
	"time"

	"github.com/younwookim/sightline/internal/domain/entity"
	"github.com/younwookim/sightline/internal/infrastructure/config"
)

var (
	ErrEnemyArgCount           = errors.New("enemy args must have 3 or 8 entries")
	ErrNonNegativeJumpVelocity = errors.New("enemy jump velocity must be negative")
	ErrMissingEnemyConfig      = errors.New("enemy spawn has no config entry")
	ErrNoPlayerSpawn           = errors.New("level has no player spawn")
	ErrDuplicatePlayerSpawn    = errors.New("level has more than one player spawn")
	ErrGridShape               = errors.New("level grid is not rectangular")
	ErrUnknownTile             = errors.New("unknown tile code")
)

// PlayerID is the entity ID of the level's player. Enemies follow in spawn
// order.
const PlayerID entity.EntityID = 1

// LoadLevel converts a LevelConfig into a populated Level.
// Cooldown timestamps of the new entities start at now.
func LoadLevel(cfg *config.LevelConfig, tuning *config.TuningConfig, now time.Duration) (*entity.Level, error) {
	rows := len(cfg.Grid)
	if rows == 0 {
		return nil, fmt.Errorf("level %s: %w: empty grid", cfg.ID, ErrGridShape)
	}
	cols := len(cfg.Grid[0])
	tile := float64(tuning.Display.TileSize)

	level := &entity.Level{
		Name:     cfg.Name,
		Width:    float64(cols) * tile,
		Height:   float64(rows) * tile,
		TileSize: tile,
	}

	nextID := PlayerID + 1
	enemyCount := 0
	for row, line := range cfg.Grid {
		if len(line) != cols {
			return nil, fmt.Errorf("level %s: %w: row %d has %d cells, want %d", cfg.ID, ErrGridShape, row, len(line), cols)
		}
		for col, ch := range line {
			x := float64(col) * tile
			y := float64(row) * tile

			switch entity.TileCode(ch - '0') {
			case entity.TileEmpty:
			case entity.TilePlatform:
				level.Platforms = append(level.Platforms, entity.NewPlatform(x, y, tile, tile, entity.KindPlatform))
			case entity.TileFinish:
				level.Finishes = append(level.Finishes, entity.NewPlatform(x, y, tile, tile, entity.KindFinish))
			case entity.TilePlayerSpawn:
				if level.Player != nil {
					return nil, fmt.Errorf("level %s: %w at row %d col %d", cfg.ID, ErrDuplicatePlayerSpawn, row, col)
				}
				level.Player = newPlayer(tuning, x, y, now)
			case entity.TileEnemySpawn:
				if enemyCount >= len(cfg.Enemies) {
					return nil, fmt.Errorf("level %s: %w: spawn %d at row %d col %d", cfg.ID, ErrMissingEnemyConfig, enemyCount, row, col)
				}
				enemy, err := newEnemy(nextID, cfg.Enemies[enemyCount], tuning, x, y, now)
				if err != nil {
					return nil, fmt.Errorf("level %s: enemy %d: %w", cfg.ID, enemyCount, err)
				}
				level.Enemies = append(level.Enemies, enemy)
				nextID++
				enemyCount++
			default:
				return nil, fmt.Errorf("level %s: %w %q at row %d col %d", cfg.ID, ErrUnknownTile, ch, row, col)
			}
		}
	}

	if level.Player == nil {
		return nil, fmt.Errorf("level %s: %w", cfg.ID, ErrNoPlayerSpawn)
	}

	for _, l := range cfg.Labels {
		level.Labels = append(level.Labels, entity.Label{Text: l.Text, X: l.X, Y: l.Y, Size: l.Size})
	}

	return level, nil
}

// PlayerStats converts player tuning into entity stats
func PlayerStats(t *config.TuningConfig) entity.PlayerStats {
	p := t.Player
	return entity.PlayerStats{
		MaxHealth:             p.MaxHealth,
		MaxStamina:            p.MaxStamina,
		Lives:                 p.Lives,
		MaxLives:              p.MaxLives,
		SprintSpeed:           p.SprintSpeed,
		SprintCost:            p.SprintCost,
		JumpCost:              p.JumpCost,
		HealthRegen:           p.HealthRegen,
		StaminaRegen:          p.StaminaRegen,
		FireCooldown:          p.FireCooldown,
		StaminaCooldownJump:   p.StaminaCooldownJump,
		StaminaCooldownSprint: p.StaminaCooldownSprint,
		HealthCooldown:        p.HealthCooldown,
		Weapon:                weapon(t),
	}
}

func weapon(t *config.TuningConfig) entity.Weapon {
	return entity.Weapon{Speed: t.Projectile.Speed, Damage: t.Projectile.Damage, Size: t.Projectile.Size}
}

func newPlayer(t *config.TuningConfig, x, y float64, now time.Duration) *entity.Player {
	motion := entity.Motion{
		Speed:        t.Player.Speed,
		JumpImpulse:  t.Player.JumpImpulse,
		Gravity:      t.Physics.Gravity,
		MaxFallSpeed: t.Physics.MaxFallSpeed,
	}
	return entity.NewPlayer(PlayerID, x, y, t.Player.Width, t.Player.Height, motion, PlayerStats(t), now)
}

// newEnemy builds an enemy from [w, h, vision] or
// [w, h, vision, responseMs, cooldownMs, inaccuracy, velX, velY]
func newEnemy(id entity.EntityID, args []float64, t *config.TuningConfig, x, y float64, now time.Duration) (*entity.Enemy, error) {
	stats := entity.EnemyStats{
		MaxHealth:    t.Enemy.MaxHealth,
		ResponseTime: t.Enemy.ResponseTime,
		FireCooldown: t.Enemy.FireCooldown,
		Inaccuracy:   t.Enemy.Inaccuracy,
		Weapon:       weapon(t),
	}
	motion := entity.Motion{
		Speed:        t.Enemy.Speed,
		JumpImpulse:  t.Enemy.JumpImpulse,
		Gravity:      t.Physics.Gravity,
		MaxFallSpeed: t.Physics.MaxFallSpeed,
	}

	switch len(args) {
	case 3:
	case 8:
		stats.ResponseTime = millis(args[3])
		stats.FireCooldown = millis(args[4])
		stats.Inaccuracy = int(args[5])
		motion.Speed = args[6]
		motion.JumpImpulse = args[7]
	default:
		return nil, fmt.Errorf("%w, got %d", ErrEnemyArgCount, len(args))
	}
	stats.VisionRadius = args[2]

	if motion.JumpImpulse >= 0 {
		return nil, fmt.Errorf("%w, got %v", ErrNonNegativeJumpVelocity, motion.JumpImpulse)
	}

	return entity.NewEnemy(id, x, y, args[0], args[1], motion, stats, now), nil
}

func millis(v float64) time.Duration {
	return time.Duration(v * float64(time.Millisecond))
}
