package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/younwookim/sightline/internal/domain/entity"
	"github.com/younwookim/sightline/internal/infrastructure/config"
)

func createTestTuning(t *testing.T) *config.TuningConfig {
	t.Helper()
	cfg, err := config.DefaultTuning()
	require.NoError(t, err)
	return cfg
}

func createTestLevel(platforms ...*entity.Platform) *entity.Level {
	return &entity.Level{
		Width:     800,
		Height:    600,
		TileSize:  50,
		Platforms: platforms,
	}
}

func createTestPlayer(x, y float64) *entity.Player {
	return entity.NewPlayer(PlayerID, x, y, 40, 70, entity.DefaultPlayerMotion(), entity.DefaultPlayerStats(), 0)
}

func createTestEnemy(id entity.EntityID, x, y, vision float64) *entity.Enemy {
	return entity.NewEnemy(id, x, y, 40, 70, entity.DefaultEnemyMotion(), entity.DefaultEnemyStats(vision), 0)
}

func platform(x, y, w, h float64) *entity.Platform {
	return entity.NewPlatform(x, y, w, h, entity.KindPlatform)
}

// floor returns a row of 50px tiles with their top edge at y
func floor(x0, x1, y float64) []*entity.Platform {
	var ps []*entity.Platform
	for x := x0; x < x1; x += 50 {
		ps = append(ps, platform(x, y, 50, 50))
	}
	return ps
}
