package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/sightline/internal/domain/geom"
)

func newTestEnemy(now time.Duration) *Enemy {
	return NewEnemy(2, 480, 365, 40, 70, DefaultEnemyMotion(), DefaultEnemyStats(150), now)
}

func TestEnemy_Spotted(t *testing.T) {
	e := newTestEnemy(0)
	aim := geom.Vec2{X: -10}

	e.Spotted(true, aim, 100*ms)
	assert.True(t, e.Watching)
	assert.Equal(t, 100*ms, e.FirstSpotted)
	assert.Equal(t, aim, e.VectorToPlayer)

	// continuous sighting keeps the first timestamp
	refreshed := geom.Vec2{X: -8, Y: 6}
	e.Spotted(true, refreshed, 500*ms)
	assert.Equal(t, 100*ms, e.FirstSpotted)
	assert.Equal(t, refreshed, e.VectorToPlayer)

	e.Spotted(false, geom.Vec2{}, 600*ms)
	assert.False(t, e.Watching)

	e.Spotted(true, aim, 700*ms)
	assert.Equal(t, 700*ms, e.FirstSpotted)
}

func TestEnemy_Attack(t *testing.T) {
	e := newTestEnemy(0)

	_, ok := e.Attack(5000 * ms)
	assert.False(t, ok, "not watching")

	e.Spotted(true, geom.Vec2{X: -10}, 5000*ms)
	_, ok = e.Attack(5999 * ms)
	assert.False(t, ok, "response time pending")

	proj, ok := e.Attack(6000 * ms)
	require.True(t, ok)
	assert.Equal(t, e.ID, proj.Owner)
	assert.Equal(t, -10.0, proj.VX)
	assert.Equal(t, 6000*ms, e.LastFired)
	assert.Equal(t, 5000*ms, e.FirstSpotted, "firing keeps the sighting timestamp")

	_, ok = e.Attack(6319 * ms)
	assert.False(t, ok)
	_, ok = e.Attack(6320 * ms)
	assert.True(t, ok)
}

func TestEnemy_Steer(t *testing.T) {
	e := newTestEnemy(0)
	e.OnPlatform = true
	e.MovingLeft = true
	e.Jumping = true
	e.Steer()

	assert.Equal(t, -2.0, e.VX)
	assert.Equal(t, -15.0, e.VY)
	assert.False(t, e.OnPlatform)
}

func TestEnemy_HitAndAlive(t *testing.T) {
	e := newTestEnemy(0)
	for i := 0; i < 9; i++ {
		e.Hit(5, 0)
	}
	assert.True(t, e.Alive())
	e.Hit(5, 0)
	assert.False(t, e.Alive())
	assert.Equal(t, 10, e.Hits)
}

func TestEnemy_RegulateCooldown(t *testing.T) {
	e := newTestEnemy(0)
	e.Spotted(true, geom.Vec2{X: 1}, 100*ms)
	e.RegulateCooldown(2000 * ms)
	assert.Equal(t, 2100*ms, e.FirstSpotted)
	assert.Equal(t, 2000*ms, e.LastFired)
	assert.False(t, e.CanAttack(3000*ms))
	assert.True(t, e.CanAttack(3100*ms))
}
