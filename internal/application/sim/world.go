// Package sim runs one level of the simulation tick by tick.
//
// A World owns the level and its systems. Each Step runs the phases in a
// fixed order: input, kinematic intents, movement, combat, life checks,
// perception, behaviour and finally the termination check.
package sim

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/younwookim/sightline/internal/application/state"
	"github.com/younwookim/sightline/internal/application/system"
	"github.com/younwookim/sightline/internal/domain/entity"
	"github.com/younwookim/sightline/internal/infrastructure/config"
)

// ErrNoClock is returned when a World is built without a clock
var ErrNoClock = errors.New("sim: context has no clock")

// Input is the per-tick input state
type Input = system.InputState

// Context carries the collaborators a World needs instead of globals
type Context struct {
	Clock  Clock
	RNG    *rand.Rand
	SFX    bool // sound effects enabled, mirrored into events
	Logger *log.Logger
}

// World is one running level
type World struct {
	ctx      Context
	tuning   *config.TuningConfig
	levelCfg *config.LevelConfig

	level      *entity.Level
	input      *system.InputSystem
	physics    *system.PhysicsSystem
	combat     *system.CombatSystem
	perception *system.PerceptionSystem
	behavior   *system.BehaviorSystem

	status   state.LevelStatus
	paused   bool
	pausedAt time.Duration
	tick     int
}

// New loads the level and builds its systems
func New(ctx Context, tuning *config.TuningConfig, levelCfg *config.LevelConfig) (*World, error) {
	if ctx.Clock == nil {
		return nil, ErrNoClock
	}
	if ctx.RNG == nil {
		ctx.RNG = rand.New(rand.NewSource(12345))
	}
	if ctx.Logger == nil {
		ctx.Logger = log.New(io.Discard)
	}

	w := &World{
		ctx:      ctx,
		tuning:   tuning,
		levelCfg: levelCfg,
	}
	if err := w.Reset(); err != nil {
		return nil, err
	}
	return w, nil
}

// Reset reloads the level from its config and starts it over
func (w *World) Reset() error {
	level, err := system.LoadLevel(w.levelCfg, w.tuning, w.ctx.Clock.Now())
	if err != nil {
		return fmt.Errorf("failed to load level: %w", err)
	}

	w.level = level
	w.input = system.NewInputSystem(w.tuning)
	w.physics = system.NewPhysicsSystem(w.tuning, level)
	w.combat = system.NewCombatSystem(w.tuning, level)
	w.perception = system.NewPerceptionSystem(w.tuning, level, w.ctx.RNG)
	w.behavior = system.NewBehaviorSystem(level, w.combat)
	w.status = state.Running
	w.paused = false
	w.tick = 0

	w.ctx.Logger.Info("level loaded", "level", w.levelCfg.ID, "enemies", len(level.Enemies), "platforms", len(level.Platforms))
	return nil
}

// Level returns the running level
func (w *World) Level() *entity.Level { return w.level }

// Player returns the level's player
func (w *World) Player() *entity.Player { return w.level.Player }

// Status returns the termination status
func (w *World) Status() state.LevelStatus { return w.status }

// Paused reports whether the world is paused
func (w *World) Paused() bool { return w.paused }

// LevelID returns the ID of the loaded level config
func (w *World) LevelID() string { return w.levelCfg.ID }

// Pause freezes the world and remembers when
func (w *World) Pause() {
	if w.paused {
		return
	}
	w.paused = true
	w.pausedAt = w.ctx.Clock.Now()
}

// Resume unfreezes the world. Every stored timestamp is shifted by the
// paused span so no cooldown progresses while paused.
func (w *World) Resume() {
	if !w.paused {
		return
	}
	d := w.ctx.Clock.Now() - w.pausedAt
	w.level.Player.RegulateCooldown(d)
	for _, e := range w.level.Enemies {
		e.RegulateCooldown(d)
	}
	w.paused = false
}

// Step advances the simulation by one tick
func (w *World) Step(in Input) StepResult {
	if in.Pause && !w.status.Finished() {
		if w.paused {
			w.Resume()
		} else {
			w.Pause()
		}
	}
	if w.paused || w.status.Finished() {
		return w.result(nil)
	}

	now := w.ctx.Clock.Now()
	player := w.level.Player
	var events []Event

	if !player.Dead {
		w.input.UpdatePlayer(player, in)
		if proj, ok := w.input.Fire(player, in, now); ok {
			w.combat.Spawn(proj)
			events = append(events, w.event(EventFired, player.ID, player.ID))
		}
		events = w.lifeEvent(events, player.Update(now))
	}
	for _, e := range w.level.Enemies {
		e.Steer()
	}

	for _, id := range w.physics.Update(now) {
		events = append(events, w.event(EventHit, id, NoSource))
	}

	res := w.combat.Update(now)
	for _, imp := range res.Impacts {
		if e := w.level.Enemy(imp.Target); e != nil {
			w.ctx.Logger.Debug("enemy hit", "enemy", imp.Target, "health", e.Health)
		}
		events = append(events, w.event(EventHit, imp.Target, imp.Owner))
	}
	for _, id := range res.Killed {
		w.ctx.Logger.Debug("enemy killed", "enemy", id, "score", player.Score)
		events = append(events, w.event(EventEnemyKilled, id, NoSource))
	}
	events = w.lifeEvent(events, player.CheckDepleted())

	w.perception.Update(now)
	for _, id := range w.behavior.Update(now) {
		events = append(events, w.event(EventFired, id, id))
	}

	w.checkTermination()
	w.tick++
	return w.result(events)
}

// NoSource marks events without an originating entity
const NoSource = entity.NoEntity

func (w *World) lifeEvent(events []Event, ev entity.LifeEvent) []Event {
	player := w.level.Player
	switch ev {
	case entity.LifeRespawned:
		w.ctx.Logger.Debug("player respawned", "lives", player.Lives)
		return append(events, w.event(EventRespawned, player.ID, NoSource))
	case entity.LifeDied:
		w.ctx.Logger.Debug("player died", "score", player.Score)
		return append(events, w.event(EventDied, player.ID, NoSource))
	}
	return events
}

// checkTermination ends the level. Touching a finish tile wins even on the
// tick the player dies.
func (w *World) checkTermination() {
	player := w.level.Player
	for _, f := range w.level.Finishes {
		if player.Rect.Overlaps(f.Rect) {
			w.status = state.Complete
			w.ctx.Logger.Info("level complete", "level", w.levelCfg.ID, "score", player.Score)
			return
		}
	}
	if player.Dead {
		w.status = state.Failed
	}
}

func (w *World) event(kind EventKind, id, source entity.EntityID) Event {
	return Event{Kind: kind, Entity: id, Source: source, SFX: w.ctx.SFX}
}

func (w *World) result(events []Event) StepResult {
	p := w.level.Player
	return StepResult{
		Tick:    w.tick,
		Now:     w.ctx.Clock.Now(),
		Status:  w.status,
		Paused:  w.paused,
		Events:  events,
		Score:   p.Score,
		Health:  p.Health(),
		Stamina: p.Stamina(),
		Lives:   p.Lives,
	}
}
