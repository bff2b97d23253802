package sim

import (
	"time"

	"github.com/younwookim/sightline/internal/application/state"
	"github.com/younwookim/sightline/internal/domain/entity"
)

// EventKind identifies something a collaborator may want to react to
type EventKind int

const (
	EventFired EventKind = iota
	EventHit
	EventRespawned
	EventDied
	EventEnemyKilled
)

// String returns the string representation of the event kind
func (k EventKind) String() string {
	switch k {
	case EventFired:
		return "Fired"
	case EventHit:
		return "Hit"
	case EventRespawned:
		return "Respawned"
	case EventDied:
		return "Died"
	case EventEnemyKilled:
		return "EnemyKilled"
	default:
		return "Unknown"
	}
}

// Event is emitted once per occurrence during a step.
// For hits Entity is the target and Source the projectile's owner.
type Event struct {
	Kind   EventKind
	Entity entity.EntityID
	Source entity.EntityID
	SFX    bool // play the matching sound effect
}

// StepResult reports the outcome of one tick
type StepResult struct {
	Tick    int
	Now     time.Duration
	Status  state.LevelStatus
	Paused  bool
	Events  []Event
	Score   int
	Health  float64
	Stamina float64
	Lives   int
}

// Count returns how many events of the given kind occurred
func (r StepResult) Count(kind EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
