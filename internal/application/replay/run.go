package replay

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/younwookim/sightline/internal/application/sim"
	"github.com/younwookim/sightline/internal/infrastructure/config"
)

// Summary is the outcome of a headless replay
type Summary struct {
	Frames int // frames consumed before the level ended or input ran out
	Total  int // frames in the recording
	Final  sim.StepResult
	Kills  int
	Shots  int
}

// Run plays the recorded frames against a fresh world on a tick clock.
// Replays are deterministic: the same data, tuning and level always give
// the same summary.
func Run(data ReplayData, tuning *config.TuningConfig, level *config.LevelConfig, logger *log.Logger) (Summary, error) {
	tps := data.TPS
	if tps <= 0 {
		tps = tuning.Display.TPS
	}
	clock := sim.NewTickClock(tps)
	r := NewReplayer(data)

	world, err := sim.New(sim.Context{
		Clock:  clock,
		RNG:    rand.New(rand.NewSource(r.Seed())),
		Logger: logger,
	}, tuning, level)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to start replay: %w", err)
	}

	sum := Summary{Total: r.TotalFrames()}
	for {
		in, ok := r.GetInput()
		if !ok {
			break
		}
		clock.Tick()
		res := world.Step(in)
		sum.Frames = r.CurrentFrame()
		sum.Final = res
		sum.Kills += res.Count(sim.EventEnemyKilled)
		for _, ev := range res.Events {
			if ev.Kind == sim.EventFired && ev.Entity == world.Player().ID {
				sum.Shots++
			}
		}
		if res.Status.Finished() {
			break
		}
	}
	return sum, nil
}
