package sim

import "time"

// Clock supplies the simulation time used for every cooldown
type Clock interface {
	Now() time.Duration
}

// TickClock is a manual clock. Each Tick advances it by one frame at the
// configured rate, which keeps runs reproducible.
type TickClock struct {
	now  time.Duration
	step time.Duration
}

// NewTickClock creates a clock that advances 1/tps per tick
func NewTickClock(tps int) *TickClock {
	if tps <= 0 {
		tps = 60
	}
	return &TickClock{step: time.Second / time.Duration(tps)}
}

// Now returns the current clock time
func (c *TickClock) Now() time.Duration { return c.now }

// Step returns the duration of one tick
func (c *TickClock) Step() time.Duration { return c.step }

// Tick advances the clock by one frame
func (c *TickClock) Tick() { c.now += c.step }

// Advance moves the clock forward by d
func (c *TickClock) Advance(d time.Duration) { c.now += d }
