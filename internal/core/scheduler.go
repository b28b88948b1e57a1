package core

import "time"

// Bounds enforced on the generation period by Faster and Slower.
const (
	MinPeriod = 10 * time.Millisecond
	MaxPeriod = 10 * time.Second
)

// DefaultPeriod is the time between generations at startup.
const DefaultPeriod = 500 * time.Millisecond

// Scheduler gates generation steps on elapsed time. It holds the pause flag
// and the current period (time between generations) and decides, given the
// monotonic elapsed time since start, whether a step is due. A new Scheduler
// starts paused.
type Scheduler struct {
	paused  bool
	period  time.Duration
	nextDue time.Duration
}

// NewScheduler constructs a paused scheduler with the given period. A
// non-positive period falls back to DefaultPeriod.
func NewScheduler(period time.Duration) *Scheduler {
	if period <= 0 {
		period = DefaultPeriod
	}
	s := &Scheduler{paused: true}
	s.setPeriod(period)
	s.nextDue = s.period
	return s
}

// Paused reports whether the simulation is paused.
func (s *Scheduler) Paused() bool { return s.paused }

// TogglePause flips the pause flag.
func (s *Scheduler) TogglePause() { s.paused = !s.paused }

// Pause stops the simulation.
func (s *Scheduler) Pause() { s.paused = true }

// Period returns the current time between generations.
func (s *Scheduler) Period() time.Duration { return s.period }

// Faster shortens the period by a quarter, down to MinPeriod.
func (s *Scheduler) Faster() { s.setPeriod(s.period * 3 / 4) }

// Slower lengthens the period by a quarter, up to MaxPeriod.
func (s *Scheduler) Slower() { s.setPeriod(s.period * 5 / 4) }

func (s *Scheduler) setPeriod(period time.Duration) {
	if period < MinPeriod {
		period = MinPeriod
	}
	if period > MaxPeriod {
		period = MaxPeriod
	}
	s.period = period
}

// ShouldStep reports whether one generation is due at the given elapsed time
// and, if so, re-arms the due time. The due time is not advanced while
// paused, so a long pause never banks missed steps: at most one step fires
// on the first call after a resume.
func (s *Scheduler) ShouldStep(now time.Duration) bool {
	if s.paused {
		return false
	}
	if now < s.nextDue {
		return false
	}
	s.nextDue = now + s.period
	return true
}
