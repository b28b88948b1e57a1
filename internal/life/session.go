package life

import (
	"time"

	"golife/internal/core"
)

// Session owns all mutable simulation state: the step engine, the scheduler,
// and the brush. The host loop threads it through one call sequence per
// frame — Apply for each keyboard command, Paint for the pointer, then Tick.
// That ordering makes a manual toggle visible to a step fired in the same
// frame, and lets a reset cancel a step that was due.
type Session struct {
	life  *Life
	sched *core.Scheduler
	brush *core.Brush
	seed  int64
}

// NewSession builds a paused session with an all-dead board. seed starts the
// deterministic sequence used by the seeding commands.
func NewSession(w, h int, period time.Duration, seed int64) *Session {
	return &Session{
		life:  New(w, h),
		sched: core.NewScheduler(period),
		brush: core.NewBrush(),
		seed:  seed,
	}
}

// Apply executes one logical keyboard command.
func (s *Session) Apply(cmd core.Command) {
	switch cmd {
	case core.CmdTogglePause:
		s.sched.TogglePause()
	case core.CmdFaster:
		s.sched.Faster()
	case core.CmdSlower:
		s.sched.Slower()
	case core.CmdReset:
		s.life.Clear()
		s.sched.Pause()
	case core.CmdStepOnce:
		s.life.Step()
	case core.CmdSeedNoise:
		s.life.SeedNoise(s.nextSeed())
	case core.CmdSeedRandom:
		s.life.SeedRandom(s.nextSeed())
	}
}

func (s *Session) nextSeed() int64 {
	v := s.seed
	s.seed++
	return v
}

// Paint processes one frame of pointer state; (x, y) is the hovered cell in
// grid coordinates and held reports whether the primary button is down.
func (s *Session) Paint(x, y int, held bool) {
	s.brush.Paint(s.life.Grid(), x, y, held)
}

// Tick runs the scheduler against the elapsed time since start and advances
// one generation when due. It reports whether a step ran.
func (s *Session) Tick(now time.Duration) bool {
	if !s.sched.ShouldStep(now) {
		return false
	}
	s.life.Step()
	return true
}

// Grid exposes the current board.
func (s *Session) Grid() *core.Grid { return s.life.Grid() }

// Cells exposes the current board's backing slice for rendering.
func (s *Session) Cells() []bool { return s.life.Cells() }

// Size returns the board dimensions.
func (s *Session) Size() core.Size { return s.life.Size() }

// Paused reports whether the scheduler is paused.
func (s *Session) Paused() bool { return s.sched.Paused() }

// Period returns the current time between generations.
func (s *Session) Period() time.Duration { return s.sched.Period() }

// Generation returns the number of steps since the last clear or seed.
func (s *Session) Generation() int { return s.life.Generation() }
