package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Command identifies a logical keyboard command applied to a running
// session. The key map lives in the app layer; the session only sees
// commands.
type Command int

const (
	// CmdTogglePause flips between running and paused.
	CmdTogglePause Command = iota
	// CmdFaster shortens the time between generations.
	CmdFaster
	// CmdSlower lengthens the time between generations.
	CmdSlower
	// CmdReset kills every cell and pauses the simulation.
	CmdReset
	// CmdStepOnce advances exactly one generation immediately.
	CmdStepOnce
	// CmdSeedNoise fills the board with clustered noise blobs.
	CmdSeedNoise
	// CmdSeedRandom fills the board with uniform random cells.
	CmdSeedRandom
)
