package life

import "golife/internal/core"

// Life advances Conway's Game of Life on a toroidal grid. Transitions are
// computed against the pre-step snapshot and committed together, so no cell
// observes another cell's new state within the same generation.
type Life struct {
	cur *core.Grid
	nxt *core.Grid
	gen int
}

// New returns a Life engine with an all-dead board of the given dimensions.
func New(w, h int) *Life {
	return &Life{cur: core.NewGrid(w, h), nxt: core.NewGrid(w, h)}
}

// Size returns the board dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cur.W, H: l.cur.H} }

// Grid exposes the current board.
func (l *Life) Grid() *core.Grid { return l.cur }

// Cells exposes the current board's backing slice.
func (l *Life) Cells() []bool { return l.cur.Cells() }

// Generation returns the number of steps taken since the last clear.
func (l *Life) Generation() int { return l.gen }

// Step advances the board by one generation. A live cell survives with two
// or three live neighbors; a dead cell is born with exactly three.
func (l *Life) Step() {
	for y := 0; y < l.cur.H; y++ {
		for x := 0; x < l.cur.W; x++ {
			n := l.cur.AliveNeighbors(x, y)
			alive := l.cur.Get(x, y)
			l.nxt.Set(x, y, n == 3 || (alive && n == 2))
		}
	}
	l.cur.Replace(l.nxt)
	l.gen++
}

// Clear kills every cell and resets the generation counter.
func (l *Life) Clear() {
	l.cur.Clear()
	l.gen = 0
}
