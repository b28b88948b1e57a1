package core

// Grid stores a fixed-size 2D field of cell liveness in row-major order.
// Neighbor lookups wrap toroidally, so the field has no edges.
type Grid struct {
	W, H  int
	cells []bool
}

// NewGrid allocates an all-dead grid with the given dimensions. Both
// dimensions must be positive.
func NewGrid(w, h int) *Grid {
	if w <= 0 || h <= 0 {
		panic("core: grid dimensions must be positive")
	}
	return &Grid{W: w, H: h, cells: make([]bool, w*h)}
}

// Cells exposes the backing slice so callers can read values directly.
func (g *Grid) Cells() []bool { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Contains reports whether (x, y) lies inside the grid.
func (g *Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Wrap applies toroidal wrapping to the provided coordinates. The result is
// always in [0, W) x [0, H), even for negative inputs.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Get returns the liveness at (x, y). Coordinates must be in range.
func (g *Grid) Get(x, y int) bool { return g.cells[g.Index(x, y)] }

// Set writes the liveness at (x, y).
func (g *Grid) Set(x, y int, alive bool) { g.cells[g.Index(x, y)] = alive }

// Toggle flips the liveness at (x, y).
func (g *Grid) Toggle(x, y int) {
	i := g.Index(x, y)
	g.cells[i] = !g.cells[i]
}

// AliveNeighbors counts the live cells in the Moore neighborhood of (x, y),
// wrapping around the grid edges.
func (g *Grid) AliveNeighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := g.Wrap(x+dx, y+dy)
			if g.cells[g.Index(nx, ny)] {
				n++
			}
		}
	}
	return n
}

// Replace copies the contents of src into g. Both grids must have identical
// dimensions; a mismatch is a programming error.
func (g *Grid) Replace(src *Grid) {
	if g.W != src.W || g.H != src.H {
		panic("core: grid dimensions differ on replace")
	}
	copy(g.cells, src.cells)
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = false
	}
}
