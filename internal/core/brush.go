package core

// Brush toggles grid cells under a held pointer button. Each cell is toggled
// once per visit: while the button stays held over the same cell no further
// toggles happen. Releasing the button re-arms the brush, so a new press on
// the same cell toggles it again.
type Brush struct {
	lastX, lastY int
}

// NewBrush returns a brush with no last-edited cell.
func NewBrush() *Brush { return &Brush{lastX: -1, lastY: -1} }

// Paint processes one frame of pointer state: held reports whether the
// primary button is down and (x, y) is the hovered cell in grid coordinates.
// Coordinates outside the grid are ignored. It reports whether a cell was
// toggled.
func (b *Brush) Paint(g *Grid, x, y int, held bool) bool {
	if !held {
		b.lastX, b.lastY = -1, -1
		return false
	}
	if !g.Contains(x, y) {
		return false
	}
	if x == b.lastX && y == b.lastY {
		return false
	}
	g.Toggle(x, y)
	b.lastX, b.lastY = x, y
	return true
}
