package life

import (
	"slices"
	"testing"
)

// checkBoard fails unless exactly the cells in want are alive.
func checkBoard(t *testing.T, l *Life, want map[[2]int]bool) {
	t.Helper()
	size := l.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			alive := l.Grid().Get(x, y)
			if alive != want[[2]int{x, y}] {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, want[[2]int{x, y}])
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	l := New(5, 5)
	l.Grid().Set(2, 1, true)
	l.Grid().Set(2, 2, true)
	l.Grid().Set(2, 3, true)

	l.Step()
	checkBoard(t, l, map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	})

	l.Step()
	checkBoard(t, l, map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	})
}

func TestBlockIsStillLife(t *testing.T) {
	l := New(6, 6)
	block := map[[2]int]bool{
		{2, 2}: true,
		{3, 2}: true,
		{2, 3}: true,
		{3, 3}: true,
	}
	for c := range block {
		l.Grid().Set(c[0], c[1], true)
	}

	for i := 0; i < 4; i++ {
		l.Step()
		checkBoard(t, l, block)
	}
}

func TestLTrominoGrowsIntoBlock(t *testing.T) {
	l := New(6, 6)
	// Each live cell has two live neighbors and survives; the dead cell at
	// (2,2) has exactly three and is born.
	l.Grid().Set(1, 1, true)
	l.Grid().Set(2, 1, true)
	l.Grid().Set(1, 2, true)

	l.Step()
	checkBoard(t, l, map[[2]int]bool{
		{1, 1}: true,
		{2, 1}: true,
		{1, 2}: true,
		{2, 2}: true,
	})
}

func TestUnderpopulationAndOverpopulation(t *testing.T) {
	l := New(6, 6)
	l.Grid().Set(3, 3, true)
	l.Step()
	if l.Grid().Get(3, 3) {
		t.Fatal("a lone cell has zero neighbors and must die")
	}

	// A plus shape: the center has four live neighbors and must die.
	l = New(7, 7)
	for _, c := range [][2]int{{3, 3}, {2, 3}, {4, 3}, {3, 2}, {3, 4}} {
		l.Grid().Set(c[0], c[1], true)
	}
	l.Step()
	if l.Grid().Get(3, 3) {
		t.Fatal("a cell with four live neighbors must die of overpopulation")
	}
}

func TestBlinkerWrapsAcrossEdge(t *testing.T) {
	l := New(5, 5)
	// Horizontal blinker on the top row; its column rotation wraps to the
	// bottom row.
	l.Grid().Set(1, 0, true)
	l.Grid().Set(2, 0, true)
	l.Grid().Set(3, 0, true)

	l.Step()
	checkBoard(t, l, map[[2]int]bool{
		{2, 4}: true,
		{2, 0}: true,
		{2, 1}: true,
	})
}

func TestStepIsDeterministic(t *testing.T) {
	a := New(16, 16)
	b := New(16, 16)
	a.SeedRandom(9)
	b.SeedRandom(9)

	for i := 0; i < 10; i++ {
		a.Step()
		b.Step()
	}
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("identical boards must evolve identically")
	}
}

func TestClearResetsBoardAndGeneration(t *testing.T) {
	l := New(8, 8)
	l.SeedRandom(3)
	l.Step()
	l.Step()
	if l.Generation() != 2 {
		t.Fatalf("generation = %d, expected 2", l.Generation())
	}

	l.Clear()
	if l.Generation() != 0 {
		t.Fatalf("generation = %d after clear, expected 0", l.Generation())
	}
	for i, alive := range l.Cells() {
		if alive {
			t.Fatalf("cell %d still alive after clear", i)
		}
	}
}

func TestSeedNoiseDeterministic(t *testing.T) {
	a := New(50, 50)
	b := New(50, 50)
	a.SeedNoise(7)
	b.SeedNoise(7)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("noise seeding with the same seed must produce the same board")
	}
	if a.Generation() != 0 {
		t.Fatal("seeding must reset the generation counter")
	}
}

func TestSeedRandomDeterministic(t *testing.T) {
	a := New(50, 50)
	b := New(50, 50)
	a.SeedRandom(11)
	b.SeedRandom(11)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("random fill with the same seed must produce the same board")
	}

	alive := 0
	for _, v := range a.Cells() {
		if v {
			alive++
		}
	}
	if alive == 0 || alive == len(a.Cells()) {
		t.Fatalf("random fill produced a degenerate board with %d live cells", alive)
	}
}
