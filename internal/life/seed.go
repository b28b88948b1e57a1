package life

import (
	"math/rand/v2"

	"github.com/aquilax/go-perlin"
)

// Noise parameters tuned for blob-sized clusters on boards around 50x50.
const (
	noiseAlpha     = 2.0
	noiseBeta      = 2.0
	noiseOctaves   = 3
	noiseScale     = 10.0
	noiseThreshold = 0.1
)

// SeedNoise fills the board with clustered live regions by thresholding 2D
// perlin noise. The same seed always produces the same board.
func (l *Life) SeedNoise(seed int64) {
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)
	for y := 0; y < l.cur.H; y++ {
		for x := 0; x < l.cur.W; x++ {
			v := p.Noise2D(float64(x)/noiseScale, float64(y)/noiseScale)
			l.cur.Set(x, y, v > noiseThreshold)
		}
	}
	l.gen = 0
}

// SeedRandom fills the board with uniform random cells from a deterministic
// PCG source.
func (l *Life) SeedRandom(seed int64) {
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	cells := l.cur.Cells()
	for i := range cells {
		cells[i] = rng.IntN(2) == 1
	}
	l.gen = 0
}
