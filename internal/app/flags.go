package app

import (
	"flag"
	"time"

	"golife/internal/core"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width  int
	Height int
	Scale  int
	TPS    int
	Period time.Duration
	Seed   int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:  50,
		Height: 50,
		Scale:  10,
		TPS:    60,
		Period: core.DefaultPeriod,
		Seed:   42,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "board height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.DurationVar(&c.Period, "period", c.Period, "time between generations")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the board seeding commands")
}
