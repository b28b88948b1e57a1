package ui

import "time"

// Status is the per-frame simulation state shown on the overlay.
type Status struct {
	Generation int
	Period     time.Duration
	Paused     bool
}
