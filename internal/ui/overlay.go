//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var helpLines = []string{
	"space       pause/resume",
	"left/right  slower/faster",
	"n           step once",
	"r           reset",
	"s           noise seed",
	"f           random fill",
	"h           toggle help",
	"q/esc       quit",
}

// Overlay draws the status line and an optional help panel over the board.
type Overlay struct {
	showHelp bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay { return &Overlay{} }

// Update handles the overlay's own key toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHelp = !o.showHelp
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, st Status) {
	face := basicfont.Face7x13
	line := fmt.Sprintf("gen %d  period %s", st.Generation, st.Period)
	if st.Paused {
		line += "  [paused]"
	}
	text.Draw(screen, line, face, 4, 14, color.RGBA{R: 120, G: 220, B: 120, A: 255})

	if !o.showHelp {
		return
	}
	for i, ln := range helpLines {
		text.Draw(screen, ln, face, 4, 32+i*14, color.RGBA{R: 200, G: 200, B: 200, A: 255})
	}
}
