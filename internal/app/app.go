//go:build ebiten

package app

import (
	"image/color"
	"time"

	"golife/internal/core"
	"golife/internal/life"
	"golife/internal/render"
	"golife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// commandKeys maps edge-triggered keys to logical commands. Commands fire on
// key release, so holding a key issues a single command.
var commandKeys = []struct {
	key ebiten.Key
	cmd core.Command
}{
	{ebiten.KeySpace, core.CmdTogglePause},
	{ebiten.KeyArrowRight, core.CmdFaster},
	{ebiten.KeyArrowLeft, core.CmdSlower},
	{ebiten.KeyR, core.CmdReset},
	{ebiten.KeyN, core.CmdStepOnce},
	{ebiten.KeyS, core.CmdSeedNoise},
	{ebiten.KeyF, core.CmdSeedRandom},
}

// Game adapts a simulation session to the ebiten.Game interface.
type Game struct {
	session *life.Session
	painter *render.GridPainter
	overlay *ui.Overlay

	onColor  color.Color
	offColor color.Color

	scale int
	start time.Time
}

// New constructs a Game for the provided session.
func New(session *life.Session, scale int) *Game {
	size := session.Size()
	return &Game{
		session:  session,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		start:    time.Now(),
	}
}

// Update handles per-frame input and advances the simulation when due.
// Keyboard commands apply first, then the brush, then the scheduler-gated
// step, so a manual toggle is visible to a step fired in the same frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for _, kc := range commandKeys {
		if inpututil.IsKeyJustReleased(kc.key) {
			g.session.Apply(kc.cmd)
		}
	}
	g.overlay.Update()

	held := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	mx, my := ebiten.CursorPosition()
	cx, cy := mx/g.scale, my/g.scale
	// Integer division truncates toward zero, so a cursor left of or above
	// the window must not land in column or row 0.
	if mx < 0 || my < 0 {
		cx, cy = -1, -1
	}
	g.session.Paint(cx, cy, held)

	g.session.Tick(time.Since(g.start))
	return nil
}

// Draw renders the board and the overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.Cells(), g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen, ui.Status{
		Generation: g.session.Generation(),
		Period:     g.session.Period(),
		Paused:     g.session.Paused(),
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.session.Size()
	return size.W * g.scale, size.H * g.scale
}
