//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"golife/internal/app"
	"golife/internal/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	session := life.NewSession(cfg.Width, cfg.Height, cfg.Period, cfg.Seed)
	game := app.New(session, cfg.Scale)

	ebiten.SetWindowTitle("golife")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
