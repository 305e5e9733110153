//go:build ebiten

package main

import (
	"errors"
	"log"
	"os"

	"eca/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.Load(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(cfg)

	ebiten.SetWindowTitle("Elementary Cellular Automaton")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
