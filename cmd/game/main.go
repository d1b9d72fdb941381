package main

import (
	"flag"
	"log"

	"github.com/Garsondee/moon-and-sun/internal/game"
	"github.com/Garsondee/moon-and-sun/internal/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	cfg, err := game.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	g, err := ui.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	if cfg.Features.Resize {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
