package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/Garsondee/moon-and-sun/internal/game"
	"github.com/Garsondee/moon-and-sun/internal/termview"
	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	fps := flag.Int("fps", 30, "simulation ticks per second")
	sound := flag.Bool("sound", false, "play a short tone on every capture")
	flag.Parse()

	if err := run(*configPath, *fps, *sound); err != nil {
		fmt.Fprintf(os.Stderr, "moon-and-sun: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, fps int, sound bool) error {
	cfg, err := game.Load(configPath)
	if err != nil {
		return err
	}
	pal, err := cfg.Palette()
	if err != nil {
		return err
	}

	var sounder termview.Sounder
	if sound {
		b, err := termview.NewBlipper()
		if err != nil {
			// Non-fatal, the board runs silently.
			log.Printf("audio initialization failed: %v", err)
		} else {
			defer b.Close()
			sounder = b
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	termview.New(screen, game.NewWorld(cfg), pal, sounder).Run(ctx, fps)
	return nil
}
