//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"vitality/internal/app"
	"vitality/internal/board"
	"vitality/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	opts, err := cfg.BoardOptions()
	if err != nil {
		log.Fatal(err)
	}
	b, err := board.New(cfg.Size, opts...)
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()
	if cfg.Seed != 0 {
		b.Seed(cfg.Seed)
	}

	game := app.New(b, cfg.Parameters(), cfg.Scale, cfg.Seed)
	width, height := game.Layout(0, 0)

	ebiten.SetWindowTitle("vitality — " + cfg.Rule)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(width, height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Print(err)
		b.Close()
		os.Exit(1)
	}
}
