// Command vitality-run advances a board without a window and prints its
// counters after every generation.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"vitality/internal/board"
	"vitality/internal/config"
	"vitality/internal/render"

	channerics "github.com/niceyeti/channerics/channels"
)

func main() {
	generations := flag.Int("generations", 10, "number of generations to advance")
	printGrid := flag.Bool("print", false, "print the grid after each generation")
	live := flag.Bool("live", false, "advance on the configured period instead of as fast as possible")
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

	report(b.Frame(), *printGrid)
	if *live {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = runLive(ctx, b, uint64(*generations), *printGrid)
	} else {
		err = runFast(b, *generations, *printGrid)
	}
	if err != nil {
		log.Print(err)
		b.Close()
		os.Exit(1)
	}
}

func runFast(b *board.Board, generations int, printGrid bool) error {
	for i := 0; i < generations; i++ {
		if err := b.Step(); err != nil {
			return err
		}
		report(b.Frame(), printGrid)
	}
	return nil
}

// runLive lets the board's scheduler drive generations and reports each new
// one it observes.
func runLive(ctx context.Context, b *board.Board, generations uint64, printGrid bool) error {
	b.SetRunning(true)
	defer b.SetRunning(false)

	last := b.Generation()
	poll := channerics.NewTicker(ctx.Done(), b.Period()/4+1)
	for range poll {
		if err := b.Err(); err != nil {
			return err
		}
		frame := b.Frame()
		if frame.Generation == last {
			continue
		}
		last = frame.Generation
		report(frame, printGrid)
		if last >= generations {
			return nil
		}
	}
	return ctx.Err()
}

func report(frame board.Frame, printGrid bool) {
	fmt.Printf("gen %4d  population %4d/%d  max vitality %d\n",
		frame.Generation, frame.Population, len(frame.Cells), maxVitality(frame.Cells))
	if printGrid {
		fmt.Print(render.Text(frame.Cells, frame.Size))
	}
}

func maxVitality(cells []int) int {
	m := 0
	for _, v := range cells {
		m = max(m, v)
	}
	return m
}
