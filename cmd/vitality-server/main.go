package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"vitality/internal/board"
	"vitality/internal/config"
	"vitality/internal/server"
)

func main() {
	run := flag.Bool("run", false, "start the board running immediately")
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	opts, err := cfg.BoardOptions()
	if err != nil {
		log.Fatal(err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A failed scheduled step stops the server too.
	opts = append(opts, board.WithErrorHandler(func(error) { stop() }))
	b, err := board.New(cfg.Size, opts...)
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()
	if cfg.Seed != 0 {
		b.Seed(cfg.Seed)
	}
	b.SetRunning(*run)

	if err := server.New(cfg.Addr, b, cfg.Parameters()).Serve(ctx); err != nil {
		log.Print(err)
	}
	if err := b.Err(); err != nil {
		log.Printf("board halted: %v", err)
	}
}
