package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"torus-life/internal/app"
	"torus-life/internal/term"
)

func main() {
	cfg, err := app.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	sim, err := cfg.NewEngine()
	if err != nil {
		log.Fatalf("seed: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = term.New(screen, sim, sim.View(), cfg.Rate).Run(ctx)
	stop()
	screen.Fini()
	if err != nil && err != context.Canceled {
		log.Fatal(err)
	}
}
