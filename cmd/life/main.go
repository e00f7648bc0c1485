//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"torus-life/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	session, err := app.NewSession(cfg)
	if err != nil {
		log.Fatalf("seed: %v", err)
	}

	name := cfg.Pattern
	if cfg.PatternFile != "" {
		name = cfg.PatternFile
	}
	ebiten.SetWindowTitle("torus-life · " + name)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.WindowSize, cfg.WindowSize)

	if err := ebiten.RunGame(app.New(session, cfg.WindowSize)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
