package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"torus-life/internal/app"
	"torus-life/internal/census"
	"torus-life/internal/render"
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

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	view := sim.View()
	for {
		fmt.Fprintf(out, "generation %d (population %d)\n", sim.Generation(), census.Population(view))
		if err := render.Fprint(out, view); err != nil {
			log.Fatal(err)
		}
		if sim.Generation() >= cfg.Generations {
			break
		}
		fmt.Fprintln(out)
		sim.Step()
	}
}
