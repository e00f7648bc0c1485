package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"time"

	"torus-life/internal/sweep"
)

func main() {
	opts := sweep.DefaultOptions()
	flag.IntVar(&opts.Runs, "runs", opts.Runs, "number of soups to evaluate")
	flag.IntVar(&opts.Workers, "workers", opts.Workers, "number of concurrent engines")
	flag.IntVar(&opts.MaxSteps, "steps", opts.MaxSteps, "step limit per soup")
	flag.IntVar(&opts.Window, "window", opts.Window, "generations remembered for cycle detection")
	flag.IntVar(&opts.Soup.Width, "w", opts.Soup.Width, "soup width")
	flag.IntVar(&opts.Soup.Height, "h", opts.Soup.Height, "soup height")
	flag.Float64Var(&opts.Soup.Density, "density", opts.Soup.Density, "initial live-cell probability")
	flag.Int64Var(&opts.Soup.Seed, "seed", opts.Soup.Seed, "seed of the first soup")
	top := flag.Int("top", 5, "number of longest-lived soups to list")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Sweeping %d soups of %dx%d at density %.2f (%d workers, %d steps)\n",
		opts.Runs, opts.Soup.Width, opts.Soup.Height, opts.Soup.Density, opts.Workers, opts.MaxSteps)

	start := time.Now()
	results, err := sweep.Run(ctx, opts)
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	fmt.Printf("\nTop %d results (elapsed %s):\n", *top, elapsed.Round(time.Millisecond))
	for i, r := range sweep.Longest(results, *top) {
		state := "unsettled"
		if r.Settled {
			state = fmt.Sprintf("period %d", r.Period)
		}
		fmt.Printf("%2d) seed=%d generations=%d population=%d %s\n", i+1, r.Seed, r.Generations, r.Population, state)
	}

	s := sweep.Summarize(results)
	periods := make([]int, 0, len(s.Periods))
	for p := range s.Periods {
		periods = append(periods, p)
	}
	sort.Ints(periods)
	fmt.Printf("\nSettled %d/%d, extinct %d, mean %.1f generations\n", s.Settled, s.Runs, s.Extinct, s.MeanGenerations)
	for _, p := range periods {
		fmt.Printf("  period %d: %d\n", p, s.Periods[p])
	}
}
