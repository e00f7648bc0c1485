// Package sweep runs many random soups to completion in parallel, one engine
// per goroutine, and reports how long each took to settle.
package sweep

import (
	"context"
	"runtime"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"torus-life/internal/census"
	"torus-life/pkg/life"
	"torus-life/pkg/pattern"
)

// Options configures a sweep.
type Options struct {
	Runs     int
	Workers  int
	MaxSteps int
	Window   int
	Soup     pattern.SoupConfig
}

// DefaultOptions returns a small sweep over the default soup.
func DefaultOptions() Options {
	return Options{
		Runs:     64,
		Workers:  runtime.NumCPU(),
		MaxSteps: 2000,
		Window:   census.DefaultWindow,
		Soup:     pattern.DefaultSoupConfig(),
	}
}

// Result describes one soup. Generations is the step at which the soup first
// repeated an earlier state, or MaxSteps if it never did.
type Result struct {
	Seed        int64
	Generations int
	Period      int
	Population  int
	Settled     bool
}

// Run evaluates opts.Runs soups seeded opts.Soup.Seed, opts.Soup.Seed+1, ...
// Results are returned in seed order.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if opts.Runs <= 0 || opts.MaxSteps <= 0 {
		return nil, errors.Errorf("sweep needs positive runs and steps, got runs=%d steps=%d", opts.Runs, opts.MaxSteps)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, opts.Runs)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < opts.Runs; i++ {
		i := i
		g.Go(func() error {
			soup := opts.Soup
			soup.Seed += int64(i)
			res, err := runOne(ctx, soup, opts.MaxSteps, opts.Window)
			if err != nil {
				return errors.Wrapf(err, "seed %d", soup.Seed)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runOne(ctx context.Context, soup pattern.SoupConfig, maxSteps, window int) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	l, err := life.New(pattern.Soup(soup))
	if err != nil {
		return Result{}, err
	}
	tracker := census.NewTracker(window)
	tracker.Observe(l.View())
	res := Result{Seed: soup.Seed, Generations: maxSteps}
	for step := 1; step <= maxSteps; step++ {
		if step%64 == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		l.Step()
		if period, ok := tracker.Observe(l.View()); ok {
			res.Generations = step
			res.Period = period
			res.Settled = true
			break
		}
	}
	res.Population = census.Population(l.View())
	return res, nil
}

// Summary aggregates a sweep.
type Summary struct {
	Runs            int
	Settled         int
	Extinct         int
	MeanGenerations float64
	Periods         map[int]int
}

// Summarize counts outcomes across results.
func Summarize(results []Result) Summary {
	s := Summary{Runs: len(results), Periods: map[int]int{}}
	total := 0
	for _, r := range results {
		total += r.Generations
		if r.Settled {
			s.Settled++
			s.Periods[r.Period]++
		}
		if r.Population == 0 {
			s.Extinct++
		}
	}
	if len(results) > 0 {
		s.MeanGenerations = float64(total) / float64(len(results))
	}
	return s
}

// Longest returns up to n results ordered by settling time, longest first.
func Longest(results []Result, n int) []Result {
	sorted := append([]Result(nil), results...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Generations > sorted[j].Generations })
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}
