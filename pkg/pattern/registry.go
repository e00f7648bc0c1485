package pattern

import (
	"sort"
	"strconv"

	"github.com/pkg/errors"

	"torus-life/pkg/core"
)

// Factory builds a seed matrix using an optional key/value configuration.
type Factory func(cfg map[string]string) ([][]bool, error)

var factories = map[string]Factory{}

// Register adds a pattern factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	factories[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	f, ok := factories[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "%q (have %v)", name, Names())
	}
	return f, nil
}

// Names lists registered patterns in sorted order.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func literal(text string) Factory {
	rows := MustParse(text)
	return func(map[string]string) ([][]bool, error) {
		out := make([][]bool, len(rows))
		for y, row := range rows {
			out[y] = append([]bool(nil), row...)
		}
		return out, nil
	}
}

// SoupConfig controls the random "soup" pattern.
type SoupConfig struct {
	Width   int
	Height  int
	Density float64
	Seed    int64
}

// DefaultSoupConfig returns the standard soup parameters.
func DefaultSoupConfig() SoupConfig {
	return SoupConfig{Width: 48, Height: 48, Density: 0.3, Seed: 42}
}

// SoupFromMap populates a SoupConfig from flag-style key/value pairs.
func SoupFromMap(cfg map[string]string) SoupConfig {
	c := DefaultSoupConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// Soup fills a grid at random from a deterministic seed.
func Soup(c SoupConfig) [][]bool {
	return core.NewRNG(c.Seed).FillCells(c.Width, c.Height, c.Density)
}

func init() {
	Register("block", literal(`
		OO
		OO`))
	Register("blinker", literal(`
		OOO`))
	Register("toad", literal(`
		.OOO
		OOO.`))
	Register("glider", literal(`
		.O.
		..O
		OOO`))
	Register("spaceship", literal(`
		.O..O
		O....
		O...O
		OOOO.`))
	Register("pulsar", literal(`
		..OOO...OOO..
		.............
		O....O.O....O
		O....O.O....O
		O....O.O....O
		..OOO...OOO..
		.............
		..OOO...OOO..
		O....O.O....O
		O....O.O....O
		O....O.O....O
		.............
		..OOO...OOO..`))
	Register("soup", func(cfg map[string]string) ([][]bool, error) {
		return Soup(SoupFromMap(cfg)), nil
	})
}
