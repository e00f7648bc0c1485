package app

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"torus-life/pkg/life"
	"torus-life/pkg/pattern"
)

// ErrInvalidConfig reports a configuration value outside its allowed range.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the command-line parameters shared by the viewers.
type Config struct {
	Pattern     string  `json:"pattern"`
	PatternFile string  `json:"pattern_file"`
	Pad         int     `json:"pad"`
	Seed        int64   `json:"seed"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Density     float64 `json:"density"`
	WindowSize  int     `json:"window_size"`
	TPS         int     `json:"tps"`
	Rate        int     `json:"rate"`
	Generations int     `json:"generations"`

	ConfigFile string `json:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	soup := pattern.DefaultSoupConfig()
	return &Config{
		Pattern:     "spaceship",
		Pad:         6,
		Seed:        soup.Seed,
		Width:       soup.Width,
		Height:      soup.Height,
		Density:     soup.Density,
		WindowSize:  800,
		TPS:         60,
		Rate:        8,
		Generations: 10,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "built-in seed pattern")
	fs.StringVar(&c.PatternFile, "pattern-file", c.PatternFile, "plaintext .cells file to seed from (overrides -pattern)")
	fs.IntVar(&c.Pad, "pad", c.Pad, "dead cells added around the pattern")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the soup pattern")
	fs.IntVar(&c.Width, "width", c.Width, "soup width")
	fs.IntVar(&c.Height, "height", c.Height, "soup height")
	fs.Float64Var(&c.Density, "density", c.Density, "soup live-cell density")
	fs.IntVar(&c.WindowSize, "window", c.WindowSize, "window edge in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.Rate, "rate", c.Rate, "auto-play generations per second")
	fs.IntVar(&c.Generations, "generations", c.Generations, "generations to print")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "JSON file layered between defaults and flags")
}

// LoadFile overlays the JSON file at path onto c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to read file: %s", path)
	}
	if err = json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to unmarshal data from file: %s", path)
	}
	return nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch {
	case c.Pad < 0:
		return errors.Wrapf(ErrInvalidConfig, "pad %d is negative", c.Pad)
	case c.Density < 0 || c.Density > 1:
		return errors.Wrapf(ErrInvalidConfig, "density %v outside [0, 1]", c.Density)
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "soup size %dx%d", c.Width, c.Height)
	case c.Rate <= 0 || c.TPS <= 0:
		return errors.Wrapf(ErrInvalidConfig, "rate %d, tps %d must be positive", c.Rate, c.TPS)
	case c.Generations < 0:
		return errors.Wrapf(ErrInvalidConfig, "generations %d is negative", c.Generations)
	case c.WindowSize <= 0:
		return errors.Wrapf(ErrInvalidConfig, "window %d must be positive", c.WindowSize)
	}
	return nil
}

// Parse binds a fresh Config to fs and reads args. A -config file is applied
// over the defaults and the command line is then re-applied on top of it.
func Parse(fs *flag.FlagSet, args []string) (*Config, error) {
	c := NewConfig()
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(err, "parse flags")
	}
	if c.ConfigFile != "" {
		if err := c.LoadFile(c.ConfigFile); err != nil {
			return nil, err
		}
		if err := fs.Parse(args); err != nil {
			return nil, errors.Wrap(err, "parse flags")
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// PatternArgs exposes the soup settings in the key/value form pattern
// factories accept.
func (c *Config) PatternArgs() map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"density": strconv.FormatFloat(c.Density, 'f', -1, 64),
		"seed":    strconv.FormatInt(c.Seed, 10),
	}
}

// SeedGrid builds the padded initial grid the config describes.
func (c *Config) SeedGrid() ([][]bool, error) {
	var (
		rows [][]bool
		err  error
	)
	if c.PatternFile != "" {
		rows, err = pattern.Load(c.PatternFile)
	} else {
		var f pattern.Factory
		if f, err = pattern.Lookup(c.Pattern); err == nil {
			rows, err = f(c.PatternArgs())
		}
	}
	if err != nil {
		return nil, err
	}
	return pattern.Embed(rows, c.Pad), nil
}

// NewEngine seeds a Life from the config.
func (c *Config) NewEngine() (*life.Life, error) {
	rows, err := c.SeedGrid()
	if err != nil {
		return nil, err
	}
	return life.New(rows)
}
