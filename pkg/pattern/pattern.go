// Package pattern turns textual Life patterns into rectangular boolean
// matrices that can seed an engine.
//
// The text format is plaintext ".cells": one row per line, '.' for dead,
// 'O' for alive, and lines starting with '!' are comments.
package pattern

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrMalformedPattern reports pattern text that cannot form a rectangular grid.
	ErrMalformedPattern = errors.New("malformed pattern")
	// ErrUnknownPattern reports a lookup for a name that was never registered.
	ErrUnknownPattern = errors.New("unknown pattern")
)

// Alphabet names the symbols used for dead and live cells.
type Alphabet struct {
	Dead  rune
	Alive rune
}

// Plaintext is the alphabet of the .cells format.
var Plaintext = Alphabet{Dead: '.', Alive: 'O'}

// Parse reads rows separated by whitespace. Every row must have the same width
// and use only the alphabet's two symbols.
func Parse(text string, a Alphabet) ([][]bool, error) {
	var rows [][]bool
	for lineNo, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "!") {
			continue
		}
		for _, token := range strings.Fields(trimmed) {
			row, err := parseRow(token, a)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNo+1)
			}
			if len(rows) > 0 && len(row) != len(rows[0]) {
				return nil, errors.Wrapf(ErrMalformedPattern, "line %d: row has %d cells, want %d", lineNo+1, len(row), len(rows[0]))
			}
			rows = append(rows, row)
		}
	}
	if len(rows) == 0 {
		return nil, errors.Wrap(ErrMalformedPattern, "no rows")
	}
	return rows, nil
}

func parseRow(token string, a Alphabet) ([]bool, error) {
	row := make([]bool, 0, len(token))
	for col, r := range []rune(token) {
		switch r {
		case a.Dead:
			row = append(row, false)
		case a.Alive:
			row = append(row, true)
		default:
			return nil, errors.Wrapf(ErrMalformedPattern, "column %d: unexpected symbol %q", col+1, r)
		}
	}
	return row, nil
}

// MustParse parses a built-in plaintext pattern and panics on malformed input.
func MustParse(text string) [][]bool {
	rows, err := Parse(text, Plaintext)
	if err != nil {
		panic(err)
	}
	return rows
}

// Load reads and parses a .cells file.
func Load(path string) ([][]bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read pattern %s", path)
	}
	rows, err := Parse(string(data), Plaintext)
	if err != nil {
		return nil, errors.Wrapf(err, "parse pattern %s", path)
	}
	return rows, nil
}

// Embed centres p in a dead world pad cells wider and taller than p.
func Embed(p [][]bool, pad int) [][]bool {
	if pad < 0 {
		pad = 0
	}
	h := len(p) + pad
	w := pad
	if len(p) > 0 {
		w += len(p[0])
	}
	off := pad / 2
	world := make([][]bool, h)
	for y := range world {
		world[y] = make([]bool, w)
	}
	for y, row := range p {
		copy(world[y+off][off:], row)
	}
	return world
}

// Format renders p back into plaintext rows.
func Format(p [][]bool, a Alphabet) string {
	var b strings.Builder
	for _, row := range p {
		for _, alive := range row {
			if alive {
				b.WriteRune(a.Alive)
			} else {
				b.WriteRune(a.Dead)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
