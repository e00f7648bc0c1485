// Package life implements Conway's Game of Life on a fixed-size toroidal grid.
//
// A Life owns two buffers of identical dimensions: the published generation and
// a scratch buffer that receives the next generation. Step evaluates every cell
// against the published buffer only, then swaps the two, so no cell ever sees a
// partially updated neighbourhood.
//
// A Life is not safe for concurrent use; callers that share one must guard it.
package life

import (
	"github.com/pkg/errors"

	"torus-life/pkg/core"
)

// ErrInvalidDimensions reports an initial grid that is empty in either axis or
// whose rows differ in length.
var ErrInvalidDimensions = errors.New("invalid grid dimensions")

// Life implements Conway's Game of Life with toroidal wrapping.
type Life struct {
	w, h int
	cur  []bool
	nxt  []bool
	gen  int
}

// New returns a Life seeded with a copy of cells, indexed cells[row][col].
// The grid must be non-empty and rectangular; it is never padded or truncated.
func New(cells [][]bool) (*Life, error) {
	h := len(cells)
	if h == 0 {
		return nil, errors.Wrap(ErrInvalidDimensions, "grid has no rows")
	}
	w := len(cells[0])
	if w == 0 {
		return nil, errors.Wrap(ErrInvalidDimensions, "grid has no columns")
	}
	cur := make([]bool, 0, w*h)
	for row, line := range cells {
		if len(line) != w {
			return nil, errors.Wrapf(ErrInvalidDimensions, "row %d has %d cells, want %d", row, len(line), w)
		}
		cur = append(cur, line...)
	}
	nxt := make([]bool, len(cur))
	copy(nxt, cur)
	return &Life{w: w, h: h, cur: cur, nxt: nxt}, nil
}

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.w, H: l.h} }

// Generation returns how many times Step has run.
func (l *Life) Generation() int { return l.gen }

// Neighbors counts the live cells among the eight toroidal neighbours of
// (row, col). On grids narrower than three cells in an axis, wrapped offsets
// alias: a lone live cell on a 1×1 grid counts itself eight times.
func (l *Life) Neighbors(row, col int) int {
	w, h := l.w, l.h
	n := 0
	for dy := -1; dy <= 1; dy++ {
		ny := core.Wrap(row+dy, h)
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if l.cur[ny*w+core.Wrap(col+dx, w)] {
				n++
			}
		}
	}
	return n
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	w, h := l.w, l.h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			l.nxt[idx] = Next(l.cur[idx], l.Neighbors(y, x))
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.gen++
}

// Next applies the B3/S23 rule to a single cell.
func Next(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// View returns a read-only view of the published generation. The view follows
// the engine: after Step it reports the new generation.
func (l *Life) View() View { return View{l: l} }

// View exposes the current generation without allowing mutation.
type View struct {
	l *Life
}

// Size returns the grid dimensions.
func (v View) Size() core.Size { return v.l.Size() }

// Alive reports the state of (row, col); coordinates outside the grid are dead.
func (v View) Alive(row, col int) bool {
	if row < 0 || row >= v.l.h || col < 0 || col >= v.l.w {
		return false
	}
	return v.l.cur[row*v.l.w+col]
}

// Snapshot copies the current generation into a fresh matrix that stays valid
// after further steps.
func (v View) Snapshot() [][]bool {
	w := v.l.w
	rows := make([][]bool, v.l.h)
	for y := range rows {
		rows[y] = make([]bool, w)
		copy(rows[y], v.l.cur[y*w:(y+1)*w])
	}
	return rows
}
