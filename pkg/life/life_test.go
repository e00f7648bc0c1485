package life

import (
	"fmt"
	"slices"
	"testing"

	"github.com/pkg/errors"
)

func blank(w, h int) [][]bool {
	rows := make([][]bool, h)
	for y := range rows {
		rows[y] = make([]bool, w)
	}
	return rows
}

func withCells(w, h int, live ...[2]int) [][]bool {
	rows := blank(w, h)
	for _, rc := range live {
		rows[rc[0]][rc[1]] = true
	}
	return rows
}

func mustNew(t *testing.T, cells [][]bool) *Life {
	t.Helper()
	l, err := New(cells)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return l
}

func equalGrids(a, b [][]bool) bool {
	return slices.EqualFunc(a, b, func(x, y []bool) bool { return slices.Equal(x, y) })
}

func render(g [][]bool) string {
	out := ""
	for _, row := range g {
		for _, c := range row {
			if c {
				out += "O"
			} else {
				out += "."
			}
		}
		out += "\n"
	}
	return out
}

func TestNewRejectsInvalidDimensions(t *testing.T) {
	cases := map[string][][]bool{
		"nil":         nil,
		"no rows":     {},
		"zero width":  {{}, {}},
		"ragged":      {{true, false, true}, {true, false}},
		"ragged late": {{false, false}, {false, false}, {false}},
	}
	for name, cells := range cases {
		t.Run(name, func(t *testing.T) {
			l, err := New(cells)
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Fatalf("expected ErrInvalidDimensions, got %v", err)
			}
			if l != nil {
				t.Fatal("expected no engine on failure")
			}
		})
	}
}

func TestNewCopiesInput(t *testing.T) {
	cells := withCells(4, 4, [2]int{1, 1})
	l := mustNew(t, cells)

	cells[1][1] = false
	cells[2][2] = true

	v := l.View()
	if !v.Alive(1, 1) || v.Alive(2, 2) {
		t.Fatal("engine must not alias the caller's matrix")
	}
	if got := l.Size(); got.W != 4 || got.H != 4 {
		t.Fatalf("size = %+v, want 4x4", got)
	}
}

func TestNonSquareDimensions(t *testing.T) {
	l := mustNew(t, blank(7, 3))
	if got := l.Size(); got.W != 7 || got.H != 3 {
		t.Fatalf("size = %+v, want W=7 H=3", got)
	}
	snap := l.View().Snapshot()
	if len(snap) != 3 || len(snap[0]) != 7 {
		t.Fatalf("snapshot is %dx%d, want 3 rows of 7", len(snap), len(snap[0]))
	}
}

func TestLoneCornerCellDiesAndWrappedNeighborsStayDead(t *testing.T) {
	for _, n := range []int{3, 4, 7} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			l := mustNew(t, withCells(n, n, [2]int{0, 0}))

			wrapped := [][2]int{
				{n - 1, n - 1}, {n - 1, 0}, {n - 1, 1},
				{0, n - 1}, {0, 1},
				{1, n - 1}, {1, 0}, {1, 1},
			}
			for _, rc := range wrapped {
				if got := l.Neighbors(rc[0], rc[1]); got != 1 {
					t.Fatalf("neighbors(%d,%d) = %d, want 1", rc[0], rc[1], got)
				}
			}

			l.Step()
			v := l.View()
			if v.Alive(0, 0) {
				t.Fatal("isolated cell must die")
			}
			for _, rc := range wrapped {
				if v.Alive(rc[0], rc[1]) {
					t.Fatalf("neighbor (%d,%d) must stay dead", rc[0], rc[1])
				}
			}
		})
	}
}

func TestNeighborsWrapAcrossEdges(t *testing.T) {
	// Three cells on the far edges all touch (0,0) through the wrap.
	l := mustNew(t, withCells(5, 5, [2]int{4, 4}, [2]int{0, 4}, [2]int{4, 0}))
	if got := l.Neighbors(0, 0); got != 3 {
		t.Fatalf("neighbors(0,0) = %d, want 3", got)
	}
	l.Step()
	if !l.View().Alive(0, 0) {
		t.Fatal("dead cell with three wrapped neighbours must be born")
	}
}

func TestBlockIsStillLife(t *testing.T) {
	for _, size := range [][2]int{{4, 4}, {6, 5}, {10, 10}} {
		w, h := size[0], size[1]
		initial := withCells(w, h, [2]int{1, 1}, [2]int{1, 2}, [2]int{2, 1}, [2]int{2, 2})
		l := mustNew(t, initial)
		for i := 0; i < 25; i++ {
			l.Step()
			if got := l.View().Snapshot(); !equalGrids(got, initial) {
				t.Fatalf("%dx%d block changed after %d steps:\n%s", w, h, i+1, render(got))
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	vertical := withCells(5, 5, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	horizontal := withCells(5, 5, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})

	l := mustNew(t, vertical)
	l.Step()
	if got := l.View().Snapshot(); !equalGrids(got, horizontal) {
		t.Fatalf("after one step expected horizontal blinker, got:\n%s", render(got))
	}
	if equalGrids(l.View().Snapshot(), vertical) {
		t.Fatal("blinker must differ from its seed after one step")
	}

	l.Step()
	if got := l.View().Snapshot(); !equalGrids(got, vertical) {
		t.Fatalf("after second step expected vertical blinker, got:\n%s", render(got))
	}
	if l.Generation() != 2 {
		t.Fatalf("generation = %d, want 2", l.Generation())
	}
}

func TestGliderTranslatesAcrossTorus(t *testing.T) {
	// A glider moves one cell diagonally every four generations; on an 8x8
	// torus it returns home after 32.
	glider := withCells(8, 8, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}, [2]int{2, 1}, [2]int{2, 2})
	l := mustNew(t, glider)

	for i := 0; i < 4; i++ {
		l.Step()
	}
	shifted := withCells(8, 8, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 1}, [2]int{3, 2}, [2]int{3, 3})
	if got := l.View().Snapshot(); !equalGrids(got, shifted) {
		t.Fatalf("glider after 4 steps:\n%s", render(got))
	}

	for i := 4; i < 32; i++ {
		l.Step()
	}
	if got := l.View().Snapshot(); !equalGrids(got, glider) {
		t.Fatalf("glider did not wrap home after 32 steps:\n%s", render(got))
	}
}

// referenceStep evaluates the next generation column-major, last cell first,
// reading only from the untouched input.
func referenceStep(g [][]bool) [][]bool {
	h, w := len(g), len(g[0])
	out := blank(w, h)
	for x := w - 1; x >= 0; x-- {
		for y := h - 1; y >= 0; y-- {
			n := 0
			for _, d := range [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}} {
				if g[((y+d[0])%h+h)%h][((x+d[1])%w+w)%w] {
					n++
				}
			}
			out[y][x] = (g[y][x] && (n == 2 || n == 3)) || (!g[y][x] && n == 3)
		}
	}
	return out
}

func TestStepIsSynchronous(t *testing.T) {
	seeds := [][][]bool{
		// A dense pattern where an in-place update would feed births and
		// deaths into later neighbour counts.
		{
			{true, true, false, true, true, false},
			{true, false, true, true, false, true},
			{false, true, true, false, true, true},
			{true, true, false, true, false, false},
			{false, false, true, true, true, false},
		},
		withCells(6, 6, [2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}, [2]int{5, 5}, [2]int{3, 3}, [2]int{3, 4}),
	}
	for i, seed := range seeds {
		a := mustNew(t, seed)
		b := mustNew(t, seed)
		want := seed
		for gen := 1; gen <= 6; gen++ {
			want = referenceStep(want)
			a.Step()
			b.Step()
			gotA := a.View().Snapshot()
			if !equalGrids(gotA, want) {
				t.Fatalf("seed %d gen %d mismatch\n got:\n%s want:\n%s", i, gen, render(gotA), render(want))
			}
			if !equalGrids(gotA, b.View().Snapshot()) {
				t.Fatalf("seed %d gen %d: engines built from the same grid diverged", i, gen)
			}
		}
	}
}

func TestReadsAreIdempotent(t *testing.T) {
	l := mustNew(t, withCells(5, 5, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3}))
	v := l.View()
	first := v.Snapshot()
	for i := 0; i < 5; i++ {
		if got := v.Snapshot(); !equalGrids(got, first) {
			t.Fatal("repeated reads must return the same grid")
		}
		if !v.Alive(2, 2) || v.Alive(0, 0) {
			t.Fatal("Alive changed between reads")
		}
	}
	if l.Generation() != 0 {
		t.Fatal("reads must not advance the engine")
	}
}

func TestSnapshotSurvivesStep(t *testing.T) {
	l := mustNew(t, withCells(5, 5, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2}))
	snap := l.View().Snapshot()
	snap[0][0] = true
	if l.View().Alive(0, 0) {
		t.Fatal("mutating a snapshot must not reach the engine")
	}
	snap[0][0] = false

	l.Step()
	if !snap[1][2] || snap[2][1] {
		t.Fatal("snapshot must keep the generation it was taken from")
	}
}

func TestViewTracksPublishedGeneration(t *testing.T) {
	l := mustNew(t, withCells(5, 5, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2}))
	v := l.View()
	l.Step()
	if !v.Alive(2, 1) || v.Alive(1, 2) {
		t.Fatal("a view taken before Step must report the new generation after it")
	}
}

func TestViewOutOfRangeIsDead(t *testing.T) {
	l := mustNew(t, [][]bool{{true}})
	v := l.View()
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}} {
		if v.Alive(rc[0], rc[1]) {
			t.Fatalf("Alive(%d,%d) must be false outside the grid", rc[0], rc[1])
		}
	}
}

func TestDegenerateDimensions(t *testing.T) {
	cases := []struct {
		name      string
		cells     [][]bool
		row, col  int
		neighbors int
		next      bool
	}{
		// Every offset wraps onto the cell itself.
		{name: "1x1 alive", cells: [][]bool{{true}}, neighbors: 8, next: false},
		{name: "1x1 dead", cells: [][]bool{{false}}, neighbors: 0, next: false},
		// Above and below alias to the cell itself.
		{name: "1x3 lone", cells: [][]bool{{false, true, false}}, col: 1, neighbors: 2, next: true},
		{name: "1x3 side", cells: [][]bool{{false, true, false}}, col: 0, neighbors: 3, next: true},
		// Left and right alias to the cell itself.
		{name: "3x1 lone", cells: [][]bool{{false}, {true}, {false}}, row: 1, neighbors: 2, next: true},
		// Each diagonal and orthogonal offset hits one of the other three cells twice or four times.
		{name: "2x2 full", cells: [][]bool{{true, true}, {true, true}}, neighbors: 8, next: false},
		{name: "2x2 single", cells: [][]bool{{true, false}, {false, false}}, row: 1, col: 1, neighbors: 4, next: false},
		{name: "2x2 diagonal", cells: [][]bool{{false, true}, {false, false}}, row: 1, col: 0, neighbors: 4, next: false},
		{name: "2x2 edge", cells: [][]bool{{true, false}, {false, false}}, row: 0, col: 1, neighbors: 2, next: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := mustNew(t, tc.cells)
			if got := l.Neighbors(tc.row, tc.col); got != tc.neighbors {
				t.Fatalf("neighbors(%d,%d) = %d, want %d", tc.row, tc.col, got, tc.neighbors)
			}
			l.Step()
			if got := l.View().Alive(tc.row, tc.col); got != tc.next {
				t.Fatalf("after step (%d,%d) alive=%v, want %v", tc.row, tc.col, got, tc.next)
			}
		})
	}
}

func TestNextRule(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantAlive := n == 2 || n == 3
		if got := Next(true, n); got != wantAlive {
			t.Fatalf("Next(alive, %d) = %v, want %v", n, got, wantAlive)
		}
		if got := Next(false, n); got != (n == 3) {
			t.Fatalf("Next(dead, %d) = %v, want %v", n, got, n == 3)
		}
	}
}
