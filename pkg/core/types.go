package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cells is a read-only view of a grid of live/dead states addressed by
// (row, col). Reads outside the grid report dead.
type Cells interface {
	Size() Size
	Alive(row, col int) bool
}
