package core

// Wrap maps v onto [0, n) so that the last index is adjacent to the first.
// n must be positive.
func Wrap(v, n int) int {
	return (v%n + n) % n
}

// WrapCoords applies toroidal wrapping to (row, col) within s.
func (s Size) WrapCoords(row, col int) (int, int) {
	return Wrap(row, s.H), Wrap(col, s.W)
}

// Index returns the row-major slice index for (row, col).
func (s Size) Index(row, col int) int { return row*s.W + col }

// Contains reports whether (row, col) lies inside the grid.
func (s Size) Contains(row, col int) bool {
	return row >= 0 && row < s.H && col >= 0 && col < s.W
}
