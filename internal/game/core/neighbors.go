package core

import "iter"

// Neighbors returns the cells within Chebyshev distance 1 of (row, col) that
// lie inside [0,height) x [0,width), excluding (row, col) itself.
//
// Cells are produced in row-major order over the clipped 3x3 window. The
// sequence is lazy and restartable: every range over it starts from the top
// left corner of the window again.
func Neighbors(row, col, height, width int) iter.Seq[Coordinate] {
	minRow := max(row-1, 0)
	minCol := max(col-1, 0)
	maxRow := min(row+2, height)
	maxCol := min(col+2, width)

	return func(yield func(Coordinate) bool) {
		for r := minRow; r < maxRow; r++ {
			for c := minCol; c < maxCol; c++ {
				if r == row && c == col {
					continue
				}
				if !yield(Coordinate{Row: r, Col: c}) {
					return
				}
			}
		}
	}
}

// CountNeighbors returns how many neighbors of (row, col) satisfy pred
func CountNeighbors(row, col, height, width int, pred func(Coordinate) bool) int {
	n := 0
	for nb := range Neighbors(row, col, height, width) {
		if pred(nb) {
			n++
		}
	}
	return n
}
