package core

import (
	"fmt"
	"iter"
)

// Board is a fixed-size grid of cells, stored row-major. Dimensions never
// change after NewBoard.
type Board struct {
	H, W int
	C    []Cell // length = H*W
}

// NewBoard allocates a board with every cell Unguessed and Empty(0)
func NewBoard(height, width int) *Board {
	return &Board{H: height, W: width, C: make([]Cell, height*width)}
}

func (b *Board) Idx(row, col int) int      { return row*b.W + col }
func (b *Board) RowCol(idx int) (int, int) { return idx / b.W, idx % b.W }

// InBounds checks if coordinates are within board boundaries
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.H && col >= 0 && col < b.W
}

// Cell returns a pointer to the cell at (row, col). Out of bounds coordinates
// are a caller bug and panic.
func (b *Board) Cell(row, col int) *Cell {
	if !b.InBounds(row, col) {
		panic(fmt.Errorf("%w: (%d,%d) on %dx%d board", ErrInvalidCoordinates, row, col, b.H, b.W))
	}
	return &b.C[b.Idx(row, col)]
}

// Neighbors iterates the in-bounds neighbors of (row, col)
func (b *Board) Neighbors(row, col int) iter.Seq[Coordinate] {
	return Neighbors(row, col, b.H, b.W)
}

// Size returns the number of cells on the board
func (b *Board) Size() int { return b.H * b.W }

// MineCount counts the cells whose contents are a mine
func (b *Board) MineCount() int {
	n := 0
	for i := range b.C {
		if b.C[i].Contents.IsMine() {
			n++
		}
	}
	return n
}

// CountFlaggedNeighbors returns how many neighbors of (row, col) are Flagged
func (b *Board) CountFlaggedNeighbors(row, col int) int {
	return CountNeighbors(row, col, b.H, b.W, func(c Coordinate) bool {
		return b.Cell(c.Row, c.Col).State == Flagged
	})
}

// PlaceMine turns (row, col) into a mine and increments the count of every
// non-mine neighbor. It reports false if the cell already holds a mine.
func (b *Board) PlaceMine(row, col int) bool {
	cell := b.Cell(row, col)
	if cell.Contents.IsMine() {
		return false
	}
	cell.Contents = MineContents()
	for nb := range b.Neighbors(row, col) {
		n := b.Cell(nb.Row, nb.Col)
		if n.Contents.Kind == Empty {
			n.Contents.Count++
		}
	}
	return true
}
