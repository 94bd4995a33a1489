package core

import (
	"fmt"

	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/common"
)

// Coordinate represents a position on the board. Row indexes the board
// height, Col indexes the board width.
type Coordinate struct {
	Row, Col int
}

// NewCoordinate creates a new coordinate with the given row and column
func NewCoordinate(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

// FromIndex creates a coordinate from a board array index using row-major ordering
func FromIndex(idx, width int) Coordinate {
	return Coordinate{
		Row: idx / width,
		Col: idx % width,
	}
}

// IsValid checks if the coordinate is within the given bounds
func (c Coordinate) IsValid(height, width int) bool {
	return common.IsValidCoordinate(c.Row, c.Col, height, width)
}

// ToIndex converts the coordinate to a board array index using row-major ordering
func (c Coordinate) ToIndex(width int) int {
	return c.Row*width + c.Col
}

// ChebyshevDistance returns max(|dRow|, |dCol|). Cells at distance 1 are the
// eight orthogonal and diagonal neighbors.
func (c Coordinate) ChebyshevDistance(other Coordinate) int {
	return common.ChebyshevDistance(c.Row, c.Col, other.Row, other.Col)
}

// IsNeighborOf reports whether other is one of the eight cells touching c
func (c Coordinate) IsNeighborOf(other Coordinate) bool {
	return common.IsNeighbor(c.Row, c.Col, other.Row, other.Col)
}

// Add returns a new coordinate that is the sum of this coordinate and another
func (c Coordinate) Add(other Coordinate) Coordinate {
	return Coordinate{
		Row: c.Row + other.Row,
		Col: c.Col + other.Col,
	}
}

// Equal checks if two coordinates are equal
func (c Coordinate) Equal(other Coordinate) bool {
	return c.Row == other.Row && c.Col == other.Col
}

// String returns a string representation of the coordinate
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}
