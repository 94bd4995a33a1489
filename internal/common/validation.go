package common

// IsValidCoordinate checks if (row, col) lies inside a height x width board
func IsValidCoordinate(row, col, height, width int) bool {
	return row >= 0 && row < height && col >= 0 && col < width
}

// IsNeighbor checks if two distinct cells touch, orthogonally or diagonally
func IsNeighbor(r1, c1, r2, c2 int) bool {
	return ChebyshevDistance(r1, c1, r2, c2) == 1
}
