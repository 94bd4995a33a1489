package rules

import "github.com/mitchelldurbincs/TerminalMinesweeper/internal/game/core"

// IsFinished reports whether the cell at (row, col) holds Empty(n) and has
// exactly n flagged neighbors. Re-guessing a finished revealed cell reveals
// all of its unflagged neighbors at once.
func IsFinished(b *core.Board, row, col int) bool {
	cell := b.Cell(row, col)
	if cell.Contents.Kind != core.Empty {
		return false
	}
	return b.CountFlaggedNeighbors(row, col) == int(cell.Contents.Count)
}

// ChordTargets lists the neighbors a chord on (row, col) would reveal:
// those still Unguessed. Flagged neighbors are left alone.
func ChordTargets(b *core.Board, row, col int) []core.Coordinate {
	var targets []core.Coordinate
	for n := range b.Neighbors(row, col) {
		if b.Cell(n.Row, n.Col).State == core.Unguessed {
			targets = append(targets, n)
		}
	}
	return targets
}
