package testutil

import (
	"fmt"

	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/game/core"
)

// Layout glyphs understood by BoardFromLayout
const (
	GlyphSafe         = '.' // unguessed, no mine
	GlyphMine         = '*' // unguessed mine
	GlyphFlaggedSafe  = 'f' // flagged cell without a mine
	GlyphFlaggedMine  = 'F' // flagged mine
	GlyphRevealedSafe = 'o' // already guessed, no mine
)

// BoardFromLayout builds a board from rows of layout glyphs. Neighbor counts
// are accumulated exactly as mine generation does. Rows must share a length.
func BoardFromLayout(rows ...string) (*core.Board, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("layout has no rows")
	}

	height, width := len(rows), len(rows[0])
	board := core.NewBoard(height, width)

	for r, line := range rows {
		if len(line) != width {
			return nil, fmt.Errorf("row %d has width %d, want %d", r, len(line), width)
		}
		for c, glyph := range line {
			switch glyph {
			case GlyphMine, GlyphFlaggedMine:
				board.PlaceMine(r, c)
			case GlyphSafe, GlyphFlaggedSafe, GlyphRevealedSafe:
			default:
				return nil, fmt.Errorf("unknown glyph %q at (%d,%d)", glyph, r, c)
			}
		}
	}

	for r, line := range rows {
		for c, glyph := range line {
			switch glyph {
			case GlyphFlaggedSafe, GlyphFlaggedMine:
				board.Cell(r, c).State = core.Flagged
			case GlyphRevealedSafe:
				board.Cell(r, c).State = core.Guessed
			}
		}
	}

	return board, nil
}

// MustBoardFromLayout is BoardFromLayout for test tables; it panics on a bad layout
func MustBoardFromLayout(rows ...string) *core.Board {
	board, err := BoardFromLayout(rows...)
	if err != nil {
		panic(err)
	}
	return board
}

// CountState returns how many cells of b are in the given state
func CountState(b *core.Board, state core.CellState) int {
	n := 0
	for _, cell := range b.C {
		if cell.State == state {
			n++
		}
	}
	return n
}
