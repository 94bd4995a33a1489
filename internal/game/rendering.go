package game

import (
	"strconv"
	"strings"

	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/game/core"
)

// DebugString renders the full board, hidden contents included, for logs and
// test failures. Each cell is its contents ('*' mine, 'X' detonated mine,
// '0'-'8' count) followed by a state marker (' ' unguessed, '+' guessed,
// 'f' flagged, 'b' bad flag).
func (g *Game) DebugString() string {
	width := g.board.W
	height := g.board.H

	var sb strings.Builder
	sb.Grow((width*3 + 5) * (height + 1))

	sb.WriteString("   ")
	for col := 0; col < width; col++ {
		sb.WriteString(padLeft(strconv.Itoa(col), 3))
	}
	sb.WriteString("\n")

	for row := 0; row < height; row++ {
		sb.WriteString(padLeft(strconv.Itoa(row), 3))
		for col := 0; col < width; col++ {
			cell := g.board.Cell(row, col)
			sb.WriteByte(' ')
			sb.WriteByte(contentsGlyph(cell.Contents))
			sb.WriteByte(stateGlyph(cell.State))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func contentsGlyph(c core.Contents) byte {
	switch c.Kind {
	case core.Mine:
		return '*'
	case core.LosingMine:
		return 'X'
	default:
		return '0' + c.Count
	}
}

func stateGlyph(s core.CellState) byte {
	switch s {
	case core.Guessed:
		return '+'
	case core.Flagged:
		return 'f'
	case core.BadFlagged:
		return 'b'
	default:
		return ' '
	}
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
