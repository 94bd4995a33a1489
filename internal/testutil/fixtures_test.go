package testutil

import (
	"testing"

	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/game/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardFromLayout(t *testing.T) {
	board, err := BoardFromLayout(
		"*..",
		".o.",
		"f.F",
	)
	require.NoError(t, err)

	assert.Equal(t, 3, board.H)
	assert.Equal(t, 3, board.W)
	assert.Equal(t, 2, board.MineCount())

	assert.Equal(t, core.MineContents(), board.Cell(0, 0).Contents)
	assert.Equal(t, core.EmptyWith(2), board.Cell(1, 1).Contents)
	assert.Equal(t, core.EmptyWith(1), board.Cell(0, 1).Contents)
	assert.Equal(t, core.EmptyWith(1), board.Cell(2, 1).Contents)
	assert.Equal(t, core.EmptyWith(0), board.Cell(0, 2).Contents)

	assert.Equal(t, core.Guessed, board.Cell(1, 1).State)
	assert.Equal(t, core.Flagged, board.Cell(2, 0).State)
	assert.Equal(t, core.Flagged, board.Cell(2, 2).State)
	assert.True(t, board.Cell(2, 2).Contents.IsMine())
	assert.Equal(t, 2, CountState(board, core.Flagged))
	assert.Equal(t, 6, CountState(board, core.Unguessed))
}

func TestBoardFromLayout_Errors(t *testing.T) {
	_, err := BoardFromLayout()
	assert.ErrorContains(t, err, "no rows")

	_, err = BoardFromLayout("..", "...")
	assert.ErrorContains(t, err, "row 1 has width 3")

	_, err = BoardFromLayout(".?")
	assert.ErrorContains(t, err, "unknown glyph")

	assert.Panics(t, func() { MustBoardFromLayout("x") })
}

func TestHelpers(t *testing.T) {
	a, b := NewTestRNG(7), NewTestRNG(7)
	assert.Equal(t, a.Int63(), b.Int63())

	logger, buf := BufferLogger(0)
	logger.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")

	AssertPanic(t, func() { panic("boom") })
}
