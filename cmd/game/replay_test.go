package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/game/core"
	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/ui/input"
)

func TestReadActions(t *testing.T) {
	script := "# opening\nG 4 4\n\nF 0 0\n  g 1 2  \n"

	actions, err := readActions(strings.NewReader(script))
	require.NoError(t, err)
	assert.Equal(t, []core.Action{
		core.NewGuessAction(4, 4),
		core.NewFlagAction(0, 0),
		core.NewGuessAction(1, 2),
	}, actions)
}

func TestReadActions_ReportsLine(t *testing.T) {
	_, err := readActions(strings.NewReader("G 1 1\nQ 1 1\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, input.ErrUnknownMode)
	assert.Contains(t, err.Error(), "line 2")
}
