package game

import (
	"math/rand"

	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/game/core"
	"github.com/rs/zerolog/log"
)

// RandomAction picks a random legal move: usually a guess on a hidden cell,
// sometimes a flag toggle. It returns false when no hidden cell is left or
// the game is over. Intended for demos, soak tests and simple baseline play.
func RandomAction(g *Game, rng *rand.Rand) (core.Action, bool) {
	if g.State() != InProgress {
		return core.Action{}, false
	}

	var hidden []core.Coordinate
	for idx, cell := range g.board.C {
		if cell.State == core.Unguessed || cell.State == core.Flagged {
			row, col := g.board.RowCol(idx)
			hidden = append(hidden, core.NewCoordinate(row, col))
		}
	}
	if len(hidden) == 0 {
		return core.Action{}, false
	}

	chosen := hidden[rng.Intn(len(hidden))]
	action := core.NewGuessAction(chosen.Row, chosen.Col)
	if rng.Float32() < 0.2 || g.board.Cell(chosen.Row, chosen.Col).State == core.Flagged {
		action = core.NewFlagAction(chosen.Row, chosen.Col)
	}

	log.Debug().
		Str("game_id", g.id).
		Str("action", action.String()).
		Msg("Generated random action")

	return action, true
}
