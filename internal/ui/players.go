package ui

import (
	"io"
	"math/rand"

	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/game"
	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/game/core"
	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/ui/input"
)

// Player is a source of moves. Next returns io.EOF when it has nothing more
// to play.
type Player interface {
	Next() (core.Action, error)
}

var (
	_ Player = (*input.Handler)(nil)
	_ Player = (*RandomPlayer)(nil)
)

// RandomPlayer plays random legal moves
type RandomPlayer struct {
	engine *game.Game
	rng    *rand.Rand
}

// NewRandomPlayer plays random moves against engine
func NewRandomPlayer(engine *game.Game, rng *rand.Rand) *RandomPlayer {
	return &RandomPlayer{engine: engine, rng: rng}
}

func (p *RandomPlayer) Next() (core.Action, error) {
	action, ok := game.RandomAction(p.engine, p.rng)
	if !ok {
		return core.Action{}, io.EOF
	}
	return action, nil
}
