package ui

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/config"
	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/game"
	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/game/core"
	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/ui/input"
	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/ui/renderer"
)

// RenderOptions maps the ui.* config section onto renderer options
func RenderOptions(c *config.Config) renderer.Options {
	return renderer.Options{
		Color:      c.UI.Color,
		Unicode:    c.UI.Unicode,
		ShowLegend: c.UI.ShowLegend,
		ShowStatus: c.UI.ShowStatus,
	}
}

// TerminalGame drives one game: draw the board, read a command, apply it,
// until the game ends or input runs out.
type TerminalGame struct {
	engine        *game.Game
	boardRenderer *renderer.BoardRenderer
	player        Player
	out           io.Writer
	logger        zerolog.Logger

	echoActions bool
}

// NewTerminalGame wires an engine, a renderer and a move source to out
func NewTerminalGame(engine *game.Game, br *renderer.BoardRenderer, player Player, out io.Writer) *TerminalGame {
	return &TerminalGame{
		engine:        engine,
		boardRenderer: br,
		player:        player,
		out:           out,
		logger: log.Logger.With().
			Str("component", "TerminalGame").
			Str("game_id", engine.ID()).
			Logger(),
	}
}

// SetEchoActions prints every action before it is applied. Useful when moves
// do not come from a person typing them.
func (g *TerminalGame) SetEchoActions(echo bool) {
	g.echoActions = echo
}

// Run plays until the game is won or lost and returns the final state. If the
// player runs out of input first, Run returns the current state and io.EOF.
func (g *TerminalGame) Run() (game.GameState, error) {
	for g.engine.State() == game.InProgress {
		g.Draw()
		fmt.Fprintln(g.out, "What do you want to do? Input: ")
		fmt.Fprintln(g.out, input.Prompt)

		action, err := g.player.Next()
		switch {
		case errors.Is(err, io.EOF):
			return g.engine.State(), io.EOF
		case isInputError(err):
			fmt.Fprintln(g.out, err)
			continue
		case err != nil:
			return g.engine.State(), fmt.Errorf("reading command: %w", err)
		}

		if g.echoActions {
			fmt.Fprintf(g.out, "> %s\n", action)
		}

		if _, err := g.engine.Apply(action); err != nil {
			fmt.Fprintln(g.out, err)
			g.logger.Warn().Err(err).Str("action", action.String()).Msg("Action rejected")
		}
	}

	g.Draw()
	state := g.engine.State()
	switch state {
	case game.Won:
		fmt.Fprintln(g.out, "You win!")
	case game.Lost:
		fmt.Fprintln(g.out, "You lose :(")
	default:
		core.Invariantf("game %s went back to %s after finishing", g.engine.ID(), state)
	}

	g.logger.Info().
		Str("result", state.String()).
		Object("stats", g.engine.Stats()).
		Msg("Game finished")
	g.logger.Debug().Msg("Final board:\n" + g.engine.DebugString())

	return state, nil
}

// Draw writes the current board to the output
func (g *TerminalGame) Draw() {
	fmt.Fprint(g.out, g.boardRenderer.Render(g.engine))
}

func isInputError(err error) bool {
	return errors.Is(err, input.ErrWrongTokenCount) ||
		errors.Is(err, input.ErrUnknownMode) ||
		errors.Is(err, input.ErrInvalidNumber) ||
		errors.Is(err, core.ErrInvalidCoordinates) ||
		errors.Is(err, core.ErrUnknownAction)
}
