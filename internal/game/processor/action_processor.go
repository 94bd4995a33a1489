package processor

import (
	"context"

	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/game/core"
	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/game/states"
	"github.com/rs/zerolog"
)

// Applier is the part of a game the processor drives
type Applier interface {
	Apply(action core.Action) (states.GameState, error)
	State() states.GameState
}

// Result summarizes a batch of processed actions
type Result struct {
	Applied  int // actions accepted by the game
	Rejected int // actions that failed validation
	Skipped  int // actions left over once the game ended
	Final    states.GameState
}

// ActionProcessor replays a list of actions against a game in order
type ActionProcessor struct {
	logger zerolog.Logger
}

// NewActionProcessor creates a new action processor
func NewActionProcessor(logger zerolog.Logger) *ActionProcessor {
	return &ActionProcessor{
		logger: logger.With().Str("component", "ActionProcessor").Logger(),
	}
}

// ProcessActions applies actions until they run out or the game ends.
// Rejected actions are logged and skipped; the first rejection is returned
// alongside the result once processing finishes.
func (ap *ActionProcessor) ProcessActions(ctx context.Context, game Applier, actions []core.Action) (Result, error) {
	var encounteredError error
	var result Result

	for i, action := range actions {
		// Check context before processing each action
		select {
		case <-ctx.Done():
			ap.logger.Warn().Err(ctx.Err()).Int("processed", i).Msg("Action processing interrupted by context cancellation")
			result.Final = game.State()
			return result, ctx.Err()
		default:
		}

		if game.State().IsTerminal() {
			result.Skipped = len(actions) - i
			ap.logger.Debug().
				Int("skipped", result.Skipped).
				Str("state", game.State().String()).
				Msg("Game over, ignoring remaining actions")
			break
		}

		ap.logger.Debug().Str("action", action.String()).Msg("Applying action")
		if _, err := game.Apply(action); err != nil {
			result.Rejected++
			ap.logger.Warn().Err(err).Int("index", i).Msg("Failed to apply action")
			if encounteredError == nil {
				encounteredError = err
			}
			continue
		}
		result.Applied++
	}

	result.Final = game.State()
	return result, encounteredError
}
