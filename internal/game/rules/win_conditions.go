package rules

import "github.com/rs/zerolog"

// WinConditionChecker handles win detection for a single board
type WinConditionChecker struct {
	logger zerolog.Logger
	cells  int
	mines  int
}

// NewWinConditionChecker creates a new win condition checker
func NewWinConditionChecker(logger zerolog.Logger, height, width, mines int) *WinConditionChecker {
	return &WinConditionChecker{
		logger: logger.With().Str("component", "WinConditionChecker").Logger(),
		cells:  height * width,
		mines:  mines,
	}
}

// IsWon reports whether every non-mine cell has been revealed
func (wc *WinConditionChecker) IsWon(numGuessed int) bool {
	won := numGuessed+wc.mines == wc.cells
	wc.logger.Debug().
		Int("num_guessed", numGuessed).
		Int("safe_cells", wc.SafeCells()).
		Bool("won", won).
		Msg("Win check complete")
	return won
}

// SafeCells is the number of cells that must be revealed to win
func (wc *WinConditionChecker) SafeCells() int {
	return wc.cells - wc.mines
}

// Remaining is the number of safe cells still hidden
func (wc *WinConditionChecker) Remaining(numGuessed int) int {
	return wc.SafeCells() - numGuessed
}
