package game

import "github.com/mitchelldurbincs/TerminalMinesweeper/internal/game/states"

// GameState is the overall outcome of a game: InProgress, Won or Lost
type GameState = states.GameState

const (
	InProgress = states.InProgress
	Won        = states.Won
	Lost       = states.Lost
)
