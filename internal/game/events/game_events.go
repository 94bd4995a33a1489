package events

import (
	"time"
)

// Event type constants
const (
	TypeGameStarted     = "game.started"
	TypeMinesGenerated  = "mines.generated"
	TypeGuessProcessed  = "guess.processed"
	TypeFlagToggled     = "flag.toggled"
	TypeGameEnded       = "game.ended"
	TypeStateTransition = "state.transition"
)

// AllTypes lists every event type the engine publishes
var AllTypes = []string{
	TypeGameStarted,
	TypeMinesGenerated,
	TypeGuessProcessed,
	TypeFlagToggled,
	TypeGameEnded,
	TypeStateTransition,
}

// GameStartedEvent is published when a new game is created
type GameStartedEvent struct {
	BaseEvent
	Height int
	Width  int
	Mines  int
}

// NewGameStartedEvent creates a new GameStartedEvent
func NewGameStartedEvent(gameID string, height, width, mines int) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent: newBase(TypeGameStarted, gameID),
		Height:    height,
		Width:     width,
		Mines:     mines,
	}
}

// MinesGeneratedEvent is published once, when the first guess triggers mine placement
type MinesGeneratedEvent struct {
	BaseEvent
	SafeRow int
	SafeCol int
	Mines   int
}

// NewMinesGeneratedEvent creates a new MinesGeneratedEvent
func NewMinesGeneratedEvent(gameID string, safeRow, safeCol, mines int) *MinesGeneratedEvent {
	return &MinesGeneratedEvent{
		BaseEvent: newBase(TypeMinesGenerated, gameID),
		SafeRow:   safeRow,
		SafeCol:   safeCol,
		Mines:     mines,
	}
}

// GuessProcessedEvent is published after each direct guess, including its
// flood fill or chord.
type GuessProcessedEvent struct {
	BaseEvent
	Row      int
	Col      int
	Revealed int    // cells newly revealed by this guess
	Chord    bool   // the guess targeted an already revealed cell
	Result   string // game state after the guess
}

// NewGuessProcessedEvent creates a new GuessProcessedEvent
func NewGuessProcessedEvent(gameID string, row, col, revealed int, chord bool, result string) *GuessProcessedEvent {
	return &GuessProcessedEvent{
		BaseEvent: newBase(TypeGuessProcessed, gameID),
		Row:       row,
		Col:       col,
		Revealed:  revealed,
		Chord:     chord,
		Result:    result,
	}
}

// FlagToggledEvent is published when a flag is placed or removed
type FlagToggledEvent struct {
	BaseEvent
	Row     int
	Col     int
	Flagged bool
}

// NewFlagToggledEvent creates a new FlagToggledEvent
func NewFlagToggledEvent(gameID string, row, col int, flagged bool) *FlagToggledEvent {
	return &FlagToggledEvent{
		BaseEvent: newBase(TypeFlagToggled, gameID),
		Row:       row,
		Col:       col,
		Flagged:   flagged,
	}
}

// GameEndedEvent is published when a game is won or lost
type GameEndedEvent struct {
	BaseEvent
	Result   string
	Duration time.Duration
	Moves    int
}

// NewGameEndedEvent creates a new GameEndedEvent
func NewGameEndedEvent(gameID, result string, duration time.Duration, moves int) *GameEndedEvent {
	return &GameEndedEvent{
		BaseEvent: newBase(TypeGameEnded, gameID),
		Result:    result,
		Duration:  duration,
		Moves:     moves,
	}
}

// StateTransitionEvent is published by the state machine on every transition
type StateTransitionEvent struct {
	BaseEvent
	FromState string
	ToState   string
	Reason    string
}

// NewStateTransitionEvent creates a new StateTransitionEvent
func NewStateTransitionEvent(gameID, fromState, toState, reason string) *StateTransitionEvent {
	return &StateTransitionEvent{
		BaseEvent: newBase(TypeStateTransition, gameID),
		FromState: fromState,
		ToState:   toState,
		Reason:    reason,
	}
}
