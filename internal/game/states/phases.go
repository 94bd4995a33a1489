package states

import "fmt"

// GameState represents the outcome state of a game
type GameState int

const (
	// InProgress - the board still accepts guesses and flags
	InProgress GameState = iota

	// Won - every non-mine cell has been revealed
	Won

	// Lost - a mine was revealed
	Lost
)

// String returns the string representation of a GameState
func (s GameState) String() string {
	switch s {
	case InProgress:
		return "InProgress"
	case Won:
		return "Won"
	case Lost:
		return "Lost"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// IsTerminal returns true once the game can no longer change
func (s GameState) IsTerminal() bool {
	return s == Won || s == Lost
}

// AllowedTransitions returns the valid states this state can transition to
func (s GameState) AllowedTransitions() []GameState {
	switch s {
	case InProgress:
		return []GameState{Won, Lost}
	default:
		return []GameState{}
	}
}

// CanTransitionTo checks if a transition from this state to the target state is allowed
func (s GameState) CanTransitionTo(target GameState) bool {
	for _, state := range s.AllowedTransitions() {
		if state == target {
			return true
		}
	}
	return false
}

// ParseGameState converts a string to a GameState
func ParseGameState(s string) (GameState, error) {
	switch s {
	case "InProgress":
		return InProgress, nil
	case "Won":
		return Won, nil
	case "Lost":
		return Lost, nil
	default:
		return InProgress, fmt.Errorf("unknown game state %q", s)
	}
}
