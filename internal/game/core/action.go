package core

import "fmt"

// ActionType represents the type of action
type ActionType int

const (
	ActionGuess ActionType = iota
	ActionFlag
)

func (t ActionType) String() string {
	switch t {
	case ActionGuess:
		return "guess"
	case ActionFlag:
		return "flag"
	default:
		return fmt.Sprintf("ActionType(%d)", int(t))
	}
}

// Action is a single player command: reveal (or chord) a cell, or toggle its flag
type Action struct {
	Type ActionType
	Row  int
	Col  int
}

// NewGuessAction creates a guess at (row, col)
func NewGuessAction(row, col int) Action {
	return Action{Type: ActionGuess, Row: row, Col: col}
}

// NewFlagAction creates a flag toggle at (row, col)
func NewFlagAction(row, col int) Action {
	return Action{Type: ActionFlag, Row: row, Col: col}
}

// Coordinate returns the target cell of the action
func (a Action) Coordinate() Coordinate { return Coordinate{Row: a.Row, Col: a.Col} }

// Validate checks the action against the board bounds. The engine assumes
// in-bounds coordinates, so callers validate before applying.
func (a Action) Validate(height, width int) error {
	switch a.Type {
	case ActionGuess, ActionFlag:
	default:
		return ErrUnknownAction
	}
	if !a.Coordinate().IsValid(height, width) {
		return ErrInvalidCoordinates
	}
	return nil
}

func (a Action) String() string {
	return fmt.Sprintf("%s %s", a.Type, a.Coordinate())
}
