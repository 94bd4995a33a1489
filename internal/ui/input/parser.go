package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/game/core"
)

var (
	ErrWrongTokenCount = errors.New("expected 3 tokens: F|G row col")
	ErrUnknownMode     = errors.New("expected F or G")
	ErrInvalidNumber   = errors.New("invalid number")
)

// Prompt is shown before every command
const Prompt = "F|G row col (e.g. F 0 2 to flag (0, 2))"

// ParseAction turns "F 0 2" or "G 3 4" into an action. Modes are case
// insensitive. Coordinates are not bounds checked here.
func ParseAction(line string) (core.Action, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return core.Action{}, fmt.Errorf("%w (got %d)", ErrWrongTokenCount, len(fields))
	}

	var actionType core.ActionType
	switch strings.ToUpper(fields[0]) {
	case "F":
		actionType = core.ActionFlag
	case "G":
		actionType = core.ActionGuess
	default:
		return core.Action{}, fmt.Errorf("%w (you typed '%s')", ErrUnknownMode, fields[0])
	}

	row, err := parseNumber(fields[1])
	if err != nil {
		return core.Action{}, err
	}
	col, err := parseNumber(fields[2])
	if err != nil {
		return core.Action{}, err
	}

	return core.Action{Type: actionType, Row: row, Col: col}, nil
}

func parseNumber(token string) (int, error) {
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w (you typed '%s')", ErrInvalidNumber, token)
	}
	return n, nil
}
