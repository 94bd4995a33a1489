package input

import (
	"bufio"
	"io"
	"strings"

	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/game/core"
)

// Handler reads player commands one line at a time and checks them against
// the board bounds.
type Handler struct {
	scanner *bufio.Scanner
	height  int
	width   int

	lastLine string
}

// NewHandler reads commands from r for a height x width board
func NewHandler(r io.Reader, height, width int) *Handler {
	return &Handler{
		scanner: bufio.NewScanner(r),
		height:  height,
		width:   width,
	}
}

// Next returns the next valid action. Blank lines are skipped. A malformed or
// out-of-bounds line returns an error and the caller may call Next again.
// io.EOF is returned once input is exhausted.
func (h *Handler) Next() (core.Action, error) {
	for h.scanner.Scan() {
		h.lastLine = h.scanner.Text()
		if strings.TrimSpace(h.lastLine) == "" {
			continue
		}

		action, err := ParseAction(h.lastLine)
		if err != nil {
			return core.Action{}, err
		}
		if err := action.Validate(h.height, h.width); err != nil {
			return core.Action{}, core.WrapActionError(action, err)
		}
		return action, nil
	}

	if err := h.scanner.Err(); err != nil {
		return core.Action{}, err
	}
	return core.Action{}, io.EOF
}

// LastLine returns the raw text of the most recently read line
func (h *Handler) LastLine() string {
	return h.lastLine
}
