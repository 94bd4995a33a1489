package game

import (
	"fmt"
	"slices"

	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/game/core"
	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/game/events"
	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/game/mapgen"
	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/game/rules"
	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/game/states"
	"github.com/rs/zerolog"
)

// Game owns a single Minesweeper board and its progress. Mines are placed
// lazily on the first guess so that the guessed cell and its neighbors are
// always safe.
//
// A Game is not safe for concurrent use.
type Game struct {
	board      *core.Board
	mines      int
	numGuessed int
	generated  bool
	flags      int

	id         string
	generator  *mapgen.Generator
	machine    *states.StateMachine
	winChecker *rules.WinConditionChecker
	publisher  events.Publisher
	logger     zerolog.Logger

	stats    Stats
	revealed int // cells revealed by the direct guess being processed
}

// NewGame allocates a height x width board that will hold mines mines.
// No mines are placed until the first guess.
//
// The caller must keep mines below height*width minus the nine cells of the
// first guess's safety box; mine placement retries until it succeeds.
func NewGame(height, width, mines int, opts ...Option) *Game {
	gi := newGameInitializer(opts)
	return gi.initialize(core.NewBoard(height, width), mines)
}

// NewGameFromBoard wraps a board whose mines are already placed. The mine
// count is taken from the board and cells already Guessed count as revealed.
func NewGameFromBoard(board *core.Board, opts ...Option) *Game {
	gi := newGameInitializer(opts)
	g := gi.initialize(board, board.MineCount())
	g.generated = true

	for _, cell := range board.C {
		switch cell.State {
		case core.Guessed:
			if !cell.Contents.IsMine() {
				g.numGuessed++
			}
		case core.Flagged, core.BadFlagged:
			g.flags++
		}
	}
	return g
}

// Guess reveals the cell at (row, col) and returns the resulting game state.
//
// Guessing a flagged cell or guessing after the game has ended does nothing.
// Guessing an already revealed cell whose flagged neighbors match its count
// reveals every unflagged neighbor (a chord).
func (g *Game) Guess(row, col int) GameState {
	before := g.State()
	chord := g.generated && g.board.Cell(row, col).State == core.Guessed

	g.revealed = 0
	state := g.guess(row, col, true)

	if before != InProgress {
		return state
	}

	g.stats.Guesses++
	if chord {
		g.stats.Chords++
	}
	g.publish(events.NewGuessProcessedEvent(g.id, row, col, g.revealed, chord, state.String()))

	g.logger.Debug().
		Int("row", row).
		Int("col", col).
		Int("revealed", g.revealed).
		Bool("chord", chord).
		Int("safe_remaining", g.winChecker.Remaining(g.numGuessed)).
		Str("state", state.String()).
		Msg("Guess processed")

	if state.IsTerminal() {
		g.publish(events.NewGameEndedEvent(g.id, state.String(), g.elapsed(), g.stats.Moves()))
	}

	return state
}

// guess is the recursive reveal step. userDirect is false for reveals made by
// expansion, which keeps flood fill from chording through revealed cells.
func (g *Game) guess(row, col int, userDirect bool) GameState {
	if !g.generated {
		g.generate(row, col)
	}
	if g.State() != InProgress {
		return g.State()
	}

	cell := g.board.Cell(row, col)
	switch cell.State {
	case core.Unguessed:
		cell.State = core.Guessed
		if cell.Contents.IsMine() {
			g.lose(row, col)
			return Lost
		}

		g.numGuessed++
		g.revealed++
		if cell.Contents.Count == 0 {
			g.expand(row, col, false)
		}
		if g.State() == InProgress && g.winChecker.IsWon(g.numGuessed) {
			g.end(Won, "all safe cells revealed")
		}

	case core.Guessed:
		if userDirect && rules.IsFinished(g.board, row, col) {
			g.expand(row, col, true)
		}

	case core.Flagged, core.BadFlagged:
		// flags protect the cell

	default:
		core.Invariantf("cell %v has unknown state %v", core.NewCoordinate(row, col), cell.State)
	}

	return g.State()
}

// expand guesses every neighbor of (row, col). A flood fill starts from a
// zero-count cell and a chord from a cell whose flags match its count, so a
// loss here means the board is inconsistent and is fatal.
func (g *Game) expand(row, col int, chord bool) {
	targets := g.board.Neighbors(row, col)
	if chord {
		// only unguessed neighbors can change; flags stay put
		targets = slices.Values(rules.ChordTargets(g.board, row, col))
	}

	for n := range targets {
		if g.guess(n.Row, n.Col, false) == Lost {
			core.Invariantf("expand called on %v caused loss at %v", core.NewCoordinate(row, col), n)
		}
	}
}

// generate places the mines, keeping (row, col) and its neighbors clear
func (g *Game) generate(row, col int) {
	placed := g.generator.PlaceMines(g.board, row, col)
	g.generated = true

	g.logger.Debug().
		Int("safe_row", row).
		Int("safe_col", col).
		Int("mines", len(placed)).
		Msg("Mines generated")

	g.publish(events.NewMinesGeneratedEvent(g.id, row, col, len(placed)))
}

// lose marks (row, col) as the detonated mine, ends the game and reveals the
// board: hidden mines become Guessed and wrong flags become BadFlagged.
func (g *Game) lose(row, col int) {
	g.board.Cell(row, col).Contents = core.Contents{Kind: core.LosingMine}
	g.end(Lost, fmt.Sprintf("mine revealed at %v", core.NewCoordinate(row, col)))

	for i := range g.board.C {
		cell := &g.board.C[i]
		switch {
		case cell.State == core.Unguessed && cell.Contents.Kind == core.Mine:
			cell.State = core.Guessed
		case cell.State == core.Flagged && !cell.Contents.IsMine():
			cell.State = core.BadFlagged
		}
	}
}

// end moves the state machine to a terminal state. Any rejection means the
// engine tried to leave a terminal state.
func (g *Game) end(target GameState, reason string) {
	if err := g.machine.TransitionTo(target, reason); err != nil {
		core.Invariantf("game %s: %v", g.id, err)
	}
}

// ToggleFlag flips (row, col) between Unguessed and Flagged. Revealed and
// bad-flagged cells are left alone, and nothing changes once the game is over.
// Flagging never changes the game state.
func (g *Game) ToggleFlag(row, col int) {
	if g.State() != InProgress {
		return
	}

	cell := g.board.Cell(row, col)
	switch cell.State {
	case core.Unguessed:
		cell.State = core.Flagged
		g.flags++
		g.stats.FlagsPlaced++
	case core.Flagged:
		cell.State = core.Unguessed
		g.flags--
		g.stats.FlagsRemoved++
	case core.Guessed, core.BadFlagged:
		return
	default:
		core.Invariantf("cell %v has unknown state %v", core.NewCoordinate(row, col), cell.State)
	}

	g.publish(events.NewFlagToggledEvent(g.id, row, col, cell.State == core.Flagged))
}

// Apply validates a parsed action against the board and dispatches it
func (g *Game) Apply(action core.Action) (GameState, error) {
	if err := action.Validate(g.board.H, g.board.W); err != nil {
		return g.State(), core.WrapActionError(action, err)
	}

	switch action.Type {
	case core.ActionGuess:
		return g.Guess(action.Row, action.Col), nil
	case core.ActionFlag:
		g.ToggleFlag(action.Row, action.Col)
		return g.State(), nil
	default:
		return g.State(), core.WrapActionError(action, core.ErrUnknownAction)
	}
}

// State returns the current game state
func (g *Game) State() GameState {
	return g.machine.Current()
}

// Get returns the public view of (row, col). Mine positions stay hidden until
// the cell is revealed.
func (g *Game) Get(row, col int) core.View {
	return g.board.Cell(row, col).View()
}

// Height returns the number of rows
func (g *Game) Height() int { return g.board.H }

// Width returns the number of columns
func (g *Game) Width() int { return g.board.W }

// Mines returns the number of mines the board holds once generated
func (g *Game) Mines() int { return g.mines }

// NumGuessed returns how many non-mine cells have been revealed
func (g *Game) NumGuessed() int { return g.numGuessed }

// Generated reports whether mines have been placed
func (g *Game) Generated() bool { return g.generated }

// ID returns the game identifier used in logs and events
func (g *Game) ID() string { return g.id }

// MinesRemaining is the mine count minus placed flags. It goes negative when
// the player over-flags.
func (g *Game) MinesRemaining() int { return g.mines - g.flags }

// History returns the state transitions recorded so far
func (g *Game) History() []states.Transition { return g.machine.GetHistory() }

func (g *Game) publish(e events.Event) {
	if g.publisher != nil {
		g.publisher.Publish(e)
	}
}
