package core

import "fmt"

// ContentKind is the hidden content of a cell.
type ContentKind uint8

const (
	// Empty cells carry the number of mines among their neighbors.
	Empty ContentKind = iota
	Mine
	// LosingMine is the mine the player detonated. At most one per game.
	LosingMine
)

func (k ContentKind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Mine:
		return "Mine"
	case LosingMine:
		return "LosingMine"
	default:
		return fmt.Sprintf("ContentKind(%d)", uint8(k))
	}
}

// Contents is what a cell hides. Count is meaningful only for Empty and is
// fixed once mines have been generated.
type Contents struct {
	Kind  ContentKind
	Count uint8
}

// EmptyWith returns Empty(n) contents
func EmptyWith(n uint8) Contents { return Contents{Kind: Empty, Count: n} }

// MineContents returns Mine contents
func MineContents() Contents { return Contents{Kind: Mine} }

func (c Contents) IsMine() bool { return c.Kind == Mine || c.Kind == LosingMine }

func (c Contents) String() string {
	if c.Kind == Empty {
		return fmt.Sprintf("Empty(%d)", c.Count)
	}
	return c.Kind.String()
}

// CellState is the player-visible reveal state of a cell.
type CellState uint8

const (
	Unguessed CellState = iota
	Flagged
	// BadFlagged marks a flag on a non-mine cell, set when the game is lost.
	BadFlagged
	Guessed
)

func (s CellState) String() string {
	switch s {
	case Unguessed:
		return "Unguessed"
	case Flagged:
		return "Flagged"
	case BadFlagged:
		return "BadFlagged"
	case Guessed:
		return "Guessed"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(s))
	}
}

// Cell is one grid position. The zero value is an Unguessed Empty(0) cell.
type Cell struct {
	Contents Contents
	State    CellState
}

// ViewKind is the public projection of a cell.
type ViewKind uint8

const (
	ViewUnguessed ViewKind = iota
	ViewFlagged
	ViewBadFlagged
	ViewMine
	ViewEmpty
)

func (k ViewKind) String() string {
	switch k {
	case ViewUnguessed:
		return "Unguessed"
	case ViewFlagged:
		return "Flagged"
	case ViewBadFlagged:
		return "BadFlagged"
	case ViewMine:
		return "Mine"
	case ViewEmpty:
		return "Empty"
	default:
		return fmt.Sprintf("ViewKind(%d)", uint8(k))
	}
}

// View is what a renderer is allowed to see of a cell. Count is only set for
// ViewEmpty.
type View struct {
	Kind  ViewKind
	Count uint8
}

func (v View) String() string {
	if v.Kind == ViewEmpty {
		return fmt.Sprintf("Empty(%d)", v.Count)
	}
	return v.Kind.String()
}

// View projects the cell. Contents are only exposed once the cell is Guessed.
func (c Cell) View() View {
	switch c.State {
	case Unguessed:
		return View{Kind: ViewUnguessed}
	case Flagged:
		return View{Kind: ViewFlagged}
	case BadFlagged:
		return View{Kind: ViewBadFlagged}
	case Guessed:
		switch c.Contents.Kind {
		case Mine, LosingMine:
			return View{Kind: ViewMine}
		case Empty:
			return View{Kind: ViewEmpty, Count: c.Contents.Count}
		}
	}
	panic(InvariantError{Message: fmt.Sprintf("unknown cell %+v", c)})
}
