package renderer

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/muesli/termenv"

	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/common"
	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/game/core"
)

// BoardView is the read-only surface the renderer draws from
type BoardView interface {
	Height() int
	Width() int
	Get(row, col int) core.View
}

// minesCounter is implemented by views that can report the classic
// mines-remaining counter.
type minesCounter interface {
	MinesRemaining() int
}

// Options control how the board is drawn
type Options struct {
	Color      bool
	Unicode    bool
	ShowLegend bool
	ShowStatus bool
}

// DefaultOptions matches the ui.* configuration defaults
func DefaultOptions() Options {
	return Options{Color: true, Unicode: true, ShowLegend: true, ShowStatus: true}
}

// Glyphs is the character set for hidden and special cells
type Glyphs struct {
	Unguessed string
	Flag      string
	BadFlag   string
	Mine      string
}

var (
	UnicodeGlyphs = Glyphs{Unguessed: "▧", Flag: "⚑", BadFlag: "⚑", Mine: "☀"}
	ASCIIGlyphs   = Glyphs{Unguessed: "#", Flag: "F", BadFlag: "X", Mine: "*"}
)

// BoardRenderer turns a BoardView into terminal text. Options may be swapped
// while another goroutine renders, which is how config hot reload reaches it.
type BoardRenderer struct {
	mu      sync.RWMutex
	opts    Options
	profile termenv.Profile
}

// NewBoardRenderer returns a renderer that colors with profile when
// opts.Color is set.
func NewBoardRenderer(profile termenv.Profile, opts Options) *BoardRenderer {
	return &BoardRenderer{opts: opts, profile: profile}
}

// SetOptions replaces the rendering options
func (br *BoardRenderer) SetOptions(opts Options) {
	br.mu.Lock()
	br.opts = opts
	br.mu.Unlock()
}

// Options returns the current rendering options
func (br *BoardRenderer) Options() Options {
	br.mu.RLock()
	defer br.mu.RUnlock()
	return br.opts
}

// Render draws the board framed by column headers, with the row index on
// both sides of every row.
func (br *BoardRenderer) Render(view BoardView) string {
	opts := br.Options()
	p := br.paletteFor(opts)

	h, w := view.Height(), view.Width()
	rowWidth := common.Digits(max(h-1, 0))
	cellWidth := common.Digits(max(w-1, 0))

	var sb strings.Builder
	header := br.header(w, rowWidth, cellWidth)
	sb.WriteString(header)

	for row := 0; row < h; row++ {
		sb.WriteString(padLeft(strconv.Itoa(row), rowWidth))
		sb.WriteByte(' ')
		for col := 0; col < w; col++ {
			sb.WriteByte('|')
			sb.WriteString(strings.Repeat(" ", cellWidth-1))
			sb.WriteString(p.cell(view.Get(row, col)))
		}
		sb.WriteString("| ")
		sb.WriteString(strconv.Itoa(row))
		sb.WriteByte('\n')
	}
	sb.WriteString(header)

	if opts.ShowStatus {
		if mc, ok := view.(minesCounter); ok {
			fmt.Fprintf(&sb, "Mines remaining: %d\n", mc.MinesRemaining())
		}
	}
	if opts.ShowLegend {
		sb.WriteString(p.legend())
	}

	return sb.String()
}

func (br *BoardRenderer) header(w, rowWidth, cellWidth int) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", rowWidth+1))
	for col := 0; col < w; col++ {
		sb.WriteByte('|')
		sb.WriteString(padLeft(strconv.Itoa(col), cellWidth))
	}
	sb.WriteString("|\n")
	return sb.String()
}

func (br *BoardRenderer) paletteFor(opts Options) palette {
	p := palette{glyphs: ASCIIGlyphs, color: opts.Color}
	if opts.Unicode {
		p.glyphs = UnicodeGlyphs
	}
	if opts.Color {
		p.profile = br.profile
	} else {
		p.profile = termenv.Ascii
	}
	return p
}

type palette struct {
	glyphs  Glyphs
	profile termenv.Profile
	color   bool
}

// cell returns the single-column glyph for v, styled when color is on
func (p palette) cell(v core.View) string {
	switch v.Kind {
	case core.ViewUnguessed:
		return p.paint(p.glyphs.Unguessed, common.UnguessedColor, false)
	case core.ViewFlagged:
		return p.glyphs.Flag
	case core.ViewBadFlagged:
		return p.paint(p.glyphs.BadFlag, common.BadFlagColor, false)
	case core.ViewMine:
		return p.paint(p.glyphs.Mine, common.MineColor, false)
	case core.ViewEmpty:
		if v.Count == 0 {
			return " "
		}
		return p.paint(strconv.Itoa(int(v.Count)), common.CountColor(int(v.Count)), true)
	default:
		core.Invariantf("unknown view kind %v", v.Kind)
		return ""
	}
}

func (p palette) paint(s, hex string, bold bool) string {
	if !p.color {
		return s
	}
	style := p.profile.String(s).
		Foreground(p.profile.Color(hex)).
		Background(p.profile.Color(common.CellBackgroundColor))
	if bold {
		style = style.Bold()
	}
	return style.String()
}

func (p palette) legend() string {
	return fmt.Sprintf("%s hidden  %s flag  %s wrong flag  %s mine\n",
		p.cell(core.View{Kind: core.ViewUnguessed}),
		p.cell(core.View{Kind: core.ViewFlagged}),
		p.cell(core.View{Kind: core.ViewBadFlagged}),
		p.cell(core.View{Kind: core.ViewMine}),
	)
}

func padLeft(s string, width int) string {
	if n := len(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}
