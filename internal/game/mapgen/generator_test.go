package mapgen

import (
	"math/rand"
	"testing"

	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/game/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRNG provides a random number generator with a fixed seed for deterministic tests.
func newTestRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345)) // Fixed seed for reproducibility
}

func TestDefaultMapConfig(t *testing.T) {
	config := DefaultMapConfig()
	assert.Equal(t, 9, config.Height)
	assert.Equal(t, 9, config.Width)
	assert.Equal(t, 10, config.MineCount)
}

func TestNewGenerator(t *testing.T) {
	config := MapConfig{Height: 5, Width: 6, MineCount: 3}
	rng := newTestRNG()
	generator := NewGenerator(config, rng)

	require.NotNil(t, generator, "NewGenerator should return a non-nil Generator")
	assert.Equal(t, config, generator.Config())
	assert.Same(t, rng, generator.rng)
}

func TestPlaceMines_SafeBox(t *testing.T) {
	tests := []struct {
		name     string
		config   MapConfig
		safeRow  int
		safeCol  int
		fullSafe int // cells within the safe box
	}{
		{"CenterOfBeginner", MapConfig{9, 9, 10}, 4, 4, 9},
		{"Corner", MapConfig{9, 9, 10}, 0, 0, 4},
		{"Edge", MapConfig{16, 30, 99}, 0, 15, 6},
		{"DenseFill", MapConfig{5, 5, 16}, 2, 2, 9},
		{"TwoRows", MapConfig{2, 10, 14}, 1, 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := int64(0); seed < 25; seed++ {
				generator := NewGenerator(tt.config, rand.New(rand.NewSource(seed)))
				board := core.NewBoard(tt.config.Height, tt.config.Width)

				placed := generator.PlaceMines(board, tt.safeRow, tt.safeCol)

				require.Len(t, placed, tt.config.MineCount)
				assert.Equal(t, tt.config.MineCount, board.MineCount(), "seed %d", seed)

				safe := core.NewCoordinate(tt.safeRow, tt.safeCol)
				safeCells := 0
				for idx, cell := range board.C {
					r, c := board.RowCol(idx)
					if core.NewCoordinate(r, c).ChebyshevDistance(safe) <= SafeRadius {
						safeCells++
						assert.False(t, cell.Contents.IsMine(), "seed %d: mine inside safe box at (%d,%d)", seed, r, c)
					}
				}
				assert.Equal(t, tt.fullSafe, safeCells)
			}
		})
	}
}

func TestPlaceMines_CountsMatchNeighbors(t *testing.T) {
	config := MapConfig{Height: 16, Width: 16, MineCount: 40}
	generator := NewGenerator(config, newTestRNG())
	board := generateBoard(generator, 7, 7)

	for idx, cell := range board.C {
		if cell.Contents.IsMine() {
			continue
		}
		r, c := board.RowCol(idx)
		expected := core.CountNeighbors(r, c, board.H, board.W, func(n core.Coordinate) bool {
			return board.Cell(n.Row, n.Col).Contents.IsMine()
		})
		assert.Equal(t, uint8(expected), cell.Contents.Count, "count mismatch at (%d,%d)", r, c)
	}
}

func TestPlaceMines_DistinctPositions(t *testing.T) {
	config := MapConfig{Height: 6, Width: 6, MineCount: 27}
	generator := NewGenerator(config, newTestRNG())
	board := core.NewBoard(config.Height, config.Width)

	placed := generator.PlaceMines(board, 0, 0)

	seen := make(map[core.Coordinate]bool, len(placed))
	for _, c := range placed {
		assert.False(t, seen[c], "mine placed twice at %v", c)
		seen[c] = true
	}
	// 36 cells minus the 4-cell corner box leaves 32; 27 fit
	assert.Len(t, seen, 27)
}

func TestPlaceMines_Deterministic(t *testing.T) {
	config := MapConfig{Height: 9, Width: 9, MineCount: 10}

	first := generateBoard(NewGenerator(config, rand.New(rand.NewSource(42))), 3, 5)
	second := generateBoard(NewGenerator(config, rand.New(rand.NewSource(42))), 3, 5)

	assert.Equal(t, first.C, second.C, "same seed and safe cell should produce identical boards")
}

func TestPlaceMines_ZeroMines(t *testing.T) {
	generator := NewGenerator(MapConfig{Height: 3, Width: 3, MineCount: 0}, newTestRNG())
	board := generateBoard(generator, 1, 1)

	assert.Equal(t, 0, board.MineCount())
	for _, cell := range board.C {
		assert.Equal(t, core.EmptyWith(0), cell.Contents)
	}
}

// generateBoard allocates a board sized from the generator config and fills it
func generateBoard(g *Generator, safeRow, safeCol int) *core.Board {
	board := core.NewBoard(g.Config().Height, g.Config().Width)
	g.PlaceMines(board, safeRow, safeCol)
	return board
}
