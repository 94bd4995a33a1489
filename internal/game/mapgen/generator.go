package mapgen

import (
	"math/rand"

	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/game/core"
)

// SafeRadius is the Chebyshev radius around the first guess that never holds
// a mine. A radius of 1 keeps the clicked cell and its eight neighbors clear.
const SafeRadius = 1

// MapConfig holds configuration for mine placement
type MapConfig struct {
	Height    int
	Width     int
	MineCount int
}

// DefaultMapConfig returns the classic beginner layout. The config package
// uses it for the game.* defaults.
func DefaultMapConfig() MapConfig {
	return MapConfig{
		Height:    9,
		Width:     9,
		MineCount: 10,
	}
}

// Generator places mines with a caller supplied RNG so games can be replayed
// from a seed.
type Generator struct {
	config MapConfig
	rng    *rand.Rand
}

// NewGenerator creates a new mine generator
func NewGenerator(config MapConfig, rng *rand.Rand) *Generator {
	return &Generator{
		config: config,
		rng:    rng,
	}
}

// Config returns the generator configuration
func (g *Generator) Config() MapConfig { return g.config }

// PlaceMines puts exactly MineCount mines on b, uniformly at random among the
// cells farther than SafeRadius from (safeRow, safeCol), and bumps the count
// of every neighbor of each mine.
//
// Collisions are retried until the target is reached. The caller must leave
// enough room outside the safe box; otherwise this never returns.
func (g *Generator) PlaceMines(b *core.Board, safeRow, safeCol int) []core.Coordinate {
	safe := core.NewCoordinate(safeRow, safeCol)
	placed := make([]core.Coordinate, 0, g.config.MineCount)

	for len(placed) < g.config.MineCount {
		c := core.NewCoordinate(g.rng.Intn(b.H), g.rng.Intn(b.W))
		if c.ChebyshevDistance(safe) <= SafeRadius {
			continue
		}
		if b.PlaceMine(c.Row, c.Col) {
			placed = append(placed, c)
		}
	}

	return placed
}
