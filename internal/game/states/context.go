package states

import (
	"time"

	"github.com/rs/zerolog"
)

// GameContext provides game-specific information to states
type GameContext struct {
	// GameID uniquely identifies this game instance
	GameID string

	// Logger for state-specific logging
	Logger zerolog.Logger

	// Board dimensions and mine count
	Height int
	Width  int
	Mines  int

	// StartTime is when InProgress was entered
	StartTime time.Time

	// EndTime is when a terminal state was entered
	EndTime time.Time

	// Metadata for custom state data
	Metadata map[string]interface{}
}

// NewGameContext creates a new game context
func NewGameContext(gameID string, height, width, mines int, logger zerolog.Logger) *GameContext {
	return &GameContext{
		GameID:   gameID,
		Height:   height,
		Width:    width,
		Mines:    mines,
		Logger:   logger.With().Str("game_id", gameID).Logger(),
		Metadata: make(map[string]interface{}),
	}
}

// GetElapsedTime returns the play time, frozen once the game ends
func (gc *GameContext) GetElapsedTime() time.Duration {
	if gc.StartTime.IsZero() {
		return 0
	}
	if !gc.EndTime.IsZero() {
		return gc.EndTime.Sub(gc.StartTime)
	}
	return time.Since(gc.StartTime)
}

// SetMetadata stores custom data for states
func (gc *GameContext) SetMetadata(key string, value interface{}) {
	gc.Metadata[key] = value
}

// GetMetadata retrieves custom data stored by states
func (gc *GameContext) GetMetadata(key string) (interface{}, bool) {
	val, exists := gc.Metadata[key]
	return val, exists
}
