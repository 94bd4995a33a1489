package states

import (
	"fmt"
	"time"
)

// InProgressState represents active play
type InProgressState struct{}

func NewInProgressState() State {
	return &InProgressState{}
}

func (s *InProgressState) State() GameState {
	return InProgress
}

func (s *InProgressState) Enter(ctx *GameContext) error {
	ctx.StartTime = time.Now()
	ctx.Logger.Debug().
		Int("height", ctx.Height).
		Int("width", ctx.Width).
		Int("mines", ctx.Mines).
		Msg("Game in progress")
	return nil
}

func (s *InProgressState) Exit(ctx *GameContext) error {
	ctx.EndTime = time.Now()
	ctx.Logger.Debug().
		Dur("elapsed", ctx.GetElapsedTime()).
		Msg("Leaving in-progress state")
	return nil
}

func (s *InProgressState) Validate(ctx *GameContext) error {
	if ctx.Height < 0 || ctx.Width < 0 {
		return fmt.Errorf("negative board dimensions %dx%d", ctx.Height, ctx.Width)
	}
	if ctx.Mines < 0 {
		return fmt.Errorf("negative mine count %d", ctx.Mines)
	}
	return nil
}

// WonState is terminal: every safe cell was revealed
type WonState struct{}

func NewWonState() State {
	return &WonState{}
}

func (s *WonState) State() GameState {
	return Won
}

func (s *WonState) Enter(ctx *GameContext) error {
	ctx.Logger.Info().
		Dur("elapsed", ctx.GetElapsedTime()).
		Msg("Game won")
	return nil
}

func (s *WonState) Exit(ctx *GameContext) error {
	return fmt.Errorf("cannot leave terminal state %s", Won)
}

func (s *WonState) Validate(ctx *GameContext) error {
	return nil
}

// LostState is terminal: a mine was revealed
type LostState struct{}

func NewLostState() State {
	return &LostState{}
}

func (s *LostState) State() GameState {
	return Lost
}

func (s *LostState) Enter(ctx *GameContext) error {
	ctx.Logger.Info().
		Dur("elapsed", ctx.GetElapsedTime()).
		Msg("Game lost")
	return nil
}

func (s *LostState) Exit(ctx *GameContext) error {
	return fmt.Errorf("cannot leave terminal state %s", Lost)
}

func (s *LostState) Validate(ctx *GameContext) error {
	return nil
}
