package game

import (
	"time"

	"github.com/rs/zerolog"
)

// Stats summarizes the player's activity in one game
type Stats struct {
	Guesses      int // direct guesses made while in progress
	Chords       int // guesses on already revealed cells
	FlagsPlaced  int
	FlagsRemoved int
	Revealed     int // safe cells revealed, including flood fill
	StartTime    time.Time
	Duration     time.Duration
}

// Moves counts every guess and flag toggle
func (s Stats) Moves() int {
	return s.Guesses + s.FlagsPlaced + s.FlagsRemoved
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler
func (s Stats) MarshalZerologObject(e *zerolog.Event) {
	e.Int("guesses", s.Guesses).
		Int("chords", s.Chords).
		Int("flags_placed", s.FlagsPlaced).
		Int("flags_removed", s.FlagsRemoved).
		Int("revealed", s.Revealed).
		Int("moves", s.Moves()).
		Dur("duration", s.Duration)
}

// Stats returns a snapshot of the game's statistics
func (g *Game) Stats() Stats {
	s := g.stats
	s.Revealed = g.numGuessed
	s.StartTime = g.machine.GetContext().StartTime
	s.Duration = g.elapsed()
	return s
}

// elapsed is the play time, frozen once the game ends
func (g *Game) elapsed() time.Duration {
	return g.machine.GetContext().GetElapsedTime()
}
