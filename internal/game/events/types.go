package events

import (
	"time"
)

// Event is something that happened to a single game
type Event interface {
	Type() string
	GameID() string
	Timestamp() time.Time
	// Seq is the event's position in its bus's publish order, starting at 1.
	// It stays 0 until the event is published.
	Seq() uint64
}

// BaseEvent carries the fields every game event shares. It is serialized
// alongside the event payload when the logger runs in dev mode.
type BaseEvent struct {
	EventType string    `json:"type"`
	Game      string    `json:"game_id"`
	Time      time.Time `json:"timestamp"`
	Sequence  uint64    `json:"seq"`
}

func newBase(eventType, gameID string) BaseEvent {
	return BaseEvent{EventType: eventType, Game: gameID, Time: time.Now()}
}

func (e BaseEvent) Type() string         { return e.EventType }
func (e BaseEvent) GameID() string       { return e.Game }
func (e BaseEvent) Timestamp() time.Time { return e.Time }
func (e BaseEvent) Seq() uint64          { return e.Sequence }

// stamp is reached through the pointer events the constructors return
func (e *BaseEvent) stamp(seq uint64) { e.Sequence = seq }

type sequenced interface {
	stamp(seq uint64)
}

// EventHandler receives events of the one type it was registered for
type EventHandler func(Event)

// Subscriber receives every event type it declares interest in
type Subscriber interface {
	// ID names the subscriber in logs and keys its registration
	ID() string
	HandleEvent(Event)
	InterestedIn(eventType string) bool
}
