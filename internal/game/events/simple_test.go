package events_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/game/events"
)

// TestSubscriber implements the Subscriber interface for testing
type TestSubscriber struct {
	id         string
	events     []events.Event
	interested map[string]bool
}

func NewTestSubscriber(id string, interestedTypes ...string) *TestSubscriber {
	interested := make(map[string]bool)
	for _, t := range interestedTypes {
		interested[t] = true
	}
	return &TestSubscriber{
		id:         id,
		interested: interested,
	}
}

func (ts *TestSubscriber) ID() string {
	return ts.id
}

func (ts *TestSubscriber) HandleEvent(event events.Event) {
	ts.events = append(ts.events, event)
}

func (ts *TestSubscriber) InterestedIn(eventType string) bool {
	if len(ts.interested) == 0 {
		return true // Interested in all events if not specified
	}
	return ts.interested[eventType]
}

func TestEventBusMultipleSubscribers(t *testing.T) {
	bus := events.NewEventBus()

	sub1 := NewTestSubscriber("sub1", events.TypeGuessProcessed)
	sub2 := NewTestSubscriber("sub2", events.TypeFlagToggled)
	sub3 := NewTestSubscriber("sub3") // Interested in all

	bus.Subscribe(sub1)
	bus.Subscribe(sub2)
	bus.Subscribe(sub3)

	funcCalled := false
	bus.SubscribeFunc(events.TypeGuessProcessed, func(e events.Event) {
		funcCalled = true
	})

	bus.Publish(events.NewGuessProcessedEvent("game4", 2, 3, 1, false, "InProgress"))

	assert.Len(t, sub1.events, 1)
	assert.Len(t, sub2.events, 0)
	assert.Len(t, sub3.events, 1)
	assert.True(t, funcCalled)
}

func TestEventBusPanicRecovery(t *testing.T) {
	bus := events.NewEventBus()

	bus.SubscribeFunc(events.TypeMinesGenerated, func(e events.Event) {
		panic("test panic")
	})

	normalSub := NewTestSubscriber("normal")
	bus.Subscribe(normalSub)

	assert.NotPanics(t, func() {
		bus.Publish(events.NewMinesGeneratedEvent("game5", 0, 0, 10))
	})

	assert.Len(t, normalSub.events, 1)
}

func TestEventConstructors(t *testing.T) {
	startTime := time.Now()

	all := []events.Event{
		events.NewGameStartedEvent("game6", 9, 9, 10),
		events.NewMinesGeneratedEvent("game6", 4, 4, 10),
		events.NewGuessProcessedEvent("game6", 4, 4, 20, false, "InProgress"),
		events.NewFlagToggledEvent("game6", 0, 0, true),
		events.NewGameEndedEvent("game6", "Won", time.Minute, 12),
		events.NewStateTransitionEvent("game6", "InProgress", "Won", "all safe cells revealed"),
	}

	require.Len(t, all, len(events.AllTypes))
	for i, event := range all {
		assert.Equal(t, events.AllTypes[i], event.Type())
		assert.False(t, event.Timestamp().IsZero())
		assert.False(t, event.Timestamp().Before(startTime))
		assert.True(t, event.Timestamp().Before(time.Now().Add(time.Second)))
		assert.Equal(t, "game6", event.GameID())
	}
}

func TestGuessProcessedEventFields(t *testing.T) {
	e := events.NewGuessProcessedEvent("g", 3, 5, 0, true, "Lost")

	assert.Equal(t, 3, e.Row)
	assert.Equal(t, 5, e.Col)
	assert.Equal(t, 0, e.Revealed)
	assert.True(t, e.Chord)
	assert.Equal(t, "Lost", e.Result)
}

func BenchmarkEventBusPublish(b *testing.B) {
	bus := events.NewEventBus()
	bus.Subscribe(NewTestSubscriber("bench"))

	event := events.NewGuessProcessedEvent("bench-game", 1, 1, 1, false, "InProgress")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bus.Publish(event)
	}
}
