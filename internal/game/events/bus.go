package events

import (
	"slices"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Publisher is what the engine and the state machine publish through
type Publisher interface {
	Publish(Event)
}

var _ Publisher = (*EventBus)(nil)

// EventBus delivers game events synchronously on the publishing goroutine.
// Subscribers are called in the order they subscribed, then the handlers
// registered for the event's type.
type EventBus struct {
	mu          sync.RWMutex
	subscribers []Subscriber
	handlers    map[string][]*funcHandler
	seq         atomic.Uint64
	logger      zerolog.Logger
}

// funcHandler gives a handler an identity so its cancel func can find it
type funcHandler struct {
	fn EventHandler
}

// NewEventBus creates a bus logging through the global logger
func NewEventBus() *EventBus {
	return NewEventBusWithLogger(log.Logger)
}

// NewEventBusWithLogger creates a bus with its own logger
func NewEventBusWithLogger(logger zerolog.Logger) *EventBus {
	return &EventBus{
		handlers: make(map[string][]*funcHandler),
		logger:   logger.With().Str("component", "event_bus").Logger(),
	}
}

// Subscribe registers s and returns a func that removes it. A subscriber
// whose ID is already registered replaces the earlier one in place.
func (eb *EventBus) Subscribe(s Subscriber) (cancel func()) {
	id := s.ID()

	eb.mu.Lock()
	if i := eb.indexOf(id); i >= 0 {
		eb.subscribers[i] = s
	} else {
		eb.subscribers = append(eb.subscribers, s)
	}
	count := len(eb.subscribers)
	eb.mu.Unlock()

	eb.logger.Debug().
		Str("subscriber_id", id).
		Int("subscribers", count).
		Msg("Subscriber added to event bus")

	return func() { eb.unsubscribe(id) }
}

func (eb *EventBus) unsubscribe(id string) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if i := eb.indexOf(id); i >= 0 {
		eb.subscribers = slices.Delete(eb.subscribers, i, i+1)
		eb.logger.Debug().Str("subscriber_id", id).Msg("Subscriber removed from event bus")
	}
}

// indexOf requires eb.mu
func (eb *EventBus) indexOf(id string) int {
	return slices.IndexFunc(eb.subscribers, func(s Subscriber) bool { return s.ID() == id })
}

// SubscribeFunc runs fn for every event of eventType and returns a func that
// removes it.
func (eb *EventBus) SubscribeFunc(eventType string, fn EventHandler) (cancel func()) {
	h := &funcHandler{fn: fn}

	eb.mu.Lock()
	eb.handlers[eventType] = append(eb.handlers[eventType], h)
	eb.mu.Unlock()

	eb.logger.Debug().Str("event_type", eventType).Msg("Function handler added to event bus")

	return func() {
		eb.mu.Lock()
		defer eb.mu.Unlock()
		eb.handlers[eventType] = slices.DeleteFunc(eb.handlers[eventType], func(x *funcHandler) bool { return x == h })
	}
}

// Publish stamps event with the bus's next sequence number and delivers it.
// A receiver that panics is logged and skipped. Receivers may subscribe or
// cancel while handling; the change applies from the next event.
func (eb *EventBus) Publish(event Event) {
	if s, ok := event.(sequenced); ok {
		s.stamp(eb.seq.Add(1))
	}
	eventType := event.Type()

	eb.mu.RLock()
	subscribers := slices.Clone(eb.subscribers)
	handlers := slices.Clone(eb.handlers[eventType])
	eb.mu.RUnlock()

	eb.logger.Debug().
		Str("event_type", eventType).
		Str("game_id", event.GameID()).
		Uint64("seq", event.Seq()).
		Msg("Publishing event")

	for _, s := range subscribers {
		if s.InterestedIn(eventType) {
			eb.deliver(event, s.ID(), s.HandleEvent)
		}
	}
	for _, h := range handlers {
		eb.deliver(event, "func:"+eventType, h.fn)
	}
}

func (eb *EventBus) deliver(event Event, receiver string, fn EventHandler) {
	defer func() {
		if r := recover(); r != nil {
			eb.logger.Error().
				Str("receiver", receiver).
				Str("event_type", event.Type()).
				Uint64("seq", event.Seq()).
				Interface("panic", r).
				Msg("Event receiver panicked")
		}
	}()
	fn(event)
}

// Receivers counts the subscribers and handlers an event of eventType would
// reach.
func (eb *EventBus) Receivers(eventType string) int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	n := len(eb.handlers[eventType])
	for _, s := range eb.subscribers {
		if s.InterestedIn(eventType) {
			n++
		}
	}
	return n
}
