package states

import (
	"fmt"
	"sync"
	"time"

	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/game/events"
)

// State represents a game state with lifecycle callbacks
type State interface {
	// State returns the GameState this implementation represents
	State() GameState

	// Enter is called when transitioning into this state
	Enter(ctx *GameContext) error

	// Exit is called when transitioning out of this state
	Exit(ctx *GameContext) error

	// Validate checks if the state is valid given the context
	Validate(ctx *GameContext) error
}

// Transition represents a state transition in the history
type Transition struct {
	From      GameState
	To        GameState
	Timestamp time.Time
	Reason    string
}

// StateMachine manages game state transitions and history
type StateMachine struct {
	mu        sync.RWMutex
	current   GameState
	states    map[GameState]State
	context   *GameContext
	history   []Transition
	publisher events.Publisher
}

// NewStateMachine creates a state machine already in InProgress.
// The publisher may be nil.
func NewStateMachine(ctx *GameContext, publisher events.Publisher) (*StateMachine, error) {
	sm := &StateMachine{
		current:   InProgress,
		states:    make(map[GameState]State),
		context:   ctx,
		history:   make([]Transition, 0, 1),
		publisher: publisher,
	}

	sm.RegisterState(NewInProgressState())
	sm.RegisterState(NewWonState())
	sm.RegisterState(NewLostState())

	initial := sm.states[InProgress]
	if err := initial.Validate(ctx); err != nil {
		return nil, fmt.Errorf("initial state validation failed: %w", err)
	}
	if err := initial.Enter(ctx); err != nil {
		return nil, fmt.Errorf("failed to enter state %s: %w", InProgress, err)
	}

	return sm, nil
}

// RegisterState registers a state implementation
func (sm *StateMachine) RegisterState(state State) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.states[state.State()] = state
}

// Current returns the current game state
func (sm *StateMachine) Current() GameState {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.current
}

// TransitionTo attempts to transition to the target state
func (sm *StateMachine) TransitionTo(target GameState, reason string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.current.CanTransitionTo(target) {
		return fmt.Errorf("invalid transition from %s to %s", sm.current, target)
	}

	currentState, hasCurrentState := sm.states[sm.current]
	targetState, hasTargetState := sm.states[target]

	if !hasTargetState {
		return fmt.Errorf("no state implementation for %s", target)
	}

	if err := targetState.Validate(sm.context); err != nil {
		return fmt.Errorf("target state validation failed: %w", err)
	}

	if hasCurrentState {
		if err := currentState.Exit(sm.context); err != nil {
			sm.context.Logger.Error().
				Err(err).
				Str("from_state", sm.current.String()).
				Str("to_state", target.String()).
				Msg("Error exiting state")
			// Continue with transition despite exit error
		}
	}

	previous := sm.current
	sm.current = target

	if err := targetState.Enter(sm.context); err != nil {
		sm.current = previous
		return fmt.Errorf("failed to enter state %s: %w", target, err)
	}

	sm.history = append(sm.history, Transition{
		From:      previous,
		To:        target,
		Timestamp: time.Now(),
		Reason:    reason,
	})

	if sm.publisher != nil {
		sm.publisher.Publish(events.NewStateTransitionEvent(
			sm.context.GameID,
			previous.String(),
			target.String(),
			reason,
		))
	}

	sm.context.Logger.Debug().
		Str("from_state", previous.String()).
		Str("to_state", target.String()).
		Str("reason", reason).
		Msg("State transition completed")

	return nil
}

// GetHistory returns a copy of the transition history
func (sm *StateMachine) GetHistory() []Transition {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	history := make([]Transition, len(sm.history))
	copy(history, sm.history)
	return history
}

// GetContext returns the game context
func (sm *StateMachine) GetContext() *GameContext {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.context
}

// CanTransitionTo checks if a transition to the target state is allowed
func (sm *StateMachine) CanTransitionTo(target GameState) bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.current.CanTransitionTo(target)
}
