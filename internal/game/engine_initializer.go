package game

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/game/core"
	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/game/events"
	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/game/mapgen"
	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/game/rules"
	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/game/states"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// GameConfig collects the optional collaborators of a Game
type GameConfig struct {
	Rng       *rand.Rand
	Logger    zerolog.Logger
	Publisher events.Publisher
	GameID    string

	loggerSet bool
}

// Option customizes a GameConfig
type Option func(*GameConfig)

// WithRNG sets the random source used for mine placement
func WithRNG(rng *rand.Rand) Option {
	return func(c *GameConfig) { c.Rng = rng }
}

// WithSeed seeds a fresh random source; a zero seed keeps the time-based default
func WithSeed(seed int64) Option {
	return func(c *GameConfig) {
		if seed != 0 {
			c.Rng = rand.New(rand.NewSource(seed))
		}
	}
}

// WithLogger sets the parent logger for the game
func WithLogger(logger zerolog.Logger) Option {
	return func(c *GameConfig) {
		c.Logger = logger
		c.loggerSet = true
	}
}

// WithEventBus sets where game events are published
func WithEventBus(publisher events.Publisher) Option {
	return func(c *GameConfig) { c.Publisher = publisher }
}

// WithGameID overrides the generated game ID
func WithGameID(id string) Option {
	return func(c *GameConfig) { c.GameID = id }
}

// gameInitializer handles the wiring of a new Game
type gameInitializer struct {
	config GameConfig
	logger zerolog.Logger
}

func newGameInitializer(opts []Option) *gameInitializer {
	var cfg GameConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.loggerSet {
		cfg.Logger = log.Logger
	}

	gi := &gameInitializer{config: cfg}
	gi.setupDefaults()
	gi.logger = gi.config.Logger.With().
		Str("component", "Game").
		Str("game_id", gi.config.GameID).
		Logger()
	return gi
}

// setupDefaults sets up default values for missing configuration
func (gi *gameInitializer) setupDefaults() {
	if gi.config.Rng == nil {
		gi.config.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if gi.config.GameID == "" {
		gi.config.GameID = uuid.NewString()
	}
}

// initialize builds a Game around board. The state machine starts in
// InProgress and a game.started event is published.
func (gi *gameInitializer) initialize(board *core.Board, mines int) *Game {
	g := &Game{
		board:      board,
		mines:      mines,
		id:         gi.config.GameID,
		publisher:  gi.config.Publisher,
		logger:     gi.logger,
		winChecker: rules.NewWinConditionChecker(gi.logger, board.H, board.W, mines),
		generator: mapgen.NewGenerator(mapgen.MapConfig{
			Height:    board.H,
			Width:     board.W,
			MineCount: mines,
		}, gi.config.Rng),
	}

	gameContext := states.NewGameContext(g.id, board.H, board.W, mines, gi.config.Logger)
	machine, err := states.NewStateMachine(gameContext, g.publisher)
	if err != nil {
		core.Invariantf("state machine initialization failed: %v", err)
	}
	g.machine = machine

	g.publish(events.NewGameStartedEvent(g.id, board.H, board.W, mines))

	gi.logger.Info().
		Int("height", board.H).
		Int("width", board.W).
		Int("mines", mines).
		Msg("Game created")

	return g
}
