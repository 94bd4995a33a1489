package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/config"
	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/game"
	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/game/events"
	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/ui"
	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/ui/input"
	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/ui/renderer"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	height := flag.Int("height", -1, "Board height (-1 to use config default)")
	width := flag.Int("width", -1, "Board width (-1 to use config default)")
	mines := flag.Int("mines", -1, "Number of mines (-1 to use config default)")
	seed := flag.Int64("seed", -1, "Mine placement seed, 0 for time based (-1 to use config default)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	watchConfig := flag.Bool("watch-config", false, "Reload ui settings when the config file changes")
	autoplay := flag.Bool("autoplay", false, "Play random moves instead of reading stdin")
	replay := flag.String("replay", "", "Apply the F|G moves in this file and print the result")
	flag.Parse()

	// Initialize configuration
	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}

	// Use config defaults if not overridden by flags
	if *height != -1 {
		config.Set("game.height", *height)
	}
	if *width != -1 {
		config.Set("game.width", *width)
	}
	if *mines != -1 {
		config.Set("game.mines", *mines)
	}
	if *seed != -1 {
		config.Set("game.seed", *seed)
	}
	if *logLevel != "" {
		config.Set("logging.level", *logLevel)
	}
	if *noColor {
		config.Set("ui.color", false)
	}

	cfg := config.Get()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "invalid settings:", err)
		os.Exit(2)
	}

	setupLogging(cfg.Logging.Level, cfg.Logging.Format)

	log.Info().
		Int("height", cfg.Game.Height).
		Int("width", cfg.Game.Width).
		Int("mines", cfg.Game.Mines).
		Int64("seed", cfg.Game.Seed).
		Str("config_file", config.ConfigFilePath()).
		Msg("Starting minesweeper")

	eventBus := events.NewEventBus()
	if cfg.Development.LogEvents {
		eventLogger := subscribers.NewLoggerSubscriber("cli-event-logger", log.Logger, zerolog.InfoLevel)
		eventLogger.SetDevMode(cfg.Development.DevMode)
		eventBus.Subscribe(eventLogger)
	}

	opts := []game.Option{
		game.WithLogger(log.Logger),
		game.WithEventBus(eventBus),
		game.WithSeed(cfg.Game.Seed),
	}
	g := game.NewGame(cfg.Game.Height, cfg.Game.Width, cfg.Game.Mines, opts...)

	boardRenderer := renderer.NewBoardRenderer(termenv.EnvColorProfile(), ui.RenderOptions(cfg))

	if *watchConfig && config.ConfigFilePath() != "" {
		config.WatchConfig(func(c *config.Config) {
			if *noColor {
				c.UI.Color = false
			}
			boardRenderer.SetOptions(ui.RenderOptions(c))
			log.Info().Msg("Config reloaded")
		}, func(err error) {
			log.Warn().Err(err).Msg("Ignoring config change")
		})
	}

	if *replay != "" {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		session := ui.NewTerminalGame(g, boardRenderer, nil, os.Stdout)
		if err := runReplay(ctx, *replay, g, session); err != nil {
			log.Fatal().Err(err).Msg("Replay failed")
		}
		return
	}

	var player ui.Player = input.NewHandler(os.Stdin, g.Height(), g.Width())
	if *autoplay {
		player = ui.NewRandomPlayer(g, rand.New(rand.NewSource(time.Now().UnixNano())))
	}

	session := ui.NewTerminalGame(g, boardRenderer, player, os.Stdout)
	session.SetEchoActions(*autoplay)

	state, err := session.Run()
	switch {
	case errors.Is(err, io.EOF):
		fmt.Println()
		log.Info().Str("state", state.String()).Msg("Input closed, exiting")
	case err != nil:
		log.Fatal().Err(err).Msg("Game aborted")
	}
}

// setupLogging configures the global logger. Logs go to stderr so they never
// interleave with the board on stdout.
func setupLogging(level, format string) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		logLevel = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	if format == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	})
}
