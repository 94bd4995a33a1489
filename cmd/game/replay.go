package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/game"
	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/game/core"
	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/game/processor"
	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/ui"
	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/ui/input"
)

// readActions parses one F|G command per line. Blank lines and lines starting
// with # are ignored.
func readActions(r io.Reader) ([]core.Action, error) {
	var actions []core.Action
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		action, err := input.ParseAction(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		actions = append(actions, action)
	}
	return actions, scanner.Err()
}

// runReplay applies the moves in path to g and prints the resulting board
func runReplay(ctx context.Context, path string, g *game.Game, session *ui.TerminalGame) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening replay: %w", err)
	}
	defer f.Close()

	actions, err := readActions(f)
	if err != nil {
		return fmt.Errorf("reading replay %s: %w", path, err)
	}

	ap := processor.NewActionProcessor(log.Logger)
	result, err := ap.ProcessActions(ctx, g, actions)
	if err != nil {
		log.Warn().Err(err).Int("rejected", result.Rejected).Msg("Replay contained invalid moves")
	}

	session.Draw()
	fmt.Printf("Replayed %d moves (%d rejected, %d after the end): %s\n",
		result.Applied, result.Rejected, result.Skipped, result.Final)
	return nil
}
