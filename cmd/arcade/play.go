package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/platform/tui"
	"github.com/vovakirdan/grid-arcade/internal/registry"
	"github.com/vovakirdan/grid-arcade/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Move, steer or move the cursor
  X            - Rotate (Tetris)
  Space        - Hard drop (Tetris), reveal (Minesweeper)
  F            - Toggle flag (Minesweeper)
  Enter        - Start / reveal
  P            - Pause
  R            - Restart
  Ctrl+S       - Save a screenshot (text and PNG)
  Esc/B        - Leave after game over or while paused
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower timers, no progression
  normal - Config defaults
  hard   - Faster timers, progression on
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play snake
  arcade play tetris --difficulty hard
  arcade play pacman --config ./my-maze.yaml
  arcade play minesweeper --seed 42`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}
	if flagConfig != "" {
		if err := config.Validate(gameID, flagConfig); err != nil {
			return err
		}
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// The game still works without storage.
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		store = nil
	}

	runErr := tui.Run(game, store, runtimeConfig(width, height), tui.GameOptions{Player: playerName()})

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}
