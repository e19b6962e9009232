package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/platform/tui"
	"github.com/vovakirdan/grid-arcade/internal/storage"
)

var flagWatch bool

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game and Tab to
browse high scores. After a game ends, Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Scoreboard
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --db ./scores.db`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagWatch, "watch", true, "Reload game configs when YAML files change")
}

func runMenu(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	width, height := 80, 24
	if w, h, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil {
		width, height = w, h
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	if flagWatch {
		// Logs would corrupt the alternate screen, so errors are dropped.
		go config.NewWatcher(config.Shared, config.DefaultDirs()...).Run(ctx) //nolint:errcheck
	}

	return tui.RunSession(store, runtimeConfig(width, height), playerName(), nil)
}
