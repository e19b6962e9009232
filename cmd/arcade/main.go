// arcade runs Snake, Tetris, Pac-Man and Minesweeper in the terminal.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores for a game
//	arcade shot <game>       - Render a seeded game to PNG
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: $ARCADE_DB or ~/.arcade/scores.db)
//	--config <path>       - Game config YAML overriding the search path
//	--difficulty <preset> - easy, normal, hard or fixed
//
// Settings are also read from a .env file in the working directory.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"

	// Import games to register them
	_ "github.com/vovakirdan/grid-arcade/internal/games/minesweeper"
	_ "github.com/vovakirdan/grid-arcade/internal/games/pacman"
	_ "github.com/vovakirdan/grid-arcade/internal/games/snake"
	_ "github.com/vovakirdan/grid-arcade/internal/games/tetris"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string

	env    config.Env
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Grid Arcade - Snake, Tetris, Pac-Man and Minesweeper in your terminal",
	Long: `Grid Arcade is a terminal gaming platform for four classic grid games.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  shot     - Render a seeded game to a PNG image

Examples:
  arcade list
  arcade play tetris
  arcade play minesweeper --difficulty hard
  arcade menu
  arcade serve --ssh :2222
  arcade scores snake`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		env = config.LoadEnv()

		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "arcade",
		})
		level, err := log.ParseLevel(env.LogLevel)
		if err != nil {
			logger.Warn("unknown log level, using info", "level", env.LogLevel)
			level = log.InfoLevel
		}
		logger.SetLevel(level)

		if flagDBPath == "" {
			flagDBPath = env.DBPath
		}
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default $ARCADE_DB or ~/.arcade/scores.db)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(shotCmd)
}

// runtimeConfig builds the per-game runtime settings from global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   flagFPS,
		Seed:       flagSeed,
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
	}
}

// playerName returns the local user recorded with scores.
func playerName() string {
	for _, key := range []string{"USER", "USERNAME"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return "local"
}
