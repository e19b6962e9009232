package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/grid-arcade/internal/registry"
	"github.com/vovakirdan/grid-arcade/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the top high scores for the specified game.
Without a game, prints a summary for every game with recorded scores.

Examples:
  arcade scores
  arcade scores tetris
  arcade scores snake --limit 25
  arcade scores pacman --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the game")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		return printSummary(ctx, out, store)
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	if flagScoresClear {
		n, err := store.ClearScores(ctx, gameID)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Deleted %d scores for %s.\n", n, gameID)
		return nil
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	return printScores(ctx, out, store, gameID, game.Title(), flagScoresLimit)
}

func printScores(ctx context.Context, out io.Writer, store *storage.Store, gameID, title string, limit int) error {
	scores, err := store.TopScores(ctx, gameID, limit)
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", title)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-12s  %-6s  %-6s  %s\n", "Rank", "Score", "Player", "Result", "Time", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-12s  %-6s  %-6s  %s\n", "----", "-----", "------", "------", "----", "----")
	for i, e := range scores {
		player := e.Player
		if player == "" {
			player = "-"
		}
		result := "lost"
		if e.Won {
			result = "won"
		}
		fmt.Fprintf(out, "  %-4d  %-8d  %-12s  %-6s  %-6s  %s\n",
			i+1, e.Score, player, result, e.Duration.Round(time.Second), e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GameStats(ctx, gameID)
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d  Games: %d  Wins: %d  Avg: %.1f\n",
			stats.HighScore, stats.GamesCount, stats.Wins, stats.AvgScore)
	}
	return nil
}

func printSummary(ctx context.Context, out io.Writer, store *storage.Store) error {
	all, err := store.AllGameStats(ctx)
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintf(out, "  %-12s  %-6s  %-5s  %-8s  %-8s  %s\n", "Game", "Games", "Wins", "Best", "Avg", "Last played")
	for _, id := range ids {
		s := all[id]
		fmt.Fprintf(out, "  %-12s  %-6d  %-5d  %-8d  %-8.1f  %s\n",
			id, s.GamesCount, s.Wins, s.HighScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
