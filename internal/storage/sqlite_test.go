package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func save(t *testing.T, store *Store, gameID string, score int, won bool) {
	t.Helper()
	if _, err := store.SaveScore(context.Background(), ScoreEntry{GameID: gameID, Score: score, Won: won}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	_, err := store.SaveScore(ctx, ScoreEntry{
		GameID:   "snake",
		Player:   "alice",
		Score:    100,
		Duration: 1500 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	save(t, store, "snake", 50, false)
	save(t, store, "snake", 200, false)
	save(t, store, "tetris", 500, false)

	scores, err := store.TopScores(ctx, "snake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
	if scores[1].Player != "alice" || scores[1].Duration != 1500*time.Millisecond {
		t.Errorf("entry fields not round-tripped: %+v", scores[1])
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not parsed")
	}

	tetris, err := store.TopScores(ctx, "tetris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(tetris) != 1 {
		t.Errorf("Expected 1 tetris score, got %d", len(tetris))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		save(t, store, "pacman", (i+1)*100, false)
	}

	tests := []struct {
		name  string
		limit int
		count int
	}{
		{"top three", 3, 3},
		{"default limit", 0, 5},
		{"more than stored", 50, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			scores, err := store.TopScores(context.Background(), "pacman", tc.limit)
			if err != nil {
				t.Fatalf("TopScores() failed: %v", err)
			}
			if len(scores) != tc.count {
				t.Errorf("got %d scores, expected %d", len(scores), tc.count)
			}
			if scores[0].Score != 500 {
				t.Errorf("best score = %d, expected 500", scores[0].Score)
			}
		})
	}
}

func TestStoreTiesKeepInsertionOrder(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, p := range []string{"first", "second"} {
		if _, err := store.SaveScore(ctx, ScoreEntry{GameID: "snake", Player: p, Score: 30}); err != nil {
			t.Fatal(err)
		}
	}

	scores, err := store.TopScores(ctx, "snake", 2)
	if err != nil {
		t.Fatal(err)
	}
	if scores[0].Player != "first" || scores[1].Player != "second" {
		t.Errorf("tie order = %s, %s", scores[0].Player, scores[1].Player)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	high, err := store.HighScore(ctx, "minesweeper")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	save(t, store, "minesweeper", 10, false)
	save(t, store, "minesweeper", 85, true)
	save(t, store, "minesweeper", 40, false)

	high, err = store.HighScore(ctx, "minesweeper")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 85 {
		t.Errorf("Expected high score of 85, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	save(t, store, "snake", 100, false)
	save(t, store, "snake", 200, false)
	save(t, store, "tetris", 300, false)

	n, err := store.ClearScores(ctx, "snake")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("cleared %d rows, expected 2", n)
	}

	snake, _ := store.TopScores(ctx, "snake", 10)
	if len(snake) != 0 {
		t.Errorf("Expected 0 snake scores after clear, got %d", len(snake))
	}
	tetris, _ := store.TopScores(ctx, "tetris", 10)
	if len(tetris) != 1 {
		t.Error("Tetris scores should not be affected by clearing snake")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		save(t, store, "tetris", i*10, false)
	}

	scores, err := store.AllScores(context.Background(), "tetris")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	empty, err := store.GameStats(ctx, "pacman")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for empty game: %+v", empty)
	}

	save(t, store, "pacman", 100, false)
	save(t, store, "pacman", 300, true)
	save(t, store, "snake", 20, false)

	stats, err := store.GameStats(ctx, "pacman")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.Wins != 1 || stats.HighScore != 300 || stats.TotalScore != 400 || stats.AvgScore != 200 {
		t.Errorf("unexpected stats: %+v", stats)
	}

	all, err := store.AllGameStats(ctx)
	if err != nil {
		t.Fatalf("AllGameStats() failed: %v", err)
	}
	if len(all) != 2 || all["snake"].GamesCount != 1 || all["pacman"].Wins != 1 {
		t.Errorf("unexpected all-games stats: %+v", all)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandPath("~/.arcade/scores.db")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, home) || !strings.HasSuffix(got, filepath.Join(".arcade", "scores.db")) {
		t.Errorf("ExpandPath() = %q", got)
	}

	if got, _ := ExpandPath("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed: %q", got)
	}
}
