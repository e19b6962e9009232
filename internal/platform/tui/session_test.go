package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/grid-arcade/internal/registry"
	"github.com/vovakirdan/grid-arcade/internal/storage"
)

func init() {
	registry.Register("stub", func() registry.Game {
		return &stubGame{overAt: 1, score: 30, won: true}
	})
}

// fakeStore keeps entries in memory.
type fakeStore struct {
	fakeSaver
}

func (f *fakeStore) HighScore(_ context.Context, gameID string) (int, error) {
	best := 0
	for _, e := range f.entries {
		if e.GameID == gameID {
			best = max(best, e.Score)
		}
	}
	return best, nil
}

func (f *fakeStore) TopScores(_ context.Context, gameID string, _ int) ([]storage.ScoreEntry, error) {
	var out []storage.ScoreEntry
	for _, e := range f.entries {
		if e.GameID == gameID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeStore) GameStats(ctx context.Context, gameID string) (*storage.GameStats, error) {
	scores, _ := f.TopScores(ctx, gameID, 0)
	stats := &storage.GameStats{GameID: gameID, GamesCount: len(scores)}
	for _, e := range scores {
		if e.Won {
			stats.Wins++
		}
		stats.HighScore = max(stats.HighScore, e.Score)
	}
	return stats, nil
}

func send(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm, cmd
}

func TestSessionPlayAndReturn(t *testing.T) {
	store := &fakeStore{}
	m := NewSessionModel(store, testConfig(), "bob", nil)
	if m.ID() == "" {
		t.Fatal("session needs an ID")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != modeGame || m.game == nil {
		t.Fatal("enter should start the selected game")
	}

	m, _ = send(t, m, TickMsg{Loop: m.game.loop})
	if !m.game.State().GameOver {
		t.Fatal("stub game should end after one step")
	}
	if len(store.entries) != 1 || store.entries[0].Player != "bob" {
		t.Fatalf("expected one saved score for bob, got %+v", store.entries)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != modeMenu {
		t.Fatal("back after game over should return to the menu")
	}
	if !strings.Contains(m.View(), "30") {
		t.Error("menu should show the new best score")
	}
}

func TestSessionScoreboard(t *testing.T) {
	store := &fakeStore{}
	store.entries = []storage.ScoreEntry{{GameID: "stub", Player: "eve", Score: 77, Won: true}}
	m := NewSessionModel(store, testConfig(), "eve", nil)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.mode != modeScores {
		t.Fatal("tab should open the scoreboard")
	}
	if view := m.View(); !strings.Contains(view, "77") || !strings.Contains(view, "Wins: 1") {
		t.Errorf("scoreboard view missing score or stats:\n%s", view)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != modeMenu {
		t.Fatal("esc should return to the menu")
	}

	m, cmd := send(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Error("q should quit the session")
	}
}

func TestSessionWithoutStore(t *testing.T) {
	m := NewSessionModel(storeFor(nil), testConfig(), "", nil)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !strings.Contains(m.View(), "unavailable") {
		t.Error("scoreboard should explain missing storage")
	}
}
