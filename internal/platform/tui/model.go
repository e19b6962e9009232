package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/imgexport"
	"github.com/vovakirdan/grid-arcade/internal/metrics"
	"github.com/vovakirdan/grid-arcade/internal/registry"
	"github.com/vovakirdan/grid-arcade/internal/storage"
)

// ScoreSaver persists finished games.
type ScoreSaver interface {
	SaveScore(ctx context.Context, e storage.ScoreEntry) (int64, error)
}

// ScoreStore is the storage surface read and written by the UI.
type ScoreStore interface {
	ScoreSaver
	HighScore(ctx context.Context, gameID string) (int, error)
	TopScores(ctx context.Context, gameID string, limit int) ([]storage.ScoreEntry, error)
	GameStats(ctx context.Context, gameID string) (*storage.GameStats, error)
}

// storeFor avoids wrapping a nil store in a non-nil interface.
func storeFor(store *storage.Store) ScoreStore {
	if store == nil {
		return nil
	}
	return store
}

// GameOptions tunes a GameModel.
type GameOptions struct {
	Player        string      // recorded with saved scores
	ScreenshotDir string      // defaults to ~/.arcade/screenshots
	Logger        *log.Logger // defaults to a discarding logger
	Embedded      bool        // Back returns to the caller instead of quitting
}

// DefaultScreenshotDir returns ~/.arcade/screenshots, or a relative
// directory if the home directory is unknown.
func DefaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".arcade", "screenshots")
	}
	return filepath.Join(home, ".arcade", "screenshots")
}

const saveTimeout = 2 * time.Second

// GameModel is the Bubble Tea model that runs one game.
type GameModel struct {
	game   registry.Game
	screen *core.Screen
	store  ScoreSaver
	config core.RuntimeConfig
	keys   KeyMap
	opts   GameOptions
	logger *log.Logger

	input    core.InputFrame
	state    core.GameState
	loop     uint64
	ticks    uint64 // simulated steps in the current round
	recorded bool   // current round already saved

	notice     string
	noticeLeft int

	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for the given game.
func NewGameModel(game registry.Game, store ScoreSaver, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = DefaultScreenshotDir()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)
	metrics.GameStarted(game.ID())

	return GameModel{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		keys:   DefaultKeyMap(),
		opts:   opts,
		logger: logger,
		input:  core.NewInputFrame(),
		state:  game.State(),
		loop:   nextLoop(),
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("screenshot failed", "game", m.game.ID(), "error", err)
			m.setNotice("Screenshot failed")
		} else {
			m.logger.Info("screenshot saved", "game", m.game.ID(), "path", path)
			m.setNotice("Saved " + filepath.Base(path))
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		if m.state.GameOver || m.state.Paused {
			if m.opts.Embedded {
				m.backToMenu = true
				return m, nil
			}
			m.quitting = true
			return m, tea.Quit
		}
	case core.ActionNone:
	default:
		m.input.Set(action)
	}

	return m, nil
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.state.GameOver

	result := m.game.Step(m.input)
	m.state = result.State
	m.input.Clear()

	if wasOver && !m.state.GameOver {
		m.ticks = 0
		m.recorded = false
		metrics.GameStarted(m.game.ID())
	}
	if !m.state.GameOver && !m.state.Paused {
		m.ticks++
	}
	if m.state.GameOver && !m.recorded {
		m.record()
		m.recorded = true
	}

	if m.noticeLeft > 0 {
		m.noticeLeft--
	}

	return m, tickCmd(m.config.TickRate, m.loop)
}

// record stores the finished round. Zero scores are counted in metrics
// but not saved.
func (m *GameModel) record() {
	id := m.game.ID()
	metrics.GameFinished(id, m.state.Score, m.state.Won)
	m.logger.Info("game finished", "game", id, "player", m.opts.Player, "score", m.state.Score, "won", m.state.Won)

	if m.store == nil || m.state.Score <= 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	_, err := m.store.SaveScore(ctx, storage.ScoreEntry{
		GameID:   id,
		Player:   m.opts.Player,
		Score:    m.state.Score,
		Won:      m.state.Won,
		Duration: time.Duration(m.ticks) * m.config.StepDuration(),
	})
	if err != nil {
		m.logger.Error("could not save score", "game", id, "error", err)
	}
}

// saveScreenshot writes the current frame as text and PNG.
// Returns the PNG path.
func (m *GameModel) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot dir: %w", err)
	}

	base := filepath.Join(m.opts.ScreenshotDir,
		fmt.Sprintf("%s_%s", m.game.ID(), time.Now().Format("20060102_150405")))

	if err := os.WriteFile(base+".txt", []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	if err := imgexport.SavePNG(m.screen, base+".png", imgexport.DefaultOptions()); err != nil {
		return "", err
	}
	return base + ".png", nil
}

func (m *GameModel) setNotice(text string) {
	m.notice = text
	m.noticeLeft = 2 * m.config.TickRate
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.noticeLeft > 0 && m.screen.Height() > 0 {
		m.screen.DrawText(0, m.screen.Height()-1, " "+m.notice)
	}
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.state
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the terminal until the user quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) error {
	model := NewGameModel(game, storeFor(store), cfg, opts)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
