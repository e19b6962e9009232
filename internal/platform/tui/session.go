package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/registry"
	"github.com/vovakirdan/grid-arcade/internal/storage"
)

type screenMode int

const (
	modeMenu screenMode = iota
	modeGame
	modeScores
)

// SessionModel manages the full arcade flow: menu -> game -> menu,
// with the scoreboard reachable from the menu. Local menu play and
// SSH sessions both run it.
type SessionModel struct {
	store    ScoreStore
	config   core.RuntimeConfig
	player   string
	id       string
	logger   *log.Logger
	mode     screenMode
	menu     MenuModel
	game     *GameModel
	board    *ScoreboardModel
	focus    string // last game visited, keeps the menu cursor in place
	quitting bool
}

// NewSessionModel creates a session for player. A nil logger discards output.
func NewSessionModel(store ScoreStore, cfg core.RuntimeConfig, player string, logger *log.Logger) SessionModel {
	id := uuid.NewString()
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return SessionModel{
		store:  store,
		config: cfg,
		player: player,
		id:     id,
		logger: logger.With("session", id),
		menu:   NewMenuModel(store, cfg.ScreenW, cfg.ScreenH, ""),
	}
}

// ID returns the session identifier.
func (m SessionModel) ID() string {
	return m.id
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.mode {
	case modeGame:
		return m.updateGame(msg)
	case modeScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		board := NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH, m.menu.Cursor())
		m.board = &board
		m.mode = modeScores
		return m, board.Init()

	case m.menu.Selected() != nil:
		gameID := m.menu.Selected().GameID
		game, err := registry.Create(gameID)
		if err != nil {
			m.logger.Error("cannot create game", "game", gameID, "error", err)
			m.menu = NewMenuModel(m.store, m.config.ScreenW, m.config.ScreenH, gameID)
			return m, nil
		}

		m.logger.Info("game selected", "game", gameID, "player", m.player)
		gm := NewGameModel(game, m.store, m.config, GameOptions{
			Player:   m.player,
			Logger:   m.logger,
			Embedded: true,
		})
		m.game = &gm
		m.focus = gameID
		m.mode = modeGame
		return m, gm.Init()
	}

	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(GameModel); ok {
		m.game = &gm
	}

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.game.BackToMenu():
		m.toMenu()
		return m, m.menu.Init()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.board.Update(msg)
	if board, ok := next.(ScoreboardModel); ok {
		m.board = &board
	}

	switch {
	case m.board.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.board.IsGoingBack():
		m.focus = m.board.Current()
		m.toMenu()
		return m, m.menu.Init()
	}
	return m, cmd
}

// toMenu rebuilds the menu so best scores reflect the finished game.
func (m *SessionModel) toMenu() {
	m.game = nil
	m.board = nil
	m.mode = modeMenu
	m.menu = NewMenuModel(m.store, m.config.ScreenW, m.config.ScreenH, m.focus)
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.mode {
	case modeGame:
		return m.game.View()
	case modeScores:
		return m.board.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu-driven arcade in the local terminal.
func RunSession(store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) error {
	model := NewSessionModel(storeFor(store), cfg, player, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
