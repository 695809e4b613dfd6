package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewScores
)

// SessionModel manages the full flow of one player: menu -> game -> menu,
// with the scoreboard reachable from the menu. It is the top-level model
// of SSH sessions and of the interactive local mode.
type SessionModel struct {
	store    *storage.Store
	config   core.RuntimeConfig
	gameCfg  config.T2048Config
	logger   *log.Logger
	view     sessionView
	menu     MenuModel
	game     *Model
	scores   *ScoreboardModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, gameCfg config.T2048Config, logger *log.Logger) SessionModel {
	return SessionModel{
		store:   store,
		config:  cfg,
		gameCfg: gameCfg,
		logger:  logger,
		menu:    NewMenuModel(cfg, gameCfg),
	}
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

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode. Commands returned by the
// menu on a transition are dropped since they only end its own program.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		scores := NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.scores = &scores
		m.view = viewScores
		return m, scores.Init()

	case m.menu.Selected() != nil:
		sel := m.menu.Selected()
		game, err := NewGame(sel.GameID, sel.Level, m.gameCfg, m.logger)
		if err != nil {
			m.logger.Error("could not create game", "game", sel.GameID, "err", err)
			m.backToMenu()
			return m, nil
		}

		gm := NewModel(game, m.store, m.config, m.logger)
		gm.embedded = true
		// A fixed seed applies to the first game only
		m.config.Seed = 0
		m.game = &gm
		m.view = viewGame
		return m, gm.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		m.backToMenu()
		return m, nil
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is open.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if scores, ok := newModel.(ScoreboardModel); ok {
		m.scores = &scores
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		m.backToMenu()
		return m, nil
	}

	return m, cmd
}

func (m *SessionModel) backToMenu() {
	m.game = nil
	m.scores = nil
	m.menu = NewMenuModel(m.config, m.gameCfg)
	m.view = viewMenu
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.game.View()
	case viewScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(store *storage.Store, cfg core.RuntimeConfig, gameCfg config.T2048Config, logger *log.Logger) error {
	p := tea.NewProgram(
		NewSessionModel(store, cfg, gameCfg, logger),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
