package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// resizer is implemented by games that can follow the terminal size
// without restarting.
type resizer interface {
	Resize(w, h int)
}

// NewGame creates a registered game. level is the 1-based campaign level to
// start at, 0 for the first.
func NewGame(id string, level int, cfg config.T2048Config, logger *log.Logger) (registry.Game, error) {
	game, err := registry.Create(id, cfg)
	if err != nil {
		return nil, err
	}
	if g, ok := game.(*t2048.Game); ok {
		g.SetLogger(logger.WithPrefix(id))
		if level > 0 {
			g.SetStartLevel(level)
		}
	}
	return game, nil
}

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	logger     *log.Logger
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	loop       uint64
	frame      string
	dirty      bool
	embedded   bool // Esc leaves to the menu instead of only pausing
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		logger:     logger,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		loop:       nextLoop(),
		dirty:      true,
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		if m.embedded && (m.gameState.GameOver || m.gameState.Paused) {
			m.backToMenu = true
			return m, nil
		}
		m.inputFrame.Set(core.ActionPause)
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize keeps the game running at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	m.redraw()
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		m.restart()
		return m, tickCmd(m.config.TickRate, m.loop)
	}

	result := m.game.Step(m.inputFrame)
	if result.Changed || result.State != m.gameState {
		m.dirty = true
	}
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	if m.dirty {
		m.redraw()
	}

	return m, tickCmd(m.config.TickRate, m.loop)
}

// restart starts a fresh game with a new seed.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.scoreSaved = false
	m.inputFrame.Clear()
	m.logger.Info("game restarted", "game", m.game.ID(), "seed", m.config.Seed)
	m.redraw()
}

// result describes the finished game for storage.
func (m *Model) result() storage.Result {
	r := storage.Result{
		GameID: m.game.ID(),
		Score:  m.gameState.Score,
		Won:    m.gameState.Won,
	}
	if g, ok := m.game.(*t2048.Game); ok {
		snap := g.Snapshot()
		r.MaxTile = snap.MaxTile
		r.BoardSize = len(snap.Board)
	}
	return r
}

// saveScore stores the finished game. Empty games are not recorded.
func (m *Model) saveScore() {
	r := m.result()
	m.logger.Info("game over", "game", r.GameID, "score", r.Score, "max_tile", r.MaxTile, "won", r.Won)

	if m.store == nil || r.Score == 0 {
		return
	}
	if _, err := m.store.SaveScore(r); err != nil {
		m.logger.Error("could not save score", "game", r.GameID, "err", err)
	}
}

func (m *Model) redraw() {
	m.game.Render(m.screen)
	m.frame = RenderScreen(m.screen)
	m.dirty = false
}

// saveScreenshot saves the current screen to ~/.t2048/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir, err := storage.ExpandPath("~/.t2048/screenshots")
	if err == nil {
		err = os.MkdirAll(dir, 0o755)
	}
	if err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.frame == "" {
		m.game.Render(m.screen)
		return RenderScreen(m.screen)
	}
	return m.frame
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// GameState returns the state reported by the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts a Bubble Tea program playing a single game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
