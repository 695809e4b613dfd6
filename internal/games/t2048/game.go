// Package t2048 turns the 2048 board into playable arcade modes:
// classic, campaign and endless.
package t2048

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/board"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic  Mode = "classic"
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// Registry IDs, also used as score table keys.
const (
	IDClassic  = "2048"
	IDCampaign = "2048_campaign"
	IDEndless  = "2048_endless"
)

// levelClearDelay is how many ticks the level-cleared banner stays up.
const levelClearDelay = 120

var modes = []struct {
	mode Mode
	info registry.GameInfo
}{
	{ModeClassic, registry.GameInfo{ID: IDClassic, Title: "2048", Description: "Reach the 2048 tile"}},
	{ModeCampaign, registry.GameInfo{ID: IDCampaign, Title: "2048 (Campaign)", Description: "Climb through levels with rising targets"}},
	{ModeEndless, registry.GameInfo{ID: IDEndless, Title: "2048 (Endless)", Description: "No winning tile, play until stuck"}},
}

func init() {
	for _, m := range modes {
		registry.Register(m.info, func(cfg config.T2048Config) registry.Game {
			return New(m.mode, cfg)
		})
	}
}

// Game is one 2048 session in a given mode.
type Game struct {
	mode       Mode
	cfg        config.T2048Config
	campaign   Campaign
	difficulty *config.DifficultyManager
	logger     *log.Logger

	spawner *spawner
	tick    uint64

	model       *board.Model
	unsubscribe func()
	revision    uint64

	levelIndex int
	startLevel int // 1-based level to start the next Reset at, 0 for the first
	target     int
	spawn4     float64

	screenW int
	screenH int

	levelCleared    bool
	campaignWon     bool
	paused          bool
	tooSmall        bool
	levelClearTicks int
}

// New creates a game in the given mode.
func New(mode Mode, cfg config.T2048Config) *Game {
	return &Game{
		mode:       mode,
		cfg:        cfg,
		campaign:   NewCampaign(cfg.Levels),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		logger:     log.Default().WithPrefix(string(mode)),
	}
}

// SetLogger replaces the logger used for game events.
func (g *Game) SetLogger(l *log.Logger) {
	g.logger = l
}

// SetStartLevel sets the campaign level (1-based) the next Reset starts at.
// It applies once; later restarts begin at the first level again.
func (g *Game) SetStartLevel(level int) {
	g.startLevel = level
}

// ID returns the game identifier.
func (g *Game) ID() string {
	switch g.mode {
	case ModeCampaign:
		return IDCampaign
	case ModeEndless:
		return IDEndless
	default:
		return IDClassic
	}
}

// Title returns the display name.
func (g *Game) Title() string {
	for _, m := range modes {
		if m.mode == g.mode {
			return m.info.Title
		}
	}
	return "2048"
}

// Reset initializes/restarts the game. The best score survives restarts
// as long as the board size stays the same.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.spawner = newSpawner(cfg.Seed)
	g.tick = 0
	g.levelCleared = false
	g.campaignWon = false
	g.paused = false
	g.levelClearTicks = 0

	size := g.cfg.Board.Size
	if cfg.BoardSize >= 2 && cfg.BoardSize <= config.MaxBoardSize {
		size = cfg.BoardSize
	}
	g.resetModel(size)

	g.levelIndex = 0
	if g.mode == ModeCampaign && g.startLevel > 0 && g.startLevel <= g.campaign.Count() {
		g.levelIndex = g.startLevel - 1
	}
	g.startLevel = 0
	g.loadLevel()

	for range g.cfg.Spawn.Initial {
		g.spawnTile()
	}

	g.Resize(cfg.ScreenW, cfg.ScreenH)
	g.logger.Debug("game reset", "seed", cfg.Seed, "size", size, "level", g.levelIndex+1)
}

// resetModel clears the board, keeping the model and its best score when
// the size is unchanged.
func (g *Game) resetModel(size int) {
	if g.model != nil && g.model.Size() == size {
		g.model.Clear()
		return
	}

	maxScore := 0
	if g.model != nil {
		maxScore = g.model.MaxScore()
		g.unsubscribe()
	}

	empty := make([][]int, size)
	for i := range empty {
		empty[i] = make([]int, size)
	}
	m, err := board.NewFromValues(empty, 0, maxScore, false, board.WithMaxPiece(g.maxPiece()))
	if err != nil {
		// An empty square snapshot is always valid
		panic(err)
	}
	g.model = m
	g.unsubscribe = m.Subscribe(func() { g.revision++ })
}

// maxPiece is the tile that ends the game. Only classic mode stops at it.
func (g *Game) maxPiece() int {
	if g.mode == ModeClassic {
		return g.cfg.Board.MaxPiece
	}
	return 0
}

// loadLevel sets up the current level parameters.
func (g *Game) loadLevel() {
	if g.mode != ModeCampaign {
		g.target = 0
		g.spawn4 = g.cfg.Spawn.Prob4
		return
	}

	level, ok := g.campaign.Level(g.levelIndex)
	if !ok {
		g.target = 0
		g.spawn4 = g.cfg.Spawn.Prob4
		return
	}
	g.target = level.Target
	g.spawn4 = level.Spawn4
}

// spawnTile adds a random tile using the current, difficulty-scaled odds.
func (g *Game) spawnTile() {
	prob4 := g.difficulty.Spawn4(g.spawn4, g.model.Score(), int(g.tick))
	tile, ok := g.spawner.next(g.model, prob4)
	if !ok {
		return
	}
	if err := g.model.AddTile(tile); err != nil {
		g.logger.Error("spawn failed", "col", tile.Col, "row", tile.Row, "value", tile.Value, "err", err)
		return
	}
	g.logger.Debug("spawn", "col", tile.Col, "row", tile.Row, "value", tile.Value)
}

// Resize records new screen dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	minW, minH := g.minScreenSize()
	g.tooSmall = w < minW || h < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	before := g.revision
	result := func() core.StepResult {
		return core.StepResult{State: g.State(), Changed: g.revision != before}
	}

	if g.tooSmall {
		return result()
	}

	if in.Has(core.ActionPause) && !g.isOver() {
		g.paused = !g.paused
	}
	if g.paused {
		return result()
	}

	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= levelClearDelay {
			g.advanceLevel()
		}
		return result()
	}

	if g.isOver() {
		return result()
	}

	if side, ok := sideFor(in.First(core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight)); ok {
		g.processMove(side)
	}
	return result()
}

// sideFor maps a movement action to the side the board tilts toward.
func sideFor(a core.Action) (board.Side, bool) {
	switch a {
	case core.ActionUp:
		return board.North, true
	case core.ActionDown:
		return board.South, true
	case core.ActionLeft:
		return board.West, true
	case core.ActionRight:
		return board.East, true
	}
	return 0, false
}

// processMove tilts the board and spawns a tile if anything moved.
func (g *Game) processMove(side board.Side) {
	if !g.model.Tilt(side) {
		if g.model.IsOver() {
			g.logger.Debug("game over", "score", g.model.Score(), "max_tile", g.model.MaxTile())
		}
		return
	}
	g.logger.Debug("tilt", "side", side, "score", g.model.Score())

	if g.model.IsOver() {
		g.logger.Debug("game over", "score", g.model.Score(), "won", g.model.Won())
		return
	}

	g.spawnTile()

	if g.mode == ModeCampaign && g.target > 0 && g.model.MaxTile() >= g.target {
		g.levelCleared = true
		g.levelClearTicks = 0
		g.logger.Debug("level cleared", "level", g.levelIndex+1, "target", g.target)
		return
	}

	if g.model.IsOver() {
		g.logger.Debug("game over", "score", g.model.Score(), "max_tile", g.model.MaxTile())
	}
}

// advanceLevel moves to the next level, keeping the board and score.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.levelClearTicks = 0

	if g.levelIndex >= g.campaign.Count()-1 {
		g.campaignWon = true
		g.logger.Debug("campaign complete", "score", g.model.Score())
		return
	}

	g.levelIndex++
	g.loadLevel()
}

func (g *Game) isOver() bool {
	return g.campaignWon || g.model.IsOver()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.model.Score(),
		GameOver: g.isOver(),
		Won:      g.campaignWon || g.model.Won(),
		Paused:   g.paused || g.tooSmall || g.levelCleared,
	}
}
