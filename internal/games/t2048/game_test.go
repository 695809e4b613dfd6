package t2048

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/board"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     seed,
	}
}

func newTestGame(mode Mode) *Game {
	g := New(mode, config.DefaultT2048Config())
	g.Reset(testRuntime(42))
	return g
}

// setBoard replaces the game board. Rows are listed top row first.
func setBoard(t *testing.T, g *Game, score int, rows ...[]int) {
	t.Helper()
	raw := make([][]int, len(rows))
	for i := range rows {
		raw[len(rows)-1-i] = rows[i]
	}
	m, err := board.NewFromValues(raw, score, 0, false, board.WithMaxPiece(g.maxPiece()))
	if err != nil {
		t.Fatalf("NewFromValues() failed: %v", err)
	}
	g.unsubscribe()
	g.model = m
	g.unsubscribe = m.Subscribe(func() { g.revision++ })
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func tileCount(g *Game) int {
	n := 0
	for _, row := range g.model.Values() {
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}
	return n
}

func TestModesRegistered(t *testing.T) {
	tests := []struct {
		id   string
		mode Mode
	}{
		{IDClassic, ModeClassic},
		{IDCampaign, ModeCampaign},
		{IDEndless, ModeEndless},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			g, err := registry.Create(tc.id, config.DefaultT2048Config())
			if err != nil {
				t.Fatalf("Create(%q) failed: %v", tc.id, err)
			}
			if g.ID() != tc.id {
				t.Errorf("ID() = %q, want %q", g.ID(), tc.id)
			}
			if got := g.(*Game).mode; got != tc.mode {
				t.Errorf("mode = %q, want %q", got, tc.mode)
			}
		})
	}
}

func TestInitialTiles(t *testing.T) {
	g := newTestGame(ModeClassic)

	if got := tileCount(g); got != 2 {
		t.Errorf("initial tiles = %d, want 2", got)
	}
	if g.model.Score() != 0 {
		t.Errorf("initial score = %d, want 0", g.model.Score())
	}
}

func TestDeterministicSpawn(t *testing.T) {
	moves := []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown, core.ActionLeft, core.ActionUp}

	play := func() Snapshot {
		g := New(ModeClassic, config.DefaultT2048Config())
		g.Reset(testRuntime(12345))
		for _, a := range moves {
			g.Step(press(a))
		}
		return g.Snapshot()
	}

	a, b := play(), play()
	if a.Score != b.Score || a.Revision != b.Revision {
		t.Errorf("same seed gave different games: %+v vs %+v", a, b)
	}
	for row := range a.Board {
		for col := range a.Board[row] {
			if a.Board[row][col] != b.Board[row][col] {
				t.Fatalf("same seed should produce the same board:\n%v\nvs\n%v", a.Board, b.Board)
			}
		}
	}
}

func TestMoveSpawnsTile(t *testing.T) {
	g := newTestGame(ModeClassic)
	setBoard(t, g, 0,
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 2},
	)

	res := g.Step(press(core.ActionLeft))

	if !res.Changed {
		t.Error("StepResult.Changed should be set after a move")
	}
	if tile, ok := g.model.Tile(0, 0); !ok || tile.Value != 2 {
		t.Errorf("tile should slide to (0, 0), got %+v", tile)
	}
	if got := tileCount(g); got != 2 {
		t.Errorf("tiles after move = %d, want 2 (one spawned)", got)
	}
}

func TestNoChangeNoSpawn(t *testing.T) {
	g := newTestGame(ModeClassic)
	setBoard(t, g, 0,
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{4, 2, 0, 0},
	)

	res := g.Step(press(core.ActionLeft))

	if res.Changed {
		t.Error("a move that changes nothing should not report a change")
	}
	if got := tileCount(g); got != 2 {
		t.Errorf("tiles = %d, want 2 (no spawn)", got)
	}
}

func TestOneMovePerTick(t *testing.T) {
	g := newTestGame(ModeEndless)
	setBoard(t, g, 0,
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 2, 0, 0},
	)

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	in.Set(core.ActionLeft)
	g.Step(in)

	if tile, ok := g.model.Tile(3, 0); !ok || tile.Value != 2 {
		t.Errorf("first pressed direction should win, board = %v", g.model.Values())
	}
}

func TestClassicWin(t *testing.T) {
	g := newTestGame(ModeClassic)
	setBoard(t, g, 0,
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{1024, 1024, 0, 0},
	)

	g.Step(press(core.ActionLeft))

	state := g.State()
	if !state.GameOver || !state.Won {
		t.Errorf("State() = %+v, want game over and won", state)
	}
	if state.Score != 2048 {
		t.Errorf("Score = %d, want 2048", state.Score)
	}
	if got := tileCount(g); got != 1 {
		t.Errorf("no tile should spawn after the winning move, tiles = %d", got)
	}
	if g.Snapshot().State != StateWin {
		t.Errorf("Snapshot State = %s, want win", g.Snapshot().State)
	}

	// Finished games ignore moves
	before := g.Snapshot()
	g.Step(press(core.ActionRight))
	if after := g.Snapshot(); after.Revision != before.Revision {
		t.Error("moves after game over should not change the board")
	}
}

func TestGameOverStuck(t *testing.T) {
	g := newTestGame(ModeClassic)
	setBoard(t, g, 300,
		[]int{2, 4, 8, 16},
		[]int{32, 64, 128, 256},
		[]int{512, 1024, 4, 8},
		[]int{16, 32, 64, 128},
	)

	g.Step(press(core.ActionLeft))

	state := g.State()
	if !state.GameOver {
		t.Error("stuck board should end the game")
	}
	if state.Won {
		t.Error("stuck board is not a win")
	}
	if g.Snapshot().State != StateGameOver {
		t.Errorf("Snapshot State = %s, want game_over", g.Snapshot().State)
	}
}

func TestBestScoreSurvivesRestart(t *testing.T) {
	g := newTestGame(ModeClassic)
	setBoard(t, g, 300,
		[]int{2, 4, 2, 4},
		[]int{4, 2, 4, 2},
		[]int{2, 4, 2, 4},
		[]int{4, 2, 4, 2},
	)
	if !g.State().GameOver {
		t.Fatal("stuck board should be over")
	}

	g.Reset(testRuntime(7))

	snap := g.Snapshot()
	if snap.Score != 0 {
		t.Errorf("Score after restart = %d, want 0", snap.Score)
	}
	if snap.MaxScore != 300 {
		t.Errorf("MaxScore after restart = %d, want 300", snap.MaxScore)
	}
	if snap.State != StatePlaying {
		t.Errorf("State after restart = %s, want playing", snap.State)
	}
}

func TestBoardSizeOverride(t *testing.T) {
	g := New(ModeEndless, config.DefaultT2048Config())
	rt := testRuntime(1)
	rt.BoardSize = 6
	g.Reset(rt)

	if g.model.Size() != 6 {
		t.Errorf("board size = %d, want 6", g.model.Size())
	}
	if len(g.Snapshot().Board) != 6 {
		t.Errorf("snapshot rows = %d, want 6", len(g.Snapshot().Board))
	}

	// Out of range sizes fall back to the configured one
	rt.BoardSize = 42
	g.Reset(rt)
	if g.model.Size() != 4 {
		t.Errorf("board size = %d, want configured 4", g.model.Size())
	}
}

func TestCampaignProgression(t *testing.T) {
	g := newTestGame(ModeCampaign)
	setBoard(t, g, 0,
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{64, 64, 0, 0},
	)

	g.Step(press(core.ActionLeft))

	if !g.levelCleared {
		t.Fatal("reaching the target should clear the level")
	}
	if !g.State().Paused {
		t.Error("level clear banner should pause the game")
	}
	if g.Snapshot().State != StateLevelCleared {
		t.Errorf("Snapshot State = %s, want level_cleared", g.Snapshot().State)
	}

	for range levelClearDelay {
		g.Step(core.NewInputFrame())
	}

	snap := g.Snapshot()
	if snap.Level != 2 || snap.Target != 256 {
		t.Errorf("after banner: level %d target %d, want level 2 target 256", snap.Level, snap.Target)
	}
	if snap.MaxTile != 128 {
		t.Errorf("board should carry over, max tile = %d", snap.MaxTile)
	}
}

func TestCampaignComplete(t *testing.T) {
	g := newTestGame(ModeCampaign)
	g.levelIndex = g.campaign.Count() - 1
	g.loadLevel()
	g.levelCleared = true

	for range levelClearDelay {
		g.Step(core.NewInputFrame())
	}

	state := g.State()
	if !state.GameOver || !state.Won {
		t.Errorf("State() = %+v, want campaign won", state)
	}
}

func TestCampaignStartLevel(t *testing.T) {
	g := New(ModeCampaign, config.DefaultT2048Config())
	g.SetStartLevel(3)
	g.Reset(testRuntime(1))

	if snap := g.Snapshot(); snap.Level != 3 || snap.Target != 512 {
		t.Errorf("start level: level %d target %d, want 3 / 512", snap.Level, snap.Target)
	}

	// The start level applies once
	g.Reset(testRuntime(1))
	if snap := g.Snapshot(); snap.Level != 1 {
		t.Errorf("restart level = %d, want 1", snap.Level)
	}
}

func TestEndlessModeNoWin(t *testing.T) {
	g := newTestGame(ModeEndless)
	setBoard(t, g, 0,
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{1024, 1024, 0, 0},
	)

	g.Step(press(core.ActionLeft))

	if g.model.MaxTile() != 2048 {
		t.Fatalf("MaxTile = %d, want 2048", g.model.MaxTile())
	}
	state := g.State()
	if state.GameOver || state.Won {
		t.Errorf("endless mode should keep going past 2048, state = %+v", state)
	}
	if g.Snapshot().Level != 0 {
		t.Error("endless mode has no level")
	}
}

func TestPauseBlocksMoves(t *testing.T) {
	g := newTestGame(ModeClassic)
	setBoard(t, g, 0,
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 2},
	)

	g.Step(press(core.ActionPause))
	if g.Snapshot().State != StatePaused {
		t.Fatalf("State = %s, want paused", g.Snapshot().State)
	}

	g.Step(press(core.ActionLeft))
	if _, ok := g.model.Tile(3, 0); !ok {
		t.Error("moves should be ignored while paused")
	}

	g.Step(press(core.ActionPause))
	g.Step(press(core.ActionLeft))
	if _, ok := g.model.Tile(0, 0); !ok {
		t.Error("moves should work after unpausing")
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := New(ModeClassic, config.DefaultT2048Config())
	rt := testRuntime(1)
	rt.ScreenW, rt.ScreenH = 20, 10
	g.Reset(rt)

	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("State = %s, want paused_small_window", g.Snapshot().State)
	}

	g.Resize(80, 24)
	if g.Snapshot().State != StatePlaying {
		t.Errorf("State after resize = %s, want playing", g.Snapshot().State)
	}
}

func TestSideFor(t *testing.T) {
	tests := []struct {
		action core.Action
		side   board.Side
		ok     bool
	}{
		{core.ActionUp, board.North, true},
		{core.ActionDown, board.South, true},
		{core.ActionLeft, board.West, true},
		{core.ActionRight, board.East, true},
		{core.ActionPause, 0, false},
	}

	for _, tc := range tests {
		side, ok := sideFor(tc.action)
		if ok != tc.ok || (ok && side != tc.side) {
			t.Errorf("sideFor(%v) = %v, %v; want %v, %v", tc.action, side, ok, tc.side, tc.ok)
		}
	}
}

func TestSpawnerOdds(t *testing.T) {
	s := newSpawner(9)
	m := board.New(4)

	for range 20 {
		if tile, _ := s.next(m, 0); tile.Value != 2 {
			t.Fatalf("prob4 0 spawned %d", tile.Value)
		}
		if tile, _ := s.next(m, 1); tile.Value != 4 {
			t.Fatalf("prob4 1 spawned %d", tile.Value)
		}
	}

	full := board.New(1)
	full.AddTile(board.Tile{Value: 2})
	if _, ok := s.next(full, 0.5); ok {
		t.Error("spawn on a full board should report false")
	}
}

func TestSnapshot(t *testing.T) {
	g := newTestGame(ModeCampaign)
	snap := g.Snapshot()

	if snap.Mode != ModeCampaign {
		t.Errorf("Snapshot Mode = %s, want campaign", snap.Mode)
	}
	if snap.Level != 1 {
		t.Errorf("Snapshot Level = %d, want 1", snap.Level)
	}
	if snap.Target != 128 {
		t.Errorf("Snapshot Target = %d, want 128", snap.Target)
	}
	if snap.State != StatePlaying {
		t.Errorf("Snapshot State = %s, want playing", snap.State)
	}
	if snap.Revision == 0 {
		t.Error("initial spawns should bump the revision")
	}
}

func TestCampaignLevels(t *testing.T) {
	c := NewCampaign(config.DefaultT2048Config().Levels)

	if c.Count() != 10 {
		t.Errorf("Count() = %d, want 10", c.Count())
	}
	levels := c.Levels()
	if levels[0].Name != "Warm-up" {
		t.Errorf("first level name = %s, want Warm-up", levels[0].Name)
	}
	if levels[4].Target != 2048 {
		t.Errorf("level 5 target = %d, want 2048", levels[4].Target)
	}
	if _, ok := c.Level(10); ok {
		t.Error("Level(10) should be out of range")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(ModeClassic)
	setBoard(t, g, 0,
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{2, 0, 0, 0},
	)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "2048") {
		t.Errorf("title row = %q", screen.Row(0))
	}

	// Bottom-left cell: board at x=25, y=4; bottom row content line is y=11
	cell := screen.GetCell(28, 11)
	if cell.Rune != '2' || cell.Color != TileColor(2) {
		t.Errorf("bottom-left tile cell = %+v, want colored '2'", cell)
	}
	if screen.Get(25, 4) != '┌' {
		t.Errorf("board corner = %q, want '┌'", screen.Get(25, 4))
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	g := newTestGame(ModeClassic)
	setBoard(t, g, 0,
		[]int{2, 4, 2, 4},
		[]int{4, 2, 4, 2},
		[]int{2, 4, 2, 4},
		[]int{4, 2, 4, 2},
	)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Errorf("game over overlay missing:\n%s", screen.String())
	}
}
