package tui

import (
	"io"
	"path/filepath"
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestModel(t *testing.T, id string, store *storage.Store, size int) Model {
	t.Helper()
	game, err := NewGame(id, 0, config.DefaultT2048Config(), quietLogger())
	if err != nil {
		t.Fatalf("NewGame(%q) failed: %v", id, err)
	}
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 40, TickRate: 30, Seed: 7, BoardSize: size}
	m := NewModel(game, store, cfg, quietLogger())
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	return update(t, m, TickMsg{loop: m.loop})
}

func snapshot(t *testing.T, m Model) t2048.Snapshot {
	t.Helper()
	g, ok := m.game.(*t2048.Game)
	if !ok {
		t.Fatalf("game is %T, want *t2048.Game", m.game)
	}
	return g.Snapshot()
}

// playUntilOver cycles through the four directions until the game ends.
func playUntilOver(t *testing.T, m Model) Model {
	t.Helper()
	keys := []rune{'w', 'a', 's', 'd'}
	for i := range 5000 {
		m = update(t, m, runeKey(keys[i%len(keys)]))
		m = tick(t, m)
		if m.GameState().GameOver {
			return m
		}
	}
	t.Fatal("game did not end")
	return m
}

func TestModelSavesScoreOnGameOver(t *testing.T) {
	store := openStore(t)
	m := newTestModel(t, t2048.IDEndless, store, 3)

	m = playUntilOver(t, m)
	// Further ticks must not save again
	m = tick(t, m)
	m = tick(t, m)

	scores, err := store.AllScores(t2048.IDEndless)
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	state := m.GameState()
	if state.Score == 0 {
		if len(scores) != 0 {
			t.Errorf("empty game should not be saved, got %d entries", len(scores))
		}
		return
	}
	if len(scores) != 1 {
		t.Fatalf("got %d saved scores, want 1", len(scores))
	}
	got := scores[0]
	if got.Score != state.Score || got.BoardSize != 3 || got.MaxTile != snapshot(t, m).MaxTile {
		t.Errorf("saved entry = %+v, state = %+v", got, state)
	}
}

func TestModelWorksWithoutStore(t *testing.T) {
	m := newTestModel(t, t2048.IDEndless, nil, 2)
	m = playUntilOver(t, m)
	if m.View() == "" {
		t.Error("View() should render the final board")
	}
}

func TestModelMoveChangesBoard(t *testing.T) {
	m := newTestModel(t, t2048.IDClassic, nil, 0)
	before := snapshot(t, m).Revision

	// Some direction always moves a board with two tiles on it
	for _, k := range []rune{'w', 'a', 's', 'd'} {
		m = update(t, m, runeKey(k))
		m = tick(t, m)
	}

	if snapshot(t, m).Revision == before {
		t.Error("moves should change the board")
	}
	if snapshot(t, m).Tick != 4 {
		t.Errorf("Tick = %d, want 4", snapshot(t, m).Tick)
	}
}

func TestModelRestart(t *testing.T) {
	m := newTestModel(t, t2048.IDEndless, nil, 3)
	m = playUntilOver(t, m)

	m = update(t, m, runeKey('r'))
	m = tick(t, m)

	if m.GameState().GameOver {
		t.Error("restart should start a new game")
	}
	snap := snapshot(t, m)
	if snap.Score != 0 || snap.Tick != 0 {
		t.Errorf("after restart score=%d tick=%d, want 0/0", snap.Score, snap.Tick)
	}
}

func TestModelResizeKeepsBoard(t *testing.T) {
	m := newTestModel(t, t2048.IDClassic, nil, 0)
	for _, k := range []rune{'a', 'w'} {
		m = update(t, m, runeKey(k))
		m = tick(t, m)
	}
	before := snapshot(t, m)

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 50})
	after := snapshot(t, m)

	if after.Score != before.Score || after.Revision != before.Revision {
		t.Errorf("resize changed the game: before %+v after %+v", before, after)
	}
	for i := range before.Board {
		if !slices.Equal(before.Board[i], after.Board[i]) {
			t.Fatalf("resize changed board row %d: %v -> %v", i, before.Board[i], after.Board[i])
		}
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	m := newTestModel(t, t2048.IDClassic, nil, 0)

	m = update(t, m, TickMsg{loop: m.loop + 1})
	if snapshot(t, m).Tick != 0 {
		t.Error("tick from another loop should be ignored")
	}

	m = tick(t, m)
	if snapshot(t, m).Tick != 1 {
		t.Error("own tick should advance the game")
	}
}

func TestModelEscape(t *testing.T) {
	t.Run("standalone pauses", func(t *testing.T) {
		m := newTestModel(t, t2048.IDClassic, nil, 0)
		m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
		m = tick(t, m)
		if !m.GameState().Paused {
			t.Error("Esc should pause")
		}

		m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
		if m.BackToMenu() {
			t.Error("standalone game has no menu to return to")
		}
	})

	t.Run("embedded returns to menu when paused", func(t *testing.T) {
		m := newTestModel(t, t2048.IDClassic, nil, 0)
		m.embedded = true

		m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
		if m.BackToMenu() {
			t.Error("first Esc should only pause")
		}
		m = tick(t, m)
		m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
		if !m.BackToMenu() {
			t.Error("Esc while paused should return to the menu")
		}
	})
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, t2048.IDClassic, nil, 0)
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if !next.(Model).IsQuitting() {
		t.Error("model should be quitting")
	}
	if next.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestNewGameStartLevel(t *testing.T) {
	game, err := NewGame(t2048.IDCampaign, 3, config.DefaultT2048Config(), quietLogger())
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}
	game.Reset(core.DefaultConfig())

	if got := game.(*t2048.Game).Snapshot().Level; got != 3 {
		t.Errorf("Level = %d, want 3", got)
	}

	if _, err := NewGame("tetris", 0, config.DefaultT2048Config(), quietLogger()); err == nil {
		t.Error("NewGame() with unknown ID should fail")
	}
}
