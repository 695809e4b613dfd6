package board

import (
	"errors"
	"strings"
	"testing"
)

// modelFromRows builds a model from rows listed top row first.
func modelFromRows(t *testing.T, score, maxScore int, over bool, rows ...[]int) *Model {
	t.Helper()
	raw := make([][]int, len(rows))
	for i := range rows {
		raw[len(rows)-1-i] = rows[i]
	}
	m, err := NewFromValues(raw, score, maxScore, over)
	if err != nil {
		t.Fatalf("NewFromValues() failed: %v", err)
	}
	return m
}

func countNotifications(m *Model) *int {
	n := 0
	m.Subscribe(func() { n++ })
	return &n
}

func TestNewModel(t *testing.T) {
	m := New(4)

	if m.Size() != 4 {
		t.Errorf("Size() = %d, want 4", m.Size())
	}
	if m.Score() != 0 || m.MaxScore() != 0 {
		t.Errorf("new model score = %d/%d, want 0/0", m.Score(), m.MaxScore())
	}
	if m.IsOver() {
		t.Error("empty board should not be over")
	}
	if m.MaxPiece() != MaxPiece {
		t.Errorf("MaxPiece() = %d, want %d", m.MaxPiece(), MaxPiece)
	}
	if len(m.EmptyCells()) != 16 {
		t.Errorf("EmptyCells() = %d, want 16", len(m.EmptyCells()))
	}
}

func TestNewFromValuesBottomRowFirst(t *testing.T) {
	raw := [][]int{
		{2, 0, 0, 0}, // row 0 (bottom)
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 4},
	}
	m, err := NewFromValues(raw, 12, 40, false)
	if err != nil {
		t.Fatalf("NewFromValues() failed: %v", err)
	}

	if tile, ok := m.Tile(0, 0); !ok || tile.Value != 2 {
		t.Errorf("Tile(0, 0) = %+v, want value 2", tile)
	}
	if tile, ok := m.Tile(3, 3); !ok || tile.Value != 4 {
		t.Errorf("Tile(3, 3) = %+v, want value 4", tile)
	}
	if m.Score() != 12 || m.MaxScore() != 40 {
		t.Errorf("scores = %d/%d, want 12/40", m.Score(), m.MaxScore())
	}
	if !equalRows(m.Values(), raw) {
		t.Errorf("Values() = %v, want %v", m.Values(), raw)
	}
}

func TestNewFromValuesRejects(t *testing.T) {
	tests := []struct {
		name string
		raw  [][]int
	}{
		{"empty", [][]int{}},
		{"ragged", [][]int{{2, 0}, {0}}},
		{"not power of two", [][]int{{3, 0}, {0, 0}}},
		{"negative", [][]int{{-2, 0}, {0, 0}}},
		{"one", [][]int{{1, 0}, {0, 0}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewFromValues(tc.raw, 0, 0, false); !errors.Is(err, ErrInvalidValue) {
				t.Errorf("NewFromValues(%v) error = %v, want ErrInvalidValue", tc.raw, err)
			}
		})
	}

	if _, err := NewFromValues([][]int{{2}}, -1, 0, false); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("negative score error = %v, want ErrInvalidValue", err)
	}
}

func TestModelTiltScenarios(t *testing.T) {
	tests := []struct {
		name  string
		row   []int
		want  []int
		score int
	}{
		{"pair", []int{2, 2, 0, 0}, []int{4, 0, 0, 0}, 4},
		{"triple", []int{2, 2, 2, 0}, []int{4, 2, 0, 0}, 4},
		{"quad", []int{2, 2, 2, 2}, []int{4, 4, 0, 0}, 8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := modelFromRows(t, 0, 0, false,
				[]int{0, 0, 0, 0},
				[]int{0, 0, 0, 0},
				[]int{0, 0, 0, 0},
				tc.row,
			)

			if !m.Tilt(West) {
				t.Fatal("Tilt(West) should report a change")
			}
			got := m.Values()[0]
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Fatalf("row = %v, want %v", got, tc.want)
				}
			}
			if m.Score() != tc.score {
				t.Errorf("Score() = %d, want %d", m.Score(), tc.score)
			}
		})
	}
}

func TestModelAddTileOccupied(t *testing.T) {
	m := New(4)
	if err := m.AddTile(Tile{Value: 2, Col: 1, Row: 1}); err != nil {
		t.Fatalf("AddTile() failed: %v", err)
	}
	notified := countNotifications(m)
	before := m.Values()

	err := m.AddTile(Tile{Value: 4, Col: 1, Row: 1})
	if !errors.Is(err, ErrOccupiedCell) {
		t.Fatalf("AddTile() on occupied cell error = %v, want ErrOccupiedCell", err)
	}
	if !equalRows(before, m.Values()) {
		t.Error("rejected AddTile() should not change the board")
	}
	if *notified != 0 {
		t.Errorf("rejected AddTile() sent %d notifications, want 0", *notified)
	}
}

func TestModelAddTileOutOfRange(t *testing.T) {
	m := New(4)
	if err := m.AddTile(Tile{Value: 2, Col: 4, Row: 0}); !errors.Is(err, ErrInvalidPosition) {
		t.Errorf("AddTile() outside board error = %v, want ErrInvalidPosition", err)
	}
	if _, ok := m.Tile(4, 0); ok {
		t.Error("Tile() outside board should report no tile")
	}
}

func TestModelNotifications(t *testing.T) {
	m := New(4)
	notified := countNotifications(m)

	m.AddTile(Tile{Value: 2, Col: 0, Row: 0})
	m.AddTile(Tile{Value: 2, Col: 3, Row: 0})
	if *notified != 2 {
		t.Fatalf("after two AddTile() calls: %d notifications, want 2", *notified)
	}

	// One merge and a slide are coalesced into one notification
	m.Tilt(West)
	if *notified != 3 {
		t.Errorf("after Tilt(): %d notifications, want 3", *notified)
	}

	// No-op tilt
	m.Tilt(West)
	if *notified != 3 {
		t.Errorf("no-op Tilt() should not notify, got %d", *notified)
	}

	// Reads never notify
	m.Tile(0, 0)
	m.Score()
	m.IsOver()
	m.String()
	if *notified != 3 {
		t.Errorf("read accessors notified: %d, want 3", *notified)
	}

	m.Clear()
	if *notified != 4 {
		t.Errorf("after Clear(): %d notifications, want 4", *notified)
	}

	// Clearing an empty game changes nothing
	m.Clear()
	if *notified != 4 {
		t.Errorf("Clear() of a fresh game should not notify, got %d", *notified)
	}
}

func TestModelUnsubscribe(t *testing.T) {
	m := New(2)
	first, second := 0, 0
	unsubscribe := m.Subscribe(func() { first++ })
	m.Subscribe(func() { second++ })

	m.AddTile(Tile{Value: 2, Col: 0, Row: 0})
	unsubscribe()
	m.AddTile(Tile{Value: 2, Col: 1, Row: 0})

	if first != 1 {
		t.Errorf("unsubscribed callback ran %d times, want 1", first)
	}
	if second != 2 {
		t.Errorf("remaining callback ran %d times, want 2", second)
	}
}

func TestModelMaxTileEndsGame(t *testing.T) {
	m := modelFromRows(t, 100, 0, false,
		[]int{1024, 1024, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 2},
	)
	if m.IsOver() {
		t.Fatal("game should not be over yet")
	}

	m.Tilt(West)

	if !m.IsOver() {
		t.Error("game should be over once 2048 appears")
	}
	if !m.Won() {
		t.Error("Won() should be true with a 2048 tile")
	}
	if m.Score() != 100+2048 {
		t.Errorf("Score() = %d, want %d", m.Score(), 100+2048)
	}
	if m.MaxScore() != m.Score() {
		t.Errorf("MaxScore() = %d, want %d", m.MaxScore(), m.Score())
	}
}

func TestModelStuckBoardEndsGame(t *testing.T) {
	m := modelFromRows(t, 0, 0, false,
		[]int{2, 4, 2, 4},
		[]int{4, 2, 4, 2},
		[]int{2, 4, 2, 4},
		[]int{4, 2, 4, 0},
	)
	if err := m.AddTile(Tile{Value: 2, Col: 3, Row: 0}); err != nil {
		t.Fatalf("AddTile() failed: %v", err)
	}
	if !m.IsOver() {
		t.Error("full board with no equal neighbours should be over")
	}
	if m.Won() {
		t.Error("stuck game is not a win")
	}
}

func TestModelMaxScoreUpdatedOnTransition(t *testing.T) {
	m := modelFromRows(t, 500, 300, false,
		[]int{2, 4, 2, 4},
		[]int{4, 2, 4, 2},
		[]int{2, 4, 2, 4},
		[]int{4, 2, 4, 2},
	)
	if m.MaxScore() != 300 {
		t.Fatalf("MaxScore() before terminal check = %d, want 300", m.MaxScore())
	}

	if !m.IsOver() {
		t.Fatal("stuck board should be over")
	}
	if m.MaxScore() != 500 {
		t.Errorf("MaxScore() after game over = %d, want 500", m.MaxScore())
	}

	// Max score survives a new game
	m.Clear()
	if m.MaxScore() != 500 {
		t.Errorf("MaxScore() after Clear() = %d, want 500", m.MaxScore())
	}
	if m.Score() != 0 || m.IsOver() {
		t.Error("Clear() should reset the score and the terminal flag")
	}
}

func TestModelTerminalIsSticky(t *testing.T) {
	m := modelFromRows(t, 0, 0, false,
		[]int{2048, 2048, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
	)
	if !m.IsOver() {
		t.Fatal("board with 2048 should be over")
	}

	notified := countNotifications(m)
	if m.Tilt(West) {
		t.Error("Tilt() on a finished game should be a no-op")
	}
	if *notified != 0 {
		t.Errorf("Tilt() on a finished game notified %d times", *notified)
	}
	if !m.IsOver() {
		t.Error("finished game should stay over")
	}
}

func TestModelOverFlagHonoured(t *testing.T) {
	m := modelFromRows(t, 64, 32, true,
		[]int{2, 0},
		[]int{0, 0},
	)
	if !m.IsOver() {
		t.Error("model built as over should be over")
	}
	if m.MaxScore() != 64 {
		t.Errorf("MaxScore() = %d, want 64", m.MaxScore())
	}
	if m.Tilt(South) {
		t.Error("Tilt() on a finished game should be a no-op")
	}
}

func TestModelTiltDetectsStuckBoard(t *testing.T) {
	m := modelFromRows(t, 0, 0, false,
		[]int{2, 4},
		[]int{4, 2},
	)
	notified := countNotifications(m)

	if m.Tilt(North) {
		t.Error("Tilt() on a stuck board should report no change")
	}
	if *notified != 1 {
		t.Errorf("discovering the terminal state should notify once, got %d", *notified)
	}
}

func TestModelWithMaxPieceDisabled(t *testing.T) {
	m := New(4, WithMaxPiece(0))
	m.AddTile(Tile{Value: 2048, Col: 0, Row: 0})
	m.AddTile(Tile{Value: 2048, Col: 1, Row: 0})

	if m.IsOver() {
		t.Fatal("2048 should not end the game with the max piece rule off")
	}
	if !m.Tilt(West) {
		t.Fatal("Tilt(West) should merge the pair")
	}
	if m.MaxTile() != 4096 {
		t.Errorf("MaxTile() = %d, want 4096", m.MaxTile())
	}
}

func TestModelString(t *testing.T) {
	m := modelFromRows(t, 12, 40, false,
		[]int{0, 0},
		[]int{2, 16},
	)

	want := "\n[\n|    |    |\n|   2|  16|\n] 12 (max: 40) (game is not over) \n"
	if got := m.String(); got != want {
		t.Errorf("String() =\n%q\nwant\n%q", got, want)
	}

	m.Clear()
	if !strings.Contains(m.String(), "] 0 (max: 40)") {
		t.Errorf("String() after Clear() = %q", m.String())
	}
}

func TestModelEqual(t *testing.T) {
	a := modelFromRows(t, 4, 8, false, []int{2, 0}, []int{0, 4})
	b := modelFromRows(t, 4, 8, false, []int{2, 0}, []int{0, 4})
	c := modelFromRows(t, 4, 8, false, []int{2, 0}, []int{4, 0})

	if !a.Equal(b) {
		t.Error("identical models should be equal")
	}
	if a.Equal(c) {
		t.Error("models with different boards should differ")
	}
	if a.Equal(nil) {
		t.Error("model should not equal nil")
	}
}
