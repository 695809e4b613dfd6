package t2048

import (
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/games/t2048/board"
)

// spawner places new tiles into random empty cells.
// The same seed always produces the same sequence of tiles.
type spawner struct {
	rng *rand.Rand
}

func newSpawner(seed int64) *spawner {
	return &spawner{rng: rand.New(rand.NewSource(seed))}
}

// next picks a uniformly random empty cell and a value of 2, or 4 with
// probability prob4. It reports false when the board is full.
func (s *spawner) next(m *board.Model, prob4 float64) (board.Tile, bool) {
	empty := m.EmptyCells()
	if len(empty) == 0 {
		return board.Tile{}, false
	}

	pos := empty[s.rng.Intn(len(empty))]
	value := 2
	if s.rng.Float64() < prob4 {
		value = 4
	}
	return board.Tile{Value: value, Col: pos.Col, Row: pos.Row}, true
}
