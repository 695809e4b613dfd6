package board

import (
	"fmt"
	"slices"
)

// Model is the state of one game of 2048: the grid, the running score, the
// best score seen across games and whether the game has ended.
//
// Every public mutating call that changes the state notifies subscribers
// exactly once. Read accessors never notify.
type Model struct {
	grid     *Grid
	score    int
	maxScore int
	over     bool
	maxPiece int

	subs   []subscriber
	nextID int
}

type subscriber struct {
	id int
	fn func()
}

// Option configures a Model.
type Option func(*Model)

// WithMaxPiece sets the tile value that ends the game.
// Zero or a negative value disables the rule, leaving only "no moves left".
func WithMaxPiece(v int) Option {
	return func(m *Model) {
		m.maxPiece = v
	}
}

// New creates an empty game on a size×size board with score 0.
// Panics if size is not positive.
func New(size int, opts ...Option) *Model {
	m := &Model{
		grid:     NewGrid(size),
		maxPiece: MaxPiece,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewFromValues rebuilds a game from raw tile values indexed [row][col],
// row 0 being the bottom row and 0 meaning an empty cell.
// If over is true the game starts terminal.
func NewFromValues(raw [][]int, score, maxScore int, over bool, opts ...Option) (*Model, error) {
	size := len(raw)
	if size == 0 {
		return nil, fmt.Errorf("%w: empty snapshot", ErrInvalidValue)
	}
	if score < 0 || maxScore < 0 {
		return nil, fmt.Errorf("%w: negative score", ErrInvalidValue)
	}

	m := New(size, opts...)
	for row, values := range raw {
		if len(values) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidValue, row, len(values), size)
		}
		for col, v := range values {
			if v == 0 {
				continue
			}
			if _, err := m.grid.Place(v, col, row); err != nil {
				return nil, err
			}
		}
	}

	m.score = score
	m.maxScore = maxScore
	m.over = over
	if over {
		m.maxScore = max(m.score, m.maxScore)
	}
	return m, nil
}

// Tile returns the tile at (col, row), or false if the cell is empty or
// outside the board.
func (m *Model) Tile(col, row int) (Tile, bool) {
	return m.grid.Tile(col, row)
}

// Size returns the number of cells on one side of the board.
func (m *Model) Size() int {
	return m.grid.Size()
}

// Score returns the current score.
func (m *Model) Score() int {
	return m.score
}

// MaxScore returns the best score, updated when a game ends.
func (m *Model) MaxScore() int {
	return m.maxScore
}

// MaxPiece returns the winning tile value, or a non-positive value if disabled.
func (m *Model) MaxPiece() int {
	return m.maxPiece
}

// IsOver reports whether the game has ended, re-evaluating the board first.
// Once over, the game stays over until Clear.
func (m *Model) IsOver() bool {
	m.checkOver()
	return m.over
}

// Won reports whether the game ended with a max-piece tile on the board.
func (m *Model) Won() bool {
	return m.IsOver() && HasMaxTile(m.grid, m.maxPiece)
}

// MaxTile returns the largest tile value on the board, or 0 if it is empty.
func (m *Model) MaxTile() int {
	best := 0
	m.grid.Each(func(t Tile) {
		best = max(best, t.Value)
	})
	return best
}

// EmptyCells returns every empty position.
func (m *Model) EmptyCells() []Position {
	return m.grid.EmptyCells()
}

// Values returns a raw snapshot of the board, the inverse of NewFromValues.
func (m *Model) Values() [][]int {
	return m.grid.Values()
}

// AddTile places t on the board. Only t's value and position are used.
// The grid is left untouched on error.
func (m *Model) AddTile(t Tile) error {
	if _, err := m.grid.Place(t.Value, t.Col, t.Row); err != nil {
		return err
	}
	m.checkOver()
	m.notify()
	return nil
}

// Tilt tilts the board toward side and reports whether anything moved.
// A game that is already over is left as is.
func (m *Model) Tilt(side Side) bool {
	if wasOver := m.over; m.IsOver() {
		// A stuck board found terminal here still counts as a change
		if !wasOver {
			m.notify()
		}
		return false
	}

	if !Tilt(m.grid, side, &m.score) {
		return false
	}
	m.checkOver()
	m.notify()
	return true
}

// Clear empties the board, resets the score and starts a new game.
// MaxScore is kept.
func (m *Model) Clear() {
	if m.grid.Count() == 0 && m.score == 0 && !m.over {
		return
	}
	m.grid.Clear()
	m.score = 0
	m.over = false
	m.notify()
}

// Subscribe registers fn to be called after every state change.
// The returned function removes the subscription.
func (m *Model) Subscribe(fn func()) (unsubscribe func()) {
	m.nextID++
	id := m.nextID
	m.subs = append(m.subs, subscriber{id: id, fn: fn})

	return func() {
		for i, s := range m.subs {
			if s.id == id {
				m.subs = append(m.subs[:i], m.subs[i+1:]...)
				return
			}
		}
	}
}

// checkOver latches the terminal flag and records the max score on the
// transition into it.
func (m *Model) checkOver() {
	if m.over {
		return
	}
	if IsOver(m.grid, m.maxPiece) {
		m.over = true
		m.maxScore = max(m.score, m.maxScore)
	}
}

func (m *Model) notify() {
	for _, s := range slices.Clone(m.subs) {
		s.fn()
	}
}
