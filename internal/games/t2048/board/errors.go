package board

import "errors"

var (
	// ErrInvalidPosition is returned when a write addresses a cell outside the grid.
	ErrInvalidPosition = errors.New("board: position out of range")

	// ErrOccupiedCell is returned when a tile is added to a cell that already holds one.
	ErrOccupiedCell = errors.New("board: cell already occupied")

	// ErrInvalidValue is returned for tile values that are not a power of two
	// of at least 2, and for malformed raw snapshots.
	ErrInvalidValue = errors.New("board: invalid tile value")
)
