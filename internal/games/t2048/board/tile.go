// Package board implements the 2048 rule engine: an arena-backed grid of
// tiles, the tilt-and-merge pass, terminal-state detection and the Model
// controller that ties them together with change notifications.
//
// Coordinates follow (column, row) with (0, 0) at the lower-left corner.
// Rows grow upward and columns grow rightward. The package has no I/O and
// is not safe for concurrent use; each Model belongs to one game session.
package board

// MaxPiece is the default winning tile value.
const MaxPiece = 2048

// TileID identifies a tile in the grid arena. The zero value means "no tile".
// IDs survive slides and are retired when their tile is merged away; retired
// IDs may be reused by later tiles.
type TileID int32

const noTile TileID = 0

// Tile is a numbered tile and the cell it occupies.
type Tile struct {
	ID    TileID
	Value int
	Col   int
	Row   int
}

// Position addresses a single cell.
type Position struct {
	Col int
	Row int
}

// validValue reports whether v may appear on the board.
func validValue(v int) bool {
	return v >= 2 && v&(v-1) == 0
}
