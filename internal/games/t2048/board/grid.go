package board

import "fmt"

// Grid is an N×N board of optional tiles.
// Cells hold arena IDs rather than tiles, so a slide only rewrites two cells
// and a merge only retires one arena slot.
type Grid struct {
	size  int
	cells []TileID // row-major, row 0 first
	tiles []Tile   // arena indexed by TileID; slot 0 is unused
	free  []TileID
}

// NewGrid creates an empty grid with the given side length.
// Panics if size is not positive.
func NewGrid(size int) *Grid {
	if size < 1 {
		panic(fmt.Sprintf("board: invalid grid size %d", size))
	}
	return &Grid{
		size:  size,
		cells: make([]TileID, size*size),
		tiles: make([]Tile, 1, size*size+1),
	}
}

// Size returns the number of cells on one side of the grid.
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether (col, row) is a cell of the grid.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.size && row >= 0 && row < g.size
}

func (g *Grid) index(col, row int) int {
	return row*g.size + col
}

// at returns the ID stored at an in-bounds cell.
func (g *Grid) at(col, row int) TileID {
	return g.cells[g.index(col, row)]
}

// tile returns the arena record for a live ID.
func (g *Grid) tile(id TileID) *Tile {
	return &g.tiles[id]
}

// Tile returns the tile at (col, row).
// Out-of-range positions and empty cells report false.
func (g *Grid) Tile(col, row int) (Tile, bool) {
	if !g.InBounds(col, row) {
		return Tile{}, false
	}
	id := g.at(col, row)
	if id == noTile {
		return Tile{}, false
	}
	return g.tiles[id], true
}

// Place creates a tile of the given value at (col, row).
func (g *Grid) Place(value, col, row int) (Tile, error) {
	if !g.InBounds(col, row) {
		return Tile{}, fmt.Errorf("%w: (%d, %d) on %dx%d grid", ErrInvalidPosition, col, row, g.size, g.size)
	}
	if !validValue(value) {
		return Tile{}, fmt.Errorf("%w: %d", ErrInvalidValue, value)
	}
	if g.at(col, row) != noTile {
		return Tile{}, fmt.Errorf("%w: (%d, %d)", ErrOccupiedCell, col, row)
	}

	id := g.alloc()
	g.tiles[id] = Tile{ID: id, Value: value, Col: col, Row: row}
	g.cells[g.index(col, row)] = id
	return g.tiles[id], nil
}

// Move relocates tile id to (col, row) and keeps its stored position in sync.
// A different tile already at the target is replaced and its ID retired;
// that is how merges land, so the caller must have doubled the mover first.
// Returns true if a tile was replaced. Panics on an out-of-range target.
func (g *Grid) Move(col, row int, id TileID) bool {
	if !g.InBounds(col, row) {
		panic(fmt.Sprintf("board: move to (%d, %d) outside %dx%d grid", col, row, g.size, g.size))
	}

	t := g.tile(id)
	if t.Col == col && t.Row == row {
		return false
	}

	dst := g.index(col, row)
	replaced := false
	if other := g.cells[dst]; other != noTile && other != id {
		g.release(other)
		replaced = true
	}

	g.cells[g.index(t.Col, t.Row)] = noTile
	g.cells[dst] = id
	t.Col = col
	t.Row = row
	return replaced
}

// Clear removes every tile.
func (g *Grid) Clear() {
	clear(g.cells)
	g.tiles = g.tiles[:1]
	g.free = g.free[:0]
}

// Each calls fn for every tile in row-major order starting at row 0.
func (g *Grid) Each(fn func(Tile)) {
	for _, id := range g.cells {
		if id != noTile {
			fn(g.tiles[id])
		}
	}
}

// Count returns the number of tiles on the grid.
func (g *Grid) Count() int {
	n := 0
	for _, id := range g.cells {
		if id != noTile {
			n++
		}
	}
	return n
}

// EmptyCells returns every unoccupied position in row-major order.
func (g *Grid) EmptyCells() []Position {
	var cells []Position
	for i, id := range g.cells {
		if id == noTile {
			cells = append(cells, Position{Col: i % g.size, Row: i / g.size})
		}
	}
	return cells
}

// Values returns the tile values indexed [row][col] with row 0 at the bottom.
// Empty cells are 0.
func (g *Grid) Values() [][]int {
	values := make([][]int, g.size)
	for row := range g.size {
		values[row] = make([]int, g.size)
		for col := range g.size {
			if id := g.at(col, row); id != noTile {
				values[row][col] = g.tiles[id].Value
			}
		}
	}
	return values
}

func (g *Grid) alloc() TileID {
	if n := len(g.free); n > 0 {
		id := g.free[n-1]
		g.free = g.free[:n-1]
		return id
	}
	g.tiles = append(g.tiles, Tile{})
	return TileID(len(g.tiles) - 1)
}

func (g *Grid) release(id TileID) {
	g.tiles[id] = Tile{}
	g.free = append(g.free, id)
}
