package board

// EmptySpaceExists reports whether any cell of g is empty.
func EmptySpaceExists(g *Grid) bool {
	for _, id := range g.cells {
		if id == noTile {
			return true
		}
	}
	return false
}

// HasMaxTile reports whether some tile equals maxPiece.
// A non-positive maxPiece disables the rule.
func HasMaxTile(g *Grid, maxPiece int) bool {
	if maxPiece <= 0 {
		return false
	}
	for _, id := range g.cells {
		if id != noTile && g.tiles[id].Value == maxPiece {
			return true
		}
	}
	return false
}

// HasAnyMove reports whether some tilt could change g: an empty cell exists,
// or two orthogonally adjacent tiles share a value.
func HasAnyMove(g *Grid) bool {
	if EmptySpaceExists(g) {
		return true
	}

	// Checking the right and upper neighbour of every cell covers each pair once
	for row := range g.size {
		for col := range g.size {
			v := g.tiles[g.at(col, row)].Value
			if col+1 < g.size && g.tiles[g.at(col+1, row)].Value == v {
				return true
			}
			if row+1 < g.size && g.tiles[g.at(col, row+1)].Value == v {
				return true
			}
		}
	}
	return false
}

// IsOver reports whether g is terminal: a maxPiece tile exists or no move is left.
func IsOver(g *Grid, maxPiece int) bool {
	return HasMaxTile(g, maxPiece) || !HasAnyMove(g)
}
