package board

// Tilt slides and merges every tile on g toward side and reports whether any
// tile moved. Each merge adds the merged tile's new value (twice the value of
// either half) to *score; score may be nil.
//
// Lines are processed independently from the destination edge backward, so a
// tile only ever looks at settled cells ahead of it. A cell that received a
// merge during this pass is never merged into again.
func Tilt(g *Grid, side Side, score *int) bool {
	l := side.line()
	n := g.size
	merged := make([]bool, n)
	changed := false

	for k := range n {
		clear(merged)

		for pos := range n {
			col, row := l.cell(k, pos, n)
			id := g.at(col, row)
			if id == noTile {
				continue
			}
			t := g.tile(id)

			ahead, aheadID := nextOccupied(g, l, k, pos)
			var dest int
			switch {
			case aheadID == noTile:
				// Nothing ahead: slide to the edge
				if pos == 0 {
					continue
				}
				dest = 0

			case g.tile(aheadID).Value == t.Value && !merged[ahead]:
				t.Value *= 2
				merged[ahead] = true
				if score != nil {
					*score += t.Value
				}
				dest = ahead

			default:
				// Blocked: settle right behind the tile ahead
				if pos == ahead+1 {
					continue
				}
				dest = ahead + 1
			}

			dc, dr := l.cell(k, dest, n)
			g.Move(dc, dr, id)
			changed = true
		}
	}

	return changed
}

// nextOccupied finds the closest occupied position between pos and the
// destination edge on line k. Returns noTile if the way is clear.
func nextOccupied(g *Grid, l line, k, pos int) (int, TileID) {
	for p := pos - 1; p >= 0; p-- {
		col, row := l.cell(k, p, g.size)
		if id := g.at(col, row); id != noTile {
			return p, id
		}
	}
	return -1, noTile
}
