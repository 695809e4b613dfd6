package board

import (
	"fmt"
	"strings"
)

// Side is the edge of the board that tiles are tilted toward.
type Side int

const (
	North Side = iota
	East
	South
	West
)

// Sides lists every side in clockwise order starting at North.
var Sides = [...]Side{North, East, South, West}

// String returns the lower-case side name.
func (s Side) String() string {
	switch s {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return fmt.Sprintf("side(%d)", int(s))
	}
}

// ParseSide converts a side or arrow name (north/up, east/right, south/down,
// west/left) to a Side.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n", "up":
		return North, nil
	case "east", "e", "right":
		return East, nil
	case "south", "s", "down":
		return South, nil
	case "west", "w", "left":
		return West, nil
	default:
		return 0, fmt.Errorf("board: unknown side %q", s)
	}
}

// line describes how a tilt toward one side walks the board. The board is cut
// into lines along the axis of motion; position 0 on a line is the cell
// touching the destination edge.
type line struct {
	vertical bool // lines are columns and tiles move along rows
	toHigh   bool // the destination edge is the highest index on the axis of motion
}

var lines = [...]line{
	North: {vertical: true, toHigh: true},
	East:  {vertical: false, toHigh: true},
	South: {vertical: true, toHigh: false},
	West:  {vertical: false, toHigh: false},
}

func (s Side) line() line {
	return lines[s]
}

// cell maps position pos on line k of an n-sized board to (col, row).
func (l line) cell(k, pos, n int) (col, row int) {
	along := pos
	if l.toHigh {
		along = n - 1 - pos
	}
	if l.vertical {
		return k, along
	}
	return along, k
}
