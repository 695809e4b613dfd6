// Package core provides the types shared by the game adapters and the
// terminal platform: the screen buffer, input actions and runtime config.
// It has no Bubble Tea dependency so game logic stays testable.
package core

// Rect is an axis-aligned area of the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// CenteredIn returns a w×h rectangle centered inside r.
// Offsets are clamped to zero when r is too small.
func (r Rect) CenteredIn(w, h int) Rect {
	return NewRect(r.X+max(0, (r.W-w)/2), r.Y+max(0, (r.H-h)/2), w, h)
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
