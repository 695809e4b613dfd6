package board

import (
	"fmt"
	"slices"
	"strings"
)

// String renders the board top row first, followed by the score line.
// Used for debugging and test failure output.
func (m *Model) String() string {
	var sb strings.Builder
	sb.WriteString("\n[\n")
	for row := m.Size() - 1; row >= 0; row-- {
		for col := range m.Size() {
			if t, ok := m.Tile(col, row); ok {
				fmt.Fprintf(&sb, "|%4d", t.Value)
			} else {
				sb.WriteString("|    ")
			}
		}
		sb.WriteString("|\n")
	}

	state := "not over"
	if m.IsOver() {
		state = "over"
	}
	fmt.Fprintf(&sb, "] %d (max: %d) (game is %s) \n", m.score, m.maxScore, state)
	return sb.String()
}

// Equal reports whether two games show the same board, scores and terminal state.
func (m *Model) Equal(other *Model) bool {
	if other == nil {
		return false
	}
	if m.Size() != other.Size() || m.score != other.score || m.IsOver() != other.IsOver() || m.maxScore != other.maxScore {
		return false
	}
	return slices.EqualFunc(m.Values(), other.Values(), func(a, b []int) bool {
		return slices.Equal(a, b)
	})
}
