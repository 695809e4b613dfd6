// Package tui provides the Bubble Tea integration for 2048.
// It handles the terminal UI loop, input mapping, menus and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Each game model
// owns one tick chain, identified by loop.
type TickMsg struct {
	Time time.Time
	loop uint64
}

var loopSeq atomic.Uint64

// nextLoop returns a fresh tick chain identifier.
func nextLoop() uint64 {
	return loopSeq.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, loop: loop}
	})
}
