package t2048

import (
	"slices"

	"github.com/vovakirdan/tui-2048/internal/config"
)

// Level defines a campaign level with a target tile.
type Level struct {
	ID     int
	Name   string
	Target int     // Target tile value to reach
	Spawn4 float64 // Probability of spawning 4 instead of 2 (0.0-1.0)
}

// Campaign is the ordered list of levels played in campaign mode.
type Campaign struct {
	levels []Level
}

// NewCampaign builds a campaign from configured levels.
func NewCampaign(cfgs []config.LevelConfig) Campaign {
	levels := make([]Level, len(cfgs))
	for i, c := range cfgs {
		levels[i] = Level{ID: c.ID, Name: c.Name, Target: c.Target, Spawn4: c.Spawn4}
	}
	return Campaign{levels: levels}
}

// Count returns the number of campaign levels.
func (c Campaign) Count() int {
	return len(c.levels)
}

// Level returns the level at the given index (0-based).
func (c Campaign) Level(index int) (Level, bool) {
	if index < 0 || index >= len(c.levels) {
		return Level{}, false
	}
	return c.levels[index], true
}

// Levels returns a copy of all levels in play order.
func (c Campaign) Levels() []Level {
	return slices.Clone(c.levels)
}
