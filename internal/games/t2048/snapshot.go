package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StatePaused       GameStateType = "paused"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Mode     Mode
	Level    int // Current level (1-indexed), 0 outside campaign
	Target   int // Current target tile value, 0 when there is none
	Score    int
	MaxScore int
	Board    [][]int // Indexed [row][col], row 0 at the bottom
	MaxTile  int
	State    GameStateType
	Revision uint64 // Number of board changes since the game was created
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.campaignWon || g.model.Won():
		state = StateWin
	case g.model.IsOver():
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	case g.paused:
		state = StatePaused
	}

	level := 0
	if g.mode == ModeCampaign {
		level = g.levelIndex + 1
	}

	return Snapshot{
		Tick:     g.tick,
		Mode:     g.mode,
		Level:    level,
		Target:   g.target,
		Score:    g.model.Score(),
		MaxScore: g.model.MaxScore(),
		Board:    g.model.Values(),
		MaxTile:  g.model.MaxTile(),
		State:    state,
		Revision: g.revision,
	}
}
