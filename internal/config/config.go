// Package config provides YAML-based game configuration loading,
// environment overrides and difficulty management for 2048.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// T2048Config contains all configuration for the 2048 game.
type T2048Config struct {
	Board      BoardConfig      `yaml:"board"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Levels     []LevelConfig    `yaml:"levels"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the board geometry and the winning tile.
type BoardConfig struct {
	Size     int `yaml:"size"`
	MaxPiece int `yaml:"max_piece"` // 0 disables the max-tile rule
}

// SpawnConfig defines how new tiles appear.
type SpawnConfig struct {
	Prob4   float64 `yaml:"prob4"`   // Probability of spawning a 4 instead of a 2
	Initial int     `yaml:"initial"` // Tiles placed on a fresh board
}

// LevelConfig defines one campaign level.
type LevelConfig struct {
	ID     int     `yaml:"id"`
	Name   string  `yaml:"name"`
	Target int     `yaml:"target"`
	Spawn4 float64 `yaml:"spawn4"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a game.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	Spawn4Bonus float64 `yaml:"spawn4_bonus"` // Added to the 4-spawn probability at max difficulty
}

// MaxBoardSize is the largest board the terminal renderer lays out.
const MaxBoardSize = 8

// Validate checks the configuration for values the game cannot run with.
func (c T2048Config) Validate() error {
	var problems []string

	if c.Board.Size < 2 || c.Board.Size > MaxBoardSize {
		problems = append(problems, fmt.Sprintf("board.size %d not in [2, %d]", c.Board.Size, MaxBoardSize))
	}
	if c.Board.MaxPiece < 0 || (c.Board.MaxPiece > 0 && !powerOfTwo(c.Board.MaxPiece)) {
		problems = append(problems, fmt.Sprintf("board.max_piece %d is not 0 or a power of two", c.Board.MaxPiece))
	}
	if c.Spawn.Prob4 < 0 || c.Spawn.Prob4 > 1 {
		problems = append(problems, fmt.Sprintf("spawn.prob4 %.2f not in [0, 1]", c.Spawn.Prob4))
	}
	if c.Spawn.Initial < 0 || c.Spawn.Initial > c.Board.Size*c.Board.Size {
		problems = append(problems, fmt.Sprintf("spawn.initial %d does not fit the board", c.Spawn.Initial))
	}
	for i, lvl := range c.Levels {
		if !powerOfTwo(lvl.Target) || lvl.Target < 4 {
			problems = append(problems, fmt.Sprintf("levels[%d].target %d is not a power of two >= 4", i, lvl.Target))
		}
		if lvl.Spawn4 < 0 || lvl.Spawn4 > 1 {
			problems = append(problems, fmt.Sprintf("levels[%d].spawn4 %.2f not in [0, 1]", i, lvl.Spawn4))
		}
	}
	switch c.Difficulty.Progression.Type {
	case "", "none", "score", "time":
	default:
		problems = append(problems, fmt.Sprintf("difficulty.progression.type %q unknown", c.Difficulty.Progression.Type))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

func powerOfTwo(v int) bool {
	return v >= 2 && v&(v-1) == 0
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset validates a preset name. Empty means normal.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyT2048Preset modifies the config based on a difficulty preset.
// Easy games also start with fewer 4s; hard games with more.
func ApplyT2048Preset(cfg *T2048Config, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Spawn.Prob4 = max(0, cfg.Spawn.Prob4-0.05)
	case DifficultyHard:
		cfg.Spawn.Prob4 = min(1, cfg.Spawn.Prob4+0.10)
	}
}
