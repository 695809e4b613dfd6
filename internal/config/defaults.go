package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

// DefaultT2048Config returns the built-in 2048 configuration.
// It mirrors the embedded defaults/t2048.yaml.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Board: BoardConfig{
			Size:     4,
			MaxPiece: 2048,
		},
		Spawn: SpawnConfig{
			Prob4:   0.10,
			Initial: 2,
		},
		Levels: []LevelConfig{
			{ID: 1, Name: "Warm-up", Target: 128, Spawn4: 0.10},
			{ID: 2, Name: "Getting Started", Target: 256, Spawn4: 0.10},
			{ID: 3, Name: "Building Momentum", Target: 512, Spawn4: 0.10},
			{ID: 4, Name: "The Climb", Target: 1024, Spawn4: 0.10},
			{ID: 5, Name: "Classic 2048", Target: 2048, Spawn4: 0.10},
			{ID: 6, Name: "Beyond Limits", Target: 4096, Spawn4: 0.12},
			{ID: 7, Name: "Master Class", Target: 8192, Spawn4: 0.15},
			{ID: 8, Name: "Expert Challenge", Target: 8192, Spawn4: 0.18},
			{ID: 9, Name: "Grandmaster", Target: 8192, Spawn4: 0.20},
			{ID: 10, Name: "Ultimate Champion", Target: 8192, Spawn4: 0.25},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 20000,
			},
			Scaling: ScalingConfig{
				Spawn4Bonus: 0.15,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML, comments included.
func DefaultYAML() []byte {
	return defaultT2048YAML
}
