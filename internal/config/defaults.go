package config

import (
	_ "embed"
)

//go:embed defaults/scenes.yaml
var defaultScenesYAML []byte

// DefaultConfig returns the built-in scene tuning. It matches the embedded
// defaults/scenes.yaml and is the fallback if that file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Session: SessionConfig{
			FirstScene:    "memory",
			AutoAdvance:   false,
			AutoAdvanceMs: 1500,
		},
		Memory: MemoryConfig{
			Cols:           4,
			Rows:           4,
			CardWidth:      9,
			CardHeight:     4,
			Gap:            1,
			FlipMs:         150,
			CompareDelayMs: 400,
			Faces:          []string{"♥", "★", "♦", "♣", "♠", "☀", "☂", "♪"},
		},
		Jigsaw: JigsawConfig{
			Cols:             3,
			Rows:             4,
			BoardWidthRatio:  0.6,
			BoardHeightRatio: 0.75,
			SpawnMargin:      6,
			SnapThreshold:    0.5,
			SnapMs:           200,
			SnapBack:         false,
		},
		Tomato: TomatoConfig{
			TargetWidth:  16,
			TargetHeight: 3,
			TargetY:      4,
			TargetSpeed:  26,
			Margin:       8,
			TomatoSize:   2,
			SpawnOffset:  3,
			LaunchSpeed:  40,
			Spin:         600,
			Gravity:      30,
			Bounce:       0.3,
			WinScore:     1,
			Difficulty: DifficultyConfig{
				Enabled:         false,
				InitialLevel:    0.0,
				MaxAt:           5,
				SpeedMultiplier: 0.5,
			},
		},
		Valentine: ValentineConfig{
			Question:        "Will you be my Valentine forever?",
			YesLabel:        "YES",
			NoLabel:         "NO",
			YesMessage:      "I'm the happiest ♥",
			NoMessage:       "Thank you for being honest ♥",
			QuestionFadeMs:  1200,
			HeartIntervalMs: 350,
			HeartMinMs:      4000,
			HeartMaxMs:      6000,
		},
	}
}
