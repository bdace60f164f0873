package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty resolves a preset name. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
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

// ApplyPreset adjusts scene tuning for a difficulty preset.
// Fixed leaves the file's values alone and disables progression.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Tomato.Difficulty.Enabled = false
		return
	}

	cfg.Tomato.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Memory.CompareDelayMs = 700
		cfg.Jigsaw.SnapThreshold = 0.4
		cfg.Tomato.TargetSpeed *= 0.6
		cfg.Tomato.Difficulty.Enabled = false
	case DifficultyHard:
		cfg.Memory.CompareDelayMs = 250
		cfg.Jigsaw.SnapThreshold = 0.65
		cfg.Tomato.WinScore = 3
		cfg.Tomato.Difficulty.Enabled = true
		cfg.Tomato.Difficulty.MaxAt = cfg.Tomato.WinScore
	}
}

// DifficultyManager calculates dynamic scene parameters based on score.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	cfg.InitialLevel = clampF(cfg.InitialLevel, 0, 1)
	return &DifficultyManager{cfg: cfg}
}

// Level returns the current difficulty level (0.0 to 1.0) for score.
func (d *DifficultyManager) Level(score int) float64 {
	if !d.cfg.Enabled {
		return d.cfg.InitialLevel
	}

	maxAt := float64(d.cfg.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := clampF(float64(score)/maxAt, 0, 1)

	// Interpolate from initial level to 1.0
	return d.cfg.InitialLevel + progress*(1.0-d.cfg.InitialLevel)
}

// Speed returns baseSpeed scaled by the current level.
func (d *DifficultyManager) Speed(baseSpeed float64, score int) float64 {
	if !d.cfg.Enabled {
		return baseSpeed
	}
	return baseSpeed * (1.0 + d.Level(score)*d.cfg.SpeedMultiplier)
}

func clampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
