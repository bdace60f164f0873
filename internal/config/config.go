// Package config provides YAML-based scene tuning, difficulty presets and
// environment configuration for the Valentine arcade.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config contains the tuning for every scene and the session itself.
type Config struct {
	Session   SessionConfig   `yaml:"session"`
	Memory    MemoryConfig    `yaml:"memory"`
	Jigsaw    JigsawConfig    `yaml:"jigsaw"`
	Tomato    TomatoConfig    `yaml:"tomato"`
	Valentine ValentineConfig `yaml:"valentine"`
}

// SessionConfig controls scene ordering and hand-off.
type SessionConfig struct {
	FirstScene    string `yaml:"first_scene"`
	AutoAdvance   bool   `yaml:"auto_advance"`    // Hand off without waiting for "Play Next"
	AutoAdvanceMs int    `yaml:"auto_advance_ms"` // Delay before an automatic hand-off
}

// MemoryConfig defines the matching-pairs grid.
type MemoryConfig struct {
	Cols           int      `yaml:"cols"`
	Rows           int      `yaml:"rows"`
	CardWidth      int      `yaml:"card_width"`
	CardHeight     int      `yaml:"card_height"`
	Gap            int      `yaml:"gap"`
	FlipMs         int      `yaml:"flip_ms"`          // Duration of each half of a flip
	CompareDelayMs int      `yaml:"compare_delay_ms"` // Settle time before comparing two cards
	Faces          []string `yaml:"faces"`            // One face per pair
}

// Pairs returns the number of pairs on the board.
func (m MemoryConfig) Pairs() int {
	return m.Cols * m.Rows / 2
}

// JigsawConfig defines the puzzle board.
type JigsawConfig struct {
	Cols             int     `yaml:"cols"`
	Rows             int     `yaml:"rows"`
	BoardWidthRatio  float64 `yaml:"board_width_ratio"`
	BoardHeightRatio float64 `yaml:"board_height_ratio"`
	SpawnMargin      float64 `yaml:"spawn_margin"`
	SnapThreshold    float64 `yaml:"snap_threshold"` // Minimum overlap to snap, inclusive
	SnapMs           int     `yaml:"snap_ms"`
	SnapBack         bool    `yaml:"snap_back"` // Return a missed drop to where its drag began
}

// TomatoConfig defines the throwing range.
type TomatoConfig struct {
	TargetWidth  float64          `yaml:"target_width"`
	TargetHeight float64          `yaml:"target_height"`
	TargetY      float64          `yaml:"target_y"`
	TargetSpeed  float64          `yaml:"target_speed"` // Units per second
	Margin       float64          `yaml:"margin"`       // Target center stays within [margin, width-margin]
	TomatoSize   float64          `yaml:"tomato_size"`
	SpawnOffset  float64          `yaml:"spawn_offset"` // Distance of the spawn point above the bottom edge
	LaunchSpeed  float64          `yaml:"launch_speed"`
	Spin         float64          `yaml:"spin"` // Degrees per second
	Gravity      float64          `yaml:"gravity"`
	Bounce       float64          `yaml:"bounce"`
	WinScore     int              `yaml:"win_score"`
	Difficulty   DifficultyConfig `yaml:"difficulty"`
}

// ValentineConfig defines the proposal scene.
type ValentineConfig struct {
	Question        string `yaml:"question"`
	YesLabel        string `yaml:"yes_label"`
	NoLabel         string `yaml:"no_label"`
	YesMessage      string `yaml:"yes_message"`
	NoMessage       string `yaml:"no_message"`
	QuestionFadeMs  int    `yaml:"question_fade_ms"`
	HeartIntervalMs int    `yaml:"heart_interval_ms"`
	HeartMinMs      int    `yaml:"heart_min_ms"`
	HeartMaxMs      int    `yaml:"heart_max_ms"`
}

// DifficultyConfig defines how a scene gets harder as the score rises.
type DifficultyConfig struct {
	Enabled         bool    `yaml:"enabled"`
	InitialLevel    float64 `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	MaxAt           int     `yaml:"max_at"`        // Score at which max difficulty is reached
	SpeedMultiplier float64 `yaml:"speed_multiplier"`
}

// Ms converts a millisecond setting to a duration.
func Ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	var errs []error

	m := c.Memory
	if m.Cols <= 0 || m.Rows <= 0 || (m.Cols*m.Rows)%2 != 0 {
		errs = append(errs, fmt.Errorf("memory: grid %dx%d must be positive with an even number of cards", m.Cols, m.Rows))
	}
	if len(m.Faces) < m.Pairs() {
		errs = append(errs, fmt.Errorf("memory: %d faces for %d pairs", len(m.Faces), m.Pairs()))
	}
	if m.CardWidth < 3 || m.CardHeight < 3 {
		errs = append(errs, errors.New("memory: cards must be at least 3x3"))
	}

	j := c.Jigsaw
	if j.Cols <= 0 || j.Rows <= 0 {
		errs = append(errs, fmt.Errorf("jigsaw: grid %dx%d must be positive", j.Cols, j.Rows))
	}
	if j.BoardWidthRatio <= 0 || j.BoardWidthRatio > 1 || j.BoardHeightRatio <= 0 || j.BoardHeightRatio > 1 {
		errs = append(errs, errors.New("jigsaw: board ratios must be in (0, 1]"))
	}
	if j.SnapThreshold <= 0 || j.SnapThreshold > 1 {
		errs = append(errs, fmt.Errorf("jigsaw: snap_threshold %v must be in (0, 1]", j.SnapThreshold))
	}

	t := c.Tomato
	if t.WinScore <= 0 {
		errs = append(errs, errors.New("tomato: win_score must be positive"))
	}
	if t.LaunchSpeed <= 0 {
		errs = append(errs, errors.New("tomato: launch_speed must be positive"))
	}
	if t.TargetWidth <= 0 || t.TargetHeight <= 0 || t.TomatoSize <= 0 {
		errs = append(errs, errors.New("tomato: sizes must be positive"))
	}

	v := c.Valentine
	if v.HeartIntervalMs <= 0 {
		errs = append(errs, errors.New("valentine: heart_interval_ms must be positive"))
	}
	if v.HeartMaxMs < v.HeartMinMs {
		errs = append(errs, errors.New("valentine: heart_max_ms must be >= heart_min_ms"))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
