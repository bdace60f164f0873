package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/valentine-arcade/internal/config"
	"github.com/vovakirdan/valentine-arcade/internal/core"
	"github.com/vovakirdan/valentine-arcade/internal/host"
	"github.com/vovakirdan/valentine-arcade/internal/scene"
	"github.com/vovakirdan/valentine-arcade/internal/session"
)

// loadTuning reads scene tuning and applies the difficulty flag.
func loadTuning() (config.Config, error) {
	cfg, err := config.LoadScenes(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagDifficulty != "" {
		preset, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			return config.Config{}, err
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}

// firstScene resolves the starting scene: the flag wins over the tuning file.
func firstScene(flag string, tuning config.Config) (scene.ID, error) {
	name := flag
	if name == "" {
		name = tuning.Session.FirstScene
	}
	if name == "" {
		return scene.Memory, nil
	}
	return scene.Parse(name)
}

// newHost builds the host every session is mounted into.
func newHost(runtime core.RuntimeConfig, sceneFlag string, answers scene.AnswerSink, logger *log.Logger) (*host.Host, error) {
	tuning, err := loadTuning()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	first, err := firstScene(sceneFlag, tuning)
	if err != nil {
		return nil, err
	}

	return host.New(host.Options{
		Session: session.Options{
			Runtime: runtime,
			Tuning:  tuning,
			Answers: answers,
			Logger:  logger,
		},
		First:  first,
		Logger: logger,
	}), nil
}
