package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// SubmitConfig controls where the Valentine answer is posted.
type SubmitConfig struct {
	FormURL string        `env:"VALENTINE_FORM_URL"     envDefault:"http://localhost:8087/formResponse"`
	Field   string        `env:"VALENTINE_FORM_FIELD"   envDefault:"entry.1449984962"`
	Timeout time.Duration `env:"VALENTINE_FORM_TIMEOUT" envDefault:"5s"`
}

// CollectConfig controls the form collection endpoint.
type CollectConfig struct {
	Addr   string `env:"VALENTINE_COLLECT_ADDR" envDefault:":8087"`
	Path   string `env:"VALENTINE_COLLECT_PATH" envDefault:"/formResponse"`
	Field  string `env:"VALENTINE_FORM_FIELD"   envDefault:"entry.1449984962"`
	DBPath string `env:"VALENTINE_COLLECT_DB"   envDefault:"~/.valentine/responses.db"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadSubmitFromEnv loads submission settings from the environment.
func LoadSubmitFromEnv() (SubmitConfig, error) {
	var cfg SubmitConfig
	if err := ParseEnv(&cfg); err != nil {
		return SubmitConfig{}, err
	}
	return cfg, nil
}

// LoadCollectFromEnv loads collector settings from the environment.
func LoadCollectFromEnv() (CollectConfig, error) {
	var cfg CollectConfig
	if err := ParseEnv(&cfg); err != nil {
		return CollectConfig{}, err
	}
	return cfg, nil
}
