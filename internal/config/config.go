// Package config loads runtime settings from the environment and the
// optional economy tuning file.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"regenmon/internal/economy"
)

// Config holds the process-level settings.
type Config struct {
	DBPath     string `env:"REGENMON_DB" envDefault:"regenmon.db"`
	Locale     string `env:"REGENMON_LOCALE" envDefault:"es"`
	TuningPath string `env:"REGENMON_TUNING"`

	OpenAIKey     string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`
	OpenAIModel   string `env:"OPENAI_MODEL" envDefault:"gpt-3.5-turbo"`
}

// Load reads the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// LoadTuning returns the economy tuning: the shipped defaults, with any
// values from the YAML file at path laid over them. An empty path means
// defaults only.
func LoadTuning(path string) (economy.Tuning, error) {
	tuning := economy.DefaultTuning()
	if path == "" {
		return tuning, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return economy.Tuning{}, fmt.Errorf("read tuning file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &tuning); err != nil {
		return economy.Tuning{}, fmt.Errorf("parse tuning file: %w", err)
	}
	if err := tuning.Validate(); err != nil {
		return economy.Tuning{}, fmt.Errorf("tuning file %s: %w", path, err)
	}
	return tuning, nil
}
