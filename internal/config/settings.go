package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Settings are the process knobs read from the environment.
type Settings struct {
	BalancePath string `env:"CRAWLCORE_BALANCE"`
	Seed        int64  `env:"CRAWLCORE_SEED" envDefault:"1"`
	Species     string `env:"CRAWLCORE_SPECIES" envDefault:"human"`
	Name        string `env:"CRAWLCORE_NAME"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
}

// ParseSettings loads envFiles (".env" when none are given) and then parses
// the environment. Missing env files are not an error. Variables already set
// in the environment win over file values.
func ParseSettings(envFiles ...string) (Settings, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Settings{}, fmt.Errorf("load env file: %w", err)
	}
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}
