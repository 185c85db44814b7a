package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every environment variable read by Env.
const EnvPrefix = "CMDLET_GENERATOR_"

// Env holds process settings of the generator CLI.
type Env struct {
	ConfigFile string `env:"CONFIG" envDefault:""`
	ModelFile  string `env:"MODEL" envDefault:""`
	OutputDir  string `env:"OUTPUT_DIR" envDefault:"./generated"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	Dump       bool   `env:"DUMP" envDefault:"false"`
}

// ParseEnv loads Env from the environment.
func ParseEnv() (Env, error) {
	var cfg Env
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// Level converts LogLevel to a slog level.
func (e Env) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(e.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", e.LogLevel, err)
	}

	return level, nil
}
