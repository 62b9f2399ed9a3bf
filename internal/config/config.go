// Package config loads void-dice settings from the environment
package config

import (
	"io/fs"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/void-dice/internal/errors"
)

// Log level names accepted by VOID_DICE_LOG_LEVEL
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

var logLevels = map[string]slog.Level{
	LogLevelDebug: slog.LevelDebug,
	LogLevelInfo:  slog.LevelInfo,
	LogLevelWarn:  slog.LevelWarn,
	LogLevelError: slog.LevelError,
}

// Config holds all configuration for void-dice
type Config struct {
	BaseDice int    `env:"VOID_DICE_BASE_DICE" envDefault:"5"`
	MaxDice  int    `env:"VOID_DICE_MAX_DICE" envDefault:"30"`
	AddStep  int    `env:"VOID_DICE_ADD_STEP" envDefault:"2"`
	Seed     int64  `env:"VOID_DICE_SEED" envDefault:"0"`
	LogLevel string `env:"VOID_DICE_LOG_LEVEL" envDefault:"info"`
}

// Load reads the optional dotenv files (".env" when none are given) and
// then parses the environment. Variables already set win over file values.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "failed to load env file")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse env")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the loaded values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateMin("base_dice", c.BaseDice, 0, vb)
	errors.ValidateMin("max_dice", c.MaxDice, 1, vb)
	errors.ValidateMin("add_step", c.AddStep, 1, vb)
	if c.MaxDice >= 1 && c.BaseDice > c.MaxDice {
		vb.Fieldf("base_dice", "must not exceed max_dice (%d)", c.MaxDice)
	}
	errors.ValidateEnum("log_level", c.LogLevel,
		[]string{LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError}, vb)

	return vb.Build()
}

// SlogLevel returns the slog level for LogLevel, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	if level, ok := logLevels[c.LogLevel]; ok {
		return level
	}
	return slog.LevelInfo
}
