// Package config loads rpg-roller settings from the environment.
package config

import (
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-roller/internal/entities/die"
	"github.com/KirkDiggler/rpg-roller/internal/errors"
)

// Combat die variants
const (
	CombatDieStandard = "standard"
	CombatDieLegacy   = "legacy"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	combatDies = []string{CombatDieStandard, CombatDieLegacy}
)

// Config holds runtime settings. An empty RedisAddr keeps templates in memory.
type Config struct {
	RedisAddr     string `env:"ROLLER_REDIS_ADDR"`
	RedisTLS      bool   `env:"ROLLER_REDIS_TLS"`
	RedisPoolSize int    `env:"ROLLER_REDIS_POOL_SIZE"`
	LogLevel      string `env:"ROLLER_LOG_LEVEL"  envDefault:"info"`
	CombatDie     string `env:"ROLLER_COMBAT_DIE" envDefault:"standard"`
	SeedFile      string `env:"ROLLER_SEED_FILE"`
}

// Load reads the configuration from the process environment
func Load() (*Config, error) {
	return load(env.Options{})
}

// LoadFrom reads the configuration from vars instead of the process environment
func LoadFrom(vars map[string]string) (*Config, error) {
	return load(env.Options{Environment: vars})
}

func load(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.CombatDie = strings.ToLower(strings.TrimSpace(cfg.CombatDie))

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &cfg, nil
}

// Validate checks the enumerated settings. A zero pool size leaves the
// client default in place.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("log_level", c.LogLevel, logLevels, vb)
	errors.ValidateEnum("combat_die", c.CombatDie, combatDies, vb)
	if c.RedisPoolSize < 0 {
		vb.InvalidField("redis_pool_size", "must not be negative")
	}
	return vb.Build()
}

// SlogLevel maps LogLevel onto a slog level
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Die returns the configured combat die
func (c *Config) Die() *die.Die {
	if c.CombatDie == CombatDieLegacy {
		return die.LegacyCombatDie()
	}
	return die.CombatDie()
}
