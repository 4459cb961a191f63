// Package config loads the dungeon's settings from the environment
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

// Prefix of every environment variable
const Prefix = "DUNGEON"

// Store backends
const (
	StoreFile   = "file"
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

// Config holds all settings loaded from DUNGEON_* variables
type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"warn"`

	Store      string `envconfig:"STORE" default:"file"`
	SaveDir    string `envconfig:"SAVE_DIR" default:"./saves"`
	RedisAddr  string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	SQLitePath string `envconfig:"SQLITE_PATH" default:"./saves/dungeon.db"`

	// Presets replaces the embedded presets when set
	Presets string `envconfig:"PRESETS"`

	TurnSeconds    int `envconfig:"TURN_SECONDS" default:"30"`
	MaxBattleTurns int `envconfig:"MAX_BATTLE_TURNS" default:"1000"`
}

// Load reads an optional .env file, then the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to load config")
	}
	cfg.Store = strings.ToLower(strings.TrimSpace(cfg.Store))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the loaded values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("Store", c.Store, []string{StoreFile, StoreRedis, StoreSQLite}, vb)
	errors.ValidateMin("TurnSeconds", c.TurnSeconds, 1, vb)
	errors.ValidateMin("MaxBattleTurns", c.MaxBattleTurns, 1, vb)
	if _, err := ParseLevel(c.LogLevel); err != nil {
		vb.InvalidField("LogLevel", errors.GetMessage(err))
	}
	switch c.Store {
	case StoreFile:
		errors.ValidateRequired("SaveDir", c.SaveDir, vb)
	case StoreRedis:
		errors.ValidateRequired("RedisAddr", c.RedisAddr, vb)
	case StoreSQLite:
		errors.ValidateRequired("SQLitePath", c.SQLitePath, vb)
	}

	return vb.Build()
}

// TurnDuration returns the world time one battle turn takes
func (c *Config) TurnDuration() time.Duration {
	return time.Duration(c.TurnSeconds) * time.Second
}

// ParseLevel maps a level name to a slog level
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, errors.InvalidArgumentf("unknown log level %q", name)
	}
	return level, nil
}
