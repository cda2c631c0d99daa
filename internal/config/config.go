// Package config provides configuration for the chess server and the
// self-play runner.
package config

import (
	stderrors "errors"
	"os"
)

// Config holds all program configuration. Each section is validated on its
// own; Validate checks them all.
type Config struct {
	Server   *ServerConfig
	Game     *GameConfig
	SelfPlay *SelfPlayConfig
	Log      *LogConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Server:   NewServerConfig(),
		Game:     NewGameConfig(),
		SelfPlay: NewSelfPlayConfig(),
		Log:      NewLogConfig(),
	}
}

// Validate checks every section and joins the errors. Each wraps
// errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	return stderrors.Join(
		c.Server.Validate(),
		c.Game.Validate(),
		c.SelfPlay.Validate(),
		c.Log.Validate(),
	)
}

// LoadEnv overrides defaults with CHESS_* environment variables. Command-line
// flags are applied after it, so the environment is only a fallback.
func (c *Config) LoadEnv() error {
	return c.loadEnv(os.Getenv)
}

func (c *Config) loadEnv(getenv func(string) string) error {
	e := envReader{getenv: getenv}

	e.stringVar("CHESS_ADDR", &c.Server.Addr)
	e.durationVar("CHESS_READ_TIMEOUT", &c.Server.ReadTimeout)
	e.durationVar("CHESS_WRITE_TIMEOUT", &c.Server.WriteTimeout)
	e.durationVar("CHESS_SHUTDOWN_TIMEOUT", &c.Server.ShutdownTimeout)

	e.gameModeVar("CHESS_GAME_MODE", &c.Game.Mode)
	e.colorVar("CHESS_AI_COLOR", &c.Game.AIColor)
	e.uint64Var("CHESS_SEED", &c.Game.Seed)

	e.intVar("CHESS_GAMES", &c.SelfPlay.Games)
	e.intVar("CHESS_WORKERS", &c.SelfPlay.Workers)
	e.intVar("CHESS_MAX_PLY", &c.SelfPlay.MaxPly)
	e.stringVar("CHESS_START_FEN", &c.SelfPlay.StartFEN)

	e.stringVar("CHESS_LOG_LEVEL", &c.Log.Level)
	e.stringVar("CHESS_LOG_FORMAT", &c.Log.Format)
	e.boolVar("CHESS_NO_COLOR", &c.Log.NoColor)

	return e.err()
}
