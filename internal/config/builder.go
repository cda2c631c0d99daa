package config

import (
	"time"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithAddr sets the listen address.
func (b *ConfigBuilder) WithAddr(addr string) *ConfigBuilder {
	b.cfg.Server.Addr = addr
	return b
}

// WithTimeouts sets the server read and write timeouts.
func (b *ConfigBuilder) WithTimeouts(read, write time.Duration) *ConfigBuilder {
	b.cfg.Server.ReadTimeout = read
	b.cfg.Server.WriteTimeout = write
	return b
}

// WithGameMode sets the default game mode.
func (b *ConfigBuilder) WithGameMode(mode chess.GameMode) *ConfigBuilder {
	b.cfg.Game.Mode = mode
	return b
}

// WithAIColor sets the side the server plays.
func (b *ConfigBuilder) WithAIColor(c chess.Color) *ConfigBuilder {
	b.cfg.Game.AIColor = c
	return b
}

// WithSeed fixes the move selector seed.
func (b *ConfigBuilder) WithSeed(seed uint64) *ConfigBuilder {
	b.cfg.Game.Seed = seed
	return b
}

// WithSelfPlay sets the batch size, worker count and ply limit.
func (b *ConfigBuilder) WithSelfPlay(games, workers, maxPly int) *ConfigBuilder {
	b.cfg.SelfPlay.Games = games
	b.cfg.SelfPlay.Workers = workers
	b.cfg.SelfPlay.MaxPly = maxPly
	return b
}

// WithStartFEN sets the self-play starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.SelfPlay.StartFEN = fen
	return b
}

// WithLogLevel sets the log level.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}
