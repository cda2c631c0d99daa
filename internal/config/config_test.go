package config

import (
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// TestNewConfig_Defaults verifies every section has sensible defaults
func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, ":8080")
	}
	if cfg.Game.Mode != chess.HumanVsHuman {
		t.Errorf("Game.Mode = %q, want %q", cfg.Game.Mode, chess.HumanVsHuman)
	}
	if cfg.Game.AIColor != chess.Black {
		t.Errorf("Game.AIColor = %s, want black", cfg.Game.AIColor)
	}
	if cfg.SelfPlay.Workers != 1 || cfg.SelfPlay.Games != 1 {
		t.Errorf("SelfPlay = %+v, want one game on one worker", *cfg.SelfPlay)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != LogFormatConsole {
		t.Errorf("Log = %+v, want info/console", *cfg.Log)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("NewConfig().Validate() = %v, want nil", err)
	}
}

// TestConfig_Validate checks each section's rules
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"empty addr", func(c *Config) { c.Server.Addr = "" }, true},
		{"zero read timeout", func(c *Config) { c.Server.ReadTimeout = 0 }, true},
		{"unknown game mode", func(c *Config) { c.Game.Mode = "blitz" }, true},
		{"multiplayer mode", func(c *Config) { c.Game.Mode = chess.Multiplayer }, false},
		{"bad ai color", func(c *Config) { c.Game.AIColor = chess.Color(5) }, true},
		{"negative games", func(c *Config) { c.SelfPlay.Games = -1 }, true},
		{"zero games", func(c *Config) { c.SelfPlay.Games = 0 }, false},
		{"zero workers", func(c *Config) { c.SelfPlay.Workers = 0 }, true},
		{"zero max ply", func(c *Config) { c.SelfPlay.MaxPly = 0 }, true},
		{"bad log level", func(c *Config) { c.Log.Level = "chatty" }, true},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, true},
		{"json log format", func(c *Config) { c.Log.Format = LogFormatJSON }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func envMap(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

// TestLoadEnv verifies environment values override defaults
func TestLoadEnv(t *testing.T) {
	cfg := NewConfig()
	err := cfg.loadEnv(envMap(map[string]string{
		"CHESS_ADDR":          "127.0.0.1:9000",
		"CHESS_READ_TIMEOUT":  "3s",
		"CHESS_GAME_MODE":     "human_vs_ai",
		"CHESS_AI_COLOR":      "white",
		"CHESS_SEED":          "42",
		"CHESS_WORKERS":       "4",
		"CHESS_GAMES":         " 10 ",
		"CHESS_LOG_FORMAT":    "json",
		"CHESS_NO_COLOR":      "yes",
		"CHESS_UNRELATED_VAR": "ignored",
	}))
	if err != nil {
		t.Fatalf("loadEnv() error = %v", err)
	}

	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("Server.Addr = %q", cfg.Server.Addr)
	}
	if cfg.Server.ReadTimeout != 3*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 3s", cfg.Server.ReadTimeout)
	}
	if cfg.Server.WriteTimeout != 10*time.Second {
		t.Errorf("Server.WriteTimeout = %v, want default 10s", cfg.Server.WriteTimeout)
	}
	if cfg.Game.Mode != chess.HumanVsAI || cfg.Game.AIColor != chess.White || cfg.Game.Seed != 42 {
		t.Errorf("Game = %+v", *cfg.Game)
	}
	if cfg.SelfPlay.Workers != 4 || cfg.SelfPlay.Games != 10 {
		t.Errorf("SelfPlay = %+v", *cfg.SelfPlay)
	}
	if cfg.Log.Format != LogFormatJSON || !cfg.Log.NoColor {
		t.Errorf("Log = %+v", *cfg.Log)
	}
}

// TestLoadEnv_Errors verifies every bad value is reported and good ones still apply
func TestLoadEnv_Errors(t *testing.T) {
	cfg := NewConfig()
	err := cfg.loadEnv(envMap(map[string]string{
		"CHESS_WORKERS":      "many",
		"CHESS_SEED":         "-1",
		"CHESS_READ_TIMEOUT": "soon",
		"CHESS_GAME_MODE":    "blitz",
		"CHESS_AI_COLOR":     "green",
		"CHESS_NO_COLOR":     "maybe",
		"CHESS_ADDR":         ":7000",
	}))
	if !errors.Is(err, errors.ErrInvalidConfig) {
		t.Fatalf("loadEnv() error = %v, want ErrInvalidConfig", err)
	}
	for _, key := range []string{"CHESS_WORKERS", "CHESS_SEED", "CHESS_READ_TIMEOUT", "CHESS_GAME_MODE", "CHESS_AI_COLOR", "CHESS_NO_COLOR"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("loadEnv() error does not mention %s: %v", key, err)
		}
	}
	if cfg.SelfPlay.Workers != 1 {
		t.Errorf("Workers = %d, want default kept", cfg.SelfPlay.Workers)
	}
	if cfg.Server.Addr != ":7000" {
		t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, ":7000")
	}
}

// TestNewLogger checks levels and formats
func TestNewLogger(t *testing.T) {
	tests := []struct {
		level, format string
		wantErr       bool
	}{
		{"info", LogFormatConsole, false},
		{"debug", LogFormatJSON, false},
		{"warn", LogFormatJSON, false},
		{"loud", LogFormatJSON, true},
		{"info", "xml", true},
	}

	for _, tt := range tests {
		t.Run(tt.level+"/"+tt.format, func(t *testing.T) {
			logger, err := NewLogger(tt.level, tt.format)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewLogger(%q, %q) error = %v, wantErr %v", tt.level, tt.format, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrInvalidConfig) {
					t.Errorf("NewLogger() error = %v, want ErrInvalidConfig", err)
				}
				return
			}
			if logger == nil {
				t.Fatal("NewLogger() returned nil logger")
			}
			_ = logger.Sync()
		})
	}
}

// TestNewLogger_Level verifies the level gate is applied
func TestNewLogger_Level(t *testing.T) {
	logger, err := NewLogger("warn", LogFormatJSON)
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}
	if logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug enabled at warn level")
	}
	if !logger.Core().Enabled(zapcore.WarnLevel) {
		t.Error("warn disabled at warn level")
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	cfg := NewConfigBuilder().
		WithAddr(":9999").
		WithGameMode(chess.HumanVsAI).
		WithAIColor(chess.White).
		WithSeed(7).
		WithSelfPlay(20, 4, 100).
		WithStartFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1").
		WithTimeouts(time.Second, 2*time.Second).
		WithLogLevel("debug").
		Build()

	if cfg.Server.Addr != ":9999" {
		t.Errorf("Addr = %q, want :9999", cfg.Server.Addr)
	}
	if cfg.Game.Mode != chess.HumanVsAI || cfg.Game.AIColor != chess.White || cfg.Game.Seed != 7 {
		t.Errorf("Game = %+v", *cfg.Game)
	}
	if cfg.SelfPlay.Games != 20 || cfg.SelfPlay.Workers != 4 || cfg.SelfPlay.MaxPly != 100 {
		t.Errorf("SelfPlay = %+v", *cfg.SelfPlay)
	}
	if cfg.Server.WriteTimeout != 2*time.Second {
		t.Errorf("WriteTimeout = %v, want 2s", cfg.Server.WriteTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}
