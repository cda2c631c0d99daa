package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// GameConfig holds settings for new games.
type GameConfig struct {
	// Mode is the mode games start in and reset to by default.
	Mode chess.GameMode

	// AIColor is the side the server plays in human_vs_ai games.
	AIColor chess.Color

	// Seed fixes the move selector's randomness; 0 picks a random seed.
	Seed uint64
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		Mode:    chess.HumanVsHuman,
		AIColor: chess.Black,
	}
}

// Validate checks that the game configuration is valid.
func (g *GameConfig) Validate() error {
	if _, ok := chess.ParseGameMode(string(g.Mode)); !ok {
		return fmt.Errorf("game mode %q: %w", g.Mode, errors.ErrInvalidConfig)
	}
	if g.AIColor != chess.White && g.AIColor != chess.Black {
		return fmt.Errorf("ai color %d: %w", g.AIColor, errors.ErrInvalidConfig)
	}
	return nil
}
