package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// SelfPlayConfig holds settings for batches of engine-vs-engine games.
type SelfPlayConfig struct {
	Games   int
	Workers int

	// MaxPly ends a game that has not finished after this many plies.
	MaxPly int

	// StartFEN is the starting position; empty means the standard one.
	StartFEN string
}

// NewSelfPlayConfig creates a SelfPlayConfig with default values.
func NewSelfPlayConfig() *SelfPlayConfig {
	return &SelfPlayConfig{
		Games:   1,
		Workers: 1,
		MaxPly:  400,
	}
}

// Validate checks that the self-play configuration is valid.
func (s *SelfPlayConfig) Validate() error {
	if s.Games < 0 {
		return fmt.Errorf("games %d: %w", s.Games, errors.ErrInvalidConfig)
	}
	if s.Workers < 1 {
		return fmt.Errorf("workers %d: %w", s.Workers, errors.ErrInvalidConfig)
	}
	if s.MaxPly < 1 {
		return fmt.Errorf("max ply %d: %w", s.MaxPly, errors.ErrInvalidConfig)
	}
	return nil
}
