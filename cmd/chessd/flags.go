// flags.go - Command-line flag definitions
package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
)

// options holds flags that are not configuration.
type options struct {
	version bool
}

// parseFlags applies command-line flags on top of cfg. Defaults shown in the
// usage text are the values cfg already holds, so environment variables
// loaded earlier act as fallbacks.
func parseFlags(cfg *config.Config, args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("chessd", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: chessd [options]\n\n")
		fmt.Fprintf(stderr, "Serves one chess game over a JSON API.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nEvery option can also be set with a CHESS_* environment variable.\n")
	}

	// Server
	fs.StringVar(&cfg.Server.Addr, "addr", cfg.Server.Addr, "listen address")
	fs.DurationVar(&cfg.Server.ReadTimeout, "read-timeout", cfg.Server.ReadTimeout, "HTTP read timeout")
	fs.DurationVar(&cfg.Server.WriteTimeout, "write-timeout", cfg.Server.WriteTimeout, "HTTP write timeout")
	fs.DurationVar(&cfg.Server.ShutdownTimeout, "shutdown-timeout", cfg.Server.ShutdownTimeout, "graceful shutdown limit")

	// Game
	fs.Func("mode", fmt.Sprintf("game mode: human_vs_human, human_vs_ai, multiplayer (default %s)", cfg.Game.Mode), func(s string) error {
		mode, ok := chess.ParseGameMode(s)
		if !ok {
			return fmt.Errorf("unknown game mode %q", s)
		}
		cfg.Game.Mode = mode
		return nil
	})
	fs.Func("ai-color", fmt.Sprintf("side the server plays in human_vs_ai (default %s)", cfg.Game.AIColor), func(s string) error {
		c, ok := chess.ParseColor(s)
		if !ok {
			return fmt.Errorf("unknown color %q", s)
		}
		cfg.Game.AIColor = c
		return nil
	})
	fs.Uint64Var(&cfg.Game.Seed, "seed", cfg.Game.Seed, "move selector seed (0 = random)")

	// Logging
	fs.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.Log.Format, "log-format", cfg.Log.Format, "log format: console, json")

	fs.BoolVar(&opts.version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}
