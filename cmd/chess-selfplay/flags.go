// flags.go - Command-line flag definitions
package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/lgbarn/chessrules-go/internal/config"
)

// options holds output flags that are not configuration.
type options struct {
	show     bool
	json     bool
	jsonl    bool
	unicode  bool
	coords   bool
	noSum    bool
	forceCol bool
}

// parseFlags applies command-line flags on top of cfg, whose current values
// (defaults, then environment) are the flag defaults.
func parseFlags(cfg *config.Config, args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("chess-selfplay", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: chess-selfplay [options]\n\n")
		fmt.Fprintf(stderr, "Plays random legal games on both sides and reports how they end.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
	}

	// Batch
	fs.IntVar(&cfg.SelfPlay.Games, "games", cfg.SelfPlay.Games, "number of games")
	fs.IntVar(&cfg.SelfPlay.Workers, "workers", cfg.SelfPlay.Workers, "parallel workers")
	fs.IntVar(&cfg.SelfPlay.MaxPly, "maxply", cfg.SelfPlay.MaxPly, "stop a game after this many plies")
	fs.StringVar(&cfg.SelfPlay.StartFEN, "fen", cfg.SelfPlay.StartFEN, "start position (default: standard)")
	fs.Uint64Var(&cfg.Game.Seed, "seed", cfg.Game.Seed, "base seed; game i uses seed+i (0 = random)")

	// Output
	fs.BoolVar(&opts.show, "show", false, "print each final board")
	fs.BoolVar(&opts.unicode, "unicode", false, "draw pieces with chess symbols")
	fs.BoolVar(&opts.coords, "coords", true, "label ranks and files")
	fs.BoolVar(&opts.json, "json", false, "write all games as one JSON document")
	fs.BoolVar(&opts.jsonl, "jsonl", false, "write one JSON object per game")
	fs.BoolVar(&opts.noSum, "no-summary", false, "omit the batch summary")
	fs.BoolVar(&cfg.Log.NoColor, "no-color", cfg.Log.NoColor, "disable colored boards")
	fs.BoolVar(&opts.forceCol, "color", false, "color boards even when not writing to a terminal")

	// Logging
	fs.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.Log.Format, "log-format", cfg.Log.Format, "log format: console, json")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if opts.json && opts.jsonl {
		return nil, fmt.Errorf("-json and -jsonl are exclusive")
	}
	return opts, nil
}
