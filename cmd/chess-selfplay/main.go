// chess-selfplay plays batches of random games and prints how they ended.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/selfplay"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	switch {
	case errors.Is(err, flag.ErrHelp):
		os.Exit(0)
	case err != nil:
		fmt.Fprintf(os.Stderr, "chess-selfplay: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg := config.NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		return err
	}
	opts, err := parseFlags(cfg, args, stderr)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := cfg.Log.Logger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	results, err := selfplay.RunBatch(ctx, cfg.SelfPlay, cfg.Game.Seed, logger)
	if err != nil {
		return err
	}

	w := newGameWriter(opts, stdout, useColor(cfg, opts, stdout))
	for _, res := range results {
		if err := w.WriteGame(res.Record()); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	summary := selfplay.Summarize(results)
	if opts.json || opts.jsonl {
		logger.Info("batch finished",
			zap.Int("games", summary.Games),
			zap.Int("white_wins", summary.WhiteWins),
			zap.Int("black_wins", summary.BlackWins),
			zap.Int("ply_limit", summary.PlyLimit),
		)
		return nil
	}
	if !opts.noSum {
		fmt.Fprintf(stdout, "\n%s", summary)
	}
	return nil
}

// newGameWriter picks the writer for the output flags.
func newGameWriter(opts *options, w io.Writer, color bool) output.GameWriter {
	switch {
	case opts.json:
		return output.NewJSONWriter(w)
	case opts.jsonl:
		return output.NewJSONWriterSingle(w)
	}
	return output.NewTextWriter(w, opts.show, output.RenderOptions{
		Color:       color,
		Unicode:     opts.unicode,
		Coordinates: opts.coords,
	})
}

// useColor reports whether boards are colored: -color forces it, -no-color
// or CHESS_NO_COLOR disables it, otherwise only a terminal gets color.
func useColor(cfg *config.Config, opts *options, w io.Writer) bool {
	switch {
	case cfg.Log.NoColor:
		return false
	case opts.forceCol:
		return true
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
