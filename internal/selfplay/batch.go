package selfplay

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"go.uber.org/zap"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// GameSeed returns the seed of game index in a batch seeded with base.
func GameSeed(base uint64, index int) uint64 {
	return base + uint64(index)
}

// RunBatch plays cfg.Games games on cfg.Workers goroutines. Game i uses
// GameSeed(seed, i); a zero seed is replaced by a random one, logged so
// the batch can be replayed. Results are in game order.
//
// A game that fails (a bad start position) fails the batch. Cancelling ctx
// ends running games as aborted; games never started are reported as
// aborted with zero plies, so the batch still returns one result per game.
func RunBatch(ctx context.Context, cfg *config.SelfPlayConfig, seed uint64, logger *zap.Logger) ([]*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.StartFEN != "" {
		if _, _, err := engine.NewBoardFromFEN(cfg.StartFEN); err != nil {
			return nil, err
		}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if seed == 0 {
		seed = rand.Uint64()
	}
	logger.Info("starting self-play batch",
		zap.Int("games", cfg.Games),
		zap.Int("workers", cfg.Workers),
		zap.Int("max_ply", cfg.MaxPly),
		zap.Uint64("seed", seed),
	)

	opts := Options{MaxPly: cfg.MaxPly, StartFEN: cfg.StartFEN}
	items := make([]worker.WorkItem, cfg.Games)
	for i := range items {
		items[i] = worker.WorkItem{Index: i, Seed: GameSeed(seed, i)}
	}

	process := func(ctx context.Context, item worker.WorkItem) worker.ProcessResult {
		res, err := Play(ctx, opts, item.Index+1, item.Seed)
		if err != nil {
			return worker.ProcessResult{Index: item.Index, Err: err}
		}
		logger.Debug("game finished",
			zap.Int("index", res.Index),
			zap.String("name", res.Name),
			zap.String("outcome", string(res.Outcome)),
			zap.Int("plies", res.Plies),
		)
		return worker.ProcessResult{Index: item.Index, Value: res}
	}

	processed := worker.Run(ctx, items, process, worker.WithWorkers(cfg.Workers))

	results := make([]*Result, 0, len(processed))
	var errs []error
	for _, p := range processed {
		if p.Err != nil && ctx.Err() != nil && errors.Is(p.Err, ctx.Err()) {
			// Skipped after cancellation: record it as aborted at the start position.
			res, err := Play(ctx, opts, p.Index+1, items[p.Index].Seed)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			results = append(results, res)
			continue
		}
		if p.Err != nil {
			errs = append(errs, p.Err)
			continue
		}
		results = append(results, p.Value.(*Result))
	}
	if len(errs) > 0 {
		return results, errors.Wrapf(errs[0], "%d of %d games failed", len(errs), len(processed))
	}
	return results, nil
}

// Summary tallies a batch of results.
type Summary struct {
	Games        int
	WhiteWins    int
	BlackWins    int
	NoLegalMoves int
	PlyLimit     int
	Aborted      int

	TotalPlies int
	MinPlies   int
	MaxPlies   int

	Analysis Analysis
}

// Summarize tallies results.
func Summarize(results []*Result) Summary {
	var s Summary
	for _, r := range results {
		s.add(r)
	}
	return s
}

func (s *Summary) add(r *Result) {
	if s.Games == 0 || r.Plies < s.MinPlies {
		s.MinPlies = r.Plies
	}
	if r.Plies > s.MaxPlies {
		s.MaxPlies = r.Plies
	}
	s.Games++
	s.TotalPlies += r.Plies
	s.Analysis.Captures += r.Analysis.Captures
	s.Analysis.Promotions += r.Analysis.Promotions
	s.Analysis.Checks += r.Analysis.Checks

	switch r.Outcome {
	case OutcomeCheckmate:
		if w, _ := r.Winner(); w == chess.White {
			s.WhiteWins++
		} else {
			s.BlackWins++
		}
	case OutcomeNoLegalMoves:
		s.NoLegalMoves++
	case OutcomePlyLimit:
		s.PlyLimit++
	case OutcomeAborted:
		s.Aborted++
	}
}

// AveragePlies returns the mean game length, 0 for an empty batch.
func (s Summary) AveragePlies() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.TotalPlies) / float64(s.Games)
}

// String formats the summary as a short multi-line report.
func (s Summary) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "games: %d\n", s.Games)
	fmt.Fprintf(&sb, "checkmates: white %d, black %d\n", s.WhiteWins, s.BlackWins)
	fmt.Fprintf(&sb, "no legal moves: %d\n", s.NoLegalMoves)
	fmt.Fprintf(&sb, "ply limit: %d\n", s.PlyLimit)
	if s.Aborted > 0 {
		fmt.Fprintf(&sb, "aborted: %d\n", s.Aborted)
	}
	fmt.Fprintf(&sb, "plies: min %d, max %d, avg %.1f\n", s.MinPlies, s.MaxPlies, s.AveragePlies())
	fmt.Fprintf(&sb, "captures: %d, promotions: %d, checks: %d\n",
		s.Analysis.Captures, s.Analysis.Promotions, s.Analysis.Checks)
	return sb.String()
}
