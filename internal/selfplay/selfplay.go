// Package selfplay plays complete games with the random move selector on
// both sides and summarises how they ended.
package selfplay

import (
	"context"

	petname "github.com/dustinkirkland/golang-petname"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/output"
)

// Outcome is how a self-play game stopped.
type Outcome string

const (
	// OutcomeCheckmate: the side to move is checkmated.
	OutcomeCheckmate Outcome = "checkmate"

	// OutcomeNoLegalMoves: the side to move has no legal move and is not
	// in check. The engine does not score this as a draw.
	OutcomeNoLegalMoves Outcome = "no_legal_moves"

	// OutcomePlyLimit: the game reached Options.MaxPly.
	OutcomePlyLimit Outcome = "ply_limit"

	// OutcomeAborted: the context was cancelled mid-game.
	OutcomeAborted Outcome = "aborted"
)

// Options control a single game.
type Options struct {
	MaxPly int

	// StartFEN is the starting position; empty means the standard one.
	StartFEN string
}

// Analysis holds counters gathered while a game is played.
type Analysis struct {
	Captures   int
	Promotions int

	// Checks counts positions, after a move, where the side to move was
	// in check.
	Checks int
}

// Result is a finished game.
type Result struct {
	Index   int
	Name    string
	Seed    uint64
	Outcome Outcome
	Plies   int
	Final   chess.GameState

	Analysis Analysis
}

// Winner returns the side that delivered checkmate. ok is false for any
// other outcome.
func (r *Result) Winner() (winner chess.Color, ok bool) {
	if r.Outcome != OutcomeCheckmate {
		return chess.White, false
	}
	return r.Final.CurrentTurn.Opposite(), true
}

// Record converts the result to an output record.
func (r *Result) Record() *output.GameRecord {
	rec := &output.GameRecord{
		Index:    r.Index,
		Name:     r.Name,
		Seed:     r.Seed,
		Outcome:  string(r.Outcome),
		Plies:    r.Plies,
		FinalFEN: engine.StateToFEN(r.Final),
		Moves:    output.MovesToJSON(r.Final.MoveHistory),
		Final:    r.Final,
	}
	if winner, ok := r.Winner(); ok {
		rec.Winner = winner.String()
	}
	return rec
}

// Play runs one game from opts.StartFEN until checkmate, no legal move,
// the ply limit or cancellation of ctx. The moves depend only on seed.
func Play(ctx context.Context, opts Options, index int, seed uint64) (*Result, error) {
	state := engine.InitializeGame(chess.HumanVsHuman)
	if opts.StartFEN != "" {
		var err error
		state, err = engine.NewGameFromFEN(opts.StartFEN, chess.HumanVsHuman)
		if err != nil {
			return nil, err
		}
	}

	res := &Result{
		Index: index,
		Name:  petname.Generate(2, "-"),
		Seed:  seed,
	}
	rng := engine.NewRand(seed)

	for {
		if ctx.Err() != nil {
			res.Outcome = OutcomeAborted
			break
		}
		if !engine.HasLegalMoves(&state.Board, state.CurrentTurn) {
			res.Outcome = OutcomeNoLegalMoves
			if state.IsCheckmate {
				res.Outcome = OutcomeCheckmate
			}
			break
		}
		if res.Plies >= opts.MaxPly {
			res.Outcome = OutcomePlyLimit
			break
		}

		next, err := engine.MakeAIMove(state, rng)
		if err != nil {
			return nil, errors.Wrapf(err, "game %d ply %d", index, res.Plies)
		}
		res.Analysis.observe(state, next)
		state = next
		res.Plies++
	}

	res.Final = state
	return res, nil
}

// observe updates the counters for the move from prev to next.
func (a *Analysis) observe(prev, next chess.GameState) {
	if len(next.CapturedPieces) > len(prev.CapturedPieces) {
		a.Captures++
	}
	if n := len(next.MoveHistory); n > 0 && next.MoveHistory[n-1].Promotion != chess.NoPiece {
		a.Promotions++
	}
	if next.IsCheck {
		a.Checks++
	}
}
