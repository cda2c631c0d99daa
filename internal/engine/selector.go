package engine

import (
	"math/rand/v2"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Rand is the randomness used by the move selector. *math/rand/v2.Rand
// satisfies it; tests pass a seeded one to pin the chosen moves.
type Rand interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns a PCG-backed Rand. Equal seeds give equal move sequences.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// AutoPromotion is the piece the selector promotes to.
const AutoPromotion = chess.Queen

// ChooseMove picks a move for the side to move: its pieces are shuffled,
// the first one with a legal move is taken and one of its destinations is
// picked uniformly. It returns false when the side has no legal move.
func ChooseMove(state chess.GameState, rng Rand) (chess.Move, bool) {
	pieces := state.Board.PiecePositions(state.CurrentTurn)
	rng.Shuffle(len(pieces), func(i, j int) {
		pieces[i], pieces[j] = pieces[j], pieces[i]
	})

	for _, from := range pieces {
		moves := LegalMoves(&state.Board, from)
		if len(moves) == 0 {
			continue
		}
		move := chess.Move{From: from, To: moves[rng.IntN(len(moves))]}
		if isPromotionMove(state.Board.Get(from), move.To) {
			move.Promotion = AutoPromotion
		}
		return move, true
	}
	return chess.Move{}, false
}

// MakeAIMove plays one randomly chosen legal move for the side to move.
// A pawn reaching the last rank is promoted to a queen, so the turn always
// passes to the other side.
//
// With no legal move (checkmate or stalemate) the input is returned
// unchanged with ErrNoLegalMoves; callers tell the two apart with IsCheckmate.
func MakeAIMove(state chess.GameState, rng Rand) (chess.GameState, error) {
	if state.PromotionPending != nil {
		return state, &errors.MoveError{Err: errors.ErrPromotionPending}
	}

	move, ok := ChooseMove(state, rng)
	if !ok {
		return state, &errors.MoveError{Err: errors.ErrNoLegalMoves, Piece: state.CurrentTurn.String()}
	}

	next, err := MovePiece(move.From, move.To, state)
	if err != nil {
		return state, err
	}
	if next.PromotionPending != nil {
		promoted, err := PromotePawn(next, move.Promotion)
		if err != nil {
			return state, err
		}
		return promoted, nil
	}
	return next, nil
}
