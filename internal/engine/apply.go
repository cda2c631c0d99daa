package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MovePiece validates and applies a move, returning the new state.
//
// On rejection the input state is returned unchanged together with a
// *errors.MoveError wrapping one of ErrPromotionPending, ErrOutOfBounds,
// ErrNoPiece, ErrWrongTurn or ErrIllegalMove.
//
// A pawn move onto the last rank is not played: the returned state only has
// PromotionPending set, and PromotePawn completes the move.
func MovePiece(from, to chess.Position, state chess.GameState) (chess.GameState, error) {
	if state.PromotionPending != nil {
		return reject(state, errors.ErrPromotionPending, from, to)
	}
	if !from.InBounds() || !to.InBounds() {
		return reject(state, errors.ErrOutOfBounds, from, to)
	}

	piece := state.Board.Get(from)
	if piece.IsEmpty() {
		return reject(state, errors.ErrNoPiece, from, to)
	}
	if piece.Color != state.CurrentTurn {
		return reject(state, errors.ErrWrongTurn, from, to)
	}
	if !IsLegalMove(&state.Board, from, to) {
		return reject(state, errors.ErrIllegalMove, from, to)
	}

	next := state.Clone()

	// Handle promotion
	if isPromotionMove(piece, to) {
		next.PromotionPending = &chess.PromotionPending{From: from, To: to}
		return next, nil
	}

	piece.HasMoved = true
	commit(&next, chess.Move{From: from, To: to}, piece)
	return next, nil
}

// PromotePawn completes a pending promotion with the chosen piece type.
// It returns the input unchanged with ErrNoPromotionPending when nothing is
// pending, or ErrInvalidPromotion for a pawn, king or unknown type.
func PromotePawn(state chess.GameState, pieceType chess.PieceType) (chess.GameState, error) {
	pending := state.PromotionPending
	if pending == nil {
		return state, &errors.MoveError{Err: errors.ErrNoPromotionPending}
	}
	if !pieceType.IsPromotionChoice() {
		return reject(state, errors.ErrInvalidPromotion, pending.From, pending.To)
	}

	pawn := state.Board.Get(pending.From)
	if pawn.IsEmpty() {
		return reject(state, errors.ErrNoPiece, pending.From, pending.To)
	}

	next := state.Clone()
	next.PromotionPending = nil
	promoted := chess.Piece{Type: pieceType, Color: pawn.Color, HasMoved: true}
	commit(&next, chess.Move{From: pending.From, To: pending.To, Promotion: pieceType}, promoted)
	return next, nil
}

// commit performs move with the piece that lands on move.To: it records any
// capture, updates the board and history, switches sides, clears the
// selection and recomputes the check flags for the new side to move.
func commit(state *chess.GameState, move chess.Move, landing chess.Piece) {
	if captured := state.Board.Get(move.To); !captured.IsEmpty() {
		state.CapturedPieces = append(state.CapturedPieces, captured)
	}

	state.Board.Clear(move.From)
	state.Board.Set(move.To, landing)
	state.MoveHistory = append(state.MoveHistory, move)

	state.CurrentTurn = state.CurrentTurn.Opposite()
	state.SelectedPiece = nil
	state.PossibleMoves = nil
	updateCheckStatus(state)
}

// SelectPiece moves the selection cursor. Selecting a piece of the side to
// move stores its legal destinations in PossibleMoves; anything else clears
// the selection.
func SelectPiece(pos chess.Position, state chess.GameState) chess.GameState {
	next := state.Clone()
	piece := state.Board.Get(pos)
	if piece.IsEmpty() || piece.Color != state.CurrentTurn {
		next.SelectedPiece = nil
		next.PossibleMoves = nil
		return next
	}

	next.SelectedPiece = &pos
	next.PossibleMoves = LegalMoves(&next.Board, pos)
	return next
}

// ClearSelection returns the state with no selected piece.
func ClearSelection(state chess.GameState) chess.GameState {
	next := state.Clone()
	next.SelectedPiece = nil
	next.PossibleMoves = nil
	return next
}

// reject returns state untouched with a MoveError describing the attempt.
func reject(state chess.GameState, err error, from, to chess.Position) (chess.GameState, error) {
	moveErr := &errors.MoveError{Err: err, From: from.String(), To: to.String()}
	if piece := state.Board.Get(from); !piece.IsEmpty() {
		moveErr.Piece = piece.String()
	}
	return state, moveErr
}
