package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// NewInitialBoard returns a board in the standard starting position.
func NewInitialBoard() chess.Board {
	var b chess.Board
	b.SetupInitialPosition()
	return b
}

// InitializeGame returns a fresh game: starting position, white to move.
// The mode is carried for callers and does not change the rules.
func InitializeGame(mode chess.GameMode) chess.GameState {
	return chess.GameState{
		Board:       NewInitialBoard(),
		CurrentTurn: chess.White,
		Mode:        mode,
	}
}

// IsCheckmate returns true if color is in check in the state's position and
// none of its pieces has a legal move.
func IsCheckmate(state chess.GameState, color chess.Color) bool {
	return IsCheckmateOnBoard(&state.Board, color)
}

// IsCheckmateOnBoard is IsCheckmate for a bare board.
//
// A side with no legal moves that is not in check is not reported: stalemate
// is not distinguished from an ongoing game.
func IsCheckmateOnBoard(board *chess.Board, color chess.Color) bool {
	return IsInCheck(board, color) && !HasLegalMoves(board, color)
}

// updateCheckStatus recomputes IsCheck and IsCheckmate for the side to move.
func updateCheckStatus(state *chess.GameState) {
	state.IsCheck = IsInCheck(&state.Board, state.CurrentTurn)
	state.IsCheckmate = state.IsCheck && !HasLegalMoves(&state.Board, state.CurrentTurn)
}
