package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// LegalMoves returns the destinations of the piece on from that do not leave
// its own king in check. Every pseudo-legal move is tried on a copy of the
// board, which also covers pins and king moves into attacked squares.
func LegalMoves(board *chess.Board, from chess.Position) []chess.Position {
	piece := board.Get(from)
	if piece.IsEmpty() {
		return nil
	}

	var legal []chess.Position
	for _, to := range RawMoves(board, from) {
		if tryMove(board, from, to, piece.Color) {
			legal = append(legal, to)
		}
	}
	return legal
}

// GetPossibleMoves returns the legal destinations for the piece on from.
func GetPossibleMoves(board *chess.Board, from chess.Position) []chess.Position {
	return LegalMoves(board, from)
}

// IsLegalMove reports whether to is a legal destination for the piece on from.
func IsLegalMove(board *chess.Board, from, to chess.Position) bool {
	for _, m := range LegalMoves(board, from) {
		if m == to {
			return true
		}
	}
	return false
}

// HasLegalMoves returns true if the given color has at least one legal move.
func HasLegalMoves(board *chess.Board, color chess.Color) bool {
	for _, from := range board.PiecePositions(color) {
		for _, to := range RawMoves(board, from) {
			if tryMove(board, from, to, color) {
				return true
			}
		}
	}
	return false
}

// AllLegalMoves returns every legal move for the given color in scan order.
// Promotions appear once per destination, without a Promotion piece.
func AllLegalMoves(board *chess.Board, color chess.Color) []chess.Move {
	var moves []chess.Move
	for _, from := range board.PiecePositions(color) {
		for _, to := range LegalMoves(board, from) {
			moves = append(moves, chess.Move{From: from, To: to})
		}
	}
	return moves
}

// tryMove makes a move on a copied board and checks if it leaves the king in check.
func tryMove(board *chess.Board, from, to chess.Position, color chess.Color) bool {
	// Make a copy of the board
	testBoard := *board

	// Make the move
	piece := testBoard.Get(from)
	testBoard.Clear(from)
	testBoard.Set(to, piece)

	// Check if our king is in check after the move
	return !IsInCheck(&testBoard, color)
}
