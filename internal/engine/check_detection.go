package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsInCheck returns true if the given color's king is attacked. A board
// without that king is never in check.
func IsInCheck(board *chess.Board, color chess.Color) bool {
	kingPos, ok := FindKing(board, color)
	if !ok {
		return false // No king found
	}
	return IsSquareAttacked(board, kingPos, color.Opposite())
}

// FindKing finds the king of the given color on the board.
func FindKing(board *chess.Board, color chess.Color) (chess.Position, bool) {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := board[row][col]
			if p.Type == chess.King && p.Color == color {
				return chess.Pos(row, col), true
			}
		}
	}
	return chess.Position{}, false
}

// IsSquareAttacked returns true if any piece of byColor has pos among its
// pseudo-legal moves. It must not use LegalMoves, which depends on it.
//
// Pawns only reach diagonals holding a piece, so the answer is exact for
// occupied squares such as a king's; an empty square diagonally in front of
// a pawn is not reported.
func IsSquareAttacked(board *chess.Board, pos chess.Position, byColor chess.Color) bool {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := board[row][col]
			if p.IsEmpty() || p.Color != byColor {
				continue
			}
			for _, to := range RawMoves(board, chess.Pos(row, col)) {
				if to == pos {
					return true
				}
			}
		}
	}
	return false
}
