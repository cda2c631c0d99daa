package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// pawnMoves generates single and double pushes and diagonal captures.
// En passant is not generated.
func pawnMoves(board *chess.Board, from chess.Position, color chess.Color) []chess.Position {
	var moves []chess.Position
	dir := chess.ForwardDirection(color)

	// Forward move
	one := from.Offset(dir, 0)
	if one.InBounds() && board.IsEmpty(one) {
		moves = append(moves, one)

		// Double push from starting row
		if from.Row == chess.PawnStartRow(color) {
			two := from.Offset(2*dir, 0)
			if two.InBounds() && board.IsEmpty(two) {
				moves = append(moves, two)
			}
		}
	}

	// Captures
	for dc := -1; dc <= 1; dc += 2 {
		to := from.Offset(dir, dc)
		if !to.InBounds() {
			continue
		}
		target := board.Get(to)
		if !target.IsEmpty() && target.Color != color {
			moves = append(moves, to)
		}
	}

	return moves
}

// isPromotionMove reports whether moving piece to the given square promotes it.
func isPromotionMove(piece chess.Piece, to chess.Position) bool {
	return piece.Type == chess.Pawn && to.Row == chess.PromotionRow(piece.Color)
}
