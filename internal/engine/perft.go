package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Perft counts the leaf nodes of the legal move tree to the given depth.
// A pawn move onto the last rank counts once per promotion choice. With
// castling and en passant absent the counts match standard perft tables only
// for positions where neither is available.
func Perft(board chess.Board, turn chess.Color, depth int) uint64 {
	if depth <= 0 {
		return 1
	}

	var nodes uint64
	for _, from := range board.PiecePositions(turn) {
		piece := board.Get(from)
		for _, to := range LegalMoves(&board, from) {
			if isPromotionMove(piece, to) {
				for _, pt := range chess.PromotionChoices {
					next := board
					next.Clear(from)
					next.Set(to, chess.Piece{Type: pt, Color: piece.Color, HasMoved: true})
					nodes += Perft(next, turn.Opposite(), depth-1)
				}
				continue
			}

			next := board
			moved := piece
			moved.HasMoved = true
			next.Clear(from)
			next.Set(to, moved)
			nodes += Perft(next, turn.Opposite(), depth-1)
		}
	}
	return nodes
}

// Divide returns the perft count below each legal root move, keyed by the
// move. Promotions are keyed per choice.
func Divide(board chess.Board, turn chess.Color, depth int) map[chess.Move]uint64 {
	result := make(map[chess.Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, from := range board.PiecePositions(turn) {
		piece := board.Get(from)
		for _, to := range LegalMoves(&board, from) {
			next := board
			next.Clear(from)
			if isPromotionMove(piece, to) {
				for _, pt := range chess.PromotionChoices {
					promoted := next
					promoted.Set(to, chess.Piece{Type: pt, Color: piece.Color, HasMoved: true})
					result[chess.Move{From: from, To: to, Promotion: pt}] = Perft(promoted, turn.Opposite(), depth-1)
				}
				continue
			}
			moved := piece
			moved.HasMoved = true
			next.Set(to, moved)
			result[chess.Move{From: from, To: to}] = Perft(next, turn.Opposite(), depth-1)
		}
	}
	return result
}
