package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

var (
	straightDirs = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonalDirs = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	queenDirs    = append(append([][2]int{}, straightDirs...), diagonalDirs...)

	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// RawMoves returns the pseudo-legal destinations of the piece on from: moves
// that follow the piece's pattern and occupancy rules but may leave its own
// king in check. An empty square yields no moves.
func RawMoves(board *chess.Board, from chess.Position) []chess.Position {
	piece := board.Get(from)

	switch piece.Type {
	case chess.Pawn:
		return pawnMoves(board, from, piece.Color)
	case chess.Rook:
		return slidingMoves(board, from, piece.Color, straightDirs)
	case chess.Bishop:
		return slidingMoves(board, from, piece.Color, diagonalDirs)
	case chess.Queen:
		return slidingMoves(board, from, piece.Color, queenDirs)
	case chess.Knight:
		return steppingMoves(board, from, piece.Color, knightOffsets)
	case chess.King:
		return steppingMoves(board, from, piece.Color, kingOffsets)
	}

	return nil
}

// slidingMoves walks each ray until the board edge, stopping before an own
// piece and on an opposing one.
func slidingMoves(board *chess.Board, from chess.Position, color chess.Color, dirs [][2]int) []chess.Position {
	var moves []chess.Position
	for _, dir := range dirs {
		to := from.Offset(dir[0], dir[1])
		for to.InBounds() {
			target := board.Get(to)
			if !target.IsEmpty() {
				if target.Color != color {
					moves = append(moves, to)
				}
				break // Blocked
			}
			moves = append(moves, to)
			to = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}

// steppingMoves checks each fixed offset (knight and king).
func steppingMoves(board *chess.Board, from chess.Position, color chess.Color, offsets [][2]int) []chess.Position {
	var moves []chess.Position
	for _, offset := range offsets {
		to := from.Offset(offset[0], offset[1])
		if !to.InBounds() {
			continue
		}
		target := board.Get(to)
		if target.IsEmpty() || target.Color != color {
			moves = append(moves, to)
		}
	}
	return moves
}
