package chess

// Board is the 8x8 grid indexed [row][col]. It is a value type: assigning a
// Board copies every square, which is how moves are simulated and how each
// GameState gets a board no other state can reach.
type Board [BoardSize][BoardSize]Piece

// backRank is the piece order on both back ranks, from column 0.
var backRank = [BoardSize]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	*b = Board{}
	for col := 0; col < BoardSize; col++ {
		b[BlackBackRank][col] = Piece{Type: backRank[col], Color: Black}
		b[PawnStartRow(Black)][col] = Piece{Type: Pawn, Color: Black}
		b[PawnStartRow(White)][col] = Piece{Type: Pawn, Color: White}
		b[WhiteBackRank][col] = Piece{Type: backRank[col], Color: White}
	}
}

// Get returns the piece at pos, or an empty piece when pos is off the board.
func (b *Board) Get(pos Position) Piece {
	if !pos.InBounds() {
		return Piece{}
	}
	return b[pos.Row][pos.Col]
}

// Set places a piece at pos. Off-board positions are ignored.
func (b *Board) Set(pos Position, piece Piece) {
	if pos.InBounds() {
		b[pos.Row][pos.Col] = piece
	}
}

// Clear empties the square at pos.
func (b *Board) Clear(pos Position) {
	b.Set(pos, Piece{})
}

// IsEmpty reports whether pos holds no piece.
func (b *Board) IsEmpty(pos Position) bool {
	return b.Get(pos).IsEmpty()
}

// PiecePositions returns the squares holding pieces of the given color, in
// row-major scan order.
func (b *Board) PiecePositions(color Color) []Position {
	var out []Position
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b[row][col]
			if !p.IsEmpty() && p.Color == color {
				out = append(out, Position{Row: row, Col: col})
			}
		}
	}
	return out
}

// CountPieces returns how many pieces of the given type and color are on the board.
func (b *Board) CountPieces(color Color, pieceType PieceType) int {
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b[row][col]
			if p.Type == pieceType && p.Color == color {
				n++
			}
		}
	}
	return n
}
