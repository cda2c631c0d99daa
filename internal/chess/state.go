package chess

import "slices"

// PromotionPending marks a pawn move that reached the last rank and waits
// for the player to choose a piece type.
type PromotionPending struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

// GameState is the full state of a game. Engine operations never modify a
// GameState they are given; they return a new one.
type GameState struct {
	Board       Board
	CurrentTurn Color
	Mode        GameMode

	// Selection cursor consumed by renderers.
	SelectedPiece *Position
	PossibleMoves []Position

	IsCheck     bool
	IsCheckmate bool

	// CapturedPieces holds every captured piece in capture order. The capturing
	// side is the opposite of each piece's color.
	CapturedPieces []Piece
	MoveHistory    []Move

	PromotionPending *PromotionPending
}

// Clone returns a deep copy of the state. Nil slices and pointers stay nil.
func (s GameState) Clone() GameState {
	out := s
	out.PossibleMoves = slices.Clone(s.PossibleMoves)
	out.CapturedPieces = slices.Clone(s.CapturedPieces)
	out.MoveHistory = slices.Clone(s.MoveHistory)
	if s.SelectedPiece != nil {
		sel := *s.SelectedPiece
		out.SelectedPiece = &sel
	}
	if s.PromotionPending != nil {
		pending := *s.PromotionPending
		out.PromotionPending = &pending
	}
	return out
}

// CapturedBy returns the pieces captured by the given color, in capture order.
func (s GameState) CapturedBy(color Color) []Piece {
	var out []Piece
	for _, p := range s.CapturedPieces {
		if p.Color != color {
			out = append(out, p)
		}
	}
	return out
}

// Ply returns the number of completed moves.
func (s GameState) Ply() int {
	return len(s.MoveHistory)
}
