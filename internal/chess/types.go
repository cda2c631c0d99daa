// Package chess provides core chess types and operations.
package chess

import (
	"fmt"
	"strings"
)

// Color represents the color of a piece or player.
type Color int

const (
	White Color = iota
	Black
)

// String returns the wire name of a color.
func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// Opposite returns the opposite color.
func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

// MarshalText encodes the color by name.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a color name.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, ok := ParseColor(string(text))
	if !ok {
		return fmt.Errorf("unknown color %q", text)
	}
	*c = parsed
	return nil
}

// ParseColor parses "white"/"black" (or "w"/"b"), case-insensitively.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return White, true
	case "black", "b":
		return Black, true
	default:
		return White, false
	}
}

// PieceType represents a chess piece type. The zero value is an empty square.
type PieceType int

const (
	NoPiece PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var pieceNames = []string{"", "pawn", "knight", "bishop", "rook", "queen", "king"}

// String returns the wire name of a piece type.
func (p PieceType) String() string {
	if p >= 0 && int(p) < len(pieceNames) {
		return pieceNames[p]
	}
	return "unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// MarshalText encodes the piece type by name.
func (p PieceType) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes a piece type name.
func (p *PieceType) UnmarshalText(text []byte) error {
	parsed, ok := ParsePieceType(string(text))
	if !ok {
		return fmt.Errorf("unknown piece type %q", text)
	}
	*p = parsed
	return nil
}

// ParsePieceType parses a piece type name such as "queen" or its letter "q".
func ParsePieceType(s string) (PieceType, bool) {
	needle := strings.ToLower(strings.TrimSpace(s))
	switch needle {
	case "p":
		return Pawn, true
	case "n":
		return Knight, true
	case "b":
		return Bishop, true
	case "r":
		return Rook, true
	case "q":
		return Queen, true
	case "k":
		return King, true
	}
	for i := int(Pawn); i < len(pieceNames); i++ {
		if pieceNames[i] == needle {
			return PieceType(i), true
		}
	}
	return NoPiece, false
}

// IsPromotionChoice reports whether a pawn may promote to p.
func (p PieceType) IsPromotionChoice() bool {
	switch p {
	case Queen, Rook, Bishop, Knight:
		return true
	}
	return false
}

// PromotionChoices lists the piece types a pawn may promote to.
var PromotionChoices = []PieceType{Queen, Rook, Bishop, Knight}

// Piece is a colored piece. HasMoved is informational only.
type Piece struct {
	Type     PieceType `json:"type"`
	Color    Color     `json:"color"`
	HasMoved bool      `json:"hasMoved,omitempty"`
}

// IsEmpty reports whether the piece value denotes an empty square.
func (p Piece) IsEmpty() bool {
	return p.Type == NoPiece
}

// FENLetter returns the FEN letter: uppercase for white, lowercase for black.
func (p Piece) FENLetter() byte {
	letter := p.Type.Letter()
	if p.Color == Black && letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a short description such as "white knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty"
	}
	return p.Color.String() + " " + p.Type.String()
}

// Constants for board dimensions.
const (
	BoardSize = 8

	// WhiteBackRank and BlackBackRank are the rows holding each side's pieces.
	WhiteBackRank = 7
	BlackBackRank = 0
)

// Position is a square as {row, col}; row 0 is black's back rank.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// InBounds reports whether the position lies on the board.
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// Offset returns the position shifted by the given deltas.
func (p Position) Offset(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

// String returns the position as "row,col".
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

// ForwardDirection returns -1 for White, +1 for Black (pawn row direction).
func ForwardDirection(color Color) int {
	if color == White {
		return -1
	}
	return 1
}

// PawnStartRow returns the row pawns of the given color start on.
func PawnStartRow(color Color) int {
	if color == White {
		return 6
	}
	return 1
}

// PromotionRow returns the farthest row for the given color's pawns.
func PromotionRow(color Color) int {
	if color == White {
		return BlackBackRank
	}
	return WhiteBackRank
}

// Move is a generated or played move. Promotion is NoPiece unless the move promotes.
type Move struct {
	From      Position  `json:"from"`
	To        Position  `json:"to"`
	Promotion PieceType `json:"promotion,omitempty"`
}

// GameMode labels how a game is driven. It does not affect the rules.
type GameMode string

const (
	HumanVsHuman GameMode = "human_vs_human"
	HumanVsAI    GameMode = "human_vs_ai"
	Multiplayer  GameMode = "multiplayer"
)

// ParseGameMode parses a game mode tag.
func ParseGameMode(s string) (GameMode, bool) {
	switch GameMode(strings.ToLower(strings.TrimSpace(s))) {
	case HumanVsHuman:
		return HumanVsHuman, true
	case HumanVsAI:
		return HumanVsAI, true
	case Multiplayer:
		return Multiplayer, true
	default:
		return HumanVsHuman, false
	}
}
