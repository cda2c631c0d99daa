package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// MustBoard builds a board from an eight-line diagram, row 0 first. Pieces
// use FEN letters (uppercase white), and '.' marks an empty square. Spaces
// are ignored, so rows may be written as "r . . . k . . r".
//
// Pawns off their starting row are marked as moved.
func MustBoard(t testing.TB, diagram string) chess.Board {
	t.Helper()

	var board chess.Board
	var rows []string
	for _, line := range strings.Split(diagram, "\n") {
		line = strings.ReplaceAll(strings.TrimSpace(line), " ", "")
		if line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) != chess.BoardSize {
		t.Fatalf("MustBoard: diagram has %d rows; want %d", len(rows), chess.BoardSize)
	}

	for row, line := range rows {
		if len(line) != chess.BoardSize {
			t.Fatalf("MustBoard: row %d %q has %d squares; want %d", row, line, len(line), chess.BoardSize)
		}
		for col := 0; col < chess.BoardSize; col++ {
			c := line[col]
			if c == '.' {
				continue
			}
			pt, ok := chess.ParsePieceType(string(c))
			if !ok {
				t.Fatalf("MustBoard: bad piece %q at %d,%d", c, row, col)
			}
			color := chess.White
			if c >= 'a' && c <= 'z' {
				color = chess.Black
			}
			piece := chess.Piece{Type: pt, Color: color}
			if pt == chess.Pawn && row != chess.PawnStartRow(color) {
				piece.HasMoved = true
			}
			board[row][col] = piece
		}
	}
	return board
}

// Diagram renders a board in the format MustBoard reads, for failure output.
func Diagram(board *chess.Board) string {
	var sb strings.Builder
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			p := board[row][col]
			if p.IsEmpty() {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(p.FENLetter())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Positions is a shorthand for a list of positions given as row, col pairs.
func Positions(rowCols ...int) []chess.Position {
	if len(rowCols)%2 != 0 {
		panic("testutil.Positions: odd number of coordinates")
	}
	out := make([]chess.Position, 0, len(rowCols)/2)
	for i := 0; i < len(rowCols); i += 2 {
		out = append(out, chess.Pos(rowCols[i], rowCols[i+1]))
	}
	return out
}
