// Package engine provides chess move generation, validation and move
// application over chess.GameState values.
package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ConvertFENCharToPiece converts a FEN character to a piece type.
func ConvertFENCharToPiece(c byte) chess.PieceType {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.NoPiece
	}
}

// NewBoardFromFEN parses the piece placement and side-to-move fields of a
// FEN string. The castling, en passant and clock fields are accepted and
// ignored since the engine has no use for them.
func NewBoardFromFEN(fen string) (chess.Board, chess.Color, error) {
	var board chess.Board

	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return board, chess.White, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	if err := parsePiecePositions(&board, parts[0]); err != nil {
		return chess.Board{}, chess.White, err
	}

	turn, err := parseSideToMove(parts)
	if err != nil {
		return chess.Board{}, chess.White, err
	}

	return board, turn, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
// FEN lists rank 8 first, which is row 0.
func parsePiecePositions(board *chess.Board, positions string) error {
	row, col := 0, 0

	for _, c := range positions {
		switch {
		case c == '/':
			if col != chess.BoardSize {
				return fmt.Errorf("row %d has %d squares: %w", row, col, errors.ErrInvalidFEN)
			}
			row++
			col = 0
		case c >= '1' && c <= '8':
			col += int(c - '0')
			if col > chess.BoardSize {
				return fmt.Errorf("row %d overflows: %w", row, errors.ErrInvalidFEN)
			}
		default:
			if c > unicode.MaxASCII {
				return fmt.Errorf("invalid piece character: %q: %w", c, errors.ErrInvalidFEN)
			}
			piece := ConvertFENCharToPiece(byte(c))
			if piece == chess.NoPiece {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if col >= chess.BoardSize || row >= chess.BoardSize {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}

			color := chess.White
			if unicode.IsLower(c) {
				color = chess.Black
			}
			board.Set(chess.Pos(row, col), chess.Piece{Type: piece, Color: color})
			col++
		}
	}

	if row != chess.BoardSize-1 || col != chess.BoardSize {
		return fmt.Errorf("placement covers %d rows: %w", row+1, errors.ErrInvalidFEN)
	}
	return nil
}

// parseSideToMove parses the side to move field. It defaults to white.
func parseSideToMove(parts []string) (chess.Color, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
}

// BoardToFEN converts a board and side to move to a FEN string. Castling
// and en passant are always "-" and the clocks "0 1".
func BoardToFEN(board *chess.Board, turn chess.Color) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	if turn == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteString(" - - 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board[row][col]
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.FENLetter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// NewGameFromFEN builds a game state from a FEN position with the check
// flags computed for the side to move. Pawns off their starting row are
// marked as moved.
func NewGameFromFEN(fen string, mode chess.GameMode) (chess.GameState, error) {
	board, turn, err := NewBoardFromFEN(fen)
	if err != nil {
		return chess.GameState{}, err
	}

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := &board[row][col]
			if p.Type == chess.Pawn && row != chess.PawnStartRow(p.Color) {
				p.HasMoved = true
			}
		}
	}

	state := chess.GameState{
		Board:       board,
		CurrentTurn: turn,
		Mode:        mode,
	}
	updateCheckStatus(&state)
	return state, nil
}

// StateToFEN returns the FEN of a game state's position.
func StateToFEN(state chess.GameState) string {
	return BoardToFEN(&state.Board, state.CurrentTurn)
}
