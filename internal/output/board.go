// Package output renders game states: the JSON wire format served to
// clients, text boards for terminals and self-play game records.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// RenderOptions controls text board rendering.
type RenderOptions struct {
	// Color draws squares with ANSI backgrounds. Without it, the selected
	// square is bracketed and move targets are parenthesised or starred.
	Color bool

	// Unicode uses chess symbols instead of FEN letters.
	Unicode bool

	// Coordinates adds rank numbers and file letters.
	Coordinates bool
}

var unicodePieces = map[chess.Color][7]string{
	chess.White: {" ", "♙", "♘", "♗", "♖", "♕", "♔"},
	chess.Black: {" ", "♟", "♞", "♝", "♜", "♛", "♚"},
}

// palette holds the square colors for one render call.
type palette struct {
	light, dark, selected, target *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		light:    color.New(color.BgHiWhite, color.FgBlack),
		dark:     color.New(color.BgGreen, color.FgBlack),
		selected: color.New(color.BgYellow, color.FgBlack, color.Bold),
		target:   color.New(color.BgCyan, color.FgBlack),
	}
	for _, c := range []*color.Color{p.light, p.dark, p.selected, p.target} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// RenderBoard writes the board of state, row 0 at the top, with the current
// selection and its possible moves highlighted.
func RenderBoard(w io.Writer, state chess.GameState, opts RenderOptions) error {
	var sb strings.Builder
	pal := newPalette(opts.Color)

	targets := make(map[chess.Position]bool, len(state.PossibleMoves))
	for _, m := range state.PossibleMoves {
		targets[m] = true
	}

	for row := 0; row < chess.BoardSize; row++ {
		if opts.Coordinates {
			fmt.Fprintf(&sb, "%d ", chess.BoardSize-row)
		}
		for col := 0; col < chess.BoardSize; col++ {
			pos := chess.Pos(row, col)
			selected := state.SelectedPiece != nil && *state.SelectedPiece == pos
			sb.WriteString(renderSquare(state.Board.Get(pos), pos, selected, targets[pos], pal, opts))
		}
		sb.WriteByte('\n')
	}
	if opts.Coordinates {
		sb.WriteString("  ")
		for col := 0; col < chess.BoardSize; col++ {
			fmt.Fprintf(&sb, " %c ", 'a'+col)
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func renderSquare(p chess.Piece, pos chess.Position, selected, target bool, pal palette, opts RenderOptions) string {
	glyph := pieceGlyph(p, opts)

	if !opts.Color {
		switch {
		case selected:
			return "[" + glyph + "]"
		case target && p.IsEmpty():
			return " * "
		case target:
			return "(" + glyph + ")"
		}
		return " " + glyph + " "
	}

	cell := " " + glyph + " "
	switch {
	case selected:
		return pal.selected.Sprint(cell)
	case target:
		return pal.target.Sprint(cell)
	case (pos.Row+pos.Col)%2 == 0:
		return pal.light.Sprint(cell)
	default:
		return pal.dark.Sprint(cell)
	}
}

func pieceGlyph(p chess.Piece, opts RenderOptions) string {
	if p.IsEmpty() {
		if opts.Color {
			return " "
		}
		return "."
	}
	if opts.Unicode {
		return unicodePieces[p.Color][p.Type]
	}
	return string(p.FENLetter())
}

// StatusLine describes whose turn it is and any check, checkmate or pending
// promotion, e.g. "black to move, check".
func StatusLine(state chess.GameState) string {
	var sb strings.Builder
	sb.WriteString(state.CurrentTurn.String())
	sb.WriteString(" to move")
	switch {
	case state.IsCheckmate:
		sb.WriteString(", checkmate")
	case state.IsCheck:
		sb.WriteString(", check")
	}
	if state.PromotionPending != nil {
		fmt.Fprintf(&sb, ", promotion pending at %s", state.PromotionPending.To)
	}
	return sb.String()
}

// RenderState writes the board followed by the status line and the pieces
// each side has captured.
func RenderState(w io.Writer, state chess.GameState, opts RenderOptions) error {
	if err := RenderBoard(w, state, opts); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s\ncaptured by white: %s\ncaptured by black: %s\n",
		StatusLine(state),
		capturedList(state.CapturedBy(chess.White), opts),
		capturedList(state.CapturedBy(chess.Black), opts))
	return err
}

func capturedList(pieces []chess.Piece, opts RenderOptions) string {
	if len(pieces) == 0 {
		return "-"
	}
	glyphs := make([]string, len(pieces))
	for i, p := range pieces {
		glyphs[i] = pieceGlyph(p, opts)
	}
	return strings.Join(glyphs, " ")
}
