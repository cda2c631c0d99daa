package engine

import (
	"strings"
	"testing"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestNewBoardFromFEN_Initial(t *testing.T) {
	board, turn, err := NewBoardFromFEN(InitialFEN)
	testutil.RequireNoError(t, err)
	testutil.AssertEqual(t, board, NewInitialBoard())
	testutil.AssertEqual(t, turn, chess.White)
}

func TestBoardToFEN(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want string
	}{
		{"initial", InitialFEN, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"},
		{"black to move", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - - 0 1"},
		{"sparse", "8/P6k/8/8/8/8/8/K7 w - - 0 1", "8/P6k/8/8/8/8/8/K7 w - - 0 1"},
		{"placement only", "4k3/8/8/8/8/8/8/4K3", "4k3/8/8/8/8/8/8/4K3 w - - 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board, turn, err := NewBoardFromFEN(tt.fen)
			testutil.RequireNoError(t, err)
			if got := BoardToFEN(&board, turn); got != tt.want {
				t.Errorf("BoardToFEN() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestNewBoardFromFEN_Errors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"too few rows", "8/8/8 w - - 0 1"},
		{"too many rows", "8/8/8/8/8/8/8/8/8 w - - 0 1"},
		{"short row", "7/8/8/8/8/8/8/8 w - - 0 1"},
		{"long row", "44k/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"bad piece letter", "4x3/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"digit nine", "9/8/8/8/8/8/8/8 w - - 0 1"},
		{"non-ASCII king", "\u026b7/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"non-ASCII pawns", "4k3/8/8/8/8/8/8/\u0150\u0150\u0150\u0150K3 w - - 0 1"},
		{"bad side to move", "4k3/8/8/8/8/8/8/4K3 x - - 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := NewBoardFromFEN(tt.fen)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN, "NewBoardFromFEN(%q)", tt.fen)

			_, err = NewGameFromFEN(tt.fen, chess.HumanVsHuman)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN, "NewGameFromFEN(%q)", tt.fen)
		})
	}
}

func TestNewGameFromFEN_MarksMovedPawns(t *testing.T) {
	state, err := NewGameFromFEN("4k3/p7/1p6/8/8/6P1/7P/4K3 b - - 0 1", chess.Multiplayer)
	testutil.RequireNoError(t, err)

	testutil.AssertFalse(t, state.Board.Get(chess.Pos(1, 0)).HasMoved, "black pawn on start row")
	testutil.AssertTrue(t, state.Board.Get(chess.Pos(2, 1)).HasMoved, "black pawn advanced")
	testutil.AssertTrue(t, state.Board.Get(chess.Pos(5, 6)).HasMoved, "white pawn advanced")
	testutil.AssertFalse(t, state.Board.Get(chess.Pos(6, 7)).HasMoved, "white pawn on start row")
	testutil.AssertEqual(t, state.CurrentTurn, chess.Black)
	testutil.AssertEqual(t, state.Mode, chess.Multiplayer)
	testutil.AssertEqual(t, StateToFEN(state), "4k3/p7/1p6/8/8/6P1/7P/4K3 b - - 0 1")
}

// TestFEN_AgreesWithNotnil checks the FEN writer against an independent
// implementation, and the legal move count in positions without castling
// rights or an en passant square.
func TestFEN_AgreesWithNotnil(t *testing.T) {
	fens := []string{
		InitialFEN,
		"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w - - 1 3",
		"4r1k1/8/8/8/8/8/4N3/4K3 w - - 0 1",
		"1r5k/P7/8/8/8/8/8/K7 w - - 0 1",
		"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R b - - 4 4",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			t.Parallel()
			board, turn, err := NewBoardFromFEN(fen)
			testutil.RequireNoError(t, err)
			ours := BoardToFEN(&board, turn)

			opt, err := nchess.FEN(ours)
			if err != nil {
				t.Fatalf("nchess.FEN(%q) error: %v", ours, err)
			}
			game := nchess.NewGame(opt)

			theirs := strings.Fields(game.Position().String())
			fields := strings.Fields(ours)
			testutil.AssertEqual(t, theirs[:2], fields[:2], "placement and side to move")

			if got, want := Perft(board, turn, 1), uint64(len(game.ValidMoves())); got != want {
				t.Errorf("Perft(1) = %d; notnil/chess has %d valid moves", got, want)
			}
		})
	}
}
