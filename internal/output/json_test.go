package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func decode(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("json.Unmarshal() error: %v\n%s", err, data)
	}
	return m
}

// TestStateToJSON_Initial verifies the wire shape of a fresh game
func TestStateToJSON_Initial(t *testing.T) {
	var buf bytes.Buffer
	err := WriteStateJSON(&buf, engine.InitializeGame(chess.HumanVsAI), false)
	testutil.RequireNoError(t, err)

	m := decode(t, buf.Bytes())

	board, ok := m["board"].([]any)
	if !ok || len(board) != 8 {
		t.Fatalf("board = %v; want 8 rows", m["board"])
	}
	corner := board[0].([]any)[0]
	testutil.AssertEqual(t, corner, map[string]any{
		"type":     "rook",
		"color":    "black",
		"position": map[string]any{"row": 0.0, "col": 0.0},
		"hasMoved": false,
	})
	testutil.AssertNil(t, board[4].([]any)[4], "empty square")

	testutil.AssertEqual(t, m["currentTurn"], "white")
	testutil.AssertEqual(t, m["gameMode"], "human_vs_ai")
	testutil.AssertEqual(t, m["promotionPending"], false)
	testutil.AssertNil(t, m["promotionPosition"])
	testutil.AssertNil(t, m["selectedPiece"])
	testutil.AssertEqual(t, m["possibleMoves"], []any{})
	testutil.AssertEqual(t, m["moveHistory"], []any{})
	testutil.AssertEqual(t, m["capturedPieces"], map[string]any{"white": []any{}, "black": []any{}})
	testutil.AssertEqual(t, m["isCheck"], false)
	testutil.AssertEqual(t, m["isCheckmate"], false)
}

// TestStateToJSON_Selection verifies selection and possible moves
func TestStateToJSON_Selection(t *testing.T) {
	state := engine.SelectPiece(chess.Pos(7, 1), engine.InitializeGame(chess.HumanVsHuman))
	js := StateToJSON(state)

	testutil.AssertEqual(t, js.SelectedPiece, &JSONPosition{Row: 7, Col: 1})
	byRowCol := cmpopts.SortSlices(func(a, b JSONPosition) bool {
		return a.Row*8+a.Col < b.Row*8+b.Col
	})
	testutil.AssertDiff(t, js.PossibleMoves, []JSONPosition{{Row: 5, Col: 0}, {Row: 5, Col: 2}}, []cmp.Option{byRowCol})
}

// TestStateToJSON_CapturesByCapturingSide verifies the split of captured pieces
func TestStateToJSON_CapturesByCapturingSide(t *testing.T) {
	state, err := engine.NewGameFromFEN("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1", chess.HumanVsHuman)
	testutil.RequireNoError(t, err)
	state, err = engine.MovePiece(chess.Pos(4, 4), chess.Pos(3, 3), state)
	testutil.RequireNoError(t, err)

	js := StateToJSON(state)
	testutil.AssertEqual(t, js.CapturedPieces.White, []JSONPiece{{Type: "pawn", Color: "black", HasMoved: true}})
	testutil.AssertEqual(t, js.CapturedPieces.Black, []JSONPiece{})
	testutil.AssertEqual(t, js.MoveHistory, []JSONMove{{From: JSONPosition{4, 4}, To: JSONPosition{3, 3}}})
	testutil.AssertEqual(t, js.CurrentTurn, "black")
}

// TestStateToJSON_Promotion verifies the pending flag, position and history entry
func TestStateToJSON_Promotion(t *testing.T) {
	state, err := engine.NewGameFromFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1", chess.HumanVsHuman)
	testutil.RequireNoError(t, err)
	pending, err := engine.MovePiece(chess.Pos(1, 0), chess.Pos(0, 0), state)
	testutil.RequireNoError(t, err)

	js := StateToJSON(pending)
	testutil.AssertTrue(t, js.PromotionPending)
	testutil.AssertEqual(t, js.PromotionPosition, &JSONPosition{Row: 0, Col: 0})

	done, err := engine.PromotePawn(pending, chess.Rook)
	testutil.RequireNoError(t, err)
	js = StateToJSON(done)
	testutil.AssertFalse(t, js.PromotionPending)
	testutil.AssertNil(t, js.PromotionPosition)
	testutil.AssertEqual(t, js.MoveHistory, []JSONMove{{From: JSONPosition{1, 0}, To: JSONPosition{0, 0}, Promotion: "rook"}})
	testutil.AssertEqual(t, *js.Board[0][0], JSONPiece{Type: "rook", Color: "white", Position: &JSONPosition{0, 0}, HasMoved: true})
}

// TestNewMoveResponse verifies success and error reporting
func TestNewMoveResponse(t *testing.T) {
	state := engine.InitializeGame(chess.HumanVsHuman)
	_, err := engine.MovePiece(chess.Pos(4, 4), chess.Pos(3, 4), state)
	if err == nil {
		t.Fatal("MovePiece(empty square) succeeded")
	}

	failed := NewMoveResponse(state, err)
	testutil.AssertFalse(t, failed.Success)
	testutil.AssertEqual(t, failed.Error, err.Error())

	var buf bytes.Buffer
	testutil.RequireNoError(t, writeJSON(&buf, NewMoveResponse(state, nil), false))
	m := decode(t, buf.Bytes())
	testutil.AssertEqual(t, m["success"], true)
	if _, ok := m["error"]; ok {
		t.Errorf("successful response has an error key: %v", m["error"])
	}
	if _, ok := m["gameState"].(map[string]any); !ok {
		t.Errorf("gameState = %v; want an object", m["gameState"])
	}
}
