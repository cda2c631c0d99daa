package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// JSONPosition is a square on the wire.
type JSONPosition struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// JSONPiece is a piece on the wire. Board pieces carry their square;
// captured pieces do not.
type JSONPiece struct {
	Type     string        `json:"type"`
	Color    string        `json:"color"`
	Position *JSONPosition `json:"position,omitempty"`
	HasMoved bool          `json:"hasMoved"`
}

// JSONCaptured splits captured pieces by the side that captured them.
type JSONCaptured struct {
	White []JSONPiece `json:"white"`
	Black []JSONPiece `json:"black"`
}

// JSONMove is a played move.
type JSONMove struct {
	From      JSONPosition `json:"from"`
	To        JSONPosition `json:"to"`
	Promotion string       `json:"promotion,omitempty"`
}

// JSONState is the full game state as served to clients. Empty squares are
// null and every list is present, possibly empty.
type JSONState struct {
	Board             [chess.BoardSize][chess.BoardSize]*JSONPiece `json:"board"`
	CurrentTurn       string                                       `json:"currentTurn"`
	SelectedPiece     *JSONPosition                                `json:"selectedPiece"`
	PossibleMoves     []JSONPosition                               `json:"possibleMoves"`
	CapturedPieces    JSONCaptured                                 `json:"capturedPieces"`
	GameMode          string                                       `json:"gameMode"`
	PromotionPending  bool                                         `json:"promotionPending"`
	PromotionPosition *JSONPosition                                `json:"promotionPosition"`
	IsCheck           bool                                         `json:"isCheck"`
	IsCheckmate       bool                                         `json:"isCheckmate"`
	MoveHistory       []JSONMove                                   `json:"moveHistory"`
}

// MoveResponse wraps a state with the outcome of the operation that
// produced it.
type MoveResponse struct {
	Success   bool       `json:"success"`
	GameState *JSONState `json:"gameState"`
	Error     string     `json:"error,omitempty"`
}

func toJSONPosition(p chess.Position) JSONPosition {
	return JSONPosition{Row: p.Row, Col: p.Col}
}

func toJSONPiece(p chess.Piece) JSONPiece {
	return JSONPiece{
		Type:     p.Type.String(),
		Color:    p.Color.String(),
		HasMoved: p.HasMoved,
	}
}

// StateToJSON converts a game state to its wire shape.
func StateToJSON(state chess.GameState) *JSONState {
	js := &JSONState{
		CurrentTurn:      state.CurrentTurn.String(),
		PossibleMoves:    make([]JSONPosition, 0, len(state.PossibleMoves)),
		GameMode:         string(state.Mode),
		PromotionPending: state.PromotionPending != nil,
		IsCheck:          state.IsCheck,
		IsCheckmate:      state.IsCheckmate,
		CapturedPieces: JSONCaptured{
			White: []JSONPiece{},
			Black: []JSONPiece{},
		},
	}

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := state.Board[row][col]
			if p.IsEmpty() {
				continue
			}
			jp := toJSONPiece(p)
			jp.Position = &JSONPosition{Row: row, Col: col}
			js.Board[row][col] = &jp
		}
	}

	if state.SelectedPiece != nil {
		sel := toJSONPosition(*state.SelectedPiece)
		js.SelectedPiece = &sel
	}
	for _, m := range state.PossibleMoves {
		js.PossibleMoves = append(js.PossibleMoves, toJSONPosition(m))
	}

	// A captured piece was taken by the other color.
	for _, p := range state.CapturedPieces {
		if p.Color == chess.White {
			js.CapturedPieces.Black = append(js.CapturedPieces.Black, toJSONPiece(p))
		} else {
			js.CapturedPieces.White = append(js.CapturedPieces.White, toJSONPiece(p))
		}
	}

	if state.PromotionPending != nil {
		pos := toJSONPosition(state.PromotionPending.To)
		js.PromotionPosition = &pos
	}

	js.MoveHistory = MovesToJSON(state.MoveHistory)
	return js
}

// NewMoveResponse builds the response for a state-changing request. A nil
// err means the operation succeeded.
func NewMoveResponse(state chess.GameState, err error) *MoveResponse {
	resp := &MoveResponse{
		Success:   err == nil,
		GameState: StateToJSON(state),
	}
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}

// WriteStateJSON writes a game state as JSON.
func WriteStateJSON(w io.Writer, state chess.GameState, indent bool) error {
	return writeJSON(w, StateToJSON(state), indent)
}

func writeJSON(w io.Writer, v any, indent bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
