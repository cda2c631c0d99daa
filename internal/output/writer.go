package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// GameRecord summarises one finished self-play game.
type GameRecord struct {
	Index    int        `json:"index"`
	Name     string     `json:"name"`
	Seed     uint64     `json:"seed"`
	Outcome  string     `json:"outcome"`
	Winner   string     `json:"winner,omitempty"`
	Plies    int        `json:"plies"`
	FinalFEN string     `json:"finalFen"`
	Moves    []JSONMove `json:"moves,omitempty"`

	// Final is the last state, used for board rendering.
	Final chess.GameState `json:"-"`
}

// GameWriter is the interface for writing game records to output.
// Different implementations handle different output formats (text, JSON).
type GameWriter interface {
	// WriteGame writes a single game record to the output.
	WriteGame(rec *GameRecord) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// TextWriter writes one summary line per game, optionally followed by the
// final board.
type TextWriter struct {
	w         io.Writer
	showBoard bool
	opts      RenderOptions
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, showBoard bool, opts RenderOptions) *TextWriter {
	return &TextWriter{w: w, showBoard: showBoard, opts: opts}
}

// WriteGame writes a game summary line and, if enabled, the final board.
func (tw *TextWriter) WriteGame(rec *GameRecord) error {
	winner := rec.Winner
	if winner == "" {
		winner = "-"
	}
	if _, err := fmt.Fprintf(tw.w, "#%d %s seed=%d outcome=%s winner=%s plies=%d fen=%q\n",
		rec.Index, rec.Name, rec.Seed, rec.Outcome, winner, rec.Plies, rec.FinalFEN); err != nil {
		return err
	}
	if !tw.showBoard {
		return nil
	}
	if err := RenderState(tw.w, rec.Final, tw.opts); err != nil {
		return err
	}
	_, err := io.WriteString(tw.w, "\n")
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONOutput holds multiple game records for array output.
type JSONOutput struct {
	Games []*GameRecord `json:"games"`
}

// JSONWriter writes game records in JSON format.
// It buffers records and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	games  []*GameRecord
	single bool // If true, write each record immediately as one JSON line
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches records and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:     w,
		games: make([]*GameRecord, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each record immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteGame buffers a record for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteGame(rec *GameRecord) error {
	if jw.single {
		return writeJSON(jw.w, rec, false)
	}

	// Buffer for batch output
	jw.games = append(jw.games, rec)
	return nil
}

// Flush writes all buffered records as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.games) == 0 {
		return nil
	}

	err := writeJSON(jw.w, &JSONOutput{Games: jw.games}, true)

	// Clear buffer after writing
	jw.games = jw.games[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

// MovesToJSON converts a move history to its wire shape.
func MovesToJSON(moves []chess.Move) []JSONMove {
	out := make([]JSONMove, 0, len(moves))
	for _, m := range moves {
		jm := JSONMove{From: toJSONPosition(m.From), To: toJSONPosition(m.To)}
		if m.Promotion != chess.NoPiece {
			jm.Promotion = m.Promotion.String()
		}
		out = append(out, jm)
	}
	return out
}
