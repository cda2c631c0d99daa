// Package errors provides sentinel errors and error types for the chess engine.
// Engine operations that reject their input return the input state unchanged
// together with one of these errors, so callers can tell "applied" from
// "rejected" with errors.Is() instead of comparing states.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a destination that is not a legal move for the piece.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNoPiece indicates a move or selection from an empty square.
	ErrNoPiece = errors.New("no piece on square")

	// ErrWrongTurn indicates a move of a piece whose side is not to move.
	ErrWrongTurn = errors.New("not this side's turn")

	// ErrOutOfBounds indicates a position outside the 8x8 board.
	ErrOutOfBounds = errors.New("position out of bounds")

	// ErrPromotionPending indicates a move attempted while a promotion awaits a choice.
	ErrPromotionPending = errors.New("promotion pending")

	// ErrNoPromotionPending indicates a promotion choice with nothing to promote.
	ErrNoPromotionPending = errors.New("no promotion pending")

	// ErrInvalidPromotion indicates a promotion to a pawn, king or unknown type.
	ErrInvalidPromotion = errors.New("invalid promotion piece")

	// ErrNoLegalMoves indicates the side to move has no legal move.
	ErrNoLegalMoves = errors.New("no legal moves")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidGameMode indicates an unknown game mode tag.
	ErrInvalidGameMode = errors.New("invalid game mode")
)

// MoveError wraps a rejection with the move that caused it. It implements
// the error interface and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err   error  // The underlying error
	Piece string // Description of the moving piece (if any)
	From  string // Origin square (if known)
	To    string // Destination square (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Piece != "" {
		parts = append(parts, e.Piece)
	}
	if e.From != "" && e.To != "" {
		parts = append(parts, fmt.Sprintf("%s -> %s", e.From, e.To))
	} else if e.From != "" {
		parts = append(parts, "from "+e.From)
	} else if e.To != "" {
		parts = append(parts, "to "+e.To)
	}

	context := strings.Join(parts, " ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "move rejected"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
