// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidCoordinate indicates a square outside the 8x8 board.
	ErrInvalidCoordinate = fmt.Errorf("invalid coordinate: %w", ErrIllegalMove)

	// ErrNotYourPiece indicates an empty origin or a piece of the side not to move.
	ErrNotYourPiece = fmt.Errorf("no piece of the side to move: %w", ErrIllegalMove)

	// ErrInvalidPromotion indicates a bad or misplaced promotion kind.
	ErrInvalidPromotion = fmt.Errorf("invalid promotion: %w", ErrIllegalMove)

	// ErrInvalidFEN indicates a FEN string describing an impossible position.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrFENParse indicates a structurally malformed FEN string.
	ErrFENParse = fmt.Errorf("malformed FEN: %w", ErrInvalidFEN)

	// ErrGameOver indicates a move submitted after the game has finished.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrAnalysis indicates an unusable response from the move-search collaborator.
	ErrAnalysis = errors.New("analysis failure")
)

// MoveError wraps errors with move context, including ply position,
// squares and the piece involved. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err   error  // The underlying error
	Ply   int    // 1-based ply the move would have been (0 if unknown)
	From  string // Origin square (if known)
	To    string // Destination square (if known)
	Piece string // FEN letter of the moving piece (if any)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}

	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("move %s%s", e.From, e.To))
	}

	if e.Piece != "" {
		parts = append(parts, fmt.Sprintf("piece %s", e.Piece))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// FENError represents a FEN rejection with the offending field.
type FENError struct {
	Err    error  // The underlying error, ErrInvalidFEN or ErrFENParse
	Field  string // Field name, e.g. "castling" (empty for whole-string problems)
	Value  string // Offending value (if applicable)
	Reason string // Human-readable cause
}

// Error returns a formatted error message with the field and cause.
func (e *FENError) Error() string {
	var parts []string

	if e.Field != "" {
		if e.Value != "" {
			parts = append(parts, fmt.Sprintf("%s %q", e.Field, e.Value))
		} else {
			parts = append(parts, e.Field)
		}
	}

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "FEN error"
}

// Unwrap returns the underlying error.
func (e *FENError) Unwrap() error {
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
