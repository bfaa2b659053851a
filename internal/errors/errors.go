// Package errors provides sentinel errors and error types for fentrack.
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
	// ErrMalformedFEN indicates a FEN string that does not have the six
	// well-formed fields.
	ErrMalformedFEN = errors.New("malformed FEN")

	// ErrInvalidSquare indicates a square reference outside the 8x8 board.
	ErrInvalidSquare = errors.New("invalid square reference")

	// ErrIllegalMoveShape indicates move text that is not exactly four characters.
	ErrIllegalMoveShape = errors.New("illegal move shape")

	// ErrEmptyOrigin indicates a move or query from a square with no piece on it.
	ErrEmptyOrigin = errors.New("empty origin square")

	// ErrIllegalMove indicates a move that fails the pseudo-legality check.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownSession indicates a session id that is not in the store.
	ErrUnknownSession = errors.New("unknown session")

	// ErrSessionLimit indicates the session store is full.
	ErrSessionLimit = errors.New("session limit reached")

	// ErrNoHistory indicates an undo with no earlier position to return to.
	ErrNoHistory = errors.New("no move to undo")

	// ErrPoolStopped indicates work submitted after the replay pool was stopped.
	ErrPoolStopped = errors.New("worker pool stopped")
)

// FENError reports which FEN field failed to parse.
type FENError struct {
	Err   error  // The underlying error, normally ErrMalformedFEN
	Field string // Name of the offending field (e.g. "placement", "castling")
	Value string // The offending text (if applicable)
	Msg   string // Additional detail
}

// Error returns a formatted error message including all available context.
func (e *FENError) Error() string {
	var parts []string

	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	if e.Value != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Value))
	}
	if e.Msg != "" {
		parts = append(parts, e.Msg)
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%v: %s", e.Err, strings.Join(parts, ": "))
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

// MoveError wraps errors with move context: the move text and the ply
// at which it was attempted.
type MoveError struct {
	Err      error  // The underlying error
	MoveText string // The move text that caused the error (if applicable)
	PlyNum   int    // Ply number where error occurred (0 if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
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

// Is is a convenience re-export of errors.Is so callers need only one import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is a convenience re-export of errors.As.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
