package engine

import (
	"github.com/lgbarn/fentrack-go/internal/chess"
	"github.com/lgbarn/fentrack-go/internal/errors"
)

// ApplyMove applies a move to the position and updates the position state.
// The move is trusted: it is not checked against the move generator, only for
// on-board squares and an occupied origin. On error the position is unchanged.
func ApplyMove(pos *chess.Position, move chess.Move) error {
	if err := checkMoveSquares(pos, move); err != nil {
		return err
	}

	piece := pos.At(move.From)
	captured := pos.At(move.To)

	updateHalfmoveClock(pos, piece, captured)

	if piece.Kind == chess.Pawn {
		applyEnPassantCapture(pos, piece, move)
	}
	if piece.Kind == chess.King {
		relocateCastlingRook(pos, move)
	}

	// Rights are revoked before the relocation overwrites the destination.
	updateCastlingRights(pos, piece, move)

	pos.Board.Clear(move.From)
	pos.Board.Set(move.To, piece)

	updateEnPassantTarget(pos, piece, move)
	advanceTurn(pos)

	return nil
}

// checkMoveSquares rejects moves that reference off-board or empty squares.
func checkMoveSquares(pos *chess.Position, move chess.Move) error {
	if !move.Valid() {
		return &errors.MoveError{Err: errors.ErrInvalidSquare, MoveText: move.String()}
	}
	if pos.At(move.From).IsEmpty() {
		return &errors.MoveError{Err: errors.ErrEmptyOrigin, MoveText: move.String()}
	}
	return nil
}

// updateHalfmoveClock resets the clock on pawn moves and captures.
func updateHalfmoveClock(pos *chess.Position, piece, captured chess.Piece) {
	if piece.Kind == chess.Pawn || !captured.IsEmpty() {
		pos.HalfmoveClock = 0
	} else {
		pos.HalfmoveClock++
	}
}

// advanceTurn passes the move to the other side. The move number
// increases once Black has moved.
func advanceTurn(pos *chess.Position) {
	if pos.ToMove == chess.Black {
		pos.MoveNumber++
	}
	pos.ToMove = pos.ToMove.Opposite()
}
