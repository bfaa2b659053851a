package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/fentrack-go/internal/chess"
	"github.com/lgbarn/fentrack-go/internal/errors"
)

// IsPseudoLegal reports whether the move appears in the generator's output for
// its origin square. Castling and en passant captures are not generated and so
// are never pseudo-legal here; CheckMove accepts them separately.
func IsPseudoLegal(pos *chess.Position, move chess.Move) bool {
	if !move.Valid() {
		return false
	}
	destinations, err := GenerateMoves(pos, move.From)
	if err != nil {
		return false
	}
	return slices.Contains(destinations, move.To)
}

// CheckMove verifies a move before it is applied: both squares on the board,
// an occupied origin holding a piece of the side to move, and a destination
// that is pseudo-legal, an en passant capture or a permitted castling move.
func CheckMove(pos *chess.Position, move chess.Move) error {
	if err := checkMoveSquares(pos, move); err != nil {
		return err
	}
	if piece := pos.At(move.From); piece.Colour != pos.ToMove {
		return &errors.MoveError{
			Err:      errors.Wrapf(errors.ErrIllegalMove, "%s to move", pos.ToMove),
			MoveText: move.String(),
		}
	}
	if IsPseudoLegal(pos, move) || isEnPassantCapture(pos, move) || isCastlingMove(pos, move) {
		return nil
	}
	return &errors.MoveError{Err: errors.ErrIllegalMove, MoveText: move.String()}
}

// ApplyCheckedMove runs CheckMove and, if it passes, ApplyMove.
func ApplyCheckedMove(pos *chess.Position, move chess.Move) error {
	if err := CheckMove(pos, move); err != nil {
		return err
	}
	return ApplyMove(pos, move)
}
