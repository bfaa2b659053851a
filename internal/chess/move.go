package chess

import (
	"fmt"

	"github.com/lgbarn/fentrack-go/internal/errors"
)

// MoveTextLen is the length of coordinate move text such as "e2e4".
const MoveTextLen = 4

// Move is a from/to square pair. There is no promotion field: a pawn reaching
// the last rank is simply relocated.
type Move struct {
	From Square
	To   Square
}

// NewMove creates a move between two squares.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// Valid reports whether both squares of the move are on the board.
func (m Move) Valid() bool {
	return m.From.Valid() && m.To.Valid()
}

// FileDelta returns the signed file distance travelled.
func (m Move) FileDelta() int {
	return m.To.File - m.From.File
}

// RankDelta returns the signed rank-index distance travelled.
func (m Move) RankDelta() int {
	return m.To.Rank - m.From.Rank
}

// String returns the coordinate form of the move, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// ParseMove parses coordinate move text of the form <file><rank><file><rank>.
// Text that is not exactly four characters long fails with ErrIllegalMoveShape;
// text naming a square off the board fails with ErrInvalidSquare.
func ParseMove(text string) (Move, error) {
	if len(text) != MoveTextLen {
		return Move{}, fmt.Errorf("move %q: %w", text, errors.ErrIllegalMoveShape)
	}
	from, err := ParseSquare(text[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w", text, err)
	}
	to, err := ParseSquare(text[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w", text, err)
	}
	return Move{From: from, To: to}, nil
}
