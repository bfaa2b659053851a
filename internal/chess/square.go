package chess

import (
	"fmt"

	"github.com/lgbarn/fentrack-go/internal/errors"
)

// Square is a board coordinate. Rank 0 is the top FEN rank (rank 8 on a real
// board) and File 0 is the a-file.
type Square struct {
	Rank int
	File int
}

// Sq builds a square from board indices.
func Sq(rank, file int) Square {
	return Square{Rank: rank, File: file}
}

// Valid reports whether the square lies on the 8x8 board.
func (s Square) Valid() bool {
	return s.Rank >= 0 && s.Rank < BoardSize && s.File >= 0 && s.File < BoardSize
}

// Offset returns the square shifted by the given rank and file deltas.
// The result may be off the board; check with Valid.
func (s Square) Offset(dRank, dFile int) Square {
	return Square{Rank: s.Rank + dRank, File: s.File + dFile}
}

// IsCorner reports whether the square is one of the four rook home corners.
func (s Square) IsCorner() bool {
	return (s.Rank == BlackBackRank || s.Rank == WhiteBackRank) &&
		(s.File == 0 || s.File == BoardSize-1)
}

// Index returns a dense 0-63 index in FEN reading order (a8 = 0, h1 = 63).
func (s Square) Index() int {
	return s.Rank*BoardSize + s.File
}

// SquareFromIndex is the inverse of Index.
func SquareFromIndex(i int) Square {
	return Square{Rank: i / BoardSize, File: i % BoardSize}
}

// String returns the algebraic name of the square, e.g. "e3".
// Off-board squares render as "-".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(ColBase + s.File), byte(RankBase + BoardSize - 1 - s.Rank)})
}

// ParseSquare converts an algebraic square such as "e3" to a Square.
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return Square{}, fmt.Errorf("square %q: %w", text, errors.ErrInvalidSquare)
	}
	col, rank := text[0], text[1]
	if col < ColBase || col >= ColBase+BoardSize || rank < RankBase || rank >= RankBase+BoardSize {
		return Square{}, fmt.Errorf("square %q: %w", text, errors.ErrInvalidSquare)
	}
	return Square{
		Rank: BoardSize - 1 - int(rank-RankBase),
		File: int(col - ColBase),
	}, nil
}

// MustParseSquare is like ParseSquare but panics on error.
// It is intended for constant squares in tables and tests.
func MustParseSquare(text string) Square {
	sq, err := ParseSquare(text)
	if err != nil {
		panic(err)
	}
	return sq
}
