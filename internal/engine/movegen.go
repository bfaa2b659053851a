package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/fentrack-go/internal/chess"
	"github.com/lgbarn/fentrack-go/internal/errors"
)

// GenerateMoves returns the pseudo-legal destination squares of the piece on sq.
// Blocking and capture rules are respected; checks are not considered.
// The order of the result is unspecified; see SortSquares.
func GenerateMoves(pos *chess.Position, sq chess.Square) ([]chess.Square, error) {
	if !sq.Valid() {
		return nil, errors.Wrapf(errors.ErrInvalidSquare, "square %d,%d", sq.Rank, sq.File)
	}
	piece, ok := pos.Board.Occupant(sq)
	if !ok {
		return nil, errors.Wrapf(errors.ErrEmptyOrigin, "square %s", sq)
	}
	return movesForPiece(pos, sq, piece), nil
}

// movesForPiece dispatches on the piece kind.
func movesForPiece(pos *chess.Position, from chess.Square, piece chess.Piece) []chess.Square {
	switch piece.Kind {
	case chess.Pawn:
		return pawnMoves(pos, from, piece)
	case chess.Knight:
		return leaperMoves(pos, from, piece.Colour, knightOffsets)
	case chess.King:
		return leaperMoves(pos, from, piece.Colour, kingOffsets)
	case chess.Bishop:
		return castRays(pos, from, piece.Colour, diagonalDirections)
	case chess.Rook:
		return castRays(pos, from, piece.Colour, straightDirections)
	case chess.Queen:
		return castRays(pos, from, piece.Colour, queenDirections)
	}
	return nil
}

// SortSquares sorts squares in FEN reading order (a8 first, h1 last) in place
// and returns the slice.
func SortSquares(squares []chess.Square) []chess.Square {
	indices := make([]int, len(squares))
	for i, sq := range squares {
		indices[i] = sq.Index()
	}
	slices.Sort(indices)
	for i, idx := range indices {
		squares[i] = chess.SquareFromIndex(idx)
	}
	return squares
}

// SquareNames renders squares as algebraic names.
func SquareNames(squares []chess.Square) []string {
	names := make([]string, len(squares))
	for i, sq := range squares {
		names[i] = sq.String()
	}
	return names
}
