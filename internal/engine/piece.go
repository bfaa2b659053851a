package engine

import "github.com/lgbarn/fentrack-go/internal/chess"

var (
	knightOffsets = []direction{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = []direction{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// leaperMoves applies a fixed offset table. A destination is valid if it is on
// the board and either empty or held by an enemy piece.
func leaperMoves(pos *chess.Position, from chess.Square, colour chess.Colour, offsets []direction) []chess.Square {
	var moves []chess.Square
	for _, o := range offsets {
		to := from.Offset(o.dRank, o.dFile)
		if !to.Valid() {
			continue
		}
		if target := pos.At(to); target.IsEmpty() || target.IsEnemyOf(colour) {
			moves = append(moves, to)
		}
	}
	return moves
}
