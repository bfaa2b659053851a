package engine

import "github.com/lgbarn/fentrack-go/internal/chess"

// direction is a single-step rank and file delta.
type direction struct {
	dRank, dFile int
}

var (
	straightDirections = []direction{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirections = []direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	queenDirections    = append(append([]direction{}, straightDirections...), diagonalDirections...)
)

// castRays walks each direction one square at a time from the origin. Empty
// squares are destinations and the ray continues; the first occupied square
// stops the ray and is a destination only if it holds an enemy piece.
func castRays(pos *chess.Position, from chess.Square, colour chess.Colour, dirs []direction) []chess.Square {
	var moves []chess.Square
	for _, d := range dirs {
		for sq := from.Offset(d.dRank, d.dFile); sq.Valid(); sq = sq.Offset(d.dRank, d.dFile) {
			target := pos.At(sq)
			if target.IsEmpty() {
				moves = append(moves, sq)
				continue
			}
			if target.IsEnemyOf(colour) {
				moves = append(moves, sq)
			}
			break
		}
	}
	return moves
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign is the unit step from 0 toward x: -1, 0 or 1.
func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
