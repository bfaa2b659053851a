package hashing

import (
	"github.com/lgbarn/fentrack-go/internal/chess"
)

const numSquares = chess.BoardSize * chess.BoardSize

// Zobrist keys. They are generated from a fixed seed so a position hashes to
// the same value in every run.
var (
	zobristPiece     [2][chess.NumKinds][numSquares]uint64
	zobristWhiteMove uint64
	zobristCastling  [4]uint64
	zobristEnPassant [chess.BoardSize]uint64
)

func init() {
	state := uint64(0x9E3779B97F4A7C15)
	next := func() uint64 {
		// splitmix64
		state += 0x9E3779B97F4A7C15
		z := state
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}

	for colour := range zobristPiece {
		for kind := range zobristPiece[colour] {
			for sq := range zobristPiece[colour][kind] {
				zobristPiece[colour][kind][sq] = next()
			}
		}
	}
	zobristWhiteMove = next()
	for i := range zobristCastling {
		zobristCastling[i] = next()
	}
	for i := range zobristEnPassant {
		zobristEnPassant[i] = next()
	}
}

// GenerateZobristHash hashes the parts of a position that decide which moves
// are available: placement, side to move, castling rights and the en passant
// file. The two move counters are not included.
func GenerateZobristHash(pos *chess.Position) uint64 {
	var hash uint64

	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.Sq(rank, file)
			piece, ok := pos.Board.Occupant(sq)
			if !ok {
				continue
			}
			hash ^= zobristPiece[piece.Colour][piece.Kind][sq.Index()]
		}
	}

	if pos.ToMove == chess.White {
		hash ^= zobristWhiteMove
	}

	rights := []bool{
		pos.Castling.WhiteKingside,
		pos.Castling.WhiteQueenside,
		pos.Castling.BlackKingside,
		pos.Castling.BlackQueenside,
	}
	for i, held := range rights {
		if held {
			hash ^= zobristCastling[i]
		}
	}

	if target, ok := pos.EnPassantTarget(); ok {
		hash ^= zobristEnPassant[target.File]
	}

	return hash
}

// WeakHash is a cheap secondary checksum of the placement alone, used to
// confirm a Zobrist match.
func WeakHash(pos *chess.Position) uint32 {
	var hash uint32
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.Sq(rank, file)
			if piece, ok := pos.Board.Occupant(sq); ok {
				hash = hash*31 + uint32(sq.Index()+1)*uint32(piece.FEN())
			}
		}
	}
	return hash
}
