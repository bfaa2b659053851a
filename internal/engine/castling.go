package engine

import "github.com/lgbarn/fentrack-go/internal/chess"

// relocateCastlingRook moves the rook when the king moves two files.
// The rook comes from the corner on the king's side of travel and lands on the
// square the king crossed.
func relocateCastlingRook(pos *chess.Position, move chess.Move) {
	df := move.FileDelta()
	if abs(df) != 2 {
		return
	}

	rookFrom := chess.Sq(move.From.Rank, 0)
	if df > 0 {
		rookFrom.File = chess.BoardSize - 1
	}
	rookTo := chess.Sq(move.From.Rank, move.To.File-sign(df))

	rook, ok := pos.Board.Occupant(rookFrom)
	if !ok {
		return
	}
	pos.Board.Clear(rookFrom)
	pos.Board.Set(rookTo, rook)
}

// updateCastlingRights removes castling rights when a king moves, or when a
// move starts or ends on a rook home corner. The corner rule covers both a
// rook leaving home and a rook being captured there.
func updateCastlingRights(pos *chess.Position, piece chess.Piece, move chess.Move) {
	if piece.Kind == chess.King {
		pos.Castling.RevokeColour(piece.Colour)
	}
	pos.Castling.RevokeCorner(move.From)
	pos.Castling.RevokeCorner(move.To)
}

// isCastlingMove reports whether the move is a castling king move the current
// rights allow: king on its home square moving two files along the back rank,
// the matching right still held, a friendly rook in the corner and every
// square between king and rook empty.
func isCastlingMove(pos *chess.Position, move chess.Move) bool {
	king := pos.At(move.From)
	if king.Kind != chess.King || move.RankDelta() != 0 || abs(move.FileDelta()) != 2 {
		return false
	}

	homeRank := chess.WhiteBackRank
	if king.Colour == chess.Black {
		homeRank = chess.BlackBackRank
	}
	if move.From != chess.Sq(homeRank, 4) {
		return false
	}

	kingside := move.FileDelta() > 0
	if !pos.Castling.Has(king.Colour, kingside) {
		return false
	}

	cornerFile := 0
	if kingside {
		cornerFile = chess.BoardSize - 1
	}
	rook := pos.At(chess.Sq(homeRank, cornerFile))
	if rook.Kind != chess.Rook || rook.Colour != king.Colour {
		return false
	}

	step := sign(cornerFile - move.From.File)
	for file := move.From.File + step; file != cornerFile; file += step {
		if !pos.At(chess.Sq(homeRank, file)).IsEmpty() {
			return false
		}
	}
	return true
}
