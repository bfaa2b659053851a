package engine

import "github.com/lgbarn/fentrack-go/internal/chess"

// applyEnPassantCapture removes the pawn captured en passant, if the move is one.
// The captured pawn stands on the destination file at the origin rank; any
// other occupant of that square is left alone.
func applyEnPassantCapture(pos *chess.Position, pawn chess.Piece, move chess.Move) {
	target, ok := pos.EnPassantTarget()
	if !ok || move.To != target {
		return
	}
	sq := chess.Sq(move.From.Rank, move.To.File)
	if victim := pos.At(sq); victim.Kind == chess.Pawn && victim.IsEnemyOf(pawn.Colour) {
		pos.Board.Clear(sq)
	}
}

// updateEnPassantTarget sets the target square after a double pawn push
// and clears it after anything else.
func updateEnPassantTarget(pos *chess.Position, piece chess.Piece, move chess.Move) {
	if piece.Kind == chess.Pawn && abs(move.RankDelta()) == 2 {
		pos.SetEnPassant(chess.Sq((move.From.Rank+move.To.Rank)/2, move.From.File))
		return
	}
	pos.ClearEnPassant()
}

// pawnMoves generates the pseudo-legal destinations of a pawn: single and double
// pushes onto empty squares and diagonal captures of enemy pieces.
// En passant captures are not included.
func pawnMoves(pos *chess.Position, from chess.Square, pawn chess.Piece) []chess.Square {
	var moves []chess.Square
	dir := chess.ColourOffset(pawn.Colour)

	one := from.Offset(dir, 0)
	if one.Valid() && pos.At(one).IsEmpty() {
		moves = append(moves, one)
		if from.Rank == chess.PawnStartRank(pawn.Colour) {
			two := from.Offset(2*dir, 0)
			if two.Valid() && pos.At(two).IsEmpty() {
				moves = append(moves, two)
			}
		}
	}

	for _, df := range []int{-1, 1} {
		to := from.Offset(dir, df)
		if to.Valid() && pos.At(to).IsEnemyOf(pawn.Colour) {
			moves = append(moves, to)
		}
	}
	return moves
}

// isEnPassantCapture reports whether the move is a pawn capture onto the
// current en passant target square.
func isEnPassantCapture(pos *chess.Position, move chess.Move) bool {
	pawn := pos.At(move.From)
	if pawn.Kind != chess.Pawn {
		return false
	}
	target, ok := pos.EnPassantTarget()
	if !ok || move.To != target {
		return false
	}
	return move.RankDelta() == chess.ColourOffset(pawn.Colour) && abs(move.FileDelta()) == 1
}
