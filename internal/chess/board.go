package chess

// Board is the 8x8 grid of squares, indexed [rank][file] with rank 0 at the top.
type Board [BoardSize][BoardSize]Piece

// At returns the piece on the square, or Empty for off-board squares.
func (b *Board) At(sq Square) Piece {
	if !sq.Valid() {
		return Empty
	}
	return b[sq.Rank][sq.File]
}

// Occupant returns the piece on the square and whether there is one.
func (b *Board) Occupant(sq Square) (Piece, bool) {
	p := b.At(sq)
	return p, !p.IsEmpty()
}

// Set places a piece on the square. Off-board squares are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.Valid() {
		b[sq.Rank][sq.File] = piece
	}
}

// Clear empties the square.
func (b *Board) Clear(sq Square) {
	b.Set(sq, Empty)
}

// CastlingRights holds the four independent castling flags.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights is the set of rights in the initial position.
var AllCastlingRights = CastlingRights{true, true, true, true}

// Any reports whether at least one right is still held.
func (c CastlingRights) Any() bool {
	return c.WhiteKingside || c.WhiteQueenside || c.BlackKingside || c.BlackQueenside
}

// Has reports whether the given side may still castle towards the h-file
// (kingside) or the a-file.
func (c CastlingRights) Has(colour Colour, kingside bool) bool {
	if colour == White {
		if kingside {
			return c.WhiteKingside
		}
		return c.WhiteQueenside
	}
	if kingside {
		return c.BlackKingside
	}
	return c.BlackQueenside
}

// RevokeColour removes both rights of a colour.
func (c *CastlingRights) RevokeColour(colour Colour) {
	if colour == White {
		c.WhiteKingside = false
		c.WhiteQueenside = false
	} else {
		c.BlackKingside = false
		c.BlackQueenside = false
	}
}

// RevokeCorner removes the right tied to a rook home corner.
// Non-corner squares are ignored.
func (c *CastlingRights) RevokeCorner(sq Square) {
	if !sq.IsCorner() {
		return
	}
	kingside := sq.File == BoardSize-1
	if sq.Rank == WhiteBackRank {
		if kingside {
			c.WhiteKingside = false
		} else {
			c.WhiteQueenside = false
		}
		return
	}
	if kingside {
		c.BlackKingside = false
	} else {
		c.BlackQueenside = false
	}
}

// Position represents a board together with all state needed to continue the game.
type Position struct {
	Board Board

	// Who has the next move.
	ToMove Colour

	// Castling availability.
	Castling CastlingRights

	// Is en passant capture possible? If so then EPSquare holds the square a
	// pawn skipped over on the immediately preceding move.
	EnPassant bool
	EPSquare  Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The current full-move number, starting at 1.
	MoveNumber uint
}

// NewPosition creates an empty position with White to move on move 1.
func NewPosition() *Position {
	return &Position{
		ToMove:     White,
		MoveNumber: 1,
	}
}

// At returns the piece on the square.
func (p *Position) At(sq Square) Piece {
	return p.Board.At(sq)
}

// EnPassantTarget returns the en passant square and whether one is set.
func (p *Position) EnPassantTarget() (Square, bool) {
	return p.EPSquare, p.EnPassant
}

// SetEnPassant records the en passant target square.
func (p *Position) SetEnPassant(sq Square) {
	p.EnPassant = true
	p.EPSquare = sq
}

// ClearEnPassant removes any en passant target.
func (p *Position) ClearEnPassant() {
	p.EnPassant = false
	p.EPSquare = Square{}
}

// Copy creates a deep copy of the position.
func (p *Position) Copy() *Position {
	newPos := &Position{}
	*newPos = *p
	return newPos
}

// PositionState captures all mutable position state for save/restore operations.
type PositionState struct {
	Board         Board
	ToMove        Colour
	Castling      CastlingRights
	EnPassant     bool
	EPSquare      Square
	HalfmoveClock uint
	MoveNumber    uint
}

// SaveState captures the current position state for later restoration.
func (p *Position) SaveState() PositionState {
	return PositionState{
		Board:         p.Board,
		ToMove:        p.ToMove,
		Castling:      p.Castling,
		EnPassant:     p.EnPassant,
		EPSquare:      p.EPSquare,
		HalfmoveClock: p.HalfmoveClock,
		MoveNumber:    p.MoveNumber,
	}
}

// RestoreState restores the position to a previously saved state.
func (p *Position) RestoreState(s PositionState) {
	p.Board = s.Board
	p.ToMove = s.ToMove
	p.Castling = s.Castling
	p.EnPassant = s.EnPassant
	p.EPSquare = s.EPSquare
	p.HalfmoveClock = s.HalfmoveClock
	p.MoveNumber = s.MoveNumber
}
