// Package chess provides core chess types shared by the engine and its callers.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Kind represents a chess piece type without colour.
type Kind int

const (
	NoKind Kind = iota // Marks an empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Piece is a coloured piece. The zero value is Empty.
type Piece struct {
	Colour Colour
	Kind   Kind
}

// Empty is the value stored on unoccupied squares.
var Empty = Piece{}

// W creates a white piece.
func W(kind Kind) Piece {
	return Piece{Colour: White, Kind: kind}
}

// B creates a black piece.
func B(kind Kind) Piece {
	return Piece{Colour: Black, Kind: kind}
}

// IsEmpty reports whether p marks an unoccupied square.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// IsEnemyOf reports whether p is a piece of the colour opposing c.
func (p Piece) IsEnemyOf(c Colour) bool {
	return !p.IsEmpty() && p.Colour != c
}

// FEN returns the FEN letter for the piece: uppercase for White, lowercase for Black.
// Empty squares return 0.
func (p Piece) FEN() byte {
	if p.IsEmpty() {
		return 0
	}
	letter := p.Kind.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a readable name such as "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// PieceFromFEN converts a FEN piece letter to a piece.
// ok is false for anything that is not one of PNBRQK in either case.
func PieceFromFEN(c byte) (piece Piece, ok bool) {
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c -= 'a' - 'A'
	}
	var kind Kind
	switch c {
	case 'P':
		kind = Pawn
	case 'N':
		kind = Knight
	case 'B':
		kind = Bishop
	case 'R':
		kind = Rook
	case 'Q':
		kind = Queen
	case 'K':
		kind = King
	default:
		return Empty, false
	}
	return Piece{Colour: colour, Kind: kind}, true
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase = '1'
	ColBase  = 'a'

	// Board rank indices of the back ranks.
	BlackBackRank = 0
	WhiteBackRank = BoardSize - 1

	// Board rank indices of the pawn start ranks.
	BlackPawnRank = 1
	WhitePawnRank = BoardSize - 2
)

// ColourOffset returns the rank index step a pawn of the given colour moves by:
// -1 for White (towards rank index 0), +1 for Black.
func ColourOffset(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// PawnStartRank returns the board rank index pawns of the given colour start on.
func PawnStartRank(colour Colour) int {
	if colour == White {
		return WhitePawnRank
	}
	return BlackPawnRank
}
