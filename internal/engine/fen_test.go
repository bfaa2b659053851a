package engine

import (
	stderrors "errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/fentrack-go/internal/chess"
	"github.com/lgbarn/fentrack-go/internal/errors"
)

func TestNewPositionFromFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(*chess.Position) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(p *chess.Position) bool {
				return p.At(chess.MustParseSquare("e1")) == chess.W(chess.King) &&
					p.At(chess.MustParseSquare("e8")) == chess.B(chess.King) &&
					p.At(chess.MustParseSquare("e2")) == chess.W(chess.Pawn) &&
					p.At(chess.MustParseSquare("e7")) == chess.B(chess.Pawn) &&
					p.At(chess.MustParseSquare("e4")).IsEmpty() &&
					p.ToMove == chess.White &&
					p.Castling == chess.AllCastlingRights &&
					!p.EnPassant &&
					p.HalfmoveClock == 0 &&
					p.MoveNumber == 1
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(p *chess.Position) bool {
				return p.At(chess.Sq(4, 4)) == chess.W(chess.Pawn) &&
					p.At(chess.Sq(6, 4)).IsEmpty() &&
					p.ToMove == chess.Black &&
					p.EnPassant &&
					p.EPSquare == chess.Sq(5, 4)
			},
		},
		{
			name: "sicilian defense",
			fen:  "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
			checkFn: func(p *chess.Position) bool {
				return p.At(chess.MustParseSquare("c5")) == chess.B(chess.Pawn) &&
					p.EPSquare == chess.Sq(2, 2) &&
					p.ToMove == chess.White &&
					p.MoveNumber == 2
			},
		},
		{
			name: "no castling rights",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w - - 0 1",
			checkFn: func(p *chess.Position) bool {
				return p.Castling == chess.CastlingRights{}
			},
		},
		{
			name: "castling letters in any order",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R b qK - 12 40",
			checkFn: func(p *chess.Position) bool {
				return p.Castling == chess.CastlingRights{WhiteKingside: true, BlackQueenside: true} &&
					p.HalfmoveClock == 12 &&
					p.MoveNumber == 40
			},
		},
		{
			name: "extra whitespace between fields",
			fen:  "8/8/8/8/8/8/8/4K3  w  -  -  0  1",
			checkFn: func(p *chess.Position) bool {
				return p.At(chess.MustParseSquare("e1")) == chess.W(chess.King)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := NewPositionFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewPositionFromFEN() error = %v", err)
			}
			if !tt.checkFn(pos) {
				t.Errorf("NewPositionFromFEN(%q) position check failed", tt.fen)
			}
		})
	}
}

func TestNewPositionFromFEN_StartingPosition(t *testing.T) {
	pos, err := NewPositionFromFEN(InitialFEN)
	if err != nil {
		t.Fatalf("NewPositionFromFEN() error = %v", err)
	}

	backRank := []chess.Kind{chess.Rook, chess.Knight, chess.Bishop, chess.Queen, chess.King, chess.Bishop, chess.Knight, chess.Rook}
	for file, kind := range backRank {
		if got := pos.Board[chess.WhiteBackRank][file]; got != chess.W(kind) {
			t.Errorf("Board[7][%d] = %v; want %v", file, got, chess.W(kind))
		}
		if got := pos.Board[chess.BlackBackRank][file]; got != chess.B(kind) {
			t.Errorf("Board[0][%d] = %v; want %v", file, got, chess.B(kind))
		}
		if got := pos.Board[chess.WhitePawnRank][file]; got != chess.W(chess.Pawn) {
			t.Errorf("Board[6][%d] = %v; want white pawn", file, got)
		}
		if got := pos.Board[chess.BlackPawnRank][file]; got != chess.B(chess.Pawn) {
			t.Errorf("Board[1][%d] = %v; want black pawn", file, got)
		}
	}
	for rank := 2; rank <= 5; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			if !pos.Board[rank][file].IsEmpty() {
				t.Errorf("Board[%d][%d] = %v; want empty", rank, file, pos.Board[rank][file])
			}
		}
	}
	if pos.Castling != chess.AllCastlingRights {
		t.Errorf("Castling = %+v; want all rights", pos.Castling)
	}
}

func TestNewPositionFromFEN_Malformed(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		wantField string
	}{
		{"empty string", "", ""},
		{"placement only", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", ""},
		{"five fields", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0", ""},
		{"seven fields", InitialFEN + " extra", ""},
		{"seven ranks", "rnbqkbnr/pppppppp/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "placement"},
		{"nine ranks", "rnbqkbnr/pppppppp/8/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "placement"},
		{"rank too short", "rnbqkbn/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "placement"},
		{"rank too long", "rnbqkbnrr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "placement"},
		{"digits sum too large", "rnbqkbnr/pppppppp/54/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "placement"},
		{"piece after full rank", "rnbqkbnr/pppppppp/8p/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "placement"},
		{"nine digit", "rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "placement"},
		{"invalid piece", "rnbqkbnr/ppppxppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "placement"},
		{"invalid side", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", "side to move"},
		{"invalid castling", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KX - 0 1", "castling"},
		{"invalid en passant file", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z3 0 1", "en passant"},
		{"invalid en passant rank", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e9 0 1", "en passant"},
		{"negative halfmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - -1 1", "halfmove clock"},
		{"non-numeric halfmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1", "halfmove clock"},
		{"non-numeric fullmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1.5", "fullmove number"},
		{"zero fullmove", "4k3/8/8/8/8/8/8/4K3 w - - 0 0", "fullmove number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := NewPositionFromFEN(tt.fen)
			if err == nil {
				t.Fatalf("NewPositionFromFEN(%q) = %v, want error", tt.fen, PositionToFEN(pos))
			}
			if pos != nil {
				t.Errorf("NewPositionFromFEN(%q) returned a partial position", tt.fen)
			}
			if !stderrors.Is(err, errors.ErrMalformedFEN) {
				t.Errorf("error %v is not ErrMalformedFEN", err)
			}
			var fenErr *errors.FENError
			if !stderrors.As(err, &fenErr) {
				t.Fatalf("error %v is not a *FENError", err)
			}
			if tt.wantField != "" && fenErr.Field != tt.wantField {
				t.Errorf("FENError.Field = %q, want %q", fenErr.Field, tt.wantField)
			}
		})
	}
}

func TestPositionToFEN(t *testing.T) {
	// Canonical FENs survive FEN -> Position -> FEN unchanged.
	tests := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
		"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R b Kq - 7 33",
		"8/8/8/8/8/8/8/4K3 w - - 0 1",
		"8/8/8/8/8/8/8/8 w - - 0 1",
		"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	}

	for _, fen := range tests {
		t.Run(fen, func(t *testing.T) {
			pos, err := NewPositionFromFEN(fen)
			if err != nil {
				t.Fatalf("NewPositionFromFEN() error = %v", err)
			}
			if got := PositionToFEN(pos); got != fen {
				t.Errorf("PositionToFEN() = %q, want %q", got, fen)
			}
		})
	}
}

func TestPositionToFEN_CanonicalCastlingOrder(t *testing.T) {
	pos, err := NewPositionFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w qkQK - 0 1")
	if err != nil {
		t.Fatalf("NewPositionFromFEN() error = %v", err)
	}
	want := "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
	if got := PositionToFEN(pos); got != want {
		t.Errorf("PositionToFEN() = %q, want %q", got, want)
	}
}

func TestPositionRoundTrip(t *testing.T) {
	// Positions reached by applying moves parse back field for field.
	pos := NewInitialPosition()
	for _, text := range []string{"e2e4", "c7c5", "g1f3", "d7d6", "f1b5", "b8c6", "e1g1"} {
		if err := ApplyMove(pos, mustMove(t, text)); err != nil {
			t.Fatalf("ApplyMove(%s) error = %v", text, err)
		}

		reparsed, err := NewPositionFromFEN(PositionToFEN(pos))
		if err != nil {
			t.Fatalf("after %s: NewPositionFromFEN() error = %v", text, err)
		}
		if diff := cmp.Diff(pos, reparsed); diff != "" {
			t.Errorf("after %s: round trip mismatch (-want +got):\n%s", text, diff)
		}
	}
}

func TestNewPositionFromFEN_LargeClocks(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("uint is narrower than 64 bits")
	}
	fen := "4k3/8/8/8/8/8/8/4K3 w - - 4294967296 4294967297"
	pos, err := NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("NewPositionFromFEN(%q) error = %v", fen, err)
	}
	if uint64(pos.HalfmoveClock) != 1<<32 {
		t.Errorf("HalfmoveClock = %d, want %d", pos.HalfmoveClock, uint64(1)<<32)
	}
	if got := PositionToFEN(pos); got != fen {
		t.Errorf("round trip = %q, want %q", got, fen)
	}
}

func TestCastlingString(t *testing.T) {
	tests := []struct {
		rights chess.CastlingRights
		want   string
	}{
		{chess.CastlingRights{}, "-"},
		{chess.AllCastlingRights, "KQkq"},
		{chess.CastlingRights{WhiteQueenside: true, BlackKingside: true}, "Qk"},
		{chess.CastlingRights{BlackQueenside: true}, "q"},
	}
	for _, tt := range tests {
		if got := CastlingString(tt.rights); got != tt.want {
			t.Errorf("CastlingString(%+v) = %q, want %q", tt.rights, got, tt.want)
		}
	}
}

// mustMove parses coordinate move text or fails the test.
func mustMove(t *testing.T, text string) chess.Move {
	t.Helper()
	m, err := chess.ParseMove(text)
	if err != nil {
		t.Fatalf("ParseMove(%q) error = %v", text, err)
	}
	return m
}

// mustPosition parses a FEN or fails the test.
func mustPosition(t *testing.T, fen string) *chess.Position {
	t.Helper()
	pos, err := NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("NewPositionFromFEN(%q) error = %v", fen, err)
	}
	return pos
}
