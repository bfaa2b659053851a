package testutil

import (
	"testing"

	"github.com/lgbarn/fentrack-go/internal/chess"
	"github.com/lgbarn/fentrack-go/internal/engine"
)

// Positions used across package tests.
const (
	// CastlingFEN has both kings and all four rooks on their home squares
	// with every back-rank square between them empty.
	CastlingFEN = "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1"

	// EnPassantFEN has a white pawn on f5 that may capture e5 en passant.
	EnPassantFEN = "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3"
)

// MustParseFEN parses a FEN string and calls t.Fatal on failure.
func MustParseFEN(t *testing.T, fen string) *chess.Position {
	t.Helper()
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("NewPositionFromFEN(%q): %v", fen, err)
	}
	return pos
}

// MustParseMove parses coordinate move text and calls t.Fatal on failure.
func MustParseMove(t *testing.T, text string) chess.Move {
	t.Helper()
	m, err := chess.ParseMove(text)
	if err != nil {
		t.Fatalf("ParseMove(%q): %v", text, err)
	}
	return m
}

// PlayMoves applies each move in turn with engine.ApplyCheckedMove and
// returns the resulting FEN. It calls t.Fatal on the first rejected move.
func PlayMoves(t *testing.T, fen string, moves ...string) string {
	t.Helper()
	pos := MustParseFEN(t, fen)
	for i, text := range moves {
		if err := engine.ApplyCheckedMove(pos, MustParseMove(t, text)); err != nil {
			t.Fatalf("move %d (%s): %v", i+1, text, err)
		}
	}
	return engine.PositionToFEN(pos)
}
