package session

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/fentrack-go/internal/chess"
	"github.com/lgbarn/fentrack-go/internal/engine"
	"github.com/lgbarn/fentrack-go/internal/errors"
	"github.com/lgbarn/fentrack-go/internal/testutil"
)

func TestNew(t *testing.T) {
	s, err := New("a", "")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, s.ID(), "a")
	testutil.AssertEqual(t, s.FEN(), engine.InitialFEN)

	s, err = New("b", testutil.CastlingFEN)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, s.FEN(), testutil.CastlingFEN)

	_, err = New("c", "8/8/8 w - - 0 1")
	testutil.AssertErrorIs(t, err, errors.ErrMalformedFEN, "malformed FEN rejected: %v", err)
}

func TestSession_Apply(t *testing.T) {
	s, _ := New("a", "")

	testutil.AssertNoError(t, s.Apply("e2e4", true))
	testutil.AssertNoError(t, s.Apply("e7e5", false))
	testutil.AssertEqual(t, moveLog(s), []string{"e2e4", "e7e5"})
	testutil.AssertEqual(t, s.FEN(), "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2")
}

func TestSession_ApplyErrors(t *testing.T) {
	tests := []struct {
		name   string
		move   string
		strict bool
		want   error
	}{
		{"short text", "e2", false, errors.ErrIllegalMoveShape},
		{"long text", "e2e4e5", true, errors.ErrIllegalMoveShape},
		{"off board", "e2e9", false, errors.ErrInvalidSquare},
		{"empty origin", "e4e5", false, errors.ErrEmptyOrigin},
		{"illegal in strict mode", "e2e5", true, errors.ErrIllegalMove},
		{"wrong side in strict mode", "e7e5", true, errors.ErrIllegalMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := New("a", "")
			err := s.Apply(tt.move, tt.strict)
			testutil.AssertErrorIs(t, err, tt.want, "Apply(%s)", tt.move)
			testutil.AssertEqual(t, s.FEN(), engine.InitialFEN, "position unchanged")
			testutil.AssertEqual(t, len(moveLog(s)), 0, "move log unchanged")
		})
	}
}

func TestSession_ApplyErrorCarriesPly(t *testing.T) {
	s, _ := New("a", "")
	testutil.AssertNoError(t, s.Apply("e2e4", true))
	testutil.AssertNoError(t, s.Apply("e7e5", true))

	err := s.Apply("a1a5", true)
	var moveErr *errors.MoveError
	if !stderrors.As(err, &moveErr) {
		t.Fatalf("Apply error = %v, want *MoveError", err)
	}
	testutil.AssertEqual(t, moveErr.PlyNum, 3)
	testutil.AssertContains(t, err.Error(), "ply 3")
}

func TestSession_TrustedModeSkipsRules(t *testing.T) {
	s, _ := New("a", "")
	testutil.AssertNoError(t, s.Apply("a1a5", false))
	testutil.AssertEqual(t, s.FEN(), "rnbqkbnr/pppppppp/8/R7/8/8/PPPPPPPP/1NBQKBNR b Kkq - 1 1")
}

func TestSession_Check(t *testing.T) {
	s, _ := New("a", testutil.CastlingFEN)
	testutil.AssertNoError(t, s.Check("e1g1"))
	testutil.AssertErrorIs(t, s.Check("e1e3"), errors.ErrIllegalMove, "king cannot jump")
	testutil.AssertErrorIs(t, s.Check("e1"), errors.ErrIllegalMoveShape, "shape checked")
	testutil.AssertEqual(t, s.FEN(), testutil.CastlingFEN, "Check does not mutate")
}

func TestSession_Destinations(t *testing.T) {
	s, _ := New("a", "")

	got, err := s.Destinations("b1")
	testutil.AssertNoError(t, err)
	testutil.AssertSquares(t, got, "a3", "c3")

	_, err = s.Destinations("e4")
	testutil.AssertErrorIs(t, err, errors.ErrEmptyOrigin, "empty square: %v", err)
	_, err = s.Destinations("z9")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidSquare, "bad square: %v", err)
}

func TestSession_Undo(t *testing.T) {
	s, _ := New("a", "")
	testutil.AssertErrorIs(t, s.Undo(), errors.ErrNoHistory, "undo on fresh session")

	testutil.AssertNoError(t, s.Apply("e2e4", true))
	afterFirst := s.FEN()
	testutil.AssertNoError(t, s.Apply("e7e5", true))

	testutil.AssertNoError(t, s.Undo())
	testutil.AssertEqual(t, s.FEN(), afterFirst)
	testutil.AssertEqual(t, moveLog(s), []string{"e2e4"})

	testutil.AssertNoError(t, s.Undo())
	testutil.AssertEqual(t, s.FEN(), engine.InitialFEN)
}

func TestSession_Load(t *testing.T) {
	s, _ := New("a", "")
	testutil.AssertNoError(t, s.Apply("e2e4", true))

	err := s.Load("garbage")
	testutil.AssertErrorIs(t, err, errors.ErrMalformedFEN, "bad FEN rejected")
	testutil.AssertEqual(t, len(moveLog(s)), 1, "failed load keeps the session")

	testutil.AssertNoError(t, s.Load(testutil.EnPassantFEN))
	testutil.AssertEqual(t, s.FEN(), testutil.EnPassantFEN)
	testutil.AssertEqual(t, len(moveLog(s)), 0)
	testutil.AssertErrorIs(t, s.Undo(), errors.ErrNoHistory, "history cleared")
}

func TestSession_PositionIsCopy(t *testing.T) {
	s, _ := New("a", "")
	pos := s.Position()
	pos.ToMove = pos.ToMove.Opposite()
	testutil.AssertFEN(t, s.Position(), engine.InitialFEN)
}

func moveLog(s *Session) []string {
	_, moves := s.Snapshot()
	return moves
}

func TestSession_Snapshot(t *testing.T) {
	s, _ := New("a", "")
	testutil.AssertNoError(t, s.Apply("e2e4", true))

	pos, moves := s.Snapshot()
	testutil.AssertFEN(t, pos, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	testutil.AssertEqual(t, moves, []string{"e2e4"})

	pos.ToMove = pos.ToMove.Opposite()
	moves[0] = "d2d4"
	pos, moves = s.Snapshot()
	testutil.AssertEqual(t, pos.ToMove, chess.Black)
	testutil.AssertEqual(t, moves, []string{"e2e4"})
}
