// Package session gives each game a single owner. A Session serializes all
// access to its position; a Store holds the live sessions of the HTTP API.
package session

import (
	"sync"

	"github.com/lgbarn/fentrack-go/internal/chess"
	"github.com/lgbarn/fentrack-go/internal/engine"
	"github.com/lgbarn/fentrack-go/internal/errors"
)

// Session is one tracked position with its move log.
type Session struct {
	id string

	mu      sync.Mutex
	pos     *chess.Position
	history []chess.PositionState
	moves   []string
}

// New creates a session from a FEN string. An empty string gives the
// initial position.
func New(id, fen string) (*Session, error) {
	pos, err := parsePosition(fen)
	if err != nil {
		return nil, err
	}
	return &Session{id: id, pos: pos}, nil
}

func parsePosition(fen string) (*chess.Position, error) {
	if fen == "" {
		return engine.NewInitialPosition(), nil
	}
	return engine.NewPositionFromFEN(fen)
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Position returns a copy of the current position.
func (s *Session) Position() *chess.Position {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos.Copy()
}

// FEN returns the current position as a FEN string.
func (s *Session) FEN() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return engine.PositionToFEN(s.pos)
}

// Load replaces the position and clears the move log and undo history.
// On error the session is unchanged.
func (s *Session) Load(fen string) error {
	pos, err := parsePosition(fen)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pos = pos
	s.history = nil
	s.moves = nil
	return nil
}

// Apply parses and applies coordinate move text such as "e2e4". With strict
// set the move must pass engine.CheckMove first; otherwise it is trusted.
// On error the position is unchanged.
func (s *Session) Apply(text string, strict bool) error {
	move, err := chess.ParseMove(text)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	saved := s.pos.SaveState()
	if strict {
		err = engine.ApplyCheckedMove(s.pos, move)
	} else {
		err = engine.ApplyMove(s.pos, move)
	}
	if err != nil {
		var moveErr *errors.MoveError
		if errors.As(err, &moveErr) {
			moveErr.PlyNum = len(s.moves) + 1
		}
		return err
	}

	s.history = append(s.history, saved)
	s.moves = append(s.moves, move.String())
	return nil
}

// Check reports whether a move would be accepted in strict mode, without
// applying it.
func (s *Session) Check(text string) error {
	move, err := chess.ParseMove(text)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return engine.CheckMove(s.pos, move)
}

// Destinations returns the sorted pseudo-legal destinations of the piece on
// the named square.
func (s *Session) Destinations(square string) ([]chess.Square, error) {
	sq, err := chess.ParseSquare(square)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	moves, err := engine.GenerateMoves(s.pos, sq)
	if err != nil {
		return nil, err
	}
	return engine.SortSquares(moves), nil
}

// Undo restores the position before the last applied move.
func (s *Session) Undo() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.history)
	if n == 0 {
		return errors.ErrNoHistory
	}
	s.pos.RestoreState(s.history[n-1])
	s.history = s.history[:n-1]
	s.moves = s.moves[:n-1]
	return nil
}

// Snapshot returns a copy of the current position together with the moves
// applied since it was loaded, both read under one lock.
func (s *Session) Snapshot() (*chess.Position, []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	moves := make([]string, len(s.moves))
	copy(moves, s.moves)
	return s.pos.Copy(), moves
}
