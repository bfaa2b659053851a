package session

import (
	"crypto/md5"
	"fmt"
	"strconv"
	"sync"

	"github.com/lgbarn/fentrack-go/internal/errors"
)

// Store holds live sessions by id. It is safe for concurrent use.
type Store struct {
	mu          sync.RWMutex
	sessions    map[string]*Session
	maxSessions int
	created     uint64
}

// NewStore creates a store. maxSessions of 0 means unlimited.
func NewStore(maxSessions int) *Store {
	return &Store{
		sessions:    make(map[string]*Session),
		maxSessions: maxSessions,
	}
}

// Create starts a new session from fen (empty for the initial position).
func (st *Store) Create(fen string) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.maxSessions > 0 && len(st.sessions) >= st.maxSessions {
		return nil, errors.Wrapf(errors.ErrSessionLimit, "%d sessions", st.maxSessions)
	}

	st.created++
	id := fmt.Sprintf("%x", md5.Sum([]byte(strconv.FormatUint(st.created, 10))))
	s, err := New(id, fen)
	if err != nil {
		return nil, err
	}
	st.sessions[id] = s
	return s, nil
}

// Get returns the session with the given id.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnknownSession, "%q", id)
	}
	return s, nil
}

// Delete removes the session with the given id.
func (st *Store) Delete(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[id]; !ok {
		return errors.Wrapf(errors.ErrUnknownSession, "%q", id)
	}
	delete(st.sessions, id)
	return nil
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
