// internal/store/memory.go
//
// In-memory session registry. Sessions are ephemeral: the engine has no
// persistence, so a map guarded by an RWMutex is the whole story. The
// per-session mutex exists because the engine is single-threaded by
// contract: every call into one session must be serialized, and HTTP
// handlers run concurrently.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/aquadark/tetris-server/internal/game"
)

// ErrNotFound is returned by Get for unknown session IDs.
var ErrNotFound = errors.New("session not found")

// Session pairs a game with the lock that serializes engine calls into it.
type Session struct {
	mu   sync.Mutex
	Game *game.Game
}

// Do runs fn with exclusive access to the session's game.
func (s *Session) Do(fn func(*game.Game)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.Game)
}

// Store defines the registry interface for live sessions.
// Implementations may be backed by memory (this package) or anything else
// that can hand back the same *Session for a given ID.
type Store interface {
	// Save registers or updates a session under its game's ID.
	Save(ctx context.Context, s *Session) error

	// Get retrieves a session by game ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*Session, error)
}

// memory is the map-based Store implementation.
type memory struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemoryStore constructs an empty in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*Session)}
}

func (m *memory) Save(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.Game.ID] = s
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}
