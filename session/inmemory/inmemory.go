package inmemory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/withoutsultang/Interview-agent-aivle/internal/interview"
	"github.com/withoutsultang/Interview-agent-aivle/models"
)

type entry struct {
	state     *interview.State
	expiresAt time.Time
}

// Store keeps session snapshots in process memory with a TTL.
type Store struct {
	ttl      time.Duration
	sessions map[string]entry
	mu       sync.RWMutex
}

// New creates an in-memory session store.
func New(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Store{ttl: ttl, sessions: make(map[string]entry)}
}

func (s *Store) Create(_ context.Context, st *interview.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st.ID == "" {
		st.ID = uuid.NewString()
	}
	s.sessions[st.ID] = entry{state: st, expiresAt: time.Now().Add(s.ttl)}
	return nil
}

func (s *Store) Get(_ context.Context, id string) (*interview.State, error) {
	s.mu.RLock()
	e, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok || time.Now().After(e.expiresAt) {
		return nil, models.ErrSessionNotFound
	}
	return e.state, nil
}

func (s *Store) Save(_ context.Context, st *interview.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[st.ID]; !ok {
		return models.ErrSessionNotFound
	}
	s.sessions[st.ID] = entry{state: st, expiresAt: time.Now().Add(s.ttl)}
	return nil
}

func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
