package memory

import (
	"context"
	"sync"

	"github.com/mobilitree/backend/internal/domain/parking"
)

// SessionStore is an in-memory parking.SessionRepository. It backs dev
// mode and tests; production runs use the GORM-backed repository.
type SessionStore struct {
	mu         sync.RWMutex
	byFacility map[string][]parking.Session
}

// NewSessionStore creates an empty session store
func NewSessionStore() *SessionStore {
	return &SessionStore{
		byFacility: make(map[string][]parking.Session),
	}
}

// GetSessions returns all sessions for a facility. An unknown facility
// yields an empty slice, not an error.
func (s *SessionStore) GetSessions(_ context.Context, facilityID string) ([]parking.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.byFacility[facilityID]
	out := make([]parking.Session, len(sessions))
	copy(out, sessions)
	return out, nil
}

// AddSession records a session
func (s *SessionStore) AddSession(_ context.Context, session *parking.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byFacility[session.FacilityID] = append(s.byFacility[session.FacilityID], *session)
	return nil
}

var _ parking.SessionRepository = (*SessionStore)(nil)
