package authenticating

import (
	"sync"
	"time"

	"github.com/vfg2006/sales-comparison-api/internal/domain"
)

// SessionStore guarda as sessões ativas em memória
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]domain.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]domain.Session),
	}
}

func (s *SessionStore) Save(session domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = session
}

// Get retorna a sessão se ela ainda estiver válida em now; sessões vencidas são removidas
func (s *SessionStore) Get(id string, now time.Time) (domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpired(now)

	session, ok := s.sessions[id]
	return session, ok
}

func (s *SessionStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.sessions[id]
	delete(s.sessions, id)
	return ok
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}

func (s *SessionStore) purgeExpired(now time.Time) {
	for id, session := range s.sessions {
		if !now.Before(session.ExpiresAt) {
			delete(s.sessions, id)
		}
	}
}
