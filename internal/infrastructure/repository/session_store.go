package repository

import (
	"time"

	"github.com/Maryncell/iabot-landing-page/internal/domain"
	gocache "github.com/patrickmn/go-cache"
)

// sessionStore guarda las sesiones de la demo en memoria con TTL. Una
// sesión es un tab del navegador: no hay nada que persistir y el TTL se
// encarga de las sesiones abandonadas.
type sessionStore struct {
	cache *gocache.Cache
}

func NewSessionStore(ttl time.Duration) domain.SessionStore {
	return &sessionStore{
		cache: gocache.New(ttl, 2*ttl),
	}
}

func (s *sessionStore) Get(sessionID string) (*domain.DemoSession, bool) {
	value, ok := s.cache.Get(sessionID)
	if !ok {
		return nil, false
	}
	session, ok := value.(*domain.DemoSession)
	return session, ok
}

func (s *sessionStore) Save(session *domain.DemoSession) {
	s.cache.SetDefault(session.ID, session)
}

func (s *sessionStore) Delete(sessionID string) {
	s.cache.Delete(sessionID)
}
