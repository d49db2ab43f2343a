package memory

import (
	"context"

	"github.com/iudanet/contentfactory/internal/models"
	"github.com/iudanet/contentfactory/internal/server/storage"
)

// CreateSession replaces all sessions of the user with the new one
func (s *Storage) CreateSession(ctx context.Context, session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.sessions[:0:0]
	for _, existing := range s.sessions {
		if existing.UserID != session.UserID {
			kept = append(kept, existing)
		}
	}
	s.sessions = append(kept, *session.Clone())
	return nil
}

// GetSession retrieves a live session by token
func (s *Storage) GetSession(ctx context.Context, token string) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.opts.Now()
	for i := range s.sessions {
		if s.sessions[i].Token != token {
			continue
		}
		if !s.sessions[i].IsLive(now) {
			break
		}
		return s.sessions[i].Clone(), nil
	}
	return nil, storage.ErrSessionNotFound
}

// DeleteSession removes session by token
func (s *Storage) DeleteSession(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.sessions[:0:0]
	for _, existing := range s.sessions {
		if existing.Token != token {
			kept = append(kept, existing)
		}
	}
	s.sessions = kept
	return nil
}

// CleanupExpiredSessions removes all expired sessions
func (s *Storage) CleanupExpiredSessions(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.opts.Now()
	kept := s.sessions[:0:0]
	for _, existing := range s.sessions {
		if existing.IsLive(now) {
			kept = append(kept, existing)
		}
	}

	removed := len(s.sessions) - len(kept)
	if removed > 0 {
		s.sessions = kept
	}
	return removed, nil
}
