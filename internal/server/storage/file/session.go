package file

import (
	"context"
	"fmt"

	"github.com/iudanet/contentfactory/internal/models"
	"github.com/iudanet/contentfactory/internal/server/storage"
)

func emptySessions() []models.Session { return []models.Session{} }

func (s *Storage) loadSessions() ([]models.Session, error) {
	sessions, err := readCollection(s, sessionsFile, emptySessions)
	if err != nil {
		return nil, err
	}
	if sessions == nil {
		sessions = emptySessions()
	}
	return sessions, nil
}

func (s *Storage) saveSessions(sessions []models.Session) error {
	if err := s.writeCollection(sessionsFile, sessions); err != nil {
		return fmt.Errorf("failed to save sessions: %w", err)
	}
	return nil
}

// CreateSession replaces all sessions of the user with the new one
func (s *Storage) CreateSession(ctx context.Context, session *models.Session) error {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()

	sessions, err := s.loadSessions()
	if err != nil {
		return err
	}

	// Удаляем старые сессии пользователя
	kept := make([]models.Session, 0, len(sessions)+1)
	for _, existing := range sessions {
		if existing.UserID != session.UserID {
			kept = append(kept, existing)
		}
	}
	kept = append(kept, *session.Clone())

	return s.saveSessions(kept)
}

// GetSession retrieves a live session by token
func (s *Storage) GetSession(ctx context.Context, token string) (*models.Session, error) {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()

	sessions, err := s.loadSessions()
	if err != nil {
		return nil, err
	}

	now := s.opts.Now()
	for i := range sessions {
		if sessions[i].Token != token {
			continue
		}
		// Просроченная сессия считается отсутствующей до очистки
		if !sessions[i].IsLive(now) {
			break
		}
		return &sessions[i], nil
	}
	return nil, storage.ErrSessionNotFound
}

// DeleteSession removes session by token
func (s *Storage) DeleteSession(ctx context.Context, token string) error {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()

	sessions, err := s.loadSessions()
	if err != nil {
		return err
	}

	kept := make([]models.Session, 0, len(sessions))
	for _, existing := range sessions {
		if existing.Token != token {
			kept = append(kept, existing)
		}
	}
	if len(kept) == len(sessions) {
		return nil
	}

	return s.saveSessions(kept)
}

// CleanupExpiredSessions removes all expired sessions.
// The file is rewritten only when something was removed.
func (s *Storage) CleanupExpiredSessions(ctx context.Context) (int, error) {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()

	sessions, err := s.loadSessions()
	if err != nil {
		return 0, err
	}

	now := s.opts.Now()
	kept := make([]models.Session, 0, len(sessions))
	for _, existing := range sessions {
		if existing.IsLive(now) {
			kept = append(kept, existing)
		}
	}

	removed := len(sessions) - len(kept)
	if removed == 0 {
		return 0, nil
	}

	if err := s.saveSessions(kept); err != nil {
		return 0, err
	}
	return removed, nil
}
