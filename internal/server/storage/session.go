package storage

import (
	"context"

	"github.com/iudanet/contentfactory/internal/models"
)

// SessionStorage defines interface for session persistence
type SessionStorage interface {
	// CreateSession removes all sessions of session.UserID and stores the new one
	CreateSession(ctx context.Context, session *models.Session) error

	// GetSession retrieves a live session by token
	// Returns ErrSessionNotFound if token is unknown or the session has expired
	GetSession(ctx context.Context, token string) (*models.Session, error)

	// DeleteSession removes session by token. Missing token is not an error
	DeleteSession(ctx context.Context, token string) error

	// CleanupExpiredSessions removes all expired sessions
	// Returns number of deleted sessions
	CleanupExpiredSessions(ctx context.Context) (int, error)
}
