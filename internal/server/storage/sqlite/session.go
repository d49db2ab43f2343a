package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iudanet/contentfactory/internal/models"
	"github.com/iudanet/contentfactory/internal/server/storage"
)

// CreateSession replaces all sessions of the user with the new one
func (s *Storage) CreateSession(ctx context.Context, session *models.Session) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM sessions WHERE user_id = ?`, session.UserID); err != nil {
			return unavailable("failed to delete user sessions", err)
		}

		query := `
			INSERT OR REPLACE INTO sessions (token, user_id, email, username, expires_at)
			VALUES (?, ?, ?, ?, ?)
		`

		_, err := tx.ExecContext(ctx, query,
			session.Token,
			session.UserID,
			session.Email,
			session.Username,
			toNanos(session.ExpiresAt),
		)
		if err != nil {
			return unavailable("failed to save session", err)
		}

		return nil
	})
}

// GetSession retrieves a live session by token
func (s *Storage) GetSession(ctx context.Context, token string) (*models.Session, error) {
	query := `
		SELECT token, user_id, email, username, expires_at
		FROM sessions
		WHERE token = ? AND expires_at > ?
	`

	var (
		session   models.Session
		expiresAt int64
	)

	err := s.db.QueryRowContext(ctx, query, token, toNanos(s.opts.Now())).Scan(
		&session.Token,
		&session.UserID,
		&session.Email,
		&session.Username,
		&expiresAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrSessionNotFound
		}
		return nil, unavailable("failed to get session", err)
	}

	session.ExpiresAt = fromNanos(expiresAt)
	return &session, nil
}

// DeleteSession removes session by token
func (s *Storage) DeleteSession(ctx context.Context, token string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = ?`, token); err != nil {
		return unavailable("failed to delete session", err)
	}
	return nil
}

// CleanupExpiredSessions removes all expired sessions
func (s *Storage) CleanupExpiredSessions(ctx context.Context) (int, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= ?`, toNanos(s.opts.Now()))
	if err != nil {
		return 0, unavailable("failed to delete expired sessions", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, unavailable("failed to get rows affected", err)
	}

	return int(rows), nil
}
