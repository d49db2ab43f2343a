// Package session manages authentication sessions on top of the record store.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/iudanet/contentfactory/internal/crypto"
	"github.com/iudanet/contentfactory/internal/models"
	"github.com/iudanet/contentfactory/internal/server/storage"
)

// DefaultTTL is the lifetime of a new session.
const DefaultTTL = 30 * 24 * time.Hour

// ErrUnauthorized is returned for a missing, unknown or expired token.
var ErrUnauthorized = errors.New("unauthorized")

// Manager issues, resolves and ends sessions.
type Manager struct {
	store  storage.SessionStorage
	logger *slog.Logger
	now    func() time.Time
	ttl    time.Duration
}

// Option configures Manager.
type Option func(*Manager)

// WithTTL overrides the session lifetime.
func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		if ttl > 0 {
			m.ttl = ttl
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// NewManager creates a session manager over store.
func NewManager(store storage.SessionStorage, logger *slog.Logger, opts ...Option) *Manager {
	m := &Manager{
		store:  store,
		logger: logger,
		now:    time.Now,
		ttl:    DefaultTTL,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// TTL returns the configured session lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Start creates a fresh session for user. Earlier sessions of the user are
// superseded by the store.
func (m *Manager) Start(ctx context.Context, user *models.User) (*models.Session, error) {
	token, err := crypto.GenerateToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	sess := &models.Session{
		Token:     token,
		UserID:    user.ID,
		Email:     user.Email,
		Username:  user.Username,
		ExpiresAt: m.now().Add(m.ttl),
	}

	if err := m.store.CreateSession(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	m.logger.InfoContext(ctx, "session started",
		"user_id", user.ID,
		"token", crypto.TokenPrefix(token),
		"expires_at", sess.ExpiresAt,
	)

	return sess, nil
}

// Resolve returns the live session of token.
func (m *Manager) Resolve(ctx context.Context, token string) (*models.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrUnauthorized
	}

	sess, err := m.store.GetSession(ctx, token)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	// бэкенд уже проверил срок, но часы менеджера главнее
	if !sess.IsLive(m.now()) {
		return nil, ErrUnauthorized
	}

	return sess, nil
}

// End removes the session. Unknown tokens are ignored.
func (m *Manager) End(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := m.store.DeleteSession(ctx, token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	m.logger.InfoContext(ctx, "session ended", "token", crypto.TokenPrefix(token))
	return nil
}

// Sweep removes expired sessions and returns how many were removed.
func (m *Manager) Sweep(ctx context.Context) (int, error) {
	n, err := m.store.CleanupExpiredSessions(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup sessions: %w", err)
	}
	if n > 0 {
		m.logger.InfoContext(ctx, "expired sessions removed", "count", n)
	}
	return n, nil
}

// Run calls Sweep every interval until ctx is cancelled.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := m.Sweep(ctx); err != nil {
				m.logger.WarnContext(ctx, "session sweep failed", "error", err)
			}
		}
	}
}
