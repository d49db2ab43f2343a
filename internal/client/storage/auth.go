package storage

import (
	"context"
)

// AuthStorage defines interface for caching the server session on client.
// Токен хранится как есть: файл кэша создается с правами 0600.
type AuthStorage interface {
	// SaveAuth stores session data, replacing the previous one
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves cached session data.
	// Returns ErrAuthNotFound if no session is cached or it has expired
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes cached session data (logout)
	DeleteAuth(ctx context.Context) error

	// IsAuthenticated checks if a cached session exists and has not expired
	IsAuthenticated(ctx context.Context) (bool, error)
}

// AuthData represents a cached server session
type AuthData struct {
	ServerURL string `json:"server_url"`
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"` // unix seconds
}
