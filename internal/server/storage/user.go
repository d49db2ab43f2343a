package storage

import (
	"context"
	"time"

	"github.com/iudanet/contentfactory/internal/models"
)

// UserStorage defines interface for user data persistence
type UserStorage interface {
	// ListUsers returns all users in insertion order
	ListUsers(ctx context.Context) ([]models.User, error)

	// FindUser retrieves user by email
	// Returns ErrUserNotFound if user doesn't exist
	FindUser(ctx context.Context, email string) (*models.User, error)

	// GetUser retrieves user by ID
	// Returns ErrUserNotFound if user doesn't exist
	GetUser(ctx context.Context, userID string) (*models.User, error)

	// AddUser appends a new user
	// Returns ErrDuplicateUser if email or username is already taken
	AddUser(ctx context.Context, user *models.User) error

	// UpdateUser merges non-nil fields of upd into the user and bumps UpdatedAt
	// Returns ErrUserNotFound if user doesn't exist,
	// ErrDuplicateUser if the new email or username belongs to another user
	UpdateUser(ctx context.Context, userID string, upd UserUpdate) error
}

// UserUpdate holds the fields of a partial user update. Nil means "keep".
type UserUpdate struct {
	Email       *string
	Username    *string
	Avatar      *string
	LastLoginAt *time.Time
	IsActive    *bool
}

// Apply merges the update into u and sets UpdatedAt to now.
func (upd UserUpdate) Apply(u *models.User, now time.Time) {
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.Username != nil {
		u.Username = *upd.Username
	}
	if upd.Avatar != nil {
		u.Avatar = *upd.Avatar
	}
	if upd.LastLoginAt != nil {
		t := *upd.LastLoginAt
		u.LastLoginAt = &t
	}
	if upd.IsActive != nil {
		u.IsActive = *upd.IsActive
	}
	u.UpdatedAt = now
}

// PasswordStorage defines interface for password records
type PasswordStorage interface {
	// SetPassword stores a salted hash of secret, overwriting any previous one
	SetPassword(ctx context.Context, userID, secret string) error

	// VerifyPassword checks secret against the stored hash
	// Returns false (without error) if the user has no password record
	VerifyPassword(ctx context.Context, userID, secret string) (bool, error)
}

// AccountStorage creates a user together with its password
type AccountStorage interface {
	// CreateAccount adds the user and sets its password as one unit of work.
	// Backends document how atomic the pair is.
	CreateAccount(ctx context.Context, user *models.User, secret string) error
}
