// Package account implements registration, login and profile management
// on top of the record store and the session manager.
package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/contentfactory/internal/crypto"
	"github.com/iudanet/contentfactory/internal/models"
	"github.com/iudanet/contentfactory/internal/server/session"
	"github.com/iudanet/contentfactory/internal/server/storage"
	"github.com/iudanet/contentfactory/internal/validation"
)

//go:generate moq -out store_mock.go . Store

// Store is the part of the record store the service needs
type Store interface {
	storage.UserStorage
	storage.PasswordStorage
	storage.AccountStorage
}

//go:generate moq -out sessions_mock.go . Sessions

// Sessions issues and resolves session tokens
type Sessions interface {
	Start(ctx context.Context, user *models.User) (*models.Session, error)
	Resolve(ctx context.Context, token string) (*models.Session, error)
	End(ctx context.Context, token string) error
}

var (
	// ErrUnauthorized is the single outcome of every failed authentication
	ErrUnauthorized = session.ErrUnauthorized

	// ErrInvalidInput indicates that request data failed validation
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmailTaken indicates that email is already registered
	ErrEmailTaken = fmt.Errorf("email already registered: %w", storage.ErrDuplicateUser)

	// ErrUsernameTaken indicates that username is already in use
	ErrUsernameTaken = fmt.Errorf("username already taken: %w", storage.ErrDuplicateUser)
)

// RegisterInput holds registration data
type RegisterInput struct {
	Email    string
	Username string
	Password string
}

// ProfileInput holds a partial profile update. Nil means "keep"
type ProfileInput struct {
	Email    *string
	Username *string
	Avatar   *string
}

// AuthResult is returned by Register and Login
type AuthResult struct {
	User    *models.User
	Session *models.Session
}

// Service implements account operations
type Service struct {
	store    Store
	sessions Sessions
	logger   *slog.Logger
	now      func() time.Time
}

// NewService creates an account service
func NewService(store Store, sessions Sessions, logger *slog.Logger, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		store:    store,
		sessions: sessions,
		logger:   logger,
		now:      now,
	}
}

// normalizeEmail приводит email к каноническому виду
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register validates input, creates the account and starts a session
func (s *Service) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	email := normalizeEmail(in.Email)
	username := strings.TrimSpace(in.Username)

	var errs []error
	if err := validation.ValidateEmail(email); err != nil {
		errs = append(errs, err)
	}
	if err := validation.ValidateUsername(username); err != nil {
		errs = append(errs, err)
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, errors.Join(errs...))
	}

	if err := s.checkAvailable(ctx, email, username, ""); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	user := &models.User{
		ID:        uuid.New().String(),
		Email:     email,
		Username:  username,
		CreatedAt: now,
		UpdatedAt: now,
		IsActive:  true,
	}

	if err := s.store.CreateAccount(ctx, user, in.Password); err != nil {
		// ErrDuplicateUser возможен при гонке между проверкой и записью
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered",
		"user_id", user.ID,
		"username", user.Username,
	)

	sess, err := s.sessions.Start(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	return &AuthResult{User: user, Session: sess}, nil
}

// Login authenticates by email and password and starts a new session.
// Every authentication failure yields ErrUnauthorized.
func (s *Service) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrUnauthorized
	}

	user, err := s.store.FindUser(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			s.logger.WarnContext(ctx, "login failed: user not found", "email", email)
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	ok, err := s.store.VerifyPassword(ctx, user.ID, password)
	if err != nil {
		// старые записи в открытом виде не принимаются
		if errors.Is(err, crypto.ErrMalformedHash) {
			s.logger.ErrorContext(ctx, "login failed: unreadable password hash", "user_id", user.ID)
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		s.logger.WarnContext(ctx, "login failed: wrong password", "user_id", user.ID)
		return nil, ErrUnauthorized
	}

	if !user.IsActive {
		s.logger.WarnContext(ctx, "login failed: user disabled", "user_id", user.ID)
		return nil, ErrUnauthorized
	}

	sess, err := s.sessions.Start(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	// Обновляем время входа; ошибка не мешает логину
	loginAt := s.now().UTC()
	if err := s.store.UpdateUser(ctx, user.ID, storage.UserUpdate{LastLoginAt: &loginAt}); err != nil {
		s.logger.WarnContext(ctx, "failed to update last login", "user_id", user.ID, "error", err)
	} else {
		user.LastLoginAt = &loginAt
	}

	s.logger.InfoContext(ctx, "user logged in", "user_id", user.ID)

	return &AuthResult{User: user, Session: sess}, nil
}

// Logout ends the session of token
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.End(ctx, token)
}

// Authenticate resolves token to its active user
func (s *Service) Authenticate(ctx context.Context, token string) (*models.User, *models.Session, error) {
	sess, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.store.GetUser(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			s.logger.WarnContext(ctx, "session of unknown user", "user_id", sess.UserID)
			return nil, nil, ErrUnauthorized
		}
		return nil, nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !user.IsActive {
		return nil, nil, ErrUnauthorized
	}

	return user, sess, nil
}

// UpdateProfile changes email, username or avatar of the user
func (s *Service) UpdateProfile(ctx context.Context, userID string, in ProfileInput) (*models.User, error) {
	var upd storage.UserUpdate
	var email, username string

	if in.Email != nil {
		email = normalizeEmail(*in.Email)
		if err := validation.ValidateEmail(email); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		upd.Email = &email
	}
	if in.Username != nil {
		username = strings.TrimSpace(*in.Username)
		if err := validation.ValidateUsername(username); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		upd.Username = &username
	}
	if in.Avatar != nil {
		avatar := strings.TrimSpace(*in.Avatar)
		upd.Avatar = &avatar
	}

	if err := s.checkAvailable(ctx, email, username, userID); err != nil {
		return nil, err
	}

	if err := s.store.UpdateUser(ctx, userID, upd); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.InfoContext(ctx, "profile updated", "user_id", userID)

	return s.store.GetUser(ctx, userID)
}

// ChangePassword replaces the password after verifying the current one
func (s *Service) ChangePassword(ctx context.Context, userID, current, next string) error {
	ok, err := s.store.VerifyPassword(ctx, userID, current)
	if err != nil {
		return fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		s.logger.WarnContext(ctx, "password change rejected", "user_id", userID)
		return ErrUnauthorized
	}

	if err := validation.ValidatePassword(next); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if err := s.store.SetPassword(ctx, userID, next); err != nil {
		return fmt.Errorf("failed to set password: %w", err)
	}

	s.logger.InfoContext(ctx, "password changed", "user_id", userID)
	return nil
}

// checkAvailable reports which of email and username is held by a user other
// than exceptID. Empty values are skipped.
func (s *Service) checkAvailable(ctx context.Context, email, username, exceptID string) error {
	if email == "" && username == "" {
		return nil
	}

	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	for i := range users {
		if users[i].ID == exceptID {
			continue
		}
		if email != "" && users[i].Email == email {
			return ErrEmailTaken
		}
		if username != "" && users[i].Username == username {
			return ErrUsernameTaken
		}
	}
	return nil
}
