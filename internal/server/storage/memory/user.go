package memory

import (
	"context"
	"fmt"

	"github.com/iudanet/contentfactory/internal/crypto"
	"github.com/iudanet/contentfactory/internal/models"
	"github.com/iudanet/contentfactory/internal/server/storage"
)

// ListUsers returns all users in insertion order
func (s *Storage) ListUsers(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, 0, len(s.users))
	for i := range s.users {
		users = append(users, *s.users[i].Clone())
	}
	return users, nil
}

// FindUser retrieves user by email
func (s *Storage) FindUser(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].Email == email {
			return s.users[i].Clone(), nil
		}
	}
	return nil, storage.ErrUserNotFound
}

// GetUser retrieves user by ID
func (s *Storage) GetUser(ctx context.Context, userID string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.userIndex(userID); i >= 0 {
		return s.users[i].Clone(), nil
	}
	return nil, storage.ErrUserNotFound
}

// AddUser appends a new user
func (s *Storage) AddUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.addUserLocked(user)
}

// UpdateUser merges partial fields into the user
func (s *Storage) UpdateUser(ctx context.Context, userID string, upd storage.UserUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.userIndex(userID)
	if i < 0 {
		return storage.ErrUserNotFound
	}

	updated := s.users[i].Clone()
	upd.Apply(updated, s.opts.Now())

	if s.conflicts(updated, userID) {
		return storage.ErrDuplicateUser
	}

	s.users[i] = *updated
	return nil
}

// SetPassword stores a salted hash of the secret
func (s *Storage) SetPassword(ctx context.Context, userID, secret string) error {
	hash, err := crypto.HashPasswordWithParams(secret, s.opts.PasswordParams)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.passwords[userID] = hash
	return nil
}

// VerifyPassword checks secret against the stored hash
func (s *Storage) VerifyPassword(ctx context.Context, userID, secret string) (bool, error) {
	s.mu.RLock()
	hash, ok := s.passwords[userID]
	s.mu.RUnlock()

	if !ok {
		return false, nil
	}
	return crypto.VerifyPassword(secret, hash)
}

// CreateAccount adds user and password atomically under one lock
func (s *Storage) CreateAccount(ctx context.Context, user *models.User, secret string) error {
	hash, err := crypto.HashPasswordWithParams(secret, s.opts.PasswordParams)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.addUserLocked(user); err != nil {
		return err
	}
	s.passwords[user.ID] = hash
	return nil
}

func (s *Storage) addUserLocked(user *models.User) error {
	if s.conflicts(user, "") {
		return storage.ErrDuplicateUser
	}
	s.users = append(s.users, *user.Clone())
	return nil
}

// conflicts reports whether a user other than exceptID holds u's email or username
func (s *Storage) conflicts(u *models.User, exceptID string) bool {
	for i := range s.users {
		if s.users[i].ID == exceptID && exceptID != "" {
			continue
		}
		if s.users[i].Email == u.Email || s.users[i].Username == u.Username {
			return true
		}
	}
	return false
}

func (s *Storage) userIndex(userID string) int {
	for i := range s.users {
		if s.users[i].ID == userID {
			return i
		}
	}
	return -1
}
