package file

import (
	"context"
	"fmt"

	"github.com/iudanet/contentfactory/internal/crypto"
	"github.com/iudanet/contentfactory/internal/models"
	"github.com/iudanet/contentfactory/internal/server/storage"
)

func emptyUsers() []models.User { return []models.User{} }

func emptyPasswords() map[string]string { return map[string]string{} }

func (s *Storage) loadUsers() ([]models.User, error) {
	users, err := readCollection(s, usersFile, emptyUsers)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = emptyUsers()
	}
	return users, nil
}

func (s *Storage) loadPasswords() (map[string]string, error) {
	passwords, err := readCollection(s, passwordsFile, emptyPasswords)
	if err != nil {
		return nil, err
	}
	if passwords == nil {
		passwords = emptyPasswords()
	}
	return passwords, nil
}

// ListUsers returns all users in insertion order
func (s *Storage) ListUsers(ctx context.Context) ([]models.User, error) {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	return s.loadUsers()
}

// FindUser retrieves user by email
func (s *Storage) FindUser(ctx context.Context, email string) (*models.User, error) {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	users, err := s.loadUsers()
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, storage.ErrUserNotFound
}

// GetUser retrieves user by ID
func (s *Storage) GetUser(ctx context.Context, userID string) (*models.User, error) {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	users, err := s.loadUsers()
	if err != nil {
		return nil, err
	}

	if i := userIndex(users, userID); i >= 0 {
		return &users[i], nil
	}
	return nil, storage.ErrUserNotFound
}

// AddUser appends a new user and rewrites users.json
func (s *Storage) AddUser(ctx context.Context, user *models.User) error {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	users, err := s.loadUsers()
	if err != nil {
		return err
	}

	if conflicts(users, user, "") {
		return storage.ErrDuplicateUser
	}

	users = append(users, *user.Clone())
	if err := s.writeCollection(usersFile, users); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}
	return nil
}

// UpdateUser merges partial fields into the user and rewrites users.json
func (s *Storage) UpdateUser(ctx context.Context, userID string, upd storage.UserUpdate) error {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	users, err := s.loadUsers()
	if err != nil {
		return err
	}

	i := userIndex(users, userID)
	if i < 0 {
		return storage.ErrUserNotFound
	}

	updated := users[i].Clone()
	upd.Apply(updated, s.opts.Now())
	if conflicts(users, updated, userID) {
		return storage.ErrDuplicateUser
	}
	users[i] = *updated

	if err := s.writeCollection(usersFile, users); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}
	return nil
}

// SetPassword stores a salted hash of the secret in passwords.json
func (s *Storage) SetPassword(ctx context.Context, userID, secret string) error {
	hash, err := crypto.HashPasswordWithParams(secret, s.opts.PasswordParams)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	s.passwordsMu.Lock()
	defer s.passwordsMu.Unlock()

	return s.putPasswordLocked(userID, hash)
}

// VerifyPassword checks secret against the stored hash
func (s *Storage) VerifyPassword(ctx context.Context, userID, secret string) (bool, error) {
	s.passwordsMu.Lock()
	passwords, err := s.loadPasswords()
	s.passwordsMu.Unlock()
	if err != nil {
		return false, err
	}

	hash, ok := passwords[userID]
	if !ok {
		return false, nil
	}
	return crypto.VerifyPassword(secret, hash)
}

// CreateAccount commits the password first and the user second.
// A crash between the two commits leaves only an orphan password entry
// that no login can reach, since the user record does not exist.
func (s *Storage) CreateAccount(ctx context.Context, user *models.User, secret string) error {
	hash, err := crypto.HashPasswordWithParams(secret, s.opts.PasswordParams)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	users, err := s.loadUsers()
	if err != nil {
		return err
	}
	if conflicts(users, user, "") {
		return storage.ErrDuplicateUser
	}

	s.passwordsMu.Lock()
	err = s.putPasswordLocked(user.ID, hash)
	s.passwordsMu.Unlock()
	if err != nil {
		return err
	}

	users = append(users, *user.Clone())
	if err := s.writeCollection(usersFile, users); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}
	return nil
}

func (s *Storage) putPasswordLocked(userID, hash string) error {
	passwords, err := s.loadPasswords()
	if err != nil {
		return err
	}

	passwords[userID] = hash
	if err := s.writeCollection(passwordsFile, passwords); err != nil {
		return fmt.Errorf("failed to save passwords: %w", err)
	}
	return nil
}

// conflicts reports whether a user other than exceptID holds u's email or username
func conflicts(users []models.User, u *models.User, exceptID string) bool {
	for i := range users {
		if exceptID != "" && users[i].ID == exceptID {
			continue
		}
		if users[i].Email == u.Email || users[i].Username == u.Username {
			return true
		}
	}
	return false
}

func userIndex(users []models.User, userID string) int {
	for i := range users {
		if users[i].ID == userID {
			return i
		}
	}
	return -1
}
