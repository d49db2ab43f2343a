package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/iudanet/contentfactory/internal/crypto"
	"github.com/iudanet/contentfactory/internal/models"
	"github.com/iudanet/contentfactory/internal/server/storage"
)

const userColumns = `id, email, username, avatar, created_at, updated_at, last_login_at, is_active`

// ListUsers returns all users in insertion order
func (s *Storage) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY seq`)
	if err != nil {
		return nil, unavailable("failed to query users", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	users := []models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}

	if err := rows.Err(); err != nil {
		return nil, unavailable("rows iteration error", err)
	}

	return users, nil
}

// FindUser retrieves user by email
func (s *Storage) FindUser(ctx context.Context, email string) (*models.User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

// GetUser retrieves user by ID
func (s *Storage) GetUser(ctx context.Context, userID string) (*models.User, error) {
	return getUser(ctx, s.db, userID)
}

// AddUser creates a new user
func (s *Storage) AddUser(ctx context.Context, user *models.User) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		return insertUser(ctx, tx, user)
	})
}

// UpdateUser merges partial fields into the user
func (s *Storage) UpdateUser(ctx context.Context, userID string, upd storage.UserUpdate) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		user, err := getUser(ctx, tx, userID)
		if err != nil {
			return err
		}

		upd.Apply(user, s.opts.Now())

		taken, err := isTaken(ctx, tx, user.Email, user.Username, userID)
		if err != nil {
			return err
		}
		if taken {
			return storage.ErrDuplicateUser
		}

		query := `
			UPDATE users
			SET email = ?, username = ?, avatar = ?, updated_at = ?, last_login_at = ?, is_active = ?
			WHERE id = ?
		`

		_, err = tx.ExecContext(ctx, query,
			user.Email,
			user.Username,
			user.Avatar,
			toNanos(user.UpdatedAt),
			nullNanos(user.LastLoginAt),
			boolToInt(user.IsActive),
			userID,
		)
		if err != nil {
			return mapUniqueErr(err, "failed to update user")
		}

		return nil
	})
}

// SetPassword stores a salted hash of the secret
func (s *Storage) SetPassword(ctx context.Context, userID, secret string) error {
	hash, err := crypto.HashPasswordWithParams(secret, s.opts.PasswordParams)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return putPassword(ctx, s.db, userID, hash)
}

// VerifyPassword checks secret against the stored hash
func (s *Storage) VerifyPassword(ctx context.Context, userID, secret string) (bool, error) {
	var hash string
	err := s.db.QueryRowContext(ctx, `SELECT hash FROM passwords WHERE user_id = ?`, userID).Scan(&hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, unavailable("failed to get password", err)
	}

	return crypto.VerifyPassword(secret, hash)
}

// CreateAccount inserts the user and its password in one transaction
func (s *Storage) CreateAccount(ctx context.Context, user *models.User, secret string) error {
	hash, err := crypto.HashPasswordWithParams(secret, s.opts.PasswordParams)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.inTx(ctx, func(tx *sql.Tx) error {
		if err := insertUser(ctx, tx, user); err != nil {
			return err
		}
		return putPassword(ctx, tx, user.ID, hash)
	})
}

func insertUser(ctx context.Context, q querier, user *models.User) error {
	taken, err := isTaken(ctx, q, user.Email, user.Username, "")
	if err != nil {
		return err
	}
	if taken {
		return storage.ErrDuplicateUser
	}

	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = q.ExecContext(ctx, query,
		user.ID,
		user.Email,
		user.Username,
		user.Avatar,
		toNanos(user.CreatedAt),
		toNanos(user.UpdatedAt),
		nullNanos(user.LastLoginAt),
		boolToInt(user.IsActive),
	)
	if err != nil {
		return mapUniqueErr(err, "failed to insert user")
	}

	return nil
}

func putPassword(ctx context.Context, q querier, userID, hash string) error {
	query := `
		INSERT INTO passwords (user_id, hash) VALUES (?, ?)
		ON CONFLICT(user_id) DO UPDATE SET hash = excluded.hash
	`
	if _, err := q.ExecContext(ctx, query, userID, hash); err != nil {
		return unavailable("failed to save password", err)
	}
	return nil
}

func getUser(ctx context.Context, q querier, userID string) (*models.User, error) {
	row := q.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, userID)
	return scanUser(row)
}

// isTaken checks whether a user other than exceptID holds email or username
func isTaken(ctx context.Context, q querier, email, username, exceptID string) (bool, error) {
	var n int
	err := q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE (email = ? OR username = ?) AND id != ?`,
		email, username, exceptID,
	).Scan(&n)
	if err != nil {
		return false, unavailable("failed to check user uniqueness", err)
	}
	return n > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	var (
		user                 models.User
		createdAt, updatedAt int64
		lastLogin            sql.NullInt64
		isActive             int
	)

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.Avatar,
		&createdAt,
		&updatedAt,
		&lastLogin,
		&isActive,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, unavailable("failed to scan user", err)
	}

	user.CreatedAt = fromNanos(createdAt)
	user.UpdatedAt = fromNanos(updatedAt)
	user.LastLoginAt = fromNullNanos(lastLogin)
	user.IsActive = isActive != 0

	return &user, nil
}

// mapUniqueErr переводит нарушение UNIQUE в ErrDuplicateUser
func mapUniqueErr(err error, msg string) error {
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return storage.ErrDuplicateUser
	}
	return unavailable(msg, err)
}
