package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUser indicates that user with this email or username already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrSessionNotFound indicates that session does not exist or has expired.
	// Both cases are reported identically.
	ErrSessionNotFound = errors.New("session not found")

	// ErrStorageUnavailable indicates an I/O failure of a durable backend
	ErrStorageUnavailable = errors.New("storage unavailable")
)
