// Package file implements the durable record store as four JSON snapshot
// files in one data directory: users.json, sessions.json, passwords.json
// and user-configs.json.
//
// Every collection is committed independently by writing a temporary file
// in the same directory, syncing it and renaming it over the previous
// snapshot, so a reader observes either the old or the new complete
// collection. Only one process may own a data directory.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/iudanet/contentfactory/internal/server/storage"
)

// Имена файлов коллекций
const (
	usersFile       = "users.json"
	sessionsFile    = "sessions.json"
	passwordsFile   = "passwords.json"
	userConfigsFile = "user-configs.json"
)

const (
	dirPerm  = 0o700
	filePerm = 0o600
)

// renameFile переставляет временный файл на место снимка
var renameFile = os.Rename

// Storage represents file storage implementation
type Storage struct {
	opts storage.Options
	dir  string

	// один писатель на коллекцию; порядок захвата: users -> passwords
	usersMu     sync.Mutex
	sessionsMu  sync.Mutex
	passwordsMu sync.Mutex
	configsMu   sync.Mutex
}

var _ storage.CredentialStore = (*Storage)(nil)

// New creates a file storage rooted at dir, creating the directory if needed
func New(ctx context.Context, dir string, opts storage.Options) (*Storage, error) {
	if dir == "" {
		return nil, fmt.Errorf("data directory is required")
	}

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("%w: failed to create data directory: %w", storage.ErrStorageUnavailable, err)
	}

	return &Storage{
		dir:  dir,
		opts: opts.WithDefaults(),
	}, nil
}

// Close is a no-op; every commit is already on disk
func (s *Storage) Close() error {
	return nil
}

// Dir returns the data directory
func (s *Storage) Dir() string {
	return s.dir
}

// readCollection reads a collection file. A missing file is initialized
// with the empty value and persisted before being returned.
func readCollection[T any](s *Storage, name string, empty func() T) (T, error) {
	path := filepath.Join(s.dir, name)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			v := empty()
			if err := s.writeCollection(name, v); err != nil {
				return v, err
			}
			return v, nil
		}
		var zero T
		return zero, fmt.Errorf("%w: failed to read %s: %w", storage.ErrStorageUnavailable, name, err)
	}

	v := empty()
	if err := json.Unmarshal(data, &v); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: failed to decode %s: %w", storage.ErrStorageUnavailable, name, err)
	}
	return v, nil
}

// writeCollection atomically replaces the collection file with v
func (s *Storage) writeCollection(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}

	if err := writeFileAtomic(filepath.Join(s.dir, name), data); err != nil {
		return fmt.Errorf("%w: %w", storage.ErrStorageUnavailable, err)
	}
	return nil
}

// writeFileAtomic пишет во временный файл, делает fsync и переименовывает
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := tmp.Chmod(filePerm); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to chmod temporary file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := renameFile(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename %s into place: %w", filepath.Base(path), err)
	}

	// Сохраняем метаданные директории, чтобы rename пережил падение
	if d, err := os.Open(dir); err == nil {
		_ = d.Sync()
		_ = d.Close()
	}

	return nil
}
