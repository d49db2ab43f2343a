// Package memory implements the record store in process memory.
//
// The backend is meant for stateless/serverless execution where no durable
// storage is available: every collection is empty after a restart. All
// reads return copies, so callers never share state with the store.
package memory

import (
	"sync"

	"github.com/iudanet/contentfactory/internal/models"
	"github.com/iudanet/contentfactory/internal/server/storage"
)

// Storage represents in-memory storage implementation
type Storage struct {
	passwords map[string]string
	configs   map[string][]models.Credential
	opts      storage.Options
	users     []models.User
	sessions  []models.Session
	mu        sync.RWMutex
}

var _ storage.CredentialStore = (*Storage)(nil)

// New creates an empty in-memory storage
func New(opts storage.Options) *Storage {
	return &Storage{
		passwords: make(map[string]string),
		configs:   make(map[string][]models.Credential),
		opts:      opts.WithDefaults(),
	}
}

// Close is a no-op; state is simply dropped with the process
func (s *Storage) Close() error {
	return nil
}
