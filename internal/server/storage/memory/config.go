package memory

import (
	"context"

	"github.com/iudanet/contentfactory/internal/models"
	"github.com/iudanet/contentfactory/internal/server/storage"
)

// GetUserConfigs returns a copy of user's credentials
func (s *Storage) GetUserConfigs(ctx context.Context, userID string) ([]models.Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return models.CloneCredentials(s.configs[userID]), nil
}

// SaveUserConfigs replaces user's credentials
func (s *Storage) SaveUserConfigs(ctx context.Context, userID string, configs []models.Credential) error {
	normalized := storage.NormalizeConfigs(userID, configs)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.configs[userID] = normalized
	return nil
}

// UpdateConfig upserts a credential by provider
func (s *Storage) UpdateConfig(ctx context.Context, userID string, config models.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := models.CloneCredentials(s.configs[userID])
	s.configs[userID] = storage.UpsertConfig(current, userID, *config.Clone(), s.opts.Now())
	return nil
}

// DeleteConfig removes credential of the provider
func (s *Storage) DeleteConfig(ctx context.Context, userID, provider string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if configs, removed := storage.RemoveConfig(s.configs[userID], provider); removed {
		s.configs[userID] = configs
	}
	return nil
}
