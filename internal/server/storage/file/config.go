package file

import (
	"context"
	"fmt"

	"github.com/iudanet/contentfactory/internal/models"
	"github.com/iudanet/contentfactory/internal/server/storage"
)

func emptyConfigs() map[string][]models.Credential { return map[string][]models.Credential{} }

func (s *Storage) loadConfigs() (map[string][]models.Credential, error) {
	all, err := readCollection(s, userConfigsFile, emptyConfigs)
	if err != nil {
		return nil, err
	}
	if all == nil {
		all = emptyConfigs()
	}
	return all, nil
}

func (s *Storage) saveConfigs(all map[string][]models.Credential, userID string) error {
	if err := s.writeCollection(userConfigsFile, all); err != nil {
		return fmt.Errorf("failed to save configs of user %s: %w", userID, err)
	}
	return nil
}

// GetUserConfigs returns user's credentials
func (s *Storage) GetUserConfigs(ctx context.Context, userID string) ([]models.Credential, error) {
	s.configsMu.Lock()
	defer s.configsMu.Unlock()

	all, err := s.loadConfigs()
	if err != nil {
		return nil, err
	}
	return models.CloneCredentials(all[userID]), nil
}

// SaveUserConfigs replaces user's credentials
func (s *Storage) SaveUserConfigs(ctx context.Context, userID string, configs []models.Credential) error {
	s.configsMu.Lock()
	defer s.configsMu.Unlock()

	all, err := s.loadConfigs()
	if err != nil {
		return err
	}

	all[userID] = storage.NormalizeConfigs(userID, configs)
	return s.saveConfigs(all, userID)
}

// UpdateConfig upserts a credential by provider
func (s *Storage) UpdateConfig(ctx context.Context, userID string, config models.Credential) error {
	s.configsMu.Lock()
	defer s.configsMu.Unlock()

	all, err := s.loadConfigs()
	if err != nil {
		return err
	}

	all[userID] = storage.UpsertConfig(all[userID], userID, *config.Clone(), s.opts.Now())
	return s.saveConfigs(all, userID)
}

// DeleteConfig removes credential of the provider
func (s *Storage) DeleteConfig(ctx context.Context, userID, provider string) error {
	s.configsMu.Lock()
	defer s.configsMu.Unlock()

	all, err := s.loadConfigs()
	if err != nil {
		return err
	}

	configs, removed := storage.RemoveConfig(all[userID], provider)
	if !removed {
		return nil
	}

	all[userID] = configs
	return s.saveConfigs(all, userID)
}
