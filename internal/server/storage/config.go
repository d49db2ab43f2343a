package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/contentfactory/internal/models"
)

// ConfigStorage defines interface for per-user API credential persistence
type ConfigStorage interface {
	// GetUserConfigs returns user's credentials, provider-unique, in stored order
	// Returns empty slice if user has none
	GetUserConfigs(ctx context.Context, userID string) ([]models.Credential, error)

	// SaveUserConfigs replaces the whole credential sequence of the user
	SaveUserConfigs(ctx context.Context, userID string, configs []models.Credential) error

	// UpdateConfig upserts a credential by (userID, provider)
	// Existing record keeps its ID and CreatedAt, UpdatedAt is refreshed
	UpdateConfig(ctx context.Context, userID string, config models.Credential) error

	// DeleteConfig removes credential of the provider. Missing record is not an error
	DeleteConfig(ctx context.Context, userID, provider string) error
}

// UpsertConfig applies upsert semantics to a credential sequence in place and
// returns the resulting sequence. Shared by backends that keep whole
// sequences (file, memory).
func UpsertConfig(configs []models.Credential, userID string, config models.Credential, now time.Time) []models.Credential {
	config.UserID = userID
	config.IsConfigured = config.Configured()
	config.UpdatedAt = now

	for i := range configs {
		if configs[i].Provider != config.Provider {
			continue
		}
		config.ID = configs[i].ID
		config.CreatedAt = configs[i].CreatedAt
		configs[i] = config
		return configs
	}

	if config.ID == "" {
		config.ID = uuid.New().String()
	}
	if config.CreatedAt.IsZero() {
		config.CreatedAt = now
	}
	return append(configs, config)
}

// NormalizeConfigs prepares a full replacement sequence: binds every record
// to userID and recomputes IsConfigured. Later duplicates of a provider win
// the position of the first occurrence.
func NormalizeConfigs(userID string, configs []models.Credential) []models.Credential {
	out := make([]models.Credential, 0, len(configs))
	index := make(map[string]int, len(configs))

	for _, c := range configs {
		v := *c.Clone()
		v.UserID = userID
		v.IsConfigured = v.Configured()

		if i, ok := index[v.Provider]; ok {
			out[i] = v
			continue
		}
		index[v.Provider] = len(out)
		out = append(out, v)
	}

	return out
}

// RemoveConfig drops the record of provider, reporting whether one existed.
func RemoveConfig(configs []models.Credential, provider string) ([]models.Credential, bool) {
	out := configs[:0:0]
	removed := false
	for _, c := range configs {
		if c.Provider == provider {
			removed = true
			continue
		}
		out = append(out, c)
	}
	return out, removed
}
