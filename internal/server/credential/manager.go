// Package credential manages per-user API credentials for outbound
// integrations. Every lookup is keyed by the owning user: a credential of
// one user is never returned for another.
package credential

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/iudanet/contentfactory/internal/models"
	"github.com/iudanet/contentfactory/internal/server/storage"
	"github.com/iudanet/contentfactory/internal/validation"
)

var (
	// ErrCredentialNotFound indicates that the user has no record for the provider
	ErrCredentialNotFound = errors.New("credential not found")

	// ErrCredentialNotConfigured indicates that the credential cannot be used:
	// absent, without secret or deactivated
	ErrCredentialNotConfigured = errors.New("credential not configured")

	// ErrInvalidCredential indicates invalid input for Save or RecordTest
	ErrInvalidCredential = errors.New("invalid credential")
)

// KnownProviders maps built-in provider keys to display names.
var KnownProviders = map[string]string{
	models.ProviderOpenRouter:    "OpenRouter",
	models.ProviderSiliconFlow:   "SiliconFlow",
	models.ProviderWechatSearch:  "WeChat Search",
	models.ProviderWechatPublish: "WeChat Publish",
}

// SaveInput holds the fields of a credential upsert.
type SaveInput struct {
	IsActive          *bool // nil means true
	Provider          string
	Name              string
	Description       string
	Secret            string // empty keeps the stored secret
	BaseURL           string
	Model             string
	ServiceProviderID string
}

// Manager resolves and mutates user credentials through the record store.
type Manager struct {
	store  storage.ConfigStorage
	logger *slog.Logger
	now    func() time.Time
	locks  sync.Map // userID -> *sync.Mutex
}

// NewManager creates a credential manager.
func NewManager(store storage.ConfigStorage, logger *slog.Logger, now func() time.Time) *Manager {
	if now == nil {
		now = time.Now
	}
	return &Manager{store: store, logger: logger, now: now}
}

// lockUser serialises read-modify-write sequences on one user's credentials.
// Чтение и запись записи выполняются под одной блокировкой.
func (m *Manager) lockUser(userID string) func() {
	mu, _ := m.locks.LoadOrStore(userID, &sync.Mutex{})
	mu.(*sync.Mutex).Lock()
	return mu.(*sync.Mutex).Unlock
}

// List returns a snapshot of the user's credentials.
func (m *Manager) List(ctx context.Context, userID string) ([]models.Credential, error) {
	configs, err := m.store.GetUserConfigs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user configs: %w", err)
	}
	return configs, nil
}

// Resolve returns the user's credential for provider.
func (m *Manager) Resolve(ctx context.Context, userID, provider string) (*models.Credential, error) {
	configs, err := m.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range configs {
		// хранилище отдает только записи userID, но проверяем владельца явно
		if configs[i].Provider == provider && configs[i].UserID == userID {
			return &configs[i], nil
		}
	}
	return nil, ErrCredentialNotFound
}

// Usable returns the credential only if it can be used for an outbound call.
// Absent, unconfigured and inactive credentials all yield ErrCredentialNotConfigured.
func (m *Manager) Usable(ctx context.Context, userID, provider string) (*models.Credential, error) {
	c, err := m.Resolve(ctx, userID, provider)
	if err != nil {
		if errors.Is(err, ErrCredentialNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCredentialNotConfigured, provider)
		}
		return nil, err
	}

	if !c.Configured() || !c.IsActive {
		return nil, fmt.Errorf("%w: %s", ErrCredentialNotConfigured, provider)
	}
	return c, nil
}

// Save upserts the user's credential for in.Provider and returns the stored record.
func (m *Manager) Save(ctx context.Context, userID string, in SaveInput) (*models.Credential, error) {
	if err := validation.ValidateProvider(in.Provider); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = KnownProviders[in.Provider]
	}
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidCredential)
	}

	record := models.Credential{
		Provider:          in.Provider,
		Name:              name,
		Description:       in.Description,
		Secret:            strings.TrimSpace(in.Secret),
		BaseURL:           in.BaseURL,
		Model:             in.Model,
		ServiceProviderID: in.ServiceProviderID,
		IsActive:          in.IsActive == nil || *in.IsActive,
	}

	unlock := m.lockUser(userID)
	defer unlock()

	existing, err := m.Resolve(ctx, userID, in.Provider)
	switch {
	case err == nil:
		// пустой ключ во входных данных означает "не менять"
		if record.Secret == "" {
			record.Secret = existing.Secret
		}
		record.LastTestedAt = existing.LastTestedAt
		record.LastTestStatus = existing.LastTestStatus
		record.LastTestMessage = existing.LastTestMessage
	case errors.Is(err, ErrCredentialNotFound):
	default:
		return nil, err
	}
	record.IsConfigured = record.Configured()

	if err := m.store.UpdateConfig(ctx, userID, record); err != nil {
		return nil, fmt.Errorf("failed to save credential: %w", err)
	}

	m.logger.InfoContext(ctx, "credential saved",
		"user_id", userID,
		"provider", in.Provider,
		"configured", record.IsConfigured,
		"active", record.IsActive,
	)

	return m.Resolve(ctx, userID, in.Provider)
}

// Delete removes the user's credential for provider.
func (m *Manager) Delete(ctx context.Context, userID, provider string) error {
	unlock := m.lockUser(userID)
	defer unlock()

	if _, err := m.Resolve(ctx, userID, provider); err != nil {
		return err
	}

	if err := m.store.DeleteConfig(ctx, userID, provider); err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}

	m.logger.InfoContext(ctx, "credential deleted", "user_id", userID, "provider", provider)
	return nil
}

// RecordTest stores the outcome of a connectivity test.
func (m *Manager) RecordTest(ctx context.Context, userID, provider string, status models.TestStatus, message string) (*models.Credential, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown test status %q", ErrInvalidCredential, status)
	}

	unlock := m.lockUser(userID)
	defer unlock()

	c, err := m.Resolve(ctx, userID, provider)
	if err != nil {
		return nil, err
	}

	now := m.now()
	c.LastTestedAt = &now
	c.LastTestStatus = status
	c.LastTestMessage = message

	if err := m.store.UpdateConfig(ctx, userID, *c); err != nil {
		return nil, fmt.Errorf("failed to save test result: %w", err)
	}

	m.logger.InfoContext(ctx, "credential test recorded",
		"user_id", userID,
		"provider", provider,
		"status", status,
	)

	return m.Resolve(ctx, userID, provider)
}
