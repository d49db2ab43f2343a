package credential

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/contentfactory/internal/models"
	"github.com/iudanet/contentfactory/internal/server/storage"
	"github.com/iudanet/contentfactory/internal/server/storage/memory"
	"github.com/iudanet/contentfactory/internal/server/storage/storetest"
)

func setupManager(t *testing.T) (*Manager, *storetest.Clock) {
	t.Helper()
	clock := storetest.NewClock()
	store := memory.New(storage.Options{Now: clock.Now})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewManager(store, logger, clock.Now), clock
}

func boolPtr(b bool) *bool { return &b }

func TestManager_SaveResolveDelete(t *testing.T) {
	ctx := context.Background()
	m, _ := setupManager(t)

	saved, err := m.Save(ctx, "u1", SaveInput{Provider: models.ProviderOpenRouter, Secret: "sk-123"})
	require.NoError(t, err)
	assert.True(t, saved.IsConfigured)
	assert.True(t, saved.IsActive)
	assert.Equal(t, "OpenRouter", saved.Name)

	got, err := m.Resolve(ctx, "u1", models.ProviderOpenRouter)
	require.NoError(t, err)
	assert.Equal(t, "sk-123", got.Secret)
	assert.True(t, got.IsConfigured)

	require.NoError(t, m.Delete(ctx, "u1", models.ProviderOpenRouter))

	_, err = m.Resolve(ctx, "u1", models.ProviderOpenRouter)
	assert.ErrorIs(t, err, ErrCredentialNotFound)

	err = m.Delete(ctx, "u1", models.ProviderOpenRouter)
	assert.ErrorIs(t, err, ErrCredentialNotFound)
}

func TestManager_TenantIsolation(t *testing.T) {
	ctx := context.Background()
	m, _ := setupManager(t)

	_, err := m.Save(ctx, "u1", SaveInput{Provider: models.ProviderWechatSearch, Secret: "secret-u1"})
	require.NoError(t, err)
	_, err = m.Save(ctx, "u2", SaveInput{Provider: models.ProviderWechatSearch, Secret: "secret-u2"})
	require.NoError(t, err)

	c1, err := m.Resolve(ctx, "u1", models.ProviderWechatSearch)
	require.NoError(t, err)
	c2, err := m.Resolve(ctx, "u2", models.ProviderWechatSearch)
	require.NoError(t, err)

	assert.Equal(t, "secret-u1", c1.Secret)
	assert.Equal(t, "secret-u2", c2.Secret)
	assert.Equal(t, "u1", c1.UserID)
	assert.Equal(t, "u2", c2.UserID)

	_, err = m.Resolve(ctx, "u3", models.ProviderWechatSearch)
	assert.ErrorIs(t, err, ErrCredentialNotFound)
}

func TestManager_SaveIsIdempotentOnProvider(t *testing.T) {
	ctx := context.Background()
	m, clock := setupManager(t)

	first, err := m.Save(ctx, "u1", SaveInput{Provider: models.ProviderSiliconFlow, Secret: "k1"})
	require.NoError(t, err)

	for i := range 3 {
		clock.Advance(time.Minute)
		_, err := m.Save(ctx, "u1", SaveInput{Provider: models.ProviderSiliconFlow, Secret: "k", Model: string(rune('a' + i))})
		require.NoError(t, err)
	}

	list, err := m.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, first.ID, list[0].ID)
	assert.True(t, first.CreatedAt.Equal(list[0].CreatedAt))
	assert.True(t, clock.Now().Equal(list[0].UpdatedAt))
	assert.Equal(t, "c", list[0].Model)
}

func TestManager_SaveKeepsSecretWhenEmpty(t *testing.T) {
	ctx := context.Background()
	m, _ := setupManager(t)

	_, err := m.Save(ctx, "u1", SaveInput{Provider: models.ProviderOpenRouter, Secret: "sk-keep"})
	require.NoError(t, err)

	updated, err := m.Save(ctx, "u1", SaveInput{Provider: models.ProviderOpenRouter, Model: "gpt-4o"})
	require.NoError(t, err)
	assert.Equal(t, "sk-keep", updated.Secret)
	assert.Equal(t, "gpt-4o", updated.Model)
	assert.True(t, updated.IsConfigured)
}

func TestManager_SaveValidation(t *testing.T) {
	ctx := context.Background()
	m, _ := setupManager(t)

	tests := []struct {
		name string
		in   SaveInput
	}{
		{name: "empty provider", in: SaveInput{Secret: "k"}},
		{name: "bad provider", in: SaveInput{Provider: "Open Router", Name: "x"}},
		{name: "unknown provider without name", in: SaveInput{Provider: "custom_llm", Secret: "k"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Save(ctx, "u1", tt.in)
			assert.ErrorIs(t, err, ErrInvalidCredential)
		})
	}

	saved, err := m.Save(ctx, "u1", SaveInput{Provider: "custom_llm", Name: "Custom", Secret: "k"})
	require.NoError(t, err)
	assert.Equal(t, "Custom", saved.Name)
}

func TestManager_Usable(t *testing.T) {
	ctx := context.Background()
	m, _ := setupManager(t)

	_, err := m.Save(ctx, "u1", SaveInput{Provider: models.ProviderOpenRouter, Secret: "sk"})
	require.NoError(t, err)
	_, err = m.Save(ctx, "u1", SaveInput{Provider: models.ProviderSiliconFlow, Secret: "   "})
	require.NoError(t, err)
	_, err = m.Save(ctx, "u1", SaveInput{Provider: models.ProviderWechatPublish, Secret: "wx", IsActive: boolPtr(false)})
	require.NoError(t, err)

	c, err := m.Usable(ctx, "u1", models.ProviderOpenRouter)
	require.NoError(t, err)
	assert.Equal(t, "sk", c.Secret)

	for _, provider := range []string{models.ProviderSiliconFlow, models.ProviderWechatPublish, models.ProviderWechatSearch} {
		_, err := m.Usable(ctx, "u1", provider)
		assert.ErrorIs(t, err, ErrCredentialNotConfigured, provider)
	}

	// другой пользователь не получает чужой ключ
	_, err = m.Usable(ctx, "u2", models.ProviderOpenRouter)
	assert.ErrorIs(t, err, ErrCredentialNotConfigured)
}

func TestManager_RecordTest(t *testing.T) {
	ctx := context.Background()
	m, clock := setupManager(t)

	_, err := m.Save(ctx, "u1", SaveInput{Provider: models.ProviderOpenRouter, Secret: "sk"})
	require.NoError(t, err)

	clock.Advance(time.Hour)
	c, err := m.RecordTest(ctx, "u1", models.ProviderOpenRouter, models.TestStatusSuccess, "ok")
	require.NoError(t, err)
	require.NotNil(t, c.LastTestedAt)
	assert.True(t, clock.Now().Equal(*c.LastTestedAt))
	assert.Equal(t, models.TestStatusSuccess, c.LastTestStatus)
	assert.Equal(t, "ok", c.LastTestMessage)
	assert.Equal(t, "sk", c.Secret)

	// последующее сохранение не стирает результат теста
	c, err = m.Save(ctx, "u1", SaveInput{Provider: models.ProviderOpenRouter, Model: "m"})
	require.NoError(t, err)
	assert.Equal(t, models.TestStatusSuccess, c.LastTestStatus)

	_, err = m.RecordTest(ctx, "u1", models.ProviderOpenRouter, "bogus", "")
	assert.ErrorIs(t, err, ErrInvalidCredential)

	_, err = m.RecordTest(ctx, "u1", models.ProviderWechatSearch, models.TestStatusError, "")
	assert.ErrorIs(t, err, ErrCredentialNotFound)
}

// interleavingStore вызывает hook при первом чтении после взведения
type interleavingStore struct {
	storage.ConfigStorage
	hook  func()
	once  sync.Once
	armed atomic.Bool
}

func (s *interleavingStore) GetUserConfigs(ctx context.Context, userID string) ([]models.Credential, error) {
	configs, err := s.ConfigStorage.GetUserConfigs(ctx, userID)
	if s.armed.Load() {
		s.once.Do(s.hook)
	}
	return configs, err
}

func TestManager_ConcurrentWritesDoNotLoseUpdates(t *testing.T) {
	tests := []struct {
		name  string
		first func(ctx context.Context, m *Manager) error
		// second выполняется, пока first держит прочитанную запись
		second     func(ctx context.Context, m *Manager) error
		wantSecret string
		wantStatus models.TestStatus
		wantModel  string
	}{
		{
			name: "key rotation during test recording",
			first: func(ctx context.Context, m *Manager) error {
				_, err := m.RecordTest(ctx, "u1", models.ProviderOpenRouter, models.TestStatusSuccess, "ok")
				return err
			},
			second: func(ctx context.Context, m *Manager) error {
				_, err := m.Save(ctx, "u1", SaveInput{Provider: models.ProviderOpenRouter, Secret: "sk-new"})
				return err
			},
			wantSecret: "sk-new",
			wantStatus: models.TestStatusSuccess,
		},
		{
			name: "test recording during model change",
			first: func(ctx context.Context, m *Manager) error {
				_, err := m.Save(ctx, "u1", SaveInput{Provider: models.ProviderOpenRouter, Model: "m2"})
				return err
			},
			second: func(ctx context.Context, m *Manager) error {
				_, err := m.RecordTest(ctx, "u1", models.ProviderOpenRouter, models.TestStatusError, "bad key")
				return err
			},
			wantSecret: "sk-old",
			wantStatus: models.TestStatusError,
			wantModel:  "m2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			clock := storetest.NewClock()
			store := &interleavingStore{ConfigStorage: memory.New(storage.Options{Now: clock.Now})}
			m := NewManager(store, slog.New(slog.NewTextHandler(io.Discard, nil)), clock.Now)

			_, err := m.Save(ctx, "u1", SaveInput{Provider: models.ProviderOpenRouter, Secret: "sk-old"})
			require.NoError(t, err)

			done := make(chan error, 1)
			store.hook = func() {
				go func() { done <- tt.second(ctx, m) }()
				// без блокировки second успевает записать до first
				select {
				case err := <-done:
					done <- err
				case <-time.After(50 * time.Millisecond):
				}
			}
			store.armed.Store(true)

			require.NoError(t, tt.first(ctx, m))
			require.NoError(t, <-done)

			got, err := m.Resolve(ctx, "u1", models.ProviderOpenRouter)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSecret, got.Secret)
			assert.Equal(t, tt.wantStatus, got.LastTestStatus)
			assert.Equal(t, tt.wantModel, got.Model)
		})
	}
}

func TestManager_ParallelSavesKeepEveryProvider(t *testing.T) {
	ctx := context.Background()
	m, _ := setupManager(t)

	providers := []string{models.ProviderOpenRouter, models.ProviderSiliconFlow, models.ProviderWechatSearch}
	var wg sync.WaitGroup
	for _, p := range providers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.Save(ctx, "u1", SaveInput{Provider: p, Secret: "sk-" + p})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	list, err := m.List(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list, len(providers))
}
