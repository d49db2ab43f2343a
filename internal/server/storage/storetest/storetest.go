// Package storetest holds the behavioural test suite shared by all
// storage backends. Each backend runs it from its own tests with a
// factory producing a fresh, empty store.
package storetest

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/contentfactory/internal/crypto"
	"github.com/iudanet/contentfactory/internal/models"
	"github.com/iudanet/contentfactory/internal/server/storage"
)

// FastParams are cheap Argon2id parameters for tests.
var FastParams = crypto.Params{Time: 1, Memory: 1024, Threads: 1, KeyLen: 32}

// Factory creates an empty store using opts.
type Factory func(t *testing.T, opts storage.Options) storage.CredentialStore

// Clock is a manually advanced time source.
type Clock struct {
	now time.Time
	mu  sync.Mutex
}

// NewClock returns a clock set to a fixed UTC instant.
func NewClock() *Clock {
	return &Clock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
}

// Now returns the current clock time.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// NewUser builds a user record with the given handle as username and email prefix.
func NewUser(handle string, now time.Time) *models.User {
	return &models.User{
		ID:        uuid.New().String(),
		Email:     handle + "@example.com",
		Username:  handle,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Run executes the full contract suite against stores produced by newStore.
func Run(t *testing.T, newStore Factory) {
	setup := func(t *testing.T) (storage.CredentialStore, *Clock) {
		t.Helper()
		clock := NewClock()
		s := newStore(t, storage.Options{Now: clock.Now, PasswordParams: FastParams})
		t.Cleanup(func() {
			_ = s.Close()
		})
		return s, clock
	}

	t.Run("users", func(t *testing.T) {
		testUsers(t, setup)
	})
	t.Run("passwords", func(t *testing.T) {
		testPasswords(t, setup)
	})
	t.Run("sessions", func(t *testing.T) {
		testSessions(t, setup)
	})
	t.Run("configs", func(t *testing.T) {
		testConfigs(t, setup)
	})
	t.Run("concurrent updates", func(t *testing.T) {
		testConcurrentConfigs(t, setup)
	})
}

type setupFunc func(t *testing.T) (storage.CredentialStore, *Clock)

func testUsers(t *testing.T, setup setupFunc) {
	ctx := context.Background()

	t.Run("empty store lists nothing", func(t *testing.T) {
		s, _ := setup(t)

		users, err := s.ListUsers(ctx)
		require.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("add and find", func(t *testing.T) {
		s, clock := setup(t)
		user := NewUser("alice", clock.Now())

		require.NoError(t, s.AddUser(ctx, user))

		byEmail, err := s.FindUser(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, byEmail.ID)
		assert.Equal(t, "alice", byEmail.Username)
		assert.True(t, byEmail.IsActive)
		assert.True(t, user.CreatedAt.Equal(byEmail.CreatedAt))
		assert.Nil(t, byEmail.LastLoginAt)

		byID, err := s.GetUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.Email, byID.Email)
	})

	t.Run("list preserves insertion order", func(t *testing.T) {
		s, clock := setup(t)
		handles := []string{"carol", "alice", "bob"}
		for _, h := range handles {
			require.NoError(t, s.AddUser(ctx, NewUser(h, clock.Now())))
		}

		users, err := s.ListUsers(ctx)
		require.NoError(t, err)
		require.Len(t, users, 3)
		for i, h := range handles {
			assert.Equal(t, h, users[i].Username)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		s, _ := setup(t)

		_, err := s.FindUser(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, storage.ErrUserNotFound)

		_, err = s.GetUser(ctx, "missing-id")
		assert.ErrorIs(t, err, storage.ErrUserNotFound)

		err = s.UpdateUser(ctx, "missing-id", storage.UserUpdate{})
		assert.ErrorIs(t, err, storage.ErrUserNotFound)
	})

	t.Run("duplicate email or username", func(t *testing.T) {
		s, clock := setup(t)
		require.NoError(t, s.AddUser(ctx, NewUser("alice", clock.Now())))

		sameEmail := NewUser("other", clock.Now())
		sameEmail.Email = "alice@example.com"
		assert.ErrorIs(t, s.AddUser(ctx, sameEmail), storage.ErrDuplicateUser)

		sameName := NewUser("alice", clock.Now())
		sameName.Email = "fresh@example.com"
		assert.ErrorIs(t, s.AddUser(ctx, sameName), storage.ErrDuplicateUser)

		users, err := s.ListUsers(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 1)
	})

	t.Run("update merges fields", func(t *testing.T) {
		s, clock := setup(t)
		user := NewUser("alice", clock.Now())
		require.NoError(t, s.AddUser(ctx, user))

		clock.Advance(time.Hour)
		avatar := "https://example.com/a.png"
		login := clock.Now()
		require.NoError(t, s.UpdateUser(ctx, user.ID, storage.UserUpdate{
			Avatar:      &avatar,
			LastLoginAt: &login,
		}))

		got, err := s.GetUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, avatar, got.Avatar)
		assert.Equal(t, "alice", got.Username)
		assert.Equal(t, "alice@example.com", got.Email)
		require.NotNil(t, got.LastLoginAt)
		assert.True(t, login.Equal(*got.LastLoginAt))
		assert.True(t, clock.Now().Equal(got.UpdatedAt))
		assert.True(t, user.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("update rejects taken email", func(t *testing.T) {
		s, clock := setup(t)
		alice := NewUser("alice", clock.Now())
		bob := NewUser("bob", clock.Now())
		require.NoError(t, s.AddUser(ctx, alice))
		require.NoError(t, s.AddUser(ctx, bob))

		taken := alice.Email
		err := s.UpdateUser(ctx, bob.ID, storage.UserUpdate{Email: &taken})
		assert.ErrorIs(t, err, storage.ErrDuplicateUser)

		got, err := s.GetUser(ctx, bob.ID)
		require.NoError(t, err)
		assert.Equal(t, "bob@example.com", got.Email)

		// свой собственный email не конфликтует
		own := bob.Email
		assert.NoError(t, s.UpdateUser(ctx, bob.ID, storage.UserUpdate{Email: &own}))
	})

	t.Run("returned records are copies", func(t *testing.T) {
		s, clock := setup(t)
		user := NewUser("alice", clock.Now())
		require.NoError(t, s.AddUser(ctx, user))

		user.Username = "mutated-input"
		got, err := s.GetUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice", got.Username)

		got.Email = "mutated@example.com"
		again, err := s.GetUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", again.Email)
	})
}

func testPasswords(t *testing.T, setup setupFunc) {
	ctx := context.Background()

	t.Run("set and verify", func(t *testing.T) {
		s, clock := setup(t)
		user := NewUser("alice", clock.Now())
		require.NoError(t, s.AddUser(ctx, user))
		require.NoError(t, s.SetPassword(ctx, user.ID, "secret123"))

		ok, err := s.VerifyPassword(ctx, user.ID, "secret123")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = s.VerifyPassword(ctx, user.ID, "wrong123")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("overwrite replaces old password", func(t *testing.T) {
		s, clock := setup(t)
		user := NewUser("alice", clock.Now())
		require.NoError(t, s.AddUser(ctx, user))
		require.NoError(t, s.SetPassword(ctx, user.ID, "first111"))
		require.NoError(t, s.SetPassword(ctx, user.ID, "second222"))

		ok, err := s.VerifyPassword(ctx, user.ID, "first111")
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = s.VerifyPassword(ctx, user.ID, "second222")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("unknown user is not an error", func(t *testing.T) {
		s, _ := setup(t)

		ok, err := s.VerifyPassword(ctx, "missing-id", "anything1")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("create account", func(t *testing.T) {
		s, clock := setup(t)
		user := NewUser("alice", clock.Now())
		require.NoError(t, s.CreateAccount(ctx, user, "secret123"))

		got, err := s.FindUser(ctx, user.Email)
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)

		ok, err := s.VerifyPassword(ctx, user.ID, "secret123")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("create account with taken email leaves no password", func(t *testing.T) {
		s, clock := setup(t)
		require.NoError(t, s.CreateAccount(ctx, NewUser("alice", clock.Now()), "secret123"))

		dup := NewUser("alice2", clock.Now())
		dup.Email = "alice@example.com"
		err := s.CreateAccount(ctx, dup, "other1234")
		assert.ErrorIs(t, err, storage.ErrDuplicateUser)

		ok, err := s.VerifyPassword(ctx, dup.ID, "other1234")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func testSessions(t *testing.T, setup setupFunc) {
	ctx := context.Background()

	newSession := func(userID string, expires time.Time) *models.Session {
		token, err := crypto.GenerateToken()
		require.NoError(t, err)
		return &models.Session{
			Token:     token,
			UserID:    userID,
			Email:     userID + "@example.com",
			Username:  userID,
			ExpiresAt: expires,
		}
	}

	t.Run("create and get", func(t *testing.T) {
		s, clock := setup(t)
		sess := newSession("u1", clock.Now().Add(time.Hour))
		require.NoError(t, s.CreateSession(ctx, sess))

		got, err := s.GetSession(ctx, sess.Token)
		require.NoError(t, err)
		assert.Equal(t, sess.UserID, got.UserID)
		assert.Equal(t, sess.Email, got.Email)
		assert.Equal(t, sess.Username, got.Username)
		assert.True(t, sess.ExpiresAt.Equal(got.ExpiresAt))
	})

	t.Run("unknown token", func(t *testing.T) {
		s, _ := setup(t)

		_, err := s.GetSession(ctx, "nope")
		assert.ErrorIs(t, err, storage.ErrSessionNotFound)
	})

	t.Run("new session replaces user's previous one", func(t *testing.T) {
		s, clock := setup(t)
		first := newSession("u1", clock.Now().Add(time.Hour))
		other := newSession("u2", clock.Now().Add(time.Hour))
		second := newSession("u1", clock.Now().Add(2*time.Hour))

		require.NoError(t, s.CreateSession(ctx, first))
		require.NoError(t, s.CreateSession(ctx, other))
		require.NoError(t, s.CreateSession(ctx, second))

		_, err := s.GetSession(ctx, first.Token)
		assert.ErrorIs(t, err, storage.ErrSessionNotFound)

		_, err = s.GetSession(ctx, second.Token)
		assert.NoError(t, err)
		_, err = s.GetSession(ctx, other.Token)
		assert.NoError(t, err)
	})

	t.Run("expired session is not returned", func(t *testing.T) {
		s, clock := setup(t)
		sess := newSession("u1", clock.Now().Add(time.Minute))
		require.NoError(t, s.CreateSession(ctx, sess))

		// ровно в момент истечения сессия уже мертва
		clock.Advance(time.Minute)
		_, err := s.GetSession(ctx, sess.Token)
		assert.ErrorIs(t, err, storage.ErrSessionNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		s, clock := setup(t)
		sess := newSession("u1", clock.Now().Add(time.Hour))
		require.NoError(t, s.CreateSession(ctx, sess))

		require.NoError(t, s.DeleteSession(ctx, sess.Token))
		_, err := s.GetSession(ctx, sess.Token)
		assert.ErrorIs(t, err, storage.ErrSessionNotFound)

		// повторное удаление не ошибка
		assert.NoError(t, s.DeleteSession(ctx, sess.Token))
	})

	t.Run("cleanup removes only expired", func(t *testing.T) {
		s, clock := setup(t)
		short1 := newSession("u1", clock.Now().Add(time.Minute))
		short2 := newSession("u2", clock.Now().Add(2*time.Minute))
		long := newSession("u3", clock.Now().Add(time.Hour))
		for _, sess := range []*models.Session{short1, short2, long} {
			require.NoError(t, s.CreateSession(ctx, sess))
		}

		n, err := s.CleanupExpiredSessions(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, n)

		clock.Advance(5 * time.Minute)
		n, err = s.CleanupExpiredSessions(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		_, err = s.GetSession(ctx, long.Token)
		assert.NoError(t, err)

		n, err = s.CleanupExpiredSessions(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})
}

func testConfigs(t *testing.T, setup setupFunc) {
	ctx := context.Background()

	t.Run("empty for unknown user", func(t *testing.T) {
		s, _ := setup(t)

		configs, err := s.GetUserConfigs(ctx, "u1")
		require.NoError(t, err)
		assert.NotNil(t, configs)
		assert.Empty(t, configs)
	})

	t.Run("update inserts then keeps identity", func(t *testing.T) {
		s, clock := setup(t)

		require.NoError(t, s.UpdateConfig(ctx, "u1", models.Credential{
			Provider: models.ProviderOpenRouter,
			Name:     "OpenRouter",
			Secret:   "sk-or-1",
			IsActive: true,
		}))

		configs, err := s.GetUserConfigs(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, configs, 1)
		first := configs[0]
		assert.NotEmpty(t, first.ID)
		assert.Equal(t, "u1", first.UserID)
		assert.True(t, first.IsConfigured)
		assert.True(t, clock.Now().Equal(first.CreatedAt))

		clock.Advance(time.Hour)
		require.NoError(t, s.UpdateConfig(ctx, "u1", models.Credential{
			Provider: models.ProviderOpenRouter,
			Name:     "OpenRouter",
			Secret:   "sk-or-2",
			Model:    "gpt-4o",
			IsActive: true,
		}))

		configs, err = s.GetUserConfigs(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, configs, 1)
		assert.Equal(t, first.ID, configs[0].ID)
		assert.True(t, first.CreatedAt.Equal(configs[0].CreatedAt))
		assert.True(t, clock.Now().Equal(configs[0].UpdatedAt))
		assert.Equal(t, "sk-or-2", configs[0].Secret)
		assert.Equal(t, "gpt-4o", configs[0].Model)
	})

	t.Run("blank secret is not configured", func(t *testing.T) {
		s, _ := setup(t)

		require.NoError(t, s.UpdateConfig(ctx, "u1", models.Credential{
			Provider:     models.ProviderSiliconFlow,
			Secret:       "   ",
			IsConfigured: true,
		}))

		configs, err := s.GetUserConfigs(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, configs, 1)
		assert.False(t, configs[0].IsConfigured)
	})

	t.Run("configs are isolated per user", func(t *testing.T) {
		s, _ := setup(t)

		require.NoError(t, s.UpdateConfig(ctx, "u1", models.Credential{Provider: models.ProviderOpenRouter, Secret: "a"}))
		require.NoError(t, s.UpdateConfig(ctx, "u2", models.Credential{Provider: models.ProviderOpenRouter, Secret: "b"}))

		u1, err := s.GetUserConfigs(ctx, "u1")
		require.NoError(t, err)
		u2, err := s.GetUserConfigs(ctx, "u2")
		require.NoError(t, err)

		require.Len(t, u1, 1)
		require.Len(t, u2, 1)
		assert.Equal(t, "a", u1[0].Secret)
		assert.Equal(t, "b", u2[0].Secret)
		assert.NotEqual(t, u1[0].ID, u2[0].ID)
	})

	t.Run("save replaces whole set in order", func(t *testing.T) {
		s, _ := setup(t)

		require.NoError(t, s.UpdateConfig(ctx, "u1", models.Credential{Provider: models.ProviderWechatSearch, Secret: "old"}))

		replacement := []models.Credential{
			{ID: "c1", Provider: models.ProviderSiliconFlow, Secret: "s1"},
			{ID: "c2", Provider: models.ProviderOpenRouter, Secret: ""},
			{ID: "c3", Provider: models.ProviderSiliconFlow, Secret: "s2"},
		}
		require.NoError(t, s.SaveUserConfigs(ctx, "u1", replacement))

		configs, err := s.GetUserConfigs(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, configs, 2)
		assert.Equal(t, models.ProviderSiliconFlow, configs[0].Provider)
		assert.Equal(t, "s2", configs[0].Secret)
		assert.Equal(t, models.ProviderOpenRouter, configs[1].Provider)
		assert.False(t, configs[1].IsConfigured)
		for _, c := range configs {
			assert.Equal(t, "u1", c.UserID)
		}
	})

	t.Run("delete", func(t *testing.T) {
		s, _ := setup(t)

		require.NoError(t, s.UpdateConfig(ctx, "u1", models.Credential{Provider: models.ProviderOpenRouter, Secret: "a"}))
		require.NoError(t, s.UpdateConfig(ctx, "u1", models.Credential{Provider: models.ProviderWechatPublish, Secret: "b"}))

		require.NoError(t, s.DeleteConfig(ctx, "u1", models.ProviderOpenRouter))
		assert.NoError(t, s.DeleteConfig(ctx, "u1", "absent"))

		configs, err := s.GetUserConfigs(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, configs, 1)
		assert.Equal(t, models.ProviderWechatPublish, configs[0].Provider)
	})

	t.Run("test results round-trip", func(t *testing.T) {
		s, clock := setup(t)
		tested := clock.Now()

		require.NoError(t, s.UpdateConfig(ctx, "u1", models.Credential{
			Provider:          models.ProviderWechatPublish,
			Secret:            "wx",
			ServiceProviderID: "sp-1",
			BaseURL:           "https://api.example.com",
			LastTestedAt:      &tested,
			LastTestStatus:    models.TestStatusError,
			LastTestMessage:   "timeout",
		}))

		configs, err := s.GetUserConfigs(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, configs, 1)
		got := configs[0]
		require.NotNil(t, got.LastTestedAt)
		assert.True(t, tested.Equal(*got.LastTestedAt))
		assert.Equal(t, models.TestStatusError, got.LastTestStatus)
		assert.Equal(t, "timeout", got.LastTestMessage)
		assert.Equal(t, "sp-1", got.ServiceProviderID)
		assert.Equal(t, "https://api.example.com", got.BaseURL)
	})
}

func testConcurrentConfigs(t *testing.T, setup setupFunc) {
	ctx := context.Background()
	s, _ := setup(t)

	const workers = 8
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.UpdateConfig(ctx, "u1", models.Credential{
				Provider: fmt.Sprintf("provider_%d", i),
				Secret:   "k",
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// ни одно обновление не потеряно
	configs, err := s.GetUserConfigs(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, configs, workers)
}
