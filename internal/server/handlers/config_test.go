package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/contentfactory/internal/models"
	"github.com/iudanet/contentfactory/internal/server/storage"
	"github.com/iudanet/contentfactory/pkg/api"
)

func saveConfig(t *testing.T, h *ConfigHandler, user *models.User, provider, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/user/configs/"+provider, strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Save(w, withProvider(authed(req, user), provider))
	return w
}

func TestConfigHandler_SaveAndList(t *testing.T) {
	env := newTestEnv(t)
	alice := env.register(t, "alice@example.com", "alice")
	handler := NewConfigHandler(setupTestLogger(), env.credentials)

	w := saveConfig(t, handler, alice.User, "openrouter", `{"apiKey":"sk-test-123","model":"gpt-4o"}`)
	require.Equal(t, http.StatusOK, w.Code)

	// секрет не возвращается клиенту
	assert.NotContains(t, w.Body.String(), "sk-test-123")
	assert.NotContains(t, w.Body.String(), `"apiKey"`)

	var saved api.CredentialResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&saved))
	assert.Equal(t, "openrouter", saved.Provider)
	assert.Equal(t, "OpenRouter", saved.Name)
	assert.Equal(t, "gpt-4o", saved.Model)
	assert.True(t, saved.HasAPIKey)
	assert.True(t, saved.IsConfigured)
	assert.True(t, saved.IsActive)

	w = saveConfig(t, handler, alice.User, "siliconflow", `{"isActive":false}`)
	require.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/user/configs", nil)
	w = httptest.NewRecorder()
	handler.List(w, authed(req, alice.User))
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "sk-test-123")

	var list api.CredentialListResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&list))
	require.Len(t, list.Configs, 2)
	assert.Equal(t, "openrouter", list.Configs[0].Provider)
	assert.Equal(t, "siliconflow", list.Configs[1].Provider)
	assert.False(t, list.Configs[1].HasAPIKey)
	assert.False(t, list.Configs[1].IsActive)
}

func TestConfigHandler_SaveKeepsSecret(t *testing.T) {
	env := newTestEnv(t)
	alice := env.register(t, "alice@example.com", "alice")
	handler := NewConfigHandler(setupTestLogger(), env.credentials)

	require.Equal(t, http.StatusOK, saveConfig(t, handler, alice.User, "openrouter", `{"apiKey":"sk-1"}`).Code)
	require.Equal(t, http.StatusOK, saveConfig(t, handler, alice.User, "openrouter", `{"model":"m2"}`).Code)

	c, err := env.credentials.Usable(context.Background(), alice.User.ID, "openrouter")
	require.NoError(t, err)
	assert.Equal(t, "sk-1", c.Secret)
	assert.Equal(t, "m2", c.Model)
}

func TestConfigHandler_EmptyList(t *testing.T) {
	env := newTestEnv(t)
	alice := env.register(t, "alice@example.com", "alice")
	handler := NewConfigHandler(setupTestLogger(), env.credentials)

	w := httptest.NewRecorder()
	handler.List(w, authed(httptest.NewRequest(http.MethodGet, "/api/v1/user/configs", nil), alice.User))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"configs":[]}`, w.Body.String())
}

func TestConfigHandler_TenantIsolation(t *testing.T) {
	env := newTestEnv(t)
	alice := env.register(t, "alice@example.com", "alice")
	bob := env.register(t, "bob@example.com", "bob")
	handler := NewConfigHandler(setupTestLogger(), env.credentials)

	require.Equal(t, http.StatusOK, saveConfig(t, handler, alice.User, "openrouter", `{"apiKey":"sk-alice"}`).Code)

	w := httptest.NewRecorder()
	handler.List(w, authed(httptest.NewRequest(http.MethodGet, "/api/v1/user/configs", nil), bob.User))
	assert.JSONEq(t, `{"configs":[]}`, w.Body.String())

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/user/configs/openrouter", nil)
	w = httptest.NewRecorder()
	handler.Delete(w, withProvider(authed(req, bob.User), "openrouter"))
	assert.Equal(t, http.StatusNotFound, w.Code)

	_, err := env.credentials.Usable(context.Background(), alice.User.ID, "openrouter")
	assert.NoError(t, err)
}

func TestConfigHandler_SaveValidation(t *testing.T) {
	env := newTestEnv(t)
	alice := env.register(t, "alice@example.com", "alice")
	handler := NewConfigHandler(setupTestLogger(), env.credentials)

	tests := []struct {
		name     string
		provider string
		body     string
	}{
		{name: "bad provider key", provider: "Open-Router", body: `{"apiKey":"k"}`},
		{name: "unknown provider without name", provider: "custom_llm", body: `{"apiKey":"k"}`},
		{name: "invalid json", provider: "openrouter", body: `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := saveConfig(t, handler, alice.User, tt.provider, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	w := saveConfig(t, handler, alice.User, "custom_llm", `{"name":"My LLM","apiKey":"k"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestConfigHandler_Delete(t *testing.T) {
	env := newTestEnv(t)
	alice := env.register(t, "alice@example.com", "alice")
	handler := NewConfigHandler(setupTestLogger(), env.credentials)
	require.Equal(t, http.StatusOK, saveConfig(t, handler, alice.User, "openrouter", `{"apiKey":"sk-1"}`).Code)

	del := func() int {
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/user/configs/openrouter", nil)
		w := httptest.NewRecorder()
		handler.Delete(w, withProvider(authed(req, alice.User), "openrouter"))
		return w.Code
	}

	assert.Equal(t, http.StatusNoContent, del())
	assert.Equal(t, http.StatusNotFound, del())
}

func TestConfigHandler_RecordTest(t *testing.T) {
	env := newTestEnv(t)
	alice := env.register(t, "alice@example.com", "alice")
	handler := NewConfigHandler(setupTestLogger(), env.credentials)
	require.Equal(t, http.StatusOK, saveConfig(t, handler, alice.User, "openrouter", `{"apiKey":"sk-1"}`).Code)

	record := func(provider, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/user/configs/"+provider+"/test", strings.NewReader(body))
		w := httptest.NewRecorder()
		handler.RecordTest(w, withProvider(authed(req, alice.User), provider))
		return w
	}

	w := record("openrouter", `{"status":"error","message":"401 from upstream"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var resp api.CredentialResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "error", resp.TestStatus)
	assert.Equal(t, "401 from upstream", resp.TestMessage)
	require.NotNil(t, resp.LastTestedAt)
	assert.True(t, env.clock.Now().Equal(*resp.LastTestedAt))

	assert.Equal(t, http.StatusBadRequest, record("openrouter", `{"status":"maybe"}`).Code)
	assert.Equal(t, http.StatusNotFound, record("siliconflow", `{"status":"success"}`).Code)
}

func TestConfigHandler_StorageErrors(t *testing.T) {
	creds := &CredentialsMock{
		ListFunc: func(ctx context.Context, userID string) ([]models.Credential, error) {
			return nil, storage.ErrStorageUnavailable
		},
		DeleteFunc: func(ctx context.Context, userID, provider string) error {
			return storage.ErrStorageUnavailable
		},
	}
	handler := NewConfigHandler(setupTestLogger(), creds)
	user := &models.User{ID: "u1"}

	w := httptest.NewRecorder()
	handler.List(w, authed(httptest.NewRequest(http.MethodGet, "/api/v1/user/configs", nil), user))
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/user/configs/openrouter", nil)
	handler.Delete(w, withProvider(authed(req, user), "openrouter"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	require.Len(t, creds.DeleteCalls(), 1)
	assert.Equal(t, "u1", creds.DeleteCalls()[0].UserID)
	assert.Equal(t, "openrouter", creds.DeleteCalls()[0].Provider)
}

func TestConfigHandler_RequiresAuth(t *testing.T) {
	handler := NewConfigHandler(setupTestLogger(), &CredentialsMock{})

	w := httptest.NewRecorder()
	handler.List(w, httptest.NewRequest(http.MethodGet, "/api/v1/user/configs", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
