package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/contentfactory/pkg/api"
)

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:8080/")

	assert.NotNil(t, client)
	assert.Equal(t, "http://localhost:8080", client.BaseURL())
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

// TestClient_Register проверяет успешную регистрацию
func TestClient_Register(t *testing.T) {
	expires := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/register", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))

		var req api.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice@example.com", req.Email)
		assert.Equal(t, "alice", req.Username)
		assert.Equal(t, "secret1", req.Password)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(api.AuthResponse{
			User:    api.UserResponse{ID: "user-123", Email: req.Email, Username: req.Username},
			Session: api.SessionResponse{Token: "tok_123", ExpiresAt: expires},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.Register(context.Background(), api.RegisterRequest{
		Email: "alice@example.com", Username: "alice", Password: "secret1",
	})

	require.NoError(t, err)
	assert.Equal(t, "user-123", resp.User.ID)
	assert.Equal(t, "tok_123", resp.Session.Token)
	assert.True(t, expires.Equal(resp.Session.ExpiresAt))
}

// TestClient_ErrorResponses проверяет разбор ошибок сервера
func TestClient_ErrorResponses(t *testing.T) {
	tests := []struct {
		responseBody   any
		name           string
		expectedErrMsg string
		statusCode     int
		unauthorized   bool
	}{
		{
			name:           "email taken",
			statusCode:     http.StatusConflict,
			responseBody:   api.ErrorResponse{Error: "Conflict", Message: "email already registered"},
			expectedErrMsg: "server error (409): email already registered",
		},
		{
			name:           "invalid credentials",
			statusCode:     http.StatusUnauthorized,
			responseBody:   api.ErrorResponse{Error: "Unauthorized", Message: "invalid credentials"},
			expectedErrMsg: "server error (401): invalid credentials",
			unauthorized:   true,
		},
		{
			name:           "plain text body",
			statusCode:     http.StatusBadGateway,
			responseBody:   "Bad Gateway",
			expectedErrMsg: "server error (502): Bad Gateway",
		},
		{
			name:           "empty body",
			statusCode:     http.StatusInternalServerError,
			responseBody:   "",
			expectedErrMsg: "request failed with status 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				if errResp, ok := tt.responseBody.(api.ErrorResponse); ok {
					_ = json.NewEncoder(w).Encode(errResp)
				} else {
					_, _ = w.Write([]byte(tt.responseBody.(string)))
				}
			}))
			defer server.Close()

			resp, err := NewClient(server.URL).Login(context.Background(), api.LoginRequest{Email: "a@b.c", Password: "x"})

			require.Error(t, err)
			assert.Nil(t, resp)
			assert.Contains(t, err.Error(), tt.expectedErrMsg)
			assert.Equal(t, tt.unauthorized, errors.Is(err, ErrUnauthorized))

			var statusErr *StatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, tt.statusCode, statusErr.StatusCode)
		})
	}
}

// TestClient_BearerToken проверяет передачу токена сессии
func TestClient_BearerToken(t *testing.T) {
	var seen []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Method+" "+r.URL.Path)
		assert.Equal(t, "Bearer tok_123", r.Header.Get("Authorization"))

		switch r.URL.Path {
		case "/api/v1/auth/session":
			_ = json.NewEncoder(w).Encode(api.AuthResponse{User: api.UserResponse{Username: "alice"}})
		case "/api/v1/user/profile":
			var req api.ProfileRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.NotNil(t, req.Avatar)
			assert.Nil(t, req.Email)
			_ = json.NewEncoder(w).Encode(api.UserResponse{Username: "alice", Avatar: *req.Avatar})
		default:
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	sess, err := client.Session(ctx, "tok_123")
	require.NoError(t, err)
	assert.Equal(t, "alice", sess.User.Username)

	avatar := "https://example.com/a.png"
	user, err := client.UpdateProfile(ctx, "tok_123", api.ProfileRequest{Avatar: &avatar})
	require.NoError(t, err)
	assert.Equal(t, avatar, user.Avatar)

	require.NoError(t, client.ChangePassword(ctx, "tok_123", api.PasswordRequest{CurrentPassword: "a1", NewPassword: "b2"}))
	require.NoError(t, client.Logout(ctx, "tok_123"))

	assert.Equal(t, []string{
		"GET /api/v1/auth/session",
		"PATCH /api/v1/user/profile",
		"PUT /api/v1/user/password",
		"POST /api/v1/auth/logout",
	}, seen)
}

// TestClient_Configs проверяет операции с настройками провайдеров
func TestClient_Configs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		switch r.Method + " " + r.URL.Path {
		case "GET /api/v1/user/configs":
			_ = json.NewEncoder(w).Encode(api.CredentialListResponse{Configs: []api.CredentialResponse{
				{Provider: "openrouter", Name: "OpenRouter", HasAPIKey: true, IsConfigured: true},
			}})
		case "PUT /api/v1/user/configs/openrouter":
			var req api.CredentialRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "sk-1", req.APIKey)
			_ = json.NewEncoder(w).Encode(api.CredentialResponse{Provider: "openrouter", Model: req.Model, HasAPIKey: true})
		case "POST /api/v1/user/configs/openrouter/test":
			var req api.TestResultRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			_ = json.NewEncoder(w).Encode(api.CredentialResponse{Provider: "openrouter", TestStatus: req.Status})
		case "DELETE /api/v1/user/configs/openrouter":
			w.WriteHeader(http.StatusNoContent)
		case "DELETE /api/v1/user/configs/siliconflow":
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: "Not Found", Message: "credential not found"})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	configs, err := client.ListConfigs(ctx, "tok")
	require.NoError(t, err)
	require.Len(t, configs, 1)
	assert.True(t, configs[0].HasAPIKey)

	saved, err := client.SaveConfig(ctx, "tok", "openrouter", api.CredentialRequest{APIKey: "sk-1", Model: "gpt-4o"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", saved.Model)

	tested, err := client.RecordTest(ctx, "tok", "openrouter", api.TestResultRequest{Status: "success"})
	require.NoError(t, err)
	assert.Equal(t, "success", tested.TestStatus)

	require.NoError(t, client.DeleteConfig(ctx, "tok", "openrouter"))

	err = client.DeleteConfig(ctx, "tok", "siliconflow")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server error (404): credential not found")
}

// TestClient_Unreachable проверяет ошибку соединения
func TestClient_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := NewClient(url).Session(context.Background(), "tok")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
	assert.False(t, errors.Is(err, ErrUnauthorized))
}
