package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/contentfactory/internal/models"
	"github.com/iudanet/contentfactory/internal/server/account"
	"github.com/iudanet/contentfactory/internal/server/storage"
	"github.com/iudanet/contentfactory/pkg/api"
)

var testCookie = CookieConfig{MaxAge: 30 * 24 * time.Hour, Secure: true}

func TestAuthHandler_Register(t *testing.T) {
	env := newTestEnv(t)
	handler := NewAuthHandler(setupTestLogger(), env.accounts, testCookie)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", jsonBody(t, api.RegisterRequest{
		Email:    "Alice@Example.com",
		Username: "alice",
		Password: "secret1",
	}))
	w := httptest.NewRecorder()
	handler.Register(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp api.AuthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "alice@example.com", resp.User.Email)
	assert.Equal(t, "alice", resp.User.Username)
	assert.NotEmpty(t, resp.Session.Token)
	assert.True(t, resp.Session.ExpiresAt.After(env.clock.Now()))

	cookie := findCookie(w, SessionCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, resp.Session.Token, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, int(testCookie.MaxAge.Seconds()), cookie.MaxAge)

	// сессия действительно создана
	_, _, err := env.accounts.Authenticate(context.Background(), cookie.Value)
	assert.NoError(t, err)
}

func TestAuthHandler_RegisterErrors(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice@example.com", "alice")
	handler := NewAuthHandler(setupTestLogger(), env.accounts, testCookie)

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "invalid json",
			body:           `{"email":`,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request body",
		},
		{
			name:           "invalid email",
			body:           `{"email":"nope","username":"bob","password":"secret1"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "weak password",
			body:           `{"email":"bob@example.com","username":"bob","password":"abcdef"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "email taken",
			body:           `{"email":"ALICE@example.com","username":"bob","password":"secret1"}`,
			expectedStatus: http.StatusConflict,
			expectedMsg:    "email already registered",
		},
		{
			name:           "username taken",
			body:           `{"email":"bob@example.com","username":"alice","password":"secret1"}`,
			expectedStatus: http.StatusConflict,
			expectedMsg:    "username already taken",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			handler.Register(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, http.StatusText(tt.expectedStatus), resp.Error)
			if tt.expectedMsg != "" {
				assert.Equal(t, tt.expectedMsg, resp.Message)
			}
			assert.Nil(t, findCookie(w, SessionCookieName))
		})
	}
}

func TestAuthHandler_RegisterStorageError(t *testing.T) {
	accounts := &AccountsMock{
		RegisterFunc: func(ctx context.Context, in account.RegisterInput) (*account.AuthResult, error) {
			return nil, storage.ErrStorageUnavailable
		},
	}
	handler := NewAuthHandler(setupTestLogger(), accounts, testCookie)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register",
		strings.NewReader(`{"email":"a@example.com","username":"alice","password":"secret1"}`))
	w := httptest.NewRecorder()
	handler.Register(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", decodeError(t, w).Message)
}

func TestAuthHandler_Login(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice@example.com", "alice")
	handler := NewAuthHandler(setupTestLogger(), env.accounts, testCookie)

	tests := []struct {
		name           string
		rememberMe     bool
		expectedMaxAge int
	}{
		{name: "session cookie", rememberMe: false, expectedMaxAge: 0},
		{name: "remember me", rememberMe: true, expectedMaxAge: int(testCookie.MaxAge.Seconds())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", jsonBody(t, api.LoginRequest{
				Email:      "alice@example.com",
				Password:   "secret1",
				RememberMe: tt.rememberMe,
			}))
			w := httptest.NewRecorder()
			handler.Login(w, req)

			require.Equal(t, http.StatusOK, w.Code)

			var resp api.AuthResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.NotEmpty(t, resp.Session.Token)
			require.NotNil(t, resp.User.LastLoginAt)

			cookie := findCookie(w, SessionCookieName)
			require.NotNil(t, cookie)
			assert.Equal(t, resp.Session.Token, cookie.Value)
			assert.Equal(t, tt.expectedMaxAge, cookie.MaxAge)
		})
	}
}

func TestAuthHandler_LoginFailuresLookTheSame(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice@example.com", "alice")
	handler := NewAuthHandler(setupTestLogger(), env.accounts, testCookie)

	var bodies []string
	for _, body := range []string{
		`{"email":"alice@example.com","password":"wrong12"}`,
		`{"email":"nobody@example.com","password":"secret1"}`,
		`{"email":"","password":""}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
		w := httptest.NewRecorder()
		handler.Login(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Nil(t, findCookie(w, SessionCookieName))
		bodies = append(bodies, w.Body.String())
	}

	assert.Equal(t, bodies[0], bodies[1])
	assert.Equal(t, bodies[0], bodies[2])
}

func TestAuthHandler_LoginStorageError(t *testing.T) {
	accounts := &AccountsMock{
		LoginFunc: func(ctx context.Context, email, password string) (*account.AuthResult, error) {
			return nil, storage.ErrStorageUnavailable
		},
	}
	handler := NewAuthHandler(setupTestLogger(), accounts, testCookie)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email":"a@example.com","password":"secret1"}`))
	w := httptest.NewRecorder()
	handler.Login(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAuthHandler_Session(t *testing.T) {
	env := newTestEnv(t)
	res := env.register(t, "alice@example.com", "alice")
	handler := NewAuthHandler(setupTestLogger(), env.accounts, testCookie)

	t.Run("authenticated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/session", nil)
		req = req.WithContext(WithAuth(req.Context(), res.User, res.Session))
		w := httptest.NewRecorder()
		handler.Session(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp api.AuthResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, res.User.ID, resp.User.ID)
		assert.Empty(t, resp.Session.Token)
		assert.True(t, res.Session.ExpiresAt.Equal(resp.Session.ExpiresAt))
	})

	t.Run("no auth in context", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Session(w, httptest.NewRequest(http.MethodGet, "/api/v1/auth/session", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	env := newTestEnv(t)
	res := env.register(t, "alice@example.com", "alice")
	handler := NewAuthHandler(setupTestLogger(), env.accounts, testCookie)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: res.Session.Token})
	w := httptest.NewRecorder()
	handler.Logout(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	cookie := findCookie(w, SessionCookieName)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)

	_, _, err := env.accounts.Authenticate(context.Background(), res.Session.Token)
	assert.ErrorIs(t, err, account.ErrUnauthorized)

	// повторный выход тем же токеном тоже успешен
	w = httptest.NewRecorder()
	handler.Logout(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAuthHandler_LogoutWithoutToken(t *testing.T) {
	accounts := &AccountsMock{}
	handler := NewAuthHandler(setupTestLogger(), accounts, testCookie)

	w := httptest.NewRecorder()
	handler.Logout(w, httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, accounts.LogoutCalls())
	assert.NotNil(t, findCookie(w, SessionCookieName))
}

func TestAuthHandler_LogoutStorageError(t *testing.T) {
	accounts := &AccountsMock{
		LogoutFunc: func(ctx context.Context, token string) error {
			return storage.ErrStorageUnavailable
		},
	}
	handler := NewAuthHandler(setupTestLogger(), accounts, testCookie)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer tok")
	w := httptest.NewRecorder()
	handler.Logout(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.Len(t, accounts.LogoutCalls(), 1)
	assert.Equal(t, "tok", accounts.LogoutCalls()[0].Token)
}

func TestTokenFromRequest(t *testing.T) {
	tests := []struct {
		prepare func(r *http.Request)
		name    string
		want    string
	}{
		{name: "none", prepare: func(r *http.Request) {}, want: ""},
		{
			name:    "bearer",
			prepare: func(r *http.Request) { r.Header.Set("Authorization", "Bearer abc") },
			want:    "abc",
		},
		{
			name:    "other scheme",
			prepare: func(r *http.Request) { r.Header.Set("Authorization", "Token abc") },
			want:    "",
		},
		{
			name: "empty cookie falls back to header",
			prepare: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: ""})
				r.Header.Set("Authorization", "Bearer abc")
			},
			want: "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.prepare(req)
			assert.Equal(t, tt.want, TokenFromRequest(req))
		})
	}
}

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	_, ok := GetUserID(ctx)
	assert.False(t, ok)
	_, ok = GetSession(ctx)
	assert.False(t, ok)

	ctx = WithAuth(ctx, &models.User{ID: "u1"}, &models.Session{Token: "t"})
	id, ok := GetUserID(ctx)
	assert.True(t, ok)
	assert.Equal(t, "u1", id)
	sess, ok := GetSession(ctx)
	assert.True(t, ok)
	assert.Equal(t, "t", sess.Token)
}
