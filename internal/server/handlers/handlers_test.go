package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/contentfactory/internal/models"
	"github.com/iudanet/contentfactory/internal/server/account"
	"github.com/iudanet/contentfactory/internal/server/credential"
	"github.com/iudanet/contentfactory/internal/server/session"
	"github.com/iudanet/contentfactory/internal/server/storage"
	"github.com/iudanet/contentfactory/internal/server/storage/memory"
	"github.com/iudanet/contentfactory/internal/server/storage/storetest"
	"github.com/iudanet/contentfactory/pkg/api"
)

func setupTestLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelError, // Only show errors in tests
	}
	handler := slog.NewTextHandler(os.Stdout, opts)
	return slog.New(handler)
}

// testEnv собирает сервисы поверх memory хранилища
type testEnv struct {
	store       *memory.Storage
	clock       *storetest.Clock
	sessions    *session.Manager
	accounts    *account.Service
	credentials *credential.Manager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	clock := storetest.NewClock()
	store := memory.New(storage.Options{Now: clock.Now, PasswordParams: storetest.FastParams})
	logger := setupTestLogger()
	sessions := session.NewManager(store, logger, session.WithClock(clock.Now))
	return &testEnv{
		store:       store,
		clock:       clock,
		sessions:    sessions,
		accounts:    account.NewService(store, sessions, logger, clock.Now),
		credentials: credential.NewManager(store, logger, clock.Now),
	}
}

// register создает пользователя и возвращает результат с токеном
func (e *testEnv) register(t *testing.T, email, username string) *account.AuthResult {
	t.Helper()
	res, err := e.accounts.Register(context.Background(), account.RegisterInput{
		Email:    email,
		Username: username,
		Password: "secret1",
	})
	require.NoError(t, err)
	return res
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

// authed возвращает запрос с пользователем в контексте, как после AuthMiddleware
func authed(r *http.Request, user *models.User) *http.Request {
	sess := &models.Session{UserID: user.ID, Token: "tok"}
	return r.WithContext(WithAuth(r.Context(), user, sess))
}

// withProvider добавляет chi URL параметр provider
func withProvider(r *http.Request, provider string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("provider", provider)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) api.ErrorResponse {
	t.Helper()
	var resp api.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
