package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/contentfactory/internal/crypto"
	"github.com/iudanet/contentfactory/internal/models"
	"github.com/iudanet/contentfactory/internal/server/handlers"
	"github.com/iudanet/contentfactory/internal/server/session"
	"github.com/iudanet/contentfactory/pkg/api"
)

// Authenticator разрешает токен сессии в активного пользователя
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, *models.Session, error)
}

// AuthMiddleware создает middleware для проверки токена сессии.
// Токен берется из cookie session_token или заголовка Authorization: Bearer.
// Все отказы дают одинаковый 401.
func AuthMiddleware(logger *slog.Logger, auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token := handlers.TokenFromRequest(r)
			if token == "" {
				logger.DebugContext(ctx, "missing session token", "path", r.URL.Path)
				unauthorized(w)
				return
			}

			user, sess, err := auth.Authenticate(ctx, token)
			if err != nil {
				if !errors.Is(err, session.ErrUnauthorized) {
					logger.ErrorContext(ctx, "failed to authenticate", "error", err)
					writeError(w, "internal server error", http.StatusInternalServerError)
					return
				}
				logger.WarnContext(ctx, "invalid session token",
					"token_prefix", crypto.TokenPrefix(token))
				unauthorized(w)
				return
			}

			logger.DebugContext(ctx, "user authenticated", "user_id", user.ID)

			next.ServeHTTP(w, r.WithContext(handlers.WithAuth(ctx, user, sess)))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	writeError(w, "unauthorized", http.StatusUnauthorized)
}

func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}
