package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/iudanet/contentfactory/internal/models"
)

// contextKey тип для ключей контекста
type contextKey string

const (
	// UserKey ключ для хранения пользователя в контексте
	UserKey contextKey = "user"
	// SessionKey ключ для хранения сессии в контексте
	SessionKey contextKey = "session"
)

// SessionCookieName имя cookie с токеном сессии
const SessionCookieName = "session_token"

// WithAuth кладет пользователя и сессию в контекст
func WithAuth(ctx context.Context, user *models.User, sess *models.Session) context.Context {
	ctx = context.WithValue(ctx, UserKey, user)
	return context.WithValue(ctx, SessionKey, sess)
}

// GetUser извлекает пользователя из контекста запроса
func GetUser(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(UserKey).(*models.User)
	return user, ok && user != nil
}

// GetUserID извлекает user_id из контекста запроса
func GetUserID(ctx context.Context) (string, bool) {
	user, ok := GetUser(ctx)
	if !ok {
		return "", false
	}
	return user.ID, true
}

// GetSession извлекает сессию из контекста запроса
func GetSession(ctx context.Context) (*models.Session, bool) {
	sess, ok := ctx.Value(SessionKey).(*models.Session)
	return sess, ok && sess != nil
}

// TokenFromRequest возвращает токен сессии из cookie или заголовка
// Authorization: Bearer. Cookie имеет приоритет.
func TokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(SessionCookieName); err == nil && c.Value != "" {
		return c.Value
	}

	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// CookieConfig задает атрибуты session cookie
type CookieConfig struct {
	MaxAge time.Duration // для "remember me"
	Secure bool
}

func (c CookieConfig) session(token string, remember bool) *http.Cookie {
	cookie := &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if remember {
		cookie.MaxAge = int(c.MaxAge.Seconds())
	}
	return cookie
}

func (c CookieConfig) cleared() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	}
}
