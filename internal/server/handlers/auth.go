package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/contentfactory/internal/models"
	"github.com/iudanet/contentfactory/internal/server/account"
	"github.com/iudanet/contentfactory/internal/server/storage"
	"github.com/iudanet/contentfactory/pkg/api"
)

//go:generate moq -out accounts_mock.go . Accounts

// Accounts определяет операции аккаунта, нужные HTTP слою
type Accounts interface {
	Register(ctx context.Context, in account.RegisterInput) (*account.AuthResult, error)
	Login(ctx context.Context, email, password string) (*account.AuthResult, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*models.User, *models.Session, error)
	UpdateProfile(ctx context.Context, userID string, in account.ProfileInput) (*models.User, error)
	ChangePassword(ctx context.Context, userID, current, next string) error
}

// AuthHandler обрабатывает запросы авторизации
type AuthHandler struct {
	responder
	accounts Accounts
	cookie   CookieConfig
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, accounts Accounts, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{
		responder: responder{logger: logger},
		accounts:  accounts,
		cookie:    cookie,
	}
}

// Register обрабатывает POST /api/v1/auth/register
// Регистрация нового пользователя с автоматическим входом
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RegisterRequest
	if !h.decode(w, r, &req) {
		return
	}

	res, err := h.accounts.Register(ctx, account.RegisterInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, account.ErrInvalidInput):
			h.logger.WarnContext(ctx, "invalid register request", slog.Any("error", err))
			h.sendError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, account.ErrEmailTaken):
			h.sendError(w, "email already registered", http.StatusConflict)
		case errors.Is(err, account.ErrUsernameTaken):
			h.sendError(w, "username already taken", http.StatusConflict)
		case errors.Is(err, storage.ErrDuplicateUser):
			// гонка двух регистраций: хранилище не уточняет поле
			h.sendError(w, "email or username already in use", http.StatusConflict)
		default:
			h.internalError(w, r, "failed to register user", err)
		}
		return
	}

	http.SetCookie(w, h.cookie.session(res.Session.Token, true))
	h.sendJSON(w, authResponse(res), http.StatusCreated)
}

// Login обрабатывает POST /api/v1/auth/login
// Аутентификация пользователя; любая причина отказа дает один и тот же 401
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if !h.decode(w, r, &req) {
		return
	}

	res, err := h.accounts.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, account.ErrUnauthorized) {
			h.sendError(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		h.internalError(w, r, "failed to login", err)
		return
	}

	http.SetCookie(w, h.cookie.session(res.Session.Token, req.RememberMe))
	h.sendJSON(w, authResponse(res), http.StatusOK)
}

// Session обрабатывает GET /api/v1/auth/session
// Возвращает текущего пользователя; требует AuthMiddleware
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUser(r.Context())
	sess, okSess := GetSession(r.Context())
	if !ok || !okSess {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	h.sendJSON(w, api.AuthResponse{
		User:    userResponse(user),
		Session: api.SessionResponse{ExpiresAt: sess.ExpiresAt},
	}, http.StatusOK)
}

// Logout обрабатывает POST /api/v1/auth/logout
// Удаляет сессию (если есть) и очищает cookie; идемпотентен
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if token := TokenFromRequest(r); token != "" {
		if err := h.accounts.Logout(ctx, token); err != nil {
			h.internalError(w, r, "failed to delete session", err)
			return
		}
	}

	http.SetCookie(w, h.cookie.cleared())
	w.WriteHeader(http.StatusNoContent)
}

func authResponse(res *account.AuthResult) api.AuthResponse {
	return api.AuthResponse{
		User: userResponse(res.User),
		Session: api.SessionResponse{
			ExpiresAt: res.Session.ExpiresAt,
			Token:     res.Session.Token,
		},
	}
}

func userResponse(u *models.User) api.UserResponse {
	return api.UserResponse{
		CreatedAt:   u.CreatedAt,
		LastLoginAt: u.LastLoginAt,
		ID:          u.ID,
		Email:       u.Email,
		Username:    u.Username,
		Avatar:      u.Avatar,
	}
}
