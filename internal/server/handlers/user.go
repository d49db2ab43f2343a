package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/contentfactory/internal/server/account"
	"github.com/iudanet/contentfactory/internal/server/storage"
	"github.com/iudanet/contentfactory/pkg/api"
)

// UserHandler обрабатывает запросы профиля пользователя
type UserHandler struct {
	responder
	accounts Accounts
}

// NewUserHandler создает новый handler профиля
func NewUserHandler(logger *slog.Logger, accounts Accounts) *UserHandler {
	return &UserHandler{
		responder: responder{logger: logger},
		accounts:  accounts,
	}
}

// UpdateProfile обрабатывает PATCH /api/v1/user/profile
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.ProfileRequest
	if !h.decode(w, r, &req) {
		return
	}

	user, err := h.accounts.UpdateProfile(ctx, userID, account.ProfileInput{
		Email:    req.Email,
		Username: req.Username,
		Avatar:   req.Avatar,
	})
	if err != nil {
		switch {
		case errors.Is(err, account.ErrInvalidInput):
			h.sendError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, account.ErrEmailTaken):
			h.sendError(w, "email already registered", http.StatusConflict)
		case errors.Is(err, account.ErrUsernameTaken):
			h.sendError(w, "username already taken", http.StatusConflict)
		case errors.Is(err, storage.ErrDuplicateUser):
			h.sendError(w, "email or username already in use", http.StatusConflict)
		case errors.Is(err, storage.ErrUserNotFound):
			h.sendError(w, "unauthorized", http.StatusUnauthorized)
		default:
			h.internalError(w, r, "failed to update profile", err)
		}
		return
	}

	h.sendJSON(w, userResponse(user), http.StatusOK)
}

// ChangePassword обрабатывает PUT /api/v1/user/password
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.PasswordRequest
	if !h.decode(w, r, &req) {
		return
	}

	err := h.accounts.ChangePassword(ctx, userID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrUnauthorized):
			// сессия валидна, отказ относится к текущему паролю
			h.sendError(w, "current password is incorrect", http.StatusBadRequest)
		case errors.Is(err, account.ErrInvalidInput):
			h.sendError(w, err.Error(), http.StatusBadRequest)
		default:
			h.internalError(w, r, "failed to change password", err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
