package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iudanet/contentfactory/internal/models"
	"github.com/iudanet/contentfactory/internal/server/credential"
	"github.com/iudanet/contentfactory/pkg/api"
)

//go:generate moq -out credentials_mock.go . Credentials

// Credentials определяет операции над API ключами пользователя
type Credentials interface {
	List(ctx context.Context, userID string) ([]models.Credential, error)
	Save(ctx context.Context, userID string, in credential.SaveInput) (*models.Credential, error)
	Delete(ctx context.Context, userID, provider string) error
	RecordTest(ctx context.Context, userID, provider string, status models.TestStatus, message string) (*models.Credential, error)
}

// ConfigHandler обрабатывает запросы настроек провайдеров
type ConfigHandler struct {
	responder
	credentials Credentials
}

// NewConfigHandler создает новый handler настроек
func NewConfigHandler(logger *slog.Logger, credentials Credentials) *ConfigHandler {
	return &ConfigHandler{
		responder:   responder{logger: logger},
		credentials: credentials,
	}
}

// List обрабатывает GET /api/v1/user/configs
func (h *ConfigHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	configs, err := h.credentials.List(ctx, userID)
	if err != nil {
		h.internalError(w, r, "failed to list configs", err)
		return
	}

	resp := api.CredentialListResponse{Configs: make([]api.CredentialResponse, 0, len(configs))}
	for i := range configs {
		resp.Configs = append(resp.Configs, credentialResponse(&configs[i]))
	}

	h.sendJSON(w, resp, http.StatusOK)
}

// Save обрабатывает PUT /api/v1/user/configs/{provider}
func (h *ConfigHandler) Save(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.CredentialRequest
	if !h.decode(w, r, &req) {
		return
	}

	provider := chi.URLParam(r, "provider")
	c, err := h.credentials.Save(ctx, userID, credential.SaveInput{
		IsActive:          req.IsActive,
		Provider:          provider,
		Name:              req.Name,
		Description:       req.Description,
		Secret:            req.APIKey,
		BaseURL:           req.APIBase,
		Model:             req.Model,
		ServiceProviderID: req.ServiceProviderID,
	})
	if err != nil {
		h.credentialError(w, r, "failed to save config", err)
		return
	}

	h.sendJSON(w, credentialResponse(c), http.StatusOK)
}

// Delete обрабатывает DELETE /api/v1/user/configs/{provider}
func (h *ConfigHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.credentials.Delete(ctx, userID, chi.URLParam(r, "provider")); err != nil {
		h.credentialError(w, r, "failed to delete config", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RecordTest обрабатывает POST /api/v1/user/configs/{provider}/test
// Сохраняет результат проверки ключа, выполненной клиентом
func (h *ConfigHandler) RecordTest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.TestResultRequest
	if !h.decode(w, r, &req) {
		return
	}

	c, err := h.credentials.RecordTest(ctx, userID, chi.URLParam(r, "provider"),
		models.TestStatus(req.Status), req.Message)
	if err != nil {
		h.credentialError(w, r, "failed to record test result", err)
		return
	}

	h.sendJSON(w, credentialResponse(c), http.StatusOK)
}

func (h *ConfigHandler) credentialError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	switch {
	case errors.Is(err, credential.ErrInvalidCredential):
		h.sendError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, credential.ErrCredentialNotFound):
		h.sendError(w, "config not found", http.StatusNotFound)
	default:
		h.internalError(w, r, msg, err)
	}
}

// credentialResponse скрывает секрет, оставляя только признак его наличия
func credentialResponse(c *models.Credential) api.CredentialResponse {
	return api.CredentialResponse{
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
		LastTestedAt:      c.LastTestedAt,
		ID:                c.ID,
		Provider:          c.Provider,
		Name:              c.Name,
		Description:       c.Description,
		APIBase:           c.BaseURL,
		Model:             c.Model,
		ServiceProviderID: c.ServiceProviderID,
		TestStatus:        string(c.LastTestStatus),
		TestMessage:       c.LastTestMessage,
		IsActive:          c.IsActive,
		IsConfigured:      c.IsConfigured,
		HasAPIKey:         c.Configured(),
	}
}
