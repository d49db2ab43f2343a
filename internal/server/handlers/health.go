package handlers

import (
	"context"
	"log/slog"
	"net/http"
)

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	responder
	version string
	backend string
	probe   func(ctx context.Context) error
}

// NewHealthHandler создает новый handler для health check.
// probe проверяет доступность хранилища; nil означает "всегда доступно".
func NewHealthHandler(logger *slog.Logger, version, backend string, probe func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{
		responder: responder{logger: logger},
		version:   version,
		backend:   backend,
		probe:     probe,
	}
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Storage string `json:"storage,omitempty"`
}

// Health обрабатывает GET /api/v1/health
// Health check endpoint для мониторинга
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:  "ok",
		Version: h.version,
		Storage: h.backend,
	}

	if h.probe != nil {
		if err := h.probe(r.Context()); err != nil {
			h.logger.ErrorContext(r.Context(), "storage probe failed", slog.Any("error", err))
			resp.Status = "unavailable"
			h.sendJSON(w, resp, http.StatusServiceUnavailable)
			return
		}
	}

	h.sendJSON(w, resp, http.StatusOK)
}
